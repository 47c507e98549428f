package reporting

import (
	"sort"
	"testing"

	"esgreporting/models"

	"github.com/stretchr/testify/assert"
)

func TestStandardCatalogContents(t *testing.T) {
	byType := make(map[string][]string)
	for _, def := range StandardCatalog {
		byType[def.Type] = append(byType[def.Type], def.Name)
	}

	assert.Equal(t, []string{"GHG Protocol", "ISO 14064", "ISO 14001", "ISO 50001"}, byType["standard"])
	assert.Equal(t, []string{"GRI", "TCFD", "UNSDGs", "ESRS"}, byType["framework"])
	assert.Equal(t, []string{"COSIRI", "EcoVadis", "FTSE4Good", "CDP"}, byType["assessment"])
}

func TestBuildAssessmentMatrixYearMatch(t *testing.T) {
	suppliers := []models.Supplier{{ID: 1, CompanyName: "Acme"}}
	records := []models.SupplierESGStandard{
		{SupplierID: 1, Name: "GRI", StandardType: "framework", SubmissionYear: 2024, Status: "active"},
	}

	matrix := BuildAssessmentMatrix(suppliers, records, 2024, "all", "all")
	assert.True(t, matrix.Rows[0].Submitted["GRI"])

	matrix = BuildAssessmentMatrix(suppliers, records, 2023, "all", "all")
	assert.False(t, matrix.Rows[0].Submitted["GRI"])
}

func TestBuildAssessmentMatrixYearRepresentationTolerance(t *testing.T) {
	suppliers := []models.Supplier{{ID: 1, CompanyName: "Acme"}}
	records := []models.SupplierESGStandard{
		{SupplierID: 1, Name: "CDP", StandardType: "assessment", SubmissionYear: "2024", Status: "active"},
	}

	matrix := BuildAssessmentMatrix(suppliers, records, 2024, "all", "all")

	assert.True(t, matrix.Rows[0].Submitted["CDP"])
}

func TestBuildAssessmentMatrixIsDense(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 1, CompanyName: "Acme"},
		{ID: 2, CompanyName: "Globex"},
	}

	matrix := BuildAssessmentMatrix(suppliers, nil, 2024, "all", "all")

	assert.Len(t, matrix.Rows, 2)
	for _, row := range matrix.Rows {
		assert.Len(t, row.Submitted, len(matrix.Standards))
		for _, name := range matrix.Standards {
			submitted, present := row.Submitted[name]
			assert.True(t, present)
			assert.False(t, submitted)
		}
	}
}

func TestBuildAssessmentMatrixOrdering(t *testing.T) {
	suppliers := []models.Supplier{
		{ID: 7, CompanyName: "Zeta"},
		{ID: 3, CompanyName: "Alpha"},
	}

	matrix := BuildAssessmentMatrix(suppliers, nil, 2024, "all", "all")

	// Rows keep input supplier order; columns sort lexicographically.
	assert.Equal(t, int64(7), matrix.Rows[0].SupplierID)
	assert.Equal(t, int64(3), matrix.Rows[1].SupplierID)
	assert.True(t, sort.StringsAreSorted(matrix.Standards))
}

func TestBuildAssessmentMatrixNameFilter(t *testing.T) {
	suppliers := []models.Supplier{{ID: 1, CompanyName: "Acme"}}
	records := []models.SupplierESGStandard{
		{SupplierID: 1, Name: "EcoVadis", StandardType: "assessment", SubmissionYear: 2024, Status: "active"},
		{SupplierID: 1, Name: "TCFD", StandardType: "framework", SubmissionYear: 2024, Status: "active"},
	}

	matrix := BuildAssessmentMatrix(suppliers, records, 2024, "EcoVadis", "all")

	assert.Equal(t, []string{"EcoVadis"}, matrix.Standards)
	assert.True(t, matrix.Rows[0].Submitted["EcoVadis"])
	_, present := matrix.Rows[0].Submitted["TCFD"]
	assert.False(t, present)
}

func TestBuildAssessmentMatrixNameFilterUnknownName(t *testing.T) {
	matrix := BuildAssessmentMatrix(nil, nil, 2024, "Not A Standard", "all")

	assert.Empty(t, matrix.Standards)
}

func TestBuildAssessmentMatrixTypeFilter(t *testing.T) {
	matrix := BuildAssessmentMatrix(nil, nil, 2024, "all", "assessment")

	sorted := []string{"CDP", "COSIRI", "EcoVadis", "FTSE4Good"}
	assert.Equal(t, sorted, matrix.Standards)
}

func TestBuildAssessmentMatrixIgnoresInactiveRecords(t *testing.T) {
	suppliers := []models.Supplier{{ID: 1, CompanyName: "Acme"}}
	records := []models.SupplierESGStandard{
		{SupplierID: 1, Name: "GRI", StandardType: "framework", SubmissionYear: 2024, Status: "expired"},
		{SupplierID: 1, Name: "GRI", StandardType: "framework", SubmissionYear: 2024, Status: "pending"},
	}

	matrix := BuildAssessmentMatrix(suppliers, records, 2024, "all", "all")

	assert.False(t, matrix.Rows[0].Submitted["GRI"])
}
