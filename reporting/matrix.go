package reporting

import (
	"sort"
	"strconv"
	"strings"

	"esgreporting/models"
)

// StandardDefinition names one known ESG standard, framework, or assessment.
type StandardDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StandardCatalog is the reference universe the assessment matrix is built
// over. Submissions against names outside the catalog do not grow the grid.
var StandardCatalog = []StandardDefinition{
	{Name: "GHG Protocol", Type: "standard"},
	{Name: "ISO 14064", Type: "standard"},
	{Name: "ISO 14001", Type: "standard"},
	{Name: "ISO 50001", Type: "standard"},
	{Name: "GRI", Type: "framework"},
	{Name: "TCFD", Type: "framework"},
	{Name: "UNSDGs", Type: "framework"},
	{Name: "ESRS", Type: "framework"},
	{Name: "COSIRI", Type: "assessment"},
	{Name: "EcoVadis", Type: "assessment"},
	{Name: "FTSE4Good", Type: "assessment"},
	{Name: "CDP", Type: "assessment"},
}

// AssessmentMatrix is a dense supplier × standard submission grid for one
// reporting year. Rows keep the input supplier order; columns are the
// (optionally type-filtered) catalog names in lexicographic order. Every cell
// is present: missing combinations are explicit false, not absent keys.
type AssessmentMatrix struct {
	Year      int         `json:"year"`
	Standards []string    `json:"standards"`
	Rows      []MatrixRow `json:"rows"`
}

type MatrixRow struct {
	SupplierID  int64           `json:"supplier_id"`
	CompanyName string          `json:"company_name"`
	Submitted   map[string]bool `json:"submitted"`
}

// BuildAssessmentMatrix marks cell (supplier, standard) true when an active
// submission record exists for that supplier, standard name, and year.
// nameFilter restricts the grid to a single catalog standard by name;
// typeFilter restricts it to one standard_type. "all" (or empty) means
// unrestricted for either.
func BuildAssessmentMatrix(suppliers []models.Supplier, records []models.SupplierESGStandard, year int, nameFilter, typeFilter string) AssessmentMatrix {
	universe := make([]string, 0, len(StandardCatalog))
	for _, def := range StandardCatalog {
		if nameFilter != "" && nameFilter != ValueAll && def.Name != nameFilter {
			continue
		}
		if typeFilter == "" || typeFilter == ValueAll || def.Type == typeFilter {
			universe = append(universe, def.Name)
		}
	}
	sort.Strings(universe)

	rows := make([]MatrixRow, 0, len(suppliers))
	for _, sup := range suppliers {
		row := MatrixRow{
			SupplierID:  sup.ID,
			CompanyName: sup.CompanyName,
			Submitted:   make(map[string]bool, len(universe)),
		}
		for _, name := range universe {
			row.Submitted[name] = hasActiveSubmission(records, sup.ID, name, year)
		}
		rows = append(rows, row)
	}

	return AssessmentMatrix{Year: year, Standards: universe, Rows: rows}
}

func hasActiveSubmission(records []models.SupplierESGStandard, supplierID int64, standard string, year int) bool {
	for _, r := range records {
		if r.SupplierID == supplierID && r.Name == standard && r.Status == "active" && yearMatches(r.SubmissionYear, year) {
			return true
		}
	}
	return false
}

// yearMatches compares a submission year against a target year regardless of
// whether it was stored as a number or a string.
func yearMatches(raw interface{}, year int) bool {
	parsed, ok := parseYear(raw)
	return ok && parsed == year
}

func yearString(raw interface{}) string {
	if y, ok := parseYear(raw); ok {
		return strconv.Itoa(y)
	}
	return ""
}

func parseYear(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		y, err := strconv.Atoi(strings.TrimSpace(v))
		return y, err == nil
	default:
		return 0, false
	}
}
