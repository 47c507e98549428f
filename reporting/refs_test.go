package reporting

import (
	"testing"

	"esgreporting/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []string
	}{
		{"nil", nil, []string{}},
		{"json array of numbers", []interface{}{float64(1), float64(2)}, []string{"1", "2"}},
		{"json array of strings", []interface{}{"1", "2"}, []string{"1", "2"}},
		{"string slice", []string{"3", "4"}, []string{"3", "4"}},
		{"int64 slice", []int64{5, 6}, []string{"5", "6"}},
		{"json-encoded array", "[1,2]", []string{"1", "2"}},
		{"json-encoded string array", `["7","8"]`, []string{"7", "8"}},
		{"json scalar string", "9", []string{"9"}},
		{"bare non-json string", "factor-a", []string{"factor-a"}},
		{"empty string", "", []string{}},
		{"whitespace string", "   ", []string{}},
		{"lone number", float64(12), []string{"12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIDList(tt.raw))
		})
	}
}

func testCategories() []models.EmissionCategory {
	return []models.EmissionCategory{
		{Name: "electricity", Label: "Electricity", Factors: []models.EmissionFactor{
			{ID: 1, Name: "Grid electricity", Scope: 2, Category: "electricity", FactorValue: 0.4, Unit: "kg CO2e/kWh"},
		}},
		{Name: "fuel", Label: "Fuel", Factors: []models.EmissionFactor{
			{ID: 2, Name: "Diesel", Scope: 1, Category: "fuel", FactorValue: 2.68, Unit: "kg CO2e/liter"},
			{ID: 3, Name: "Natural gas", Scope: 1, Category: "fuel", FactorValue: 2.02, Unit: "kg CO2e/m3"},
		}},
	}
}

func TestResolveFactorsStringAndArrayAgree(t *testing.T) {
	categories := testCategories()

	fromString := ResolveFactors("[1,2]", categories)
	fromArray := ResolveFactors([]interface{}{float64(1), float64(2)}, categories)

	assert.Equal(t, fromString, fromArray)
	assert.Len(t, fromString, 2)
	assert.Equal(t, int64(1), fromString[0].ID)
	assert.Equal(t, int64(2), fromString[1].ID)
}

func TestResolveFactorsDropsMissingIDs(t *testing.T) {
	got := ResolveFactors([]interface{}{float64(1), float64(999)}, testCategories())

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestResolveFactorsPreservesRefOrder(t *testing.T) {
	got := ResolveFactors("[3,1]", testCategories())

	assert.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestResolveFactorsMalformedFieldDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		got := ResolveFactors("{not json", testCategories())
		assert.Empty(t, got)
	})
}

func TestResolveFactorsFlat(t *testing.T) {
	factors := []models.EmissionFactor{
		{ID: 10, Name: "Fleet petrol", Scope: 1},
		{ID: 11, Name: "Air travel", Scope: 3},
	}

	got := ResolveFactorsFlat([]interface{}{"11"}, factors)

	assert.Len(t, got, 1)
	assert.Equal(t, "Air travel", got[0].Name)
}
