package reporting

import (
	"testing"
	"time"

	"esgreporting/models"

	"github.com/stretchr/testify/assert"
)

func trendFixture() ([]models.Measurement, []models.EmissionFactor) {
	factors := []models.EmissionFactor{
		{ID: 1, Name: "Grid electricity", Scope: 2, Category: "electricity"},
		{ID: 2, Name: "Diesel", Scope: 1, Category: "fuel"},
	}
	measurements := []models.Measurement{
		{ID: 1, Date: "2024-01-15", Category: "electricity", EmissionFactorID: 1, CalculatedEmissions: 10},
		{ID: 2, Date: "2024-02-20", Category: "fuel", EmissionFactorID: 2, CalculatedEmissions: 5},
		{ID: 3, Date: "2024-02-25", Category: "electricity", EmissionFactorID: 1, CalculatedEmissions: 2.5},
		{ID: 4, Date: "2023-11-01", Category: "fuel", EmissionFactorID: 2, CalculatedEmissions: 8},
		{ID: 5, Date: "bad date", Category: "fuel", EmissionFactorID: 2, CalculatedEmissions: 99},
	}
	return measurements, factors
}

func TestTotalEmissionsForYear(t *testing.T) {
	measurements, _ := trendFixture()

	assert.Equal(t, 17.5, TotalEmissions(measurements, 2024))
	assert.Equal(t, 8.0, TotalEmissions(measurements, 2023))
	assert.Equal(t, 0.0, TotalEmissions(measurements, 2020))
}

func TestEmissionsByScope(t *testing.T) {
	measurements, factors := trendFixture()

	got := EmissionsByScope(measurements, factors, 2024)

	assert.Equal(t, 5.0, got["scope_1"])
	assert.Equal(t, 12.5, got["scope_2"])
	assert.Equal(t, 0.0, got["scope_3"])
}

func TestEmissionsByScopeDropsDanglingFactorRefs(t *testing.T) {
	measurements := []models.Measurement{
		{Date: "2024-03-01", EmissionFactorID: 999, CalculatedEmissions: 4},
	}
	_, factors := trendFixture()

	got := EmissionsByScope(measurements, factors, 2024)

	assert.Equal(t, 0.0, got["scope_1"]+got["scope_2"]+got["scope_3"])
	// The measurement still counts toward the unsegmented total.
	assert.Equal(t, 4.0, TotalEmissions(measurements, 2024))
}

func TestEmissionsByCategoryOrderAndTotals(t *testing.T) {
	measurements, _ := trendFixture()

	got := EmissionsByCategory(measurements, 2024)

	assert.Equal(t, []ValueTotal{
		{Value: "electricity", Total: 12.5},
		{Value: "fuel", Total: 5},
	}, got)
}

func TestMonthlyEmissionsZeroFillsAllTwelveMonths(t *testing.T) {
	measurements, _ := trendFixture()

	got := MonthlyEmissions(measurements, 2024)

	assert.Len(t, got, 12)
	assert.Equal(t, "2024-01", got[0].Period)
	assert.Equal(t, 10.0, got[0].Emissions)
	assert.Equal(t, 7.5, got[1].Emissions)
	assert.Equal(t, 0.0, got[11].Emissions)
}

func TestEmissionsTrendQuarterly(t *testing.T) {
	measurements, factors := trendFixture()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	got := EmissionsTrend(measurements, factors, TrendOptions{Period: "quarterly", Years: 2}, now)

	assert.Len(t, got, 8)
	assert.Equal(t, "2023-Q1", got[0].Period)
	assert.Equal(t, "2023-Q4", got[3].Period)
	assert.Equal(t, 8.0, got[3].Emissions)
	assert.Equal(t, "2024-Q1", got[4].Period)
	assert.Equal(t, 17.5, got[4].Emissions)
}

func TestEmissionsTrendYearlyWithScopeFilter(t *testing.T) {
	measurements, factors := trendFixture()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	got := EmissionsTrend(measurements, factors, TrendOptions{Period: "yearly", Years: 2, Scope: 1}, now)

	assert.Len(t, got, 2)
	assert.Equal(t, 8.0, got[0].Emissions)
	assert.Equal(t, 5.0, got[1].Emissions)
}

func TestEmissionsTrendIsDeterministic(t *testing.T) {
	measurements, factors := trendFixture()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	opts := TrendOptions{Period: "monthly", Years: 1}

	first := EmissionsTrend(measurements, factors, opts, now)
	second := EmissionsTrend(measurements, factors, opts, now)

	assert.Equal(t, first, second)
}

func TestGroupFactors(t *testing.T) {
	_, factors := trendFixture()
	factors = append(factors, models.EmissionFactor{ID: 3, Name: "Petrol", Scope: 1, Category: "fuel"})

	got := GroupFactors(factors)

	assert.Len(t, got, 2)
	assert.Equal(t, "electricity", got[0].Name)
	assert.Equal(t, "Electricity", got[0].Label)
	assert.Len(t, got[1].Factors, 2)
}
