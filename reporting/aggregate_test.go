package reporting

import (
	"testing"
	"time"

	"esgreporting/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.0, SafeRatio(42, 0))
	assert.Equal(t, 0.0, SafeRatio(0, 0))
	assert.Equal(t, 0.5, SafeRatio(1, 2))
	assert.Equal(t, -2.0, SafeRatio(-4, 2))
}

func TestAverageCompletion(t *testing.T) {
	assert.Equal(t, 0, AverageCompletion(nil))
	assert.Equal(t, 0, AverageCompletion([]models.ProjectActivity{}))

	got := AverageCompletion([]models.ProjectActivity{
		{CompletionPercentage: 40},
		{CompletionPercentage: 60},
	})
	assert.Equal(t, 50, got)

	// Missing percentages count as zero, and the mean rounds to nearest.
	got = AverageCompletion([]models.ProjectActivity{
		{CompletionPercentage: 100},
		{},
		{CompletionPercentage: 1},
	})
	assert.Equal(t, 34, got)
}

func TestBudgetUtilizationIgnoresZeroBudgetEntries(t *testing.T) {
	activities := []models.ProjectActivity{
		{BudgetAllocated: f64(100), BudgetSpent: f64(50)},
		{BudgetAllocated: f64(0), BudgetSpent: f64(0)},
	}

	assert.Equal(t, 50.0, BudgetUtilization(activities))
	assert.Equal(t, 0.0, BudgetUtilization(nil))
}

func TestEstimateToActualRatioOperandOrder(t *testing.T) {
	// 120 estimated over 100 actual reads as 120%: the work beat its estimate.
	activities := []models.ProjectActivity{
		{EstimatedHours: f64(80), ActualHours: f64(60)},
		{EstimatedHours: f64(40), ActualHours: f64(40)},
	}

	assert.Equal(t, 120.0, EstimateToActualRatio(activities))
	assert.Equal(t, 0.0, EstimateToActualRatio(nil))
}

func TestOverdueCount(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	activities := []models.ProjectActivity{
		{Status: "in_progress", DueDate: "2024-02-01"},
		{Status: "completed", DueDate: "2024-02-01"},
		{Status: "pending", DueDate: "2024-04-01"},
		{Status: "pending", DueDate: "not a date"},
	}

	assert.Equal(t, 1, OverdueCount(activities, now))
}

func TestCountByPreservesFirstSeenOrder(t *testing.T) {
	activities := []models.ProjectActivity{
		{Status: "pending"},
		{Status: "completed"},
		{Status: "pending"},
		{Status: "in_progress"},
	}

	got := CountBy(activities, func(a models.ProjectActivity) string { return a.Status })

	assert.Equal(t, []ValueCount{
		{Value: "pending", Count: 2},
		{Value: "completed", Count: 1},
		{Value: "in_progress", Count: 1},
	}, got)
}

func TestProgressFor(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	activities := []models.ProjectActivity{
		{Status: "in_progress", CompletionPercentage: 50, DueDate: "2024-02-01",
			BudgetAllocated: f64(200), BudgetSpent: f64(100),
			EstimatedHours: f64(10), ActualHours: f64(20)},
		{Status: "completed", CompletionPercentage: 100,
			BudgetAllocated: f64(100), BudgetSpent: f64(50)},
	}

	got := ProgressFor(activities, now)

	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 75, got.AverageCompletion)
	assert.Equal(t, 50.0, got.BudgetUtilization)
	assert.Equal(t, 50.0, got.EstimateToActualRatio)
	assert.Equal(t, 1, got.Overdue)
}

func TestSummarizeAssets(t *testing.T) {
	assets := []models.Asset{
		{AssetType: "chiller", Status: "active", AnnualKWh: 10000, AnnualCO2e: 4.5},
		{AssetType: "pump", Status: "active", AnnualKWh: 2000, AnnualCO2e: 0.9},
		{AssetType: "chiller", Status: "retired", AnnualKWh: 0, AnnualCO2e: 0},
	}

	got := SummarizeAssets(assets)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 12000.0, got.TotalAnnualKWh)
	assert.Equal(t, Tonnes, got.TotalAnnualCO2e.Unit)
	assert.InDelta(t, 5.4, got.TotalAnnualCO2e.Value, 1e-9)
	assert.Equal(t, []ValueCount{{Value: "chiller", Count: 2}, {Value: "pump", Count: 1}}, got.ByType)
}

func TestSummarizeSuppliers(t *testing.T) {
	suppliers := []models.Supplier{
		{CompanyName: "A", ESGRating: "B", Status: "active", AnnualSpend: 100000, DataCompleteness: 80},
		{CompanyName: "B", Status: "pending", AnnualSpend: 50000, DataCompleteness: 20},
	}

	got := SummarizeSuppliers(suppliers)

	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 150000.0, got.TotalAnnualSpend)
	assert.Equal(t, 50.0, got.AverageDataCompleteness)
	assert.Equal(t, []ValueCount{{Value: "B", Count: 1}, {Value: "unrated", Count: 1}}, got.ByRating)
}

func TestComparisonSavings(t *testing.T) {
	current := &models.Asset{ID: 1, AnnualKWh: 50000, AnnualCO2e: 20}
	cmp := models.AssetComparison{
		CurrentAssetID: 1,
		Proposals: []models.ComparisonProposal{
			{Name: "High-efficiency chiller", AnnualKWh: 35000, AnnualCO2e: 14, PurchaseCost: 80000, InstallationCost: 5000},
		},
	}

	got := ComparisonSavings(cmp, current)

	assert.Len(t, got, 1)
	assert.Equal(t, 15000.0, got[0].AnnualKWhSavings)
	assert.InDelta(t, 6.0, got[0].AnnualCO2eSavings.Value, 1e-9)
	assert.Equal(t, 85000.0, got[0].UpfrontCost)

	assert.Empty(t, ComparisonSavings(cmp, nil))
}
