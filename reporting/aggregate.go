package reporting

import (
	"math"
	"time"

	"esgreporting/models"

	"github.com/montanaflynn/stats"
)

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountBy tallies items by key, preserving first-seen key order so chart
// legends render stably across refreshes.
func CountBy[T any](items []T, key func(T) string) []ValueCount {
	var order []string
	counts := make(map[string]int)
	for _, it := range items {
		k := key(it)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]ValueCount, 0, len(order))
	for _, k := range order {
		out = append(out, ValueCount{Value: k, Count: counts[k]})
	}
	return out
}

// SafeRatio returns numerator/denominator as a plain fraction, NOT a
// percentage. A zero denominator yields 0 rather than NaN or Infinity, so a
// project with no budget reads as 0% utilized instead of breaking the tile.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// AverageCompletion is the mean completion percentage rounded to the nearest
// integer. Missing percentages count as 0; an empty list averages to 0.
func AverageCompletion(activities []models.ProjectActivity) int {
	if len(activities) == 0 {
		return 0
	}
	values := make(stats.Float64Data, 0, len(activities))
	for _, a := range activities {
		values = append(values, float64(a.CompletionPercentage))
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return int(math.Round(mean))
}

// BudgetUtilization is spent-over-allocated across the given activities,
// pre-scaled to a display percentage and rounded.
func BudgetUtilization(activities []models.ProjectActivity) float64 {
	var allocated, spent float64
	for _, a := range activities {
		allocated += deref(a.BudgetAllocated)
		spent += deref(a.BudgetSpent)
	}
	return math.Round(SafeRatio(spent, allocated) * 100)
}

// EstimateToActualRatio is estimated-over-actual hours as a display
// percentage: above 100 means the work took less time than estimated. The
// operand order is deliberate and preserved from the historical
// "time efficiency" metric; the name spells the direction out so call sites
// cannot read it as "% of estimate used".
func EstimateToActualRatio(activities []models.ProjectActivity) float64 {
	var estimated, actual float64
	for _, a := range activities {
		estimated += deref(a.EstimatedHours)
		actual += deref(a.ActualHours)
	}
	return math.Round(SafeRatio(estimated, actual) * 100)
}

// OverdueCount counts activities past their due date that are not completed.
func OverdueCount(activities []models.ProjectActivity, now time.Time) int {
	count := 0
	for _, a := range activities {
		if a.Status == "completed" {
			continue
		}
		if due, ok := parseDate(a.DueDate); ok && due.Before(now) {
			count++
		}
	}
	return count
}

// ActivityProgress bundles the progress-tile numbers for one activity set.
type ActivityProgress struct {
	Total                 int          `json:"total"`
	ByStatus              []ValueCount `json:"by_status"`
	AverageCompletion     int          `json:"average_completion"`
	BudgetUtilization     float64      `json:"budget_utilization"`
	EstimateToActualRatio float64      `json:"estimate_to_actual_ratio"`
	Overdue               int          `json:"overdue"`
}

func ProgressFor(activities []models.ProjectActivity, now time.Time) ActivityProgress {
	return ActivityProgress{
		Total:                 len(activities),
		ByStatus:              CountBy(activities, func(a models.ProjectActivity) string { return a.Status }),
		AverageCompletion:     AverageCompletion(activities),
		BudgetUtilization:     BudgetUtilization(activities),
		EstimateToActualRatio: EstimateToActualRatio(activities),
		Overdue:               OverdueCount(activities, now),
	}
}

type AssetSummary struct {
	Total           int          `json:"total"`
	ByType          []ValueCount `json:"by_type"`
	ByStatus        []ValueCount `json:"by_status"`
	TotalAnnualKWh  float64      `json:"total_annual_kwh"`
	TotalAnnualCO2e Mass         `json:"total_annual_co2e"`
}

func SummarizeAssets(assets []models.Asset) AssetSummary {
	var kwh, co2e float64
	for _, a := range assets {
		kwh += a.AnnualKWh
		co2e += a.AnnualCO2e
	}
	return AssetSummary{
		Total:           len(assets),
		ByType:          CountBy(assets, func(a models.Asset) string { return a.AssetType }),
		ByStatus:        CountBy(assets, func(a models.Asset) string { return a.Status }),
		TotalAnnualKWh:  kwh,
		TotalAnnualCO2e: TonnesCO2e(co2e),
	}
}

type SupplierSummary struct {
	Total                   int          `json:"total"`
	ByRating                []ValueCount `json:"by_rating"`
	ByStatus                []ValueCount `json:"by_status"`
	TotalAnnualSpend        float64      `json:"total_annual_spend"`
	AverageDataCompleteness float64      `json:"average_data_completeness"`
}

func SummarizeSuppliers(suppliers []models.Supplier) SupplierSummary {
	var spend float64
	completeness := make(stats.Float64Data, 0, len(suppliers))
	for _, s := range suppliers {
		spend += s.AnnualSpend
		completeness = append(completeness, s.DataCompleteness)
	}
	avg := 0.0
	if len(completeness) > 0 {
		if mean, err := stats.Mean(completeness); err == nil {
			avg = math.Round(mean*10) / 10
		}
	}
	return SupplierSummary{
		Total: len(suppliers),
		ByRating: CountBy(suppliers, func(s models.Supplier) string {
			if s.ESGRating == "" {
				return "unrated"
			}
			return s.ESGRating
		}),
		ByStatus:                CountBy(suppliers, func(s models.Supplier) string { return s.Status }),
		TotalAnnualSpend:        spend,
		AverageDataCompleteness: avg,
	}
}

// ProposalSavings is one replacement proposal's position against the current
// asset. Positive savings mean the proposal consumes or emits less.
type ProposalSavings struct {
	Name              string  `json:"name"`
	AnnualKWhSavings  float64 `json:"annual_kwh_savings"`
	AnnualCO2eSavings Mass    `json:"annual_co2e_savings"`
	UpfrontCost       float64 `json:"upfront_cost"`
	AnnualCostDelta   float64 `json:"annual_maintenance_cost"`
}

// ComparisonSavings evaluates each proposal in order against the comparison's
// current asset. A missing current asset yields no rows rather than an error,
// consistent with how dangling references are dropped elsewhere.
func ComparisonSavings(cmp models.AssetComparison, current *models.Asset) []ProposalSavings {
	if current == nil {
		return []ProposalSavings{}
	}
	out := make([]ProposalSavings, 0, len(cmp.Proposals))
	for _, p := range cmp.Proposals {
		out = append(out, ProposalSavings{
			Name:              p.Name,
			AnnualKWhSavings:  current.AnnualKWh - p.AnnualKWh,
			AnnualCO2eSavings: TonnesCO2e(current.AnnualCO2e - p.AnnualCO2e),
			UpfrontCost:       p.PurchaseCost + p.InstallationCost,
			AnnualCostDelta:   p.AnnualMaintenanceCost,
		})
	}
	return out
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
