package reporting

import (
	"fmt"
	"math"
	"time"

	"esgreporting/models"
)

// Emission rollups for the dashboard. Measurements carry pre-calculated
// emissions in tonnes CO2e; everything here sums and buckets, leaving unit
// conversion to the Mass type at the display boundary.

type ValueTotal struct {
	Value string  `json:"value"`
	Total float64 `json:"total"`
}

type PeriodEmissions struct {
	Period    string  `json:"period"`
	Year      int     `json:"year"`
	Month     int     `json:"month,omitempty"`
	Quarter   int     `json:"quarter,omitempty"`
	Emissions float64 `json:"emissions"`
}

type TrendOptions struct {
	// Period is monthly, quarterly, or yearly.
	Period string
	// Years is how many years back from the current year to include.
	Years int
	// Scope restricts to one GHG scope via the measurement's emission
	// factor; 0 means all scopes.
	Scope int
}

// TotalEmissions sums calculated emissions (tonnes) for a calendar year.
func TotalEmissions(measurements []models.Measurement, year int) float64 {
	var total float64
	for _, m := range measurements {
		if t, ok := parseDate(m.Date); ok && t.Year() == year {
			total += m.CalculatedEmissions
		}
	}
	return round2(total)
}

// EmissionsByScope buckets a year's emissions into scope_1/scope_2/scope_3 by
// joining each measurement to its emission factor. Measurements whose factor
// is missing fall out of the scope buckets but still count toward the total.
func EmissionsByScope(measurements []models.Measurement, factors []models.EmissionFactor, year int) map[string]float64 {
	scopes := map[string]float64{"scope_1": 0, "scope_2": 0, "scope_3": 0}
	for _, m := range measurements {
		t, ok := parseDate(m.Date)
		if !ok || t.Year() != year {
			continue
		}
		for _, f := range factors {
			if f.ID == m.EmissionFactorID {
				key := fmt.Sprintf("scope_%d", f.Scope)
				scopes[key] += m.CalculatedEmissions
				break
			}
		}
	}
	for k, v := range scopes {
		scopes[k] = round2(v)
	}
	return scopes
}

// EmissionsByCategory totals a year's emissions per measurement category in
// first-seen order.
func EmissionsByCategory(measurements []models.Measurement, year int) []ValueTotal {
	var order []string
	totals := make(map[string]float64)
	for _, m := range measurements {
		t, ok := parseDate(m.Date)
		if !ok || t.Year() != year || m.Category == "" {
			continue
		}
		if _, seen := totals[m.Category]; !seen {
			order = append(order, m.Category)
		}
		totals[m.Category] += m.CalculatedEmissions
	}
	out := make([]ValueTotal, 0, len(order))
	for _, c := range order {
		out = append(out, ValueTotal{Value: c, Total: round2(totals[c])})
	}
	return out
}

// MonthlyEmissions returns twelve buckets for the year, zero-filled so the
// chart always has a full x-axis.
func MonthlyEmissions(measurements []models.Measurement, year int) []PeriodEmissions {
	buckets := make([]float64, 12)
	for _, m := range measurements {
		if t, ok := parseDate(m.Date); ok && t.Year() == year {
			buckets[int(t.Month())-1] += m.CalculatedEmissions
		}
	}
	out := make([]PeriodEmissions, 0, 12)
	for month := 1; month <= 12; month++ {
		out = append(out, PeriodEmissions{
			Period:    fmt.Sprintf("%d-%02d", year, month),
			Year:      year,
			Month:     month,
			Emissions: round2(buckets[month-1]),
		})
	}
	return out
}

// EmissionsTrend buckets emissions over the last opts.Years years ending at
// now's year. Buckets are dense: every period in the window appears, zeroed
// when nothing was measured.
func EmissionsTrend(measurements []models.Measurement, factors []models.EmissionFactor, opts TrendOptions, now time.Time) []PeriodEmissions {
	years := opts.Years
	if years < 1 {
		years = 1
	}
	currentYear := now.Year()
	startYear := currentYear - years + 1

	included := filterByScope(measurements, factors, opts.Scope)

	var out []PeriodEmissions
	switch opts.Period {
	case "quarterly":
		for year := startYear; year <= currentYear; year++ {
			for quarter := 1; quarter <= 4; quarter++ {
				total := 0.0
				for _, m := range included {
					t, ok := parseDate(m.Date)
					if ok && t.Year() == year && quarterOf(t)+1 == quarter {
						total += m.CalculatedEmissions
					}
				}
				out = append(out, PeriodEmissions{
					Period:    fmt.Sprintf("%d-Q%d", year, quarter),
					Year:      year,
					Quarter:   quarter,
					Emissions: round2(total),
				})
			}
		}
	case "yearly":
		for year := startYear; year <= currentYear; year++ {
			total := 0.0
			for _, m := range included {
				if t, ok := parseDate(m.Date); ok && t.Year() == year {
					total += m.CalculatedEmissions
				}
			}
			out = append(out, PeriodEmissions{
				Period:    fmt.Sprintf("%d", year),
				Year:      year,
				Emissions: round2(total),
			})
		}
	default: // monthly
		for year := startYear; year <= currentYear; year++ {
			monthly := MonthlyEmissions(included, year)
			out = append(out, monthly...)
		}
	}
	return out
}

func filterByScope(measurements []models.Measurement, factors []models.EmissionFactor, scope int) []models.Measurement {
	if scope == 0 {
		return measurements
	}
	out := make([]models.Measurement, 0, len(measurements))
	for _, m := range measurements {
		for _, f := range factors {
			if f.ID == m.EmissionFactorID {
				if f.Scope == scope {
					out = append(out, m)
				}
				break
			}
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
