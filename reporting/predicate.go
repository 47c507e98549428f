package reporting

import (
	"strconv"
	"strings"
	"time"

	"esgreporting/models"
)

// FilterSpec describes one view's active filters. All dimensions combine with
// AND; the "all" sentinel (or an absent entry) means no constraint for that
// dimension. Predicates built from a spec are total: bad data makes an entity
// not match, it never makes the predicate fail.
type FilterSpec struct {
	// Search matches case-insensitively against the entity's configured
	// string fields. Empty or whitespace-only search matches everything.
	Search string
	// Fields holds enum-equality constraints keyed by field name. A field
	// name the entity does not expose makes the predicate false for every
	// entity, mirroring how an impossible filter renders an empty list.
	Fields map[string]string
	// DateRange is one of the Range* tokens. Evaluated against "now" at
	// predicate-build time, not at data-fetch time.
	DateRange string
}

const (
	ValueAll = "all"

	RangeAll         = "all"
	RangeThisMonth   = "this_month"
	RangeThisQuarter = "this_quarter"
	RangeOverdue     = "overdue"
)

// Filter returns the members of items matching pred, preserving input order.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func ProjectPredicate(f FilterSpec, now time.Time) func(models.Project) bool {
	return func(p models.Project) bool {
		if !matchesSearch(f.Search, p.Name, p.Description) {
			return false
		}
		if !matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "status":
				return p.Status, true
			case "year":
				return strconv.Itoa(p.Year), true
			default:
				return "", false
			}
		}) {
			return false
		}
		return matchesDateRange(f.DateRange, now, p.Status, p.StartDate, p.EndDate)
	}
}

func ActivityPredicate(f FilterSpec, now time.Time) func(models.ProjectActivity) bool {
	return func(a models.ProjectActivity) bool {
		if !matchesSearch(f.Search, a.Description, a.AssignedTo, a.Notes) {
			return false
		}
		if !matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "status":
				return a.Status, true
			case "project_id":
				return strconv.FormatInt(a.ProjectID, 10), true
			case "risk_level":
				return a.RiskLevel, true
			case "priority":
				return a.Priority, true
			case "assigned_to":
				return a.AssignedTo, true
			default:
				return "", false
			}
		}) {
			return false
		}
		return matchesDateRange(f.DateRange, now, a.Status, a.StartDate, a.DueDate)
	}
}

func AssetPredicate(f FilterSpec) func(models.Asset) bool {
	return func(a models.Asset) bool {
		if !matchesSearch(f.Search, a.Name, a.Model, a.Manufacturer, a.SerialNumber, a.Location) {
			return false
		}
		return matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "asset_type":
				return a.AssetType, true
			case "status":
				return a.Status, true
			case "location":
				return a.Location, true
			default:
				return "", false
			}
		})
	}
}

func SupplierPredicate(f FilterSpec) func(models.Supplier) bool {
	return func(s models.Supplier) bool {
		if !matchesSearch(f.Search, s.CompanyName, s.Industry, s.ContactPerson, s.Email) {
			return false
		}
		return matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "status":
				return s.Status, true
			case "esg_rating":
				return s.ESGRating, true
			case "industry":
				return s.Industry, true
			case "priority_level":
				return s.PriorityLevel, true
			default:
				return "", false
			}
		})
	}
}

func StandardPredicate(f FilterSpec) func(models.SupplierESGStandard) bool {
	return func(s models.SupplierESGStandard) bool {
		if !matchesSearch(f.Search, s.Name, s.Notes) {
			return false
		}
		return matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "standard_type":
				return s.StandardType, true
			case "status":
				return s.Status, true
			case "supplier_id":
				return strconv.FormatInt(s.SupplierID, 10), true
			case "submission_year":
				return yearString(s.SubmissionYear), true
			default:
				return "", false
			}
		})
	}
}

func FactorPredicate(f FilterSpec) func(models.EmissionFactor) bool {
	return func(e models.EmissionFactor) bool {
		if !matchesSearch(f.Search, e.Name, e.Description, e.Source) {
			return false
		}
		return matchesFields(f.Fields, func(name string) (string, bool) {
			switch name {
			case "category":
				return e.Category, true
			case "sub_category":
				return e.SubCategory, true
			case "scope":
				return strconv.Itoa(e.Scope), true
			case "source":
				return e.Source, true
			default:
				return "", false
			}
		})
	}
}

func matchesSearch(search string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesFields(constraints map[string]string, field func(string) (string, bool)) bool {
	for name, want := range constraints {
		if want == ValueAll || want == "" {
			continue
		}
		got, ok := field(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// matchesDateRange evaluates a date-range token against an entity's start and
// end/due dates. Missing or unparseable dates never match a constrained token.
//
// this_quarter compares the quarter index only and deliberately ignores the
// year: a Q1 entity from any past year matches while the current quarter is
// Q1. That mirrors the historical behavior; see TestThisQuarterIgnoresYear
// before changing it.
func matchesDateRange(token string, now time.Time, status, startDate, endDate string) bool {
	switch token {
	case "", RangeAll:
		return true
	case RangeThisMonth:
		return inMonth(startDate, now) || inMonth(endDate, now)
	case RangeThisQuarter:
		return inQuarter(startDate, now) || inQuarter(endDate, now)
	case RangeOverdue:
		if status == "completed" {
			return false
		}
		end, ok := parseDate(endDate)
		return ok && end.Before(now)
	default:
		return false
	}
}

func inMonth(date string, now time.Time) bool {
	t, ok := parseDate(date)
	return ok && t.Year() == now.Year() && t.Month() == now.Month()
}

func inQuarter(date string, now time.Time) bool {
	t, ok := parseDate(date)
	return ok && quarterOf(t) == quarterOf(now)
}

func quarterOf(t time.Time) int {
	return (int(t.Month()) - 1) / 3
}

// parseDate accepts the upstream "2006-01-02" form and full RFC 3339.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
