package reporting

import (
	"encoding/json"
	"log"
	"reflect"
	"strconv"
	"strings"

	"esgreporting/models"
)

// NormalizeIDList coerces an overloaded reference field (measurement_ids,
// depends_on, blocks, emission_categories) into a canonical list of string
// IDs. The backend has historically sent these as a JSON array, a
// JSON-encoded string, or a bare string, and the field may be absent
// entirely. Normalization never fails: a string that does not parse as JSON
// is kept as a single-element list and the failure is logged.
func NormalizeIDList(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case string:
		return normalizeString(v)
	}

	// Arrays arrive under several concrete types depending on whether they
	// were decoded from JSON or BSON; handle any slice uniformly.
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, formatScalar(rv.Index(i).Interface()))
		}
		return out
	}

	// A lone scalar wraps to a single-element list.
	return []string{formatScalar(raw)}
}

func normalizeString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		log.Printf("reporting: reference field %q is not valid JSON, keeping as single ID: %v", trimmed, err)
		return []string{trimmed}
	}
	if _, isList := parsed.([]interface{}); !isList {
		return []string{formatScalar(parsed)}
	}
	return NormalizeIDList(parsed)
}

// formatScalar renders a reference scalar as its canonical ID string.
// JSON numbers decode as float64, so integral values drop the fraction.
func formatScalar(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ResolveFactors maps an activity's measurement references to full emission
// factor records. The grouped collection is flattened one level; the first
// factor matching each ID wins; IDs with no match are dropped without error.
// Output order follows the input reference order.
func ResolveFactors(refs interface{}, categories []models.EmissionCategory) []models.EmissionFactor {
	ids := NormalizeIDList(refs)
	out := make([]models.EmissionFactor, 0, len(ids))
	for _, id := range ids {
		if f, ok := findFactorInCategories(id, categories); ok {
			out = append(out, f)
		}
	}
	return out
}

// ResolveFactorsFlat is ResolveFactors against an ungrouped factor list.
func ResolveFactorsFlat(refs interface{}, factors []models.EmissionFactor) []models.EmissionFactor {
	ids := NormalizeIDList(refs)
	out := make([]models.EmissionFactor, 0, len(ids))
	for _, id := range ids {
		for _, f := range factors {
			if strconv.FormatInt(f.ID, 10) == id {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

func findFactorInCategories(id string, categories []models.EmissionCategory) (models.EmissionFactor, bool) {
	for _, cat := range categories {
		for _, f := range cat.Factors {
			if strconv.FormatInt(f.ID, 10) == id {
				return f, true
			}
		}
	}
	return models.EmissionFactor{}, false
}
