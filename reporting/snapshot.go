package reporting

import (
	"strings"
	"time"

	"esgreporting/models"
)

// Snapshot is a read-only view of the reporting collections as of one fetch.
// Every computation in this package is a pure function of a snapshot (plus
// filter state and "now"), so results are recomputed from scratch rather than
// incrementally patched. Callers must not mix collections from different
// fetches within one snapshot.
type Snapshot struct {
	Projects     []models.Project
	Activities   []models.ProjectActivity
	Assets       []models.Asset
	Comparisons  []models.AssetComparison
	Suppliers    []models.Supplier
	Standards    []models.SupplierESGStandard
	Factors      []models.EmissionFactor
	Measurements []models.Measurement
	TakenAt      time.Time
}

func (s *Snapshot) FactorByID(id int64) (models.EmissionFactor, bool) {
	for _, f := range s.Factors {
		if f.ID == id {
			return f, true
		}
	}
	return models.EmissionFactor{}, false
}

func (s *Snapshot) AssetByID(id int64) (models.Asset, bool) {
	for _, a := range s.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

func (s *Snapshot) SupplierByID(id int64) (models.Supplier, bool) {
	for _, sup := range s.Suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return models.Supplier{}, false
}

func (s *Snapshot) ActivitiesForProject(projectID int64) []models.ProjectActivity {
	var out []models.ProjectActivity
	for _, a := range s.Activities {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out
}

// GroupFactors buckets factors by category in first-seen order. The label is
// the category name with underscores spelled out, which is what pickers show.
func GroupFactors(factors []models.EmissionFactor) []models.EmissionCategory {
	var order []string
	byName := make(map[string]*models.EmissionCategory)

	for _, f := range factors {
		cat, ok := byName[f.Category]
		if !ok {
			order = append(order, f.Category)
			cat = &models.EmissionCategory{
				Name:  f.Category,
				Label: categoryLabel(f.Category),
			}
			byName[f.Category] = cat
		}
		cat.Factors = append(cat.Factors, f)
	}

	out := make([]models.EmissionCategory, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

func categoryLabel(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
