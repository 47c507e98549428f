package models

// EmissionFactor converts an activity quantity (kWh, liters of fuel, km
// travelled) into CO2-equivalent mass.
type EmissionFactor struct {
	ID            int64    `json:"id" bson:"_id,omitempty"`
	Name          string   `json:"name" bson:"name" validate:"required"`
	Scope         int      `json:"scope" bson:"scope" validate:"required,oneof=1 2 3"`
	Category      string   `json:"category" bson:"category" validate:"required"`
	SubCategory   string   `json:"sub_category" bson:"sub_category,omitempty"`
	FactorValue   float64  `json:"factor_value" bson:"factor_value" validate:"required"`
	Unit          string   `json:"unit" bson:"unit" validate:"required"`
	Source        string   `json:"source" bson:"source,omitempty"`
	EffectiveDate string   `json:"effective_date" bson:"effective_date,omitempty"`
	Description   string   `json:"description" bson:"description,omitempty"`
	Link          string   `json:"link" bson:"link,omitempty"`
	Metadata      Metadata `json:"metadata" bson:"metadata"`
}

// EmissionCategory groups factors for pickers and for the reporting resolver,
// which flattens one level when searching by factor ID.
type EmissionCategory struct {
	Name    string           `json:"name"`
	Label   string           `json:"label"`
	Factors []EmissionFactor `json:"factors"`
}

// Measurement is one recorded activity quantity with its pre-calculated
// emissions in tonnes CO2e.
type Measurement struct {
	ID                  int64    `json:"id" bson:"_id,omitempty"`
	Date                string   `json:"date" bson:"date" validate:"required"`
	Location            string   `json:"location" bson:"location,omitempty"`
	Category            string   `json:"category" bson:"category" validate:"required"`
	SubCategory         string   `json:"sub_category" bson:"sub_category,omitempty"`
	Amount              float64  `json:"amount" bson:"amount" validate:"required"`
	Unit                string   `json:"unit" bson:"unit" validate:"required"`
	EmissionFactorID    int64    `json:"emission_factor_id" bson:"emission_factor_id" validate:"required"`
	CalculatedEmissions float64  `json:"calculated_emissions" bson:"calculated_emissions"`
	Notes               string   `json:"notes" bson:"notes,omitempty"`
	Metadata            Metadata `json:"metadata" bson:"metadata"`
}
