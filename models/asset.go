package models

// Asset is a physical energy-consuming asset (aircon, chiller, compressor, pump).
// AnnualCO2e is stored in tonnes; conversion to kilograms happens only through
// reporting.ToKilograms at the display boundary.
type Asset struct {
	ID               int64    `json:"id" bson:"_id,omitempty"`
	Name             string   `json:"name" bson:"name" validate:"required"`
	AssetType        string   `json:"asset_type" bson:"asset_type" validate:"required"`
	Model            string   `json:"model" bson:"model,omitempty"`
	Manufacturer     string   `json:"manufacturer" bson:"manufacturer,omitempty"`
	SerialNumber     string   `json:"serial_number" bson:"serial_number,omitempty"`
	Location         string   `json:"location" bson:"location,omitempty"`
	InstallationDate string   `json:"installation_date" bson:"installation_date,omitempty"`
	Capacity         *float64 `json:"capacity" bson:"capacity,omitempty"`
	CapacityUnit     string   `json:"capacity_unit" bson:"capacity_unit,omitempty"`
	PowerRating      *float64 `json:"power_rating" bson:"power_rating,omitempty"`
	EfficiencyRating *float64 `json:"efficiency_rating" bson:"efficiency_rating,omitempty"`
	AnnualKWh        float64  `json:"annual_kwh" bson:"annual_kwh"`
	AnnualCO2e       float64  `json:"annual_co2e" bson:"annual_co2e"`
	Status           string   `json:"status" bson:"status" validate:"omitempty,oneof=active inactive maintenance retired"`
	Notes            string   `json:"notes" bson:"notes,omitempty"`
	Metadata         Metadata `json:"metadata" bson:"metadata"`
}

// AssetComparison is a what-if scenario comparing a current asset against
// replacement proposals. Proposals are embedded and ordered; they have no
// identity beyond their list position.
type AssetComparison struct {
	ID             int64                `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name" validate:"required"`
	Description    string               `json:"description" bson:"description,omitempty"`
	CurrentAssetID int64                `json:"current_asset_id" bson:"current_asset_id"`
	Proposals      []ComparisonProposal `json:"proposals" bson:"proposals"`
	Metadata       Metadata             `json:"metadata" bson:"metadata"`
}

type ComparisonProposal struct {
	Name                  string   `json:"name" bson:"name" validate:"required"`
	Manufacturer          string   `json:"manufacturer" bson:"manufacturer,omitempty"`
	Model                 string   `json:"model" bson:"model,omitempty"`
	PowerRating           *float64 `json:"power_rating" bson:"power_rating,omitempty"`
	EfficiencyRating      *float64 `json:"efficiency_rating" bson:"efficiency_rating,omitempty"`
	AnnualKWh             float64  `json:"annual_kwh" bson:"annual_kwh"`
	AnnualCO2e            float64  `json:"annual_co2e" bson:"annual_co2e"`
	PurchaseCost          float64  `json:"purchase_cost" bson:"purchase_cost"`
	InstallationCost      float64  `json:"installation_cost" bson:"installation_cost"`
	AnnualMaintenanceCost float64  `json:"annual_maintenance_cost" bson:"annual_maintenance_cost"`
	ExpectedLifespan      *int     `json:"expected_lifespan" bson:"expected_lifespan,omitempty"`
	Notes                 string   `json:"notes" bson:"notes,omitempty"`
}
