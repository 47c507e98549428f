package models

import "time"

type Project struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description" bson:"description"`
	Year        int    `json:"year" bson:"year" validate:"required,min=1000,max=9999"`
	StartDate   string `json:"start_date" bson:"start_date" validate:"required"`
	EndDate     string `json:"end_date" bson:"end_date" validate:"required"`
	Status      string `json:"status" bson:"status" validate:"omitempty,oneof=active completed on_hold cancelled"`

	// Target reduction fields
	TargetReductionPercentage *float64 `json:"target_reduction_percentage" bson:"target_reduction_percentage,omitempty"`
	TargetReductionAbsolute   *float64 `json:"target_reduction_absolute" bson:"target_reduction_absolute,omitempty"`
	TargetReductionUnit       string   `json:"target_reduction_unit" bson:"target_reduction_unit,omitempty"`
	BaselineValue             *float64 `json:"baseline_value" bson:"baseline_value,omitempty"`
	BaselineYear              *int     `json:"baseline_year" bson:"baseline_year,omitempty"`

	Metadata Metadata `json:"metadata" bson:"metadata"`
}

type ProjectActivity struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	ProjectID   int64  `json:"project_id" bson:"project_id" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	Status      string `json:"status" bson:"status" validate:"omitempty,oneof=pending in_progress completed on_hold cancelled"`
	DueDate     string `json:"due_date" bson:"due_date,omitempty"`
	StartDate   string `json:"start_date" bson:"start_date,omitempty"`
	EndDate     string `json:"end_date" bson:"end_date,omitempty"`

	CompletionPercentage int      `json:"completion_percentage" bson:"completion_percentage" validate:"min=0,max=100"`
	EstimatedHours       *float64 `json:"estimated_hours" bson:"estimated_hours,omitempty" validate:"omitempty,min=0"`
	ActualHours          *float64 `json:"actual_hours" bson:"actual_hours,omitempty" validate:"omitempty,min=0"`
	BudgetAllocated      *float64 `json:"budget_allocated" bson:"budget_allocated,omitempty" validate:"omitempty,min=0"`
	BudgetSpent          *float64 `json:"budget_spent" bson:"budget_spent,omitempty" validate:"omitempty,min=0"`

	// Historically these arrive as a JSON array, a JSON-encoded string, or a
	// bare string. They are normalized to string lists on ingestion; the
	// reporting resolver normalizes again defensively before use.
	MeasurementIDs     interface{} `json:"measurement_ids" bson:"measurement_ids,omitempty"`
	EmissionCategories interface{} `json:"emission_categories" bson:"emission_categories,omitempty"`
	DependsOn          interface{} `json:"depends_on" bson:"depends_on,omitempty"`
	Blocks             interface{} `json:"blocks" bson:"blocks,omitempty"`

	RiskLevel  string `json:"risk_level" bson:"risk_level,omitempty"`
	Priority   string `json:"priority" bson:"priority,omitempty"`
	AssignedTo string `json:"assigned_to" bson:"assigned_to,omitempty"`
	Notes      string `json:"notes" bson:"notes,omitempty"`

	Metadata Metadata `json:"metadata" bson:"metadata"`
}

type Metadata struct {
	CreatedBy string    `json:"created_by" bson:"created_by"`
	UpdatedBy string    `json:"updated_by" bson:"updated_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
