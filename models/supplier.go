package models

type Supplier struct {
	ID               int64    `json:"id" bson:"_id,omitempty"`
	CompanyName      string   `json:"company_name" bson:"company_name" validate:"required"`
	Industry         string   `json:"industry" bson:"industry,omitempty"`
	ContactPerson    string   `json:"contact_person" bson:"contact_person,omitempty"`
	Email            string   `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Phone            string   `json:"phone" bson:"phone,omitempty"`
	ESGRating        string   `json:"esg_rating" bson:"esg_rating,omitempty" validate:"omitempty,oneof=A B C D F"`
	DataCompleteness float64  `json:"data_completeness" bson:"data_completeness" validate:"min=0,max=100"`
	Status           string   `json:"status" bson:"status" validate:"omitempty,oneof=active pending inactive"`
	PriorityLevel    string   `json:"priority_level" bson:"priority_level,omitempty"`
	AnnualSpend      float64  `json:"annual_spend" bson:"annual_spend" validate:"min=0"`
	Notes            string   `json:"notes" bson:"notes,omitempty"`
	Metadata         Metadata `json:"metadata" bson:"metadata"`
}

// SupplierESGStandard records one supplier's submission against a named ESG
// standard, framework, or assessment for a reporting year. SubmissionYear has
// historically been sent both as a number and a string; the reporting layer
// compares it tolerantly.
type SupplierESGStandard struct {
	ID             int64       `json:"id" bson:"_id,omitempty"`
	SupplierID     int64       `json:"supplier_id" bson:"supplier_id" validate:"required"`
	StandardType   string      `json:"standard_type" bson:"standard_type" validate:"required,oneof=standard framework assessment"`
	Name           string      `json:"name" bson:"name" validate:"required"`
	SubmissionYear interface{} `json:"submission_year" bson:"submission_year,omitempty"`
	DocumentLink   string      `json:"document_link" bson:"document_link,omitempty"`
	Status         string      `json:"status" bson:"status" validate:"omitempty,oneof=active expired pending"`
	ScoreRating    string      `json:"score_rating" bson:"score_rating,omitempty"`
	Notes          string      `json:"notes" bson:"notes,omitempty"`
	Metadata       Metadata    `json:"metadata" bson:"metadata"`
}
