package utils

import (
	"encoding/json"
	"net/http"
	"net/url"

	"esgreporting/models"
	"esgreporting/reporting"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

// DecodeAndValidate decodes the request body into a structure and validates it
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		HandleErrorResponse(w, err.Error(), http.StatusBadRequest)
		return err
	}
	if err := Validate.Struct(v); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)

		for _, e := range validationErrors {
			errorMessages[e.Field()] = e.Tag()
		}
		HandleValidationResponse(w, http.StatusBadRequest, errorMessages)
		return err
	}
	return nil
}

// HandleErrorResponse writes a failure envelope
func HandleErrorResponse(w http.ResponseWriter, errorMessage string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewErrorResponse(errorMessage)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleValidationResponse handles validation errors response for struct validation
func HandleValidationResponse(w http.ResponseWriter, statusCode int, validationErrors interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewValidationResponse(validationErrors)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleDataResponse handles success responses with data
func HandleDataResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewDataResponse(data)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// FilterFromQuery reads the shared list-filter query parameters. Only the
// named fields are collected; anything else on the query string is ignored.
func FilterFromQuery(q url.Values, fields ...string) reporting.FilterSpec {
	filter := reporting.FilterSpec{
		Search:    q.Get("search"),
		DateRange: q.Get("date_range"),
		Fields:    make(map[string]string),
	}

	for _, field := range fields {
		if value := q.Get(field); value != "" {
			filter.Fields[field] = value
		}
	}

	return filter
}
