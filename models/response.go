package models

// APIResponse is the envelope every endpoint returns: list and detail
// endpoints put their payload in Data, failures set Error.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type ValidationResponse struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
}

func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

func NewValidationResponse(errors interface{}) ValidationResponse {
	return ValidationResponse{
		Success: false,
		Errors:  errors,
	}
}
