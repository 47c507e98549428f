package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	middleware "esgreporting/middlewares"
	"esgreporting/models"
	service "esgreporting/services"
	"esgreporting/utils"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(service service.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service: service,
	}
}

func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var supplier models.Supplier
	if err := utils.DecodeAndValidate(w, r, &supplier); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	supplier.Metadata.CreatedBy = username
	supplier.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateSupplier(ctx, &supplier)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *SupplierHandler) GetSupplierByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid supplier ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	supplier, err := h.service.GetSupplierByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Supplier not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, supplier, http.StatusOK)
}

func (h *SupplierHandler) GetAllSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "esg_rating", "industry", "priority_level")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	suppliers, err := h.service.ListSuppliers(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, suppliers, http.StatusOK)
}

func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid supplier ID format", http.StatusBadRequest)
		return
	}

	var supplier models.Supplier
	if err := utils.DecodeAndValidate(w, r, &supplier); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	supplier.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateSupplier(ctx, id, &supplier)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid supplier ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteSupplier(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Supplier deleted successfully"}, http.StatusOK)
}

func (h *SupplierHandler) GetSupplierSummary(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "esg_rating", "industry", "priority_level")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.service.SupplierSummary(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, summary, http.StatusOK)
}

func (h *SupplierHandler) CreateStandard(w http.ResponseWriter, r *http.Request) {
	var record models.SupplierESGStandard
	if err := utils.DecodeAndValidate(w, r, &record); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	record.Metadata.CreatedBy = username
	record.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateStandard(ctx, &record)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *SupplierHandler) GetStandardByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid standard ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := h.service.GetStandardByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Standard record not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, record, http.StatusOK)
}

func (h *SupplierHandler) GetAllStandards(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "standard_type", "status", "supplier_id", "submission_year")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := h.service.ListStandards(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, records, http.StatusOK)
}

func (h *SupplierHandler) UpdateStandard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid standard ID format", http.StatusBadRequest)
		return
	}

	var record models.SupplierESGStandard
	if err := utils.DecodeAndValidate(w, r, &record); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	record.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateStandard(ctx, id, &record)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *SupplierHandler) DeleteStandard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid standard ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteStandard(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Standard record deleted successfully"}, http.StatusOK)
}

// GetAssessmentMatrix builds the supplier-by-standard submission grid for a
// year. Defaults to the current year when none is given.
func (h *SupplierHandler) GetAssessmentMatrix(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			utils.HandleErrorResponse(w, "Invalid year format", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	nameFilter := r.URL.Query().Get("standard")
	typeFilter := r.URL.Query().Get("standard_type")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	matrix, err := h.service.AssessmentMatrix(ctx, year, nameFilter, typeFilter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, matrix, http.StatusOK)
}

func (h *SupplierHandler) GetStandardCatalog(w http.ResponseWriter, r *http.Request) {
	utils.HandleDataResponse(w, h.service.StandardCatalog(), http.StatusOK)
}
