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

type EmissionHandler struct {
	service service.EmissionService
}

func NewEmissionHandler(service service.EmissionService) *EmissionHandler {
	return &EmissionHandler{
		service: service,
	}
}

func (h *EmissionHandler) CreateFactor(w http.ResponseWriter, r *http.Request) {
	var factor models.EmissionFactor
	if err := utils.DecodeAndValidate(w, r, &factor); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	factor.Metadata.CreatedBy = username
	factor.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateFactor(ctx, &factor)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *EmissionHandler) GetFactorByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid factor ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	factor, err := h.service.GetFactorByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Emission factor not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, factor, http.StatusOK)
}

func (h *EmissionHandler) GetAllFactors(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "category", "sub_category", "scope", "source")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	factors, err := h.service.ListFactors(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, factors, http.StatusOK)
}

func (h *EmissionHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, categories, http.StatusOK)
}

func (h *EmissionHandler) UpdateFactor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid factor ID format", http.StatusBadRequest)
		return
	}

	var factor models.EmissionFactor
	if err := utils.DecodeAndValidate(w, r, &factor); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	factor.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateFactor(ctx, id, &factor)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *EmissionHandler) DeleteFactor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid factor ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteFactor(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Emission factor deleted successfully"}, http.StatusOK)
}

func (h *EmissionHandler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	var measurement models.Measurement
	if err := utils.DecodeAndValidate(w, r, &measurement); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	measurement.Metadata.CreatedBy = username
	measurement.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateMeasurement(ctx, &measurement)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *EmissionHandler) GetMeasurementByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid measurement ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	measurement, err := h.service.GetMeasurementByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Measurement not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, measurement, http.StatusOK)
}

func (h *EmissionHandler) GetAllMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	measurements, err := h.service.ListMeasurements(ctx)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, measurements, http.StatusOK)
}

func (h *EmissionHandler) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid measurement ID format", http.StatusBadRequest)
		return
	}

	var measurement models.Measurement
	if err := utils.DecodeAndValidate(w, r, &measurement); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	measurement.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateMeasurement(ctx, id, &measurement)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *EmissionHandler) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid measurement ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteMeasurement(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Measurement deleted successfully"}, http.StatusOK)
}
