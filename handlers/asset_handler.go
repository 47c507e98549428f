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

type AssetHandler struct {
	service service.AssetService
}

func NewAssetHandler(service service.AssetService) *AssetHandler {
	return &AssetHandler{
		service: service,
	}
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := utils.DecodeAndValidate(w, r, &asset); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	asset.Metadata.CreatedBy = username
	asset.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateAsset(ctx, &asset)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *AssetHandler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid asset ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	asset, err := h.service.GetAssetByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Asset not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, asset, http.StatusOK)
}

func (h *AssetHandler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "asset_type", "location")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.service.ListAssets(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, assets, http.StatusOK)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid asset ID format", http.StatusBadRequest)
		return
	}

	var asset models.Asset
	if err := utils.DecodeAndValidate(w, r, &asset); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	asset.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateAsset(ctx, id, &asset)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid asset ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteAsset(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Asset deleted successfully"}, http.StatusOK)
}

func (h *AssetHandler) GetAssetSummary(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "asset_type", "location")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.service.AssetSummary(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, summary, http.StatusOK)
}

func (h *AssetHandler) CreateComparison(w http.ResponseWriter, r *http.Request) {
	var comparison models.AssetComparison
	if err := utils.DecodeAndValidate(w, r, &comparison); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	comparison.Metadata.CreatedBy = username
	comparison.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateComparison(ctx, &comparison)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *AssetHandler) GetComparisonByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid comparison ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	comparison, err := h.service.GetComparisonByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Comparison not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, comparison, http.StatusOK)
}

func (h *AssetHandler) GetAllComparisons(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	comparisons, err := h.service.ListComparisons(ctx)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, comparisons, http.StatusOK)
}

func (h *AssetHandler) UpdateComparison(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid comparison ID format", http.StatusBadRequest)
		return
	}

	var comparison models.AssetComparison
	if err := utils.DecodeAndValidate(w, r, &comparison); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	comparison.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateComparison(ctx, id, &comparison)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *AssetHandler) DeleteComparison(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid comparison ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteComparison(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Comparison deleted successfully"}, http.StatusOK)
}

func (h *AssetHandler) GetComparisonSavings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid comparison ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	savings, err := h.service.ComparisonSavings(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Comparison not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, savings, http.StatusOK)
}
