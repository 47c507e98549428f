package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"esgreporting/reporting"
	service "esgreporting/services"
	"esgreporting/utils"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			utils.HandleErrorResponse(w, "Invalid year format", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	overview, err := h.service.Overview(ctx, year)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, overview, http.StatusOK)
}

func (h *DashboardHandler) GetEmissionsTrend(w http.ResponseWriter, r *http.Request) {
	opts := reporting.TrendOptions{
		Period: r.URL.Query().Get("period"),
		Years:  1,
	}

	if yearsParam := r.URL.Query().Get("years"); yearsParam != "" {
		parsed, err := strconv.Atoi(yearsParam)
		if err != nil {
			utils.HandleErrorResponse(w, "Invalid years format", http.StatusBadRequest)
			return
		}
		opts.Years = parsed
	}

	if scopeParam := r.URL.Query().Get("scope"); scopeParam != "" {
		parsed, err := strconv.Atoi(scopeParam)
		if err != nil {
			utils.HandleErrorResponse(w, "Invalid scope format", http.StatusBadRequest)
			return
		}
		opts.Scope = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	trend, err := h.service.Trend(ctx, opts)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, trend, http.StatusOK)
}
