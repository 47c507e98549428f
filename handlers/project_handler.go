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

type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	project.Metadata.CreatedBy = username
	project.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateProject(ctx, &project)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	project, err := h.service.GetProjectByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Project not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, project, http.StatusOK)
}

func (h *ProjectHandler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "year")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.ListProjects(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, projects, http.StatusOK)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	project.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateProject(ctx, id, &project)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteProject(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Project deleted successfully"}, http.StatusOK)
}

func (h *ProjectHandler) GetProjectProgress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	progress, err := h.service.ProjectProgress(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Project not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, progress, http.StatusOK)
}

func (h *ProjectHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var activity models.ProjectActivity
	if err := utils.DecodeAndValidate(w, r, &activity); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	activity.Metadata.CreatedBy = username
	activity.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateActivity(ctx, &activity)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, created, http.StatusCreated)
}

func (h *ProjectHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid activity ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	activity, err := h.service.GetActivityByID(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Activity not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, activity, http.StatusOK)
}

func (h *ProjectHandler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	filter := utils.FilterFromQuery(r.URL.Query(), "status", "priority", "risk_level", "assigned_to", "project_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	activities, err := h.service.ListActivities(ctx, filter)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, activities, http.StatusOK)
}

func (h *ProjectHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid activity ID format", http.StatusBadRequest)
		return
	}

	var activity models.ProjectActivity
	if err := utils.DecodeAndValidate(w, r, &activity); err != nil {
		return
	}

	// Get username from JWT context
	username := middleware.GetUsernameFromContext(r.Context())
	activity.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateActivity(ctx, id, &activity)
	if err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, updated, http.StatusOK)
}

func (h *ProjectHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid activity ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteActivity(ctx, id); err != nil {
		utils.HandleErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, map[string]string{"message": "Activity deleted successfully"}, http.StatusOK)
}

func (h *ProjectHandler) GetActivityFactors(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.HandleErrorResponse(w, "Invalid activity ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	factors, err := h.service.ActivityFactors(ctx, id)
	if err != nil {
		utils.HandleErrorResponse(w, "Activity not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, factors, http.StatusOK)
}
