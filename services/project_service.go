package services

import (
	"context"
	"time"

	"esgreporting/models"
	repository "esgreporting/repositories"
	"esgreporting/reporting"
)

type ProjectService interface {
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	ListProjects(ctx context.Context, filter reporting.FilterSpec) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	CreateActivity(ctx context.Context, activity *models.ProjectActivity) (*models.ProjectActivity, error)
	GetActivityByID(ctx context.Context, id int64) (*models.ProjectActivity, error)
	ListActivities(ctx context.Context, filter reporting.FilterSpec) ([]models.ProjectActivity, error)
	UpdateActivity(ctx context.Context, id int64, activity *models.ProjectActivity) (*models.ProjectActivity, error)
	DeleteActivity(ctx context.Context, id int64) error

	// Reporting views
	ProjectProgress(ctx context.Context, projectID int64) (reporting.ActivityProgress, error)
	ActivityFactors(ctx context.Context, activityID int64) ([]models.EmissionFactor, error)
}

type projectService struct {
	projects   repository.ProjectRepository
	activities repository.ActivityRepository
	factors    repository.FactorRepository
}

func NewProjectService(projects repository.ProjectRepository, activities repository.ActivityRepository, factors repository.FactorRepository) ProjectService {
	return &projectService{
		projects:   projects,
		activities: activities,
		factors:    factors,
	}
}

func (s *projectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now()
	project.Metadata.CreatedAt = now
	project.Metadata.UpdatedAt = now
	if project.Status == "" {
		project.Status = "active"
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListProjects(ctx context.Context, filter reporting.FilterSpec) ([]models.Project, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(projects, reporting.ProjectPredicate(filter, time.Now())), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int64, project *models.Project) (*models.Project, error) {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.ID = id
	project.Metadata.CreatedAt = existing.Metadata.CreatedAt
	project.Metadata.CreatedBy = existing.Metadata.CreatedBy
	project.Metadata.UpdatedAt = time.Now()
	if project.Status == "" {
		project.Status = existing.Status
	}

	if err := s.projects.Update(ctx, id, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	// Activities don't outlive their project.
	return s.activities.DeleteByProject(ctx, id)
}

func (s *projectService) CreateActivity(ctx context.Context, activity *models.ProjectActivity) (*models.ProjectActivity, error) {
	if _, err := s.projects.GetByID(ctx, activity.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	activity.Metadata.CreatedAt = now
	activity.Metadata.UpdatedAt = now
	if activity.Status == "" {
		activity.Status = "pending"
	}
	normalizeActivityRefs(activity)

	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *projectService) GetActivityByID(ctx context.Context, id int64) (*models.ProjectActivity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *projectService) ListActivities(ctx context.Context, filter reporting.FilterSpec) ([]models.ProjectActivity, error) {
	activities, err := s.activities.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(activities, reporting.ActivityPredicate(filter, time.Now())), nil
}

func (s *projectService) UpdateActivity(ctx context.Context, id int64, activity *models.ProjectActivity) (*models.ProjectActivity, error) {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.ID = id
	if activity.ProjectID == 0 {
		activity.ProjectID = existing.ProjectID
	}
	activity.Metadata.CreatedAt = existing.Metadata.CreatedAt
	activity.Metadata.CreatedBy = existing.Metadata.CreatedBy
	activity.Metadata.UpdatedAt = time.Now()
	if activity.Status == "" {
		activity.Status = existing.Status
	}
	normalizeActivityRefs(activity)

	if err := s.activities.Update(ctx, id, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *projectService) DeleteActivity(ctx context.Context, id int64) error {
	return s.activities.Delete(ctx, id)
}

func (s *projectService) ProjectProgress(ctx context.Context, projectID int64) (reporting.ActivityProgress, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return reporting.ActivityProgress{}, err
	}

	activities, err := s.activities.GetByProject(ctx, projectID)
	if err != nil {
		return reporting.ActivityProgress{}, err
	}

	return reporting.ProgressFor(activities, time.Now()), nil
}

func (s *projectService) ActivityFactors(ctx context.Context, activityID int64) ([]models.EmissionFactor, error) {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	factors, err := s.factors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := reporting.GroupFactors(factors)
	return reporting.ResolveFactors(activity.MeasurementIDs, categories), nil
}

// normalizeActivityRefs canonicalizes the historically overloaded reference
// fields at the write boundary so stored documents always hold plain lists.
func normalizeActivityRefs(activity *models.ProjectActivity) {
	activity.MeasurementIDs = reporting.NormalizeIDList(activity.MeasurementIDs)
	activity.EmissionCategories = reporting.NormalizeIDList(activity.EmissionCategories)
	activity.DependsOn = reporting.NormalizeIDList(activity.DependsOn)
	activity.Blocks = reporting.NormalizeIDList(activity.Blocks)
}
