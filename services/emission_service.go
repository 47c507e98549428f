package services

import (
	"context"
	"time"

	"esgreporting/models"
	repository "esgreporting/repositories"
	"esgreporting/reporting"
)

type EmissionService interface {
	CreateFactor(ctx context.Context, factor *models.EmissionFactor) (*models.EmissionFactor, error)
	GetFactorByID(ctx context.Context, id int64) (*models.EmissionFactor, error)
	ListFactors(ctx context.Context, filter reporting.FilterSpec) ([]models.EmissionFactor, error)
	ListCategories(ctx context.Context) ([]models.EmissionCategory, error)
	UpdateFactor(ctx context.Context, id int64, factor *models.EmissionFactor) (*models.EmissionFactor, error)
	DeleteFactor(ctx context.Context, id int64) error

	CreateMeasurement(ctx context.Context, measurement *models.Measurement) (*models.Measurement, error)
	GetMeasurementByID(ctx context.Context, id int64) (*models.Measurement, error)
	ListMeasurements(ctx context.Context) ([]models.Measurement, error)
	UpdateMeasurement(ctx context.Context, id int64, measurement *models.Measurement) (*models.Measurement, error)
	DeleteMeasurement(ctx context.Context, id int64) error
}

type emissionService struct {
	factors      repository.FactorRepository
	measurements repository.MeasurementRepository
}

func NewEmissionService(factors repository.FactorRepository, measurements repository.MeasurementRepository) EmissionService {
	return &emissionService{
		factors:      factors,
		measurements: measurements,
	}
}

func (s *emissionService) CreateFactor(ctx context.Context, factor *models.EmissionFactor) (*models.EmissionFactor, error) {
	now := time.Now()
	factor.Metadata.CreatedAt = now
	factor.Metadata.UpdatedAt = now

	if err := s.factors.Create(ctx, factor); err != nil {
		return nil, err
	}

	return factor, nil
}

func (s *emissionService) GetFactorByID(ctx context.Context, id int64) (*models.EmissionFactor, error) {
	return s.factors.GetByID(ctx, id)
}

func (s *emissionService) ListFactors(ctx context.Context, filter reporting.FilterSpec) ([]models.EmissionFactor, error) {
	factors, err := s.factors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(factors, reporting.FactorPredicate(filter)), nil
}

// ListCategories returns factors grouped for pickers and for reference
// resolution.
func (s *emissionService) ListCategories(ctx context.Context) ([]models.EmissionCategory, error) {
	factors, err := s.factors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.GroupFactors(factors), nil
}

func (s *emissionService) UpdateFactor(ctx context.Context, id int64, factor *models.EmissionFactor) (*models.EmissionFactor, error) {
	existing, err := s.factors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	factor.ID = id
	factor.Metadata.CreatedAt = existing.Metadata.CreatedAt
	factor.Metadata.CreatedBy = existing.Metadata.CreatedBy
	factor.Metadata.UpdatedAt = time.Now()

	if err := s.factors.Update(ctx, id, factor); err != nil {
		return nil, err
	}

	return factor, nil
}

func (s *emissionService) DeleteFactor(ctx context.Context, id int64) error {
	return s.factors.Delete(ctx, id)
}

func (s *emissionService) CreateMeasurement(ctx context.Context, measurement *models.Measurement) (*models.Measurement, error) {
	factor, err := s.factors.GetByID(ctx, measurement.EmissionFactorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	measurement.Metadata.CreatedAt = now
	measurement.Metadata.UpdatedAt = now

	// Emissions are derived server-side from the factor so clients can't
	// store a value inconsistent with the amount.
	measurement.CalculatedEmissions = measurement.Amount * factor.FactorValue

	if err := s.measurements.Create(ctx, measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

func (s *emissionService) GetMeasurementByID(ctx context.Context, id int64) (*models.Measurement, error) {
	return s.measurements.GetByID(ctx, id)
}

func (s *emissionService) ListMeasurements(ctx context.Context) ([]models.Measurement, error) {
	return s.measurements.GetAll(ctx)
}

func (s *emissionService) UpdateMeasurement(ctx context.Context, id int64, measurement *models.Measurement) (*models.Measurement, error) {
	existing, err := s.measurements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if measurement.EmissionFactorID == 0 {
		measurement.EmissionFactorID = existing.EmissionFactorID
	}
	factor, err := s.factors.GetByID(ctx, measurement.EmissionFactorID)
	if err != nil {
		return nil, err
	}

	measurement.ID = id
	measurement.Metadata.CreatedAt = existing.Metadata.CreatedAt
	measurement.Metadata.CreatedBy = existing.Metadata.CreatedBy
	measurement.Metadata.UpdatedAt = time.Now()
	measurement.CalculatedEmissions = measurement.Amount * factor.FactorValue

	if err := s.measurements.Update(ctx, id, measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

func (s *emissionService) DeleteMeasurement(ctx context.Context, id int64) error {
	return s.measurements.Delete(ctx, id)
}
