package services

import (
	"context"
	"errors"
	"testing"

	"esgreporting/models"
	"esgreporting/reporting"

	"github.com/stretchr/testify/assert"
)

type fakeMeasurementRepo struct {
	measurements []models.Measurement
	err          error
}

func (f *fakeMeasurementRepo) Create(ctx context.Context, m *models.Measurement) error { return f.err }
func (f *fakeMeasurementRepo) GetByID(ctx context.Context, id int64) (*models.Measurement, error) {
	return nil, errors.New("not found")
}
func (f *fakeMeasurementRepo) GetAll(ctx context.Context) ([]models.Measurement, error) {
	return f.measurements, f.err
}
func (f *fakeMeasurementRepo) GetRecent(ctx context.Context, limit int64) ([]models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.measurements)) <= limit {
		return f.measurements, nil
	}
	return f.measurements[:limit], nil
}
func (f *fakeMeasurementRepo) Update(ctx context.Context, id int64, m *models.Measurement) error {
	return f.err
}
func (f *fakeMeasurementRepo) Delete(ctx context.Context, id int64) error { return f.err }

type fakeFactorRepo struct {
	factors []models.EmissionFactor
	err     error
}

func (f *fakeFactorRepo) Create(ctx context.Context, factor *models.EmissionFactor) error {
	return f.err
}
func (f *fakeFactorRepo) GetByID(ctx context.Context, id int64) (*models.EmissionFactor, error) {
	for i := range f.factors {
		if f.factors[i].ID == id {
			return &f.factors[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeFactorRepo) GetAll(ctx context.Context) ([]models.EmissionFactor, error) {
	return f.factors, f.err
}
func (f *fakeFactorRepo) Update(ctx context.Context, id int64, factor *models.EmissionFactor) error {
	return f.err
}
func (f *fakeFactorRepo) Delete(ctx context.Context, id int64) error { return f.err }

func TestDashboardOverviewAggregates(t *testing.T) {
	measurements := []models.Measurement{
		{ID: 1, Date: "2024-01-10", Category: "electricity", Amount: 100, EmissionFactorID: 1, CalculatedEmissions: 4.0},
		{ID: 2, Date: "2024-06-05", Category: "natural_gas", Amount: 50, EmissionFactorID: 2, CalculatedEmissions: 6.0},
		{ID: 3, Date: "2023-03-01", Category: "electricity", Amount: 10, EmissionFactorID: 1, CalculatedEmissions: 1.5},
	}
	factors := []models.EmissionFactor{
		{ID: 1, Category: "electricity", Scope: 2, FactorValue: 0.04},
		{ID: 2, Category: "natural_gas", Scope: 1, FactorValue: 0.12},
	}

	svc := NewDashboardService(&fakeMeasurementRepo{measurements: measurements}, &fakeFactorRepo{factors: factors}, nil)

	overview, err := svc.Overview(context.Background(), 2024)
	assert.NoError(t, err)
	assert.Equal(t, 2024, overview.Year)
	assert.InDelta(t, 10.0, overview.TotalEmissions, 1e-9)
	assert.InDelta(t, 10000.0, overview.TotalEmissionsKg, 1e-9)
	assert.InDelta(t, 6.0, overview.ScopeEmissions["scope_1"], 1e-9)
	assert.InDelta(t, 4.0, overview.ScopeEmissions["scope_2"], 1e-9)
	assert.Len(t, overview.MonthlyTrend, 12)
	assert.Len(t, overview.RecentMeasurements, 3)
}

func TestDashboardOverviewEmptyYear(t *testing.T) {
	svc := NewDashboardService(&fakeMeasurementRepo{}, &fakeFactorRepo{}, nil)

	overview, err := svc.Overview(context.Background(), 2024)
	assert.NoError(t, err)
	assert.Zero(t, overview.TotalEmissions)
	assert.Zero(t, overview.TotalEmissionsKg)
	assert.Empty(t, overview.CategoryEmissions)
	assert.NotNil(t, overview.RecentMeasurements)
}

func TestDashboardOverviewRepoError(t *testing.T) {
	svc := NewDashboardService(&fakeMeasurementRepo{err: errors.New("connection reset")}, &fakeFactorRepo{}, nil)

	_, err := svc.Overview(context.Background(), 2024)
	assert.Error(t, err)
}

func TestDashboardTrendDefaults(t *testing.T) {
	svc := NewDashboardService(&fakeMeasurementRepo{}, &fakeFactorRepo{}, nil)

	trend, err := svc.Trend(context.Background(), reporting.TrendOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "monthly", trend.Period)
	assert.Equal(t, 1, trend.Years)
	assert.Len(t, trend.TrendData, 12)
}
