package services

import (
	"context"
	"fmt"
	"time"

	"esgreporting/cache"
	"esgreporting/models"
	repository "esgreporting/repositories"
	"esgreporting/reporting"
)

// DashboardOverview is the main dashboard payload. Emission values are in
// tonnes CO2e; the kilogram total is produced once here, at the display
// boundary, through reporting.ToKilograms.
type DashboardOverview struct {
	Year               int                         `json:"year"`
	ScopeEmissions     map[string]float64          `json:"scope_emissions"`
	TotalEmissions     float64                     `json:"total_emissions"`
	TotalEmissionsKg   float64                     `json:"total_emissions_kg"`
	CategoryEmissions  []reporting.ValueTotal      `json:"category_emissions"`
	MonthlyTrend       []reporting.PeriodEmissions `json:"monthly_trend"`
	RecentMeasurements []models.Measurement        `json:"recent_measurements"`
}

type EmissionsTrend struct {
	Period    string                      `json:"period"`
	Years     int                         `json:"years"`
	Scope     int                         `json:"scope,omitempty"`
	TrendData []reporting.PeriodEmissions `json:"trend_data"`
}

type DashboardService interface {
	Overview(ctx context.Context, year int) (*DashboardOverview, error)
	Trend(ctx context.Context, opts reporting.TrendOptions) (*EmissionsTrend, error)
}

type dashboardService struct {
	measurements repository.MeasurementRepository
	factors      repository.FactorRepository
	reports      *cache.ReportCache
}

func NewDashboardService(measurements repository.MeasurementRepository, factors repository.FactorRepository, reports *cache.ReportCache) DashboardService {
	return &dashboardService{
		measurements: measurements,
		factors:      factors,
		reports:      reports,
	}
}

func (s *dashboardService) Overview(ctx context.Context, year int) (*DashboardOverview, error) {
	key := fmt.Sprintf("dashboard:overview:%d", year)
	var cached DashboardOverview
	if s.reports.Get(ctx, key, &cached) {
		return &cached, nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.measurements.GetRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []models.Measurement{}
	}

	total := reporting.TotalEmissions(snap.Measurements, year)
	overview := &DashboardOverview{
		Year:               year,
		ScopeEmissions:     reporting.EmissionsByScope(snap.Measurements, snap.Factors, year),
		TotalEmissions:     total,
		TotalEmissionsKg:   reporting.ToKilograms(total),
		CategoryEmissions:  reporting.EmissionsByCategory(snap.Measurements, year),
		MonthlyTrend:       reporting.MonthlyEmissions(snap.Measurements, year),
		RecentMeasurements: recent,
	}

	s.reports.Set(ctx, key, overview)
	return overview, nil
}

func (s *dashboardService) Trend(ctx context.Context, opts reporting.TrendOptions) (*EmissionsTrend, error) {
	if opts.Period == "" {
		opts.Period = "monthly"
	}
	if opts.Years < 1 {
		opts.Years = 1
	}

	key := fmt.Sprintf("dashboard:trend:%s:%d:%d", opts.Period, opts.Years, opts.Scope)
	var cached EmissionsTrend
	if s.reports.Get(ctx, key, &cached) {
		return &cached, nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	trend := &EmissionsTrend{
		Period:    opts.Period,
		Years:     opts.Years,
		Scope:     opts.Scope,
		TrendData: reporting.EmissionsTrend(snap.Measurements, snap.Factors, opts, time.Now()),
	}

	s.reports.Set(ctx, key, trend)
	return trend, nil
}

// snapshot loads one consistent view of the collections the rollups need.
// Everything downstream is a pure function of it.
func (s *dashboardService) snapshot(ctx context.Context) (*reporting.Snapshot, error) {
	measurements, err := s.measurements.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	factors, err := s.factors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &reporting.Snapshot{
		Measurements: measurements,
		Factors:      factors,
		TakenAt:      time.Now(),
	}, nil
}
