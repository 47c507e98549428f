package services

import (
	"context"
	"time"

	"esgreporting/models"
	repository "esgreporting/repositories"
	"esgreporting/reporting"
)

type AssetService interface {
	CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	GetAssetByID(ctx context.Context, id int64) (*models.Asset, error)
	ListAssets(ctx context.Context, filter reporting.FilterSpec) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, asset *models.Asset) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	AssetSummary(ctx context.Context, filter reporting.FilterSpec) (reporting.AssetSummary, error)

	CreateComparison(ctx context.Context, comparison *models.AssetComparison) (*models.AssetComparison, error)
	GetComparisonByID(ctx context.Context, id int64) (*models.AssetComparison, error)
	ListComparisons(ctx context.Context) ([]models.AssetComparison, error)
	UpdateComparison(ctx context.Context, id int64, comparison *models.AssetComparison) (*models.AssetComparison, error)
	DeleteComparison(ctx context.Context, id int64) error
	ComparisonSavings(ctx context.Context, id int64) ([]reporting.ProposalSavings, error)
}

type assetService struct {
	assets      repository.AssetRepository
	comparisons repository.ComparisonRepository
}

func NewAssetService(assets repository.AssetRepository, comparisons repository.ComparisonRepository) AssetService {
	return &assetService{
		assets:      assets,
		comparisons: comparisons,
	}
}

func (s *assetService) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	now := time.Now()
	asset.Metadata.CreatedAt = now
	asset.Metadata.UpdatedAt = now
	if asset.Status == "" {
		asset.Status = "active"
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, id int64) (*models.Asset, error) {
	return s.assets.GetByID(ctx, id)
}

func (s *assetService) ListAssets(ctx context.Context, filter reporting.FilterSpec) ([]models.Asset, error) {
	assets, err := s.assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(assets, reporting.AssetPredicate(filter)), nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id int64, asset *models.Asset) (*models.Asset, error) {
	existing, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.ID = id
	asset.Metadata.CreatedAt = existing.Metadata.CreatedAt
	asset.Metadata.CreatedBy = existing.Metadata.CreatedBy
	asset.Metadata.UpdatedAt = time.Now()
	if asset.Status == "" {
		asset.Status = existing.Status
	}

	if err := s.assets.Update(ctx, id, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id int64) error {
	return s.assets.Delete(ctx, id)
}

// AssetSummary aggregates the filtered asset set; the same filter the list
// view uses produces the tiles above it.
func (s *assetService) AssetSummary(ctx context.Context, filter reporting.FilterSpec) (reporting.AssetSummary, error) {
	assets, err := s.ListAssets(ctx, filter)
	if err != nil {
		return reporting.AssetSummary{}, err
	}

	return reporting.SummarizeAssets(assets), nil
}

func (s *assetService) CreateComparison(ctx context.Context, comparison *models.AssetComparison) (*models.AssetComparison, error) {
	if comparison.CurrentAssetID != 0 {
		if _, err := s.assets.GetByID(ctx, comparison.CurrentAssetID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	comparison.Metadata.CreatedAt = now
	comparison.Metadata.UpdatedAt = now

	if err := s.comparisons.Create(ctx, comparison); err != nil {
		return nil, err
	}

	return comparison, nil
}

func (s *assetService) GetComparisonByID(ctx context.Context, id int64) (*models.AssetComparison, error) {
	return s.comparisons.GetByID(ctx, id)
}

func (s *assetService) ListComparisons(ctx context.Context) ([]models.AssetComparison, error) {
	return s.comparisons.GetAll(ctx)
}

func (s *assetService) UpdateComparison(ctx context.Context, id int64, comparison *models.AssetComparison) (*models.AssetComparison, error) {
	existing, err := s.comparisons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comparison.ID = id
	comparison.Metadata.CreatedAt = existing.Metadata.CreatedAt
	comparison.Metadata.CreatedBy = existing.Metadata.CreatedBy
	comparison.Metadata.UpdatedAt = time.Now()
	if comparison.Proposals == nil {
		comparison.Proposals = existing.Proposals
	}

	if err := s.comparisons.Update(ctx, id, comparison); err != nil {
		return nil, err
	}

	return comparison, nil
}

func (s *assetService) DeleteComparison(ctx context.Context, id int64) error {
	return s.comparisons.Delete(ctx, id)
}

// ComparisonSavings resolves the comparison's current asset and positions
// each proposal against it. A comparison whose asset no longer exists yields
// an empty result rather than an error.
func (s *assetService) ComparisonSavings(ctx context.Context, id int64) ([]reporting.ProposalSavings, error) {
	comparison, err := s.comparisons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := s.assets.GetByID(ctx, comparison.CurrentAssetID)
	if err != nil {
		return reporting.ComparisonSavings(*comparison, nil), nil
	}

	return reporting.ComparisonSavings(*comparison, current), nil
}
