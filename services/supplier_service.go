package services

import (
	"context"
	"time"

	"esgreporting/models"
	repository "esgreporting/repositories"
	"esgreporting/reporting"
)

type SupplierService interface {
	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	ListSuppliers(ctx context.Context, filter reporting.FilterSpec) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, supplier *models.Supplier) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	SupplierSummary(ctx context.Context, filter reporting.FilterSpec) (reporting.SupplierSummary, error)

	CreateStandard(ctx context.Context, record *models.SupplierESGStandard) (*models.SupplierESGStandard, error)
	GetStandardByID(ctx context.Context, id int64) (*models.SupplierESGStandard, error)
	ListStandards(ctx context.Context, filter reporting.FilterSpec) ([]models.SupplierESGStandard, error)
	UpdateStandard(ctx context.Context, id int64, record *models.SupplierESGStandard) (*models.SupplierESGStandard, error)
	DeleteStandard(ctx context.Context, id int64) error

	AssessmentMatrix(ctx context.Context, year int, nameFilter, typeFilter string) (reporting.AssessmentMatrix, error)
	StandardCatalog() []reporting.StandardDefinition
}

type supplierService struct {
	suppliers repository.SupplierRepository
	standards repository.StandardRepository
}

func NewSupplierService(suppliers repository.SupplierRepository, standards repository.StandardRepository) SupplierService {
	return &supplierService{
		suppliers: suppliers,
		standards: standards,
	}
}

func (s *supplierService) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	now := time.Now()
	supplier.Metadata.CreatedAt = now
	supplier.Metadata.UpdatedAt = now
	if supplier.Status == "" {
		supplier.Status = "pending"
	}

	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

func (s *supplierService) ListSuppliers(ctx context.Context, filter reporting.FilterSpec) ([]models.Supplier, error) {
	suppliers, err := s.suppliers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(suppliers, reporting.SupplierPredicate(filter)), nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id int64, supplier *models.Supplier) (*models.Supplier, error) {
	existing, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.ID = id
	supplier.Metadata.CreatedAt = existing.Metadata.CreatedAt
	supplier.Metadata.CreatedBy = existing.Metadata.CreatedBy
	supplier.Metadata.UpdatedAt = time.Now()
	if supplier.Status == "" {
		supplier.Status = existing.Status
	}

	if err := s.suppliers.Update(ctx, id, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int64) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}

	// Submission records don't outlive their supplier.
	return s.standards.DeleteBySupplier(ctx, id)
}

func (s *supplierService) SupplierSummary(ctx context.Context, filter reporting.FilterSpec) (reporting.SupplierSummary, error) {
	suppliers, err := s.ListSuppliers(ctx, filter)
	if err != nil {
		return reporting.SupplierSummary{}, err
	}

	return reporting.SummarizeSuppliers(suppliers), nil
}

func (s *supplierService) CreateStandard(ctx context.Context, record *models.SupplierESGStandard) (*models.SupplierESGStandard, error) {
	if _, err := s.suppliers.GetByID(ctx, record.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	record.Metadata.CreatedAt = now
	record.Metadata.UpdatedAt = now
	if record.Status == "" {
		record.Status = "active"
	}

	if err := s.standards.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *supplierService) GetStandardByID(ctx context.Context, id int64) (*models.SupplierESGStandard, error) {
	return s.standards.GetByID(ctx, id)
}

func (s *supplierService) ListStandards(ctx context.Context, filter reporting.FilterSpec) ([]models.SupplierESGStandard, error) {
	records, err := s.standards.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return reporting.Filter(records, reporting.StandardPredicate(filter)), nil
}

func (s *supplierService) UpdateStandard(ctx context.Context, id int64, record *models.SupplierESGStandard) (*models.SupplierESGStandard, error) {
	existing, err := s.standards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.ID = id
	if record.SupplierID == 0 {
		record.SupplierID = existing.SupplierID
	}
	record.Metadata.CreatedAt = existing.Metadata.CreatedAt
	record.Metadata.CreatedBy = existing.Metadata.CreatedBy
	record.Metadata.UpdatedAt = time.Now()
	if record.Status == "" {
		record.Status = existing.Status
	}

	if err := s.standards.Update(ctx, id, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *supplierService) DeleteStandard(ctx context.Context, id int64) error {
	return s.standards.Delete(ctx, id)
}

func (s *supplierService) AssessmentMatrix(ctx context.Context, year int, nameFilter, typeFilter string) (reporting.AssessmentMatrix, error) {
	suppliers, err := s.suppliers.GetAll(ctx)
	if err != nil {
		return reporting.AssessmentMatrix{}, err
	}

	records, err := s.standards.GetAll(ctx)
	if err != nil {
		return reporting.AssessmentMatrix{}, err
	}

	return reporting.BuildAssessmentMatrix(suppliers, records, year, nameFilter, typeFilter), nil
}

func (s *supplierService) StandardCatalog() []reporting.StandardDefinition {
	return reporting.StandardCatalog
}
