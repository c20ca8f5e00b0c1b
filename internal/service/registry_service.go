package service

import (
	"errors"

	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/pkg/apperr"
	"go-pos-backoffice/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistryService owns the customer and supplier registries. Customers are
// referenced by invoices and therefore guarded on delete; suppliers are not
// referenced by anything.
type RegistryService interface {
	CreateCustomer(tenantID uuid.UUID, req *model.Customer) error
	UpdateCustomer(tenantID, id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(tenantID, id uuid.UUID) error
	GetCustomers(tenantID uuid.UUID) ([]model.Customer, error)

	CreateSupplier(tenantID uuid.UUID, req *model.Supplier) error
	UpdateSupplier(tenantID, id uuid.UUID, req *model.Supplier) (*model.Supplier, error)
	DeleteSupplier(tenantID, id uuid.UUID) error
	GetSuppliers(tenantID uuid.UUID) ([]model.Supplier, error)
}

type registryService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	db           *gorm.DB
}

func NewRegistryService(cRepo repository.CustomerRepository, sRepo repository.SupplierRepository, db *gorm.DB) RegistryService {
	return &registryService{
		customerRepo: cRepo,
		supplierRepo: sRepo,
		db:           db,
	}
}

func (s *registryService) CreateCustomer(tenantID uuid.UUID, req *model.Customer) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(validator.Message(errs))
	}

	req.ID = uuid.Nil
	req.TenantID = tenantID
	req.LoanBalance = 0
	return s.customerRepo.Create(req)
}

func (s *registryService) UpdateCustomer(tenantID, id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.Message(errs))
	}

	existing, err := s.customerRepo.FindByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, err
	}

	// LoanBalance is ledger-owned; only contact fields are editable.
	existing.Name = req.Name
	existing.Phone = req.Phone

	if err := s.customerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *registryService) DeleteCustomer(tenantID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := s.customerRepo.CountInvoices(tx, tenantID, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperr.ReferentialConflict("customer has existing invoices")
		}

		rows, err := s.customerRepo.Delete(tx, tenantID, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NotFound("customer not found")
		}
		return nil
	})
}

func (s *registryService) GetCustomers(tenantID uuid.UUID) ([]model.Customer, error) {
	return s.customerRepo.FindAll(tenantID)
}

func (s *registryService) CreateSupplier(tenantID uuid.UUID, req *model.Supplier) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(validator.Message(errs))
	}

	req.ID = uuid.Nil
	req.TenantID = tenantID
	return s.supplierRepo.Create(req)
}

func (s *registryService) UpdateSupplier(tenantID, id uuid.UUID, req *model.Supplier) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.Message(errs))
	}

	existing, err := s.supplierRepo.FindByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("supplier not found")
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Phone = req.Phone

	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *registryService) DeleteSupplier(tenantID, id uuid.UUID) error {
	rows, err := s.supplierRepo.Delete(tenantID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("supplier not found")
	}
	return nil
}

func (s *registryService) GetSuppliers(tenantID uuid.UUID) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(tenantID)
}
