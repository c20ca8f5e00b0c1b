package service

import (
	"errors"

	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/internal/ws"
	"go-pos-backoffice/pkg/apperr"
	"go-pos-backoffice/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(tenantID uuid.UUID, req *model.Product) error
	UpdateProduct(tenantID, id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(tenantID, id uuid.UUID) error
	AdjustStock(tenantID, id uuid.UUID, delta int) (*model.Product, error)
	GetProducts(tenantID uuid.UUID) ([]model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(tenantID uuid.UUID, req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(validator.Message(errs))
	}

	req.ID = uuid.Nil
	req.TenantID = tenantID
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	go s.wsHub.Publish(tenantID, map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_created",
		"product": req,
	})

	return nil
}

func (s *inventoryService) UpdateProduct(tenantID, id uuid.UUID, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.Message(errs))
	}

	existing, err := s.productRepo.FindByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Barcode = req.Barcode
	existing.BuyPrice = req.BuyPrice
	existing.SellPrice = req.SellPrice
	existing.Stock = req.Stock

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(tenantID, map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_updated",
		"product": existing,
	})

	return existing, nil
}

// DeleteProduct refuses to remove a product that any invoice line still
// references. The check and the delete run in one transaction.
func (s *inventoryService) DeleteProduct(tenantID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		refs, err := s.productRepo.CountInvoiceItemRefs(tx, tenantID, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperr.ReferentialConflict("product is referenced by existing invoices")
		}

		rows, err := s.productRepo.Delete(tx, tenantID, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NotFound("product not found")
		}
		return nil
	})
}

func (s *inventoryService) AdjustStock(tenantID, id uuid.UUID, delta int) (*model.Product, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.AdjustStock(tx, tenantID, id, delta)
	})
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(tenantID, map[string]interface{}{
		"type":    "stock_update",
		"action":  "stock_adjusted",
		"product": product,
		"delta":   delta,
	})

	return product, nil
}

func (s *inventoryService) GetProducts(tenantID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindAll(tenantID)
}
