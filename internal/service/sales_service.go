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

type SalesService interface {
	CreateInvoice(tenantID uuid.UUID, req *CreateInvoiceRequest) (*model.Invoice, error)
	UpdatePaymentStatus(tenantID, invoiceID uuid.UUID, status model.PaymentStatus) (*model.Invoice, error)
	DeleteInvoice(tenantID, invoiceID uuid.UUID) error
	GetInvoices(tenantID uuid.UUID) ([]model.Invoice, error)
	GetInvoice(tenantID, id uuid.UUID) (*model.Invoice, error)
}

type InvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

type CreateInvoiceRequest struct {
	CustomerID    uuid.UUID            `json:"customer_id" validate:"uuid_required"`
	PaymentStatus model.PaymentStatus  `json:"payment_status" validate:"required,oneof=paid pending partial"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

type salesService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewSalesService(
	pRepo repository.ProductRepository,
	cRepo repository.CustomerRepository,
	iRepo repository.InvoiceRepository,
	db *gorm.DB,
	hub *ws.Hub,
) SalesService {
	return &salesService{
		productRepo:  pRepo,
		customerRepo: cRepo,
		invoiceRepo:  iRepo,
		db:           db,
		wsHub:        hub,
	}
}

// CreateInvoice commits the invoice, its items, the stock decrements, and
// the loan-balance delta as one atomic unit. Any failure rolls back
// everything; no partial state is ever visible to other callers.
func (s *salesService) CreateInvoice(tenantID uuid.UUID, req *CreateInvoiceRequest) (*model.Invoice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.Message(errs))
	}

	if err := s.checkCustomer(tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		CustomerID:    req.CustomerID,
		PaymentStatus: req.PaymentStatus,
	}
	invoice.TenantID = tenantID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		items := make([]model.InvoiceItem, 0, len(req.Items))

		for _, it := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ? AND tenant_id = ?", it.ProductID, tenantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("product not found")
				}
				return err
			}

			if err := s.productRepo.AdjustStock(tx, tenantID, product.ID, -it.Quantity); err != nil {
				return err
			}

			total += product.SellPrice * int64(it.Quantity)
			items = append(items, model.InvoiceItem{
				TenantID:  tenantID,
				ProductID: product.ID,
				Price:     product.SellPrice,
				Quantity:  it.Quantity,
			})
		}

		invoice.TotalAmount = total
		invoice.Items = items
		if err := s.invoiceRepo.Create(tx, invoice); err != nil {
			return err
		}

		if invoice.PaymentStatus.Owed() {
			return s.customerRepo.AdjustLoanBalance(tx, tenantID, req.CustomerID, total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(tenantID, map[string]interface{}{
		"type":    "invoice_update",
		"action":  "invoice_created",
		"invoice": invoice,
	})

	return invoice, nil
}

// checkCustomer is a pure read ahead of any write, so a transient storage
// failure here is retried once before surfacing.
func (s *salesService) checkCustomer(tenantID, customerID uuid.UUID) error {
	for attempt := 0; ; attempt++ {
		_, err := s.customerRepo.FindByID(tenantID, customerID)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("customer not found")
		}
		if attempt == 1 {
			return err
		}
	}
}

// UpdatePaymentStatus transitions the status and reconciles the customer's
// loan balance. Repeating an identical transition is a no-op: the guarded
// status update only matches when the row still carries the old status, so
// the delta can never double-apply.
func (s *salesService) UpdatePaymentStatus(tenantID, invoiceID uuid.UUID, status model.PaymentStatus) (*model.Invoice, error) {
	if !status.Valid() {
		return nil, apperr.Validation("invalid payment status")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var invoice model.Invoice
		if err := tx.First(&invoice, "id = ? AND tenant_id = ?", invoiceID, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("invoice not found")
			}
			return err
		}

		if invoice.PaymentStatus == status {
			return nil
		}

		changed, err := s.invoiceRepo.UpdateStatusIf(tx, tenantID, invoiceID, invoice.PaymentStatus, status)
		if err != nil {
			return err
		}
		if !changed {
			return apperr.Conflict("invoice status changed concurrently")
		}

		var delta int64
		switch {
		case invoice.PaymentStatus.Owed() && !status.Owed():
			delta = -invoice.TotalAmount
		case !invoice.PaymentStatus.Owed() && status.Owed():
			delta = invoice.TotalAmount
		}
		if delta != 0 {
			return s.customerRepo.AdjustLoanBalance(tx, tenantID, invoice.CustomerID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(tenantID, map[string]interface{}{
		"type":    "invoice_update",
		"action":  "status_changed",
		"invoice": invoice,
	})

	return invoice, nil
}

// DeleteInvoice always refuses: committed invoices are financial records.
// A correction requires a new invoice.
func (s *salesService) DeleteInvoice(tenantID, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(tenantID, invoiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("invoice not found")
		}
		return err
	}
	return apperr.Conflict("invoices cannot be deleted; transition payment status instead")
}

func (s *salesService) GetInvoices(tenantID uuid.UUID) ([]model.Invoice, error) {
	return s.invoiceRepo.FindAll(tenantID)
}

func (s *salesService) GetInvoice(tenantID, id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invoice not found")
		}
		return nil, err
	}
	return invoice, nil
}
