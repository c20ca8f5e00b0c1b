package repository

import (
	"go-pos-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(tx *gorm.DB, invoice *model.Invoice) error
	FindAll(tenantID uuid.UUID) ([]model.Invoice, error)
	FindByID(tenantID, id uuid.UUID) (*model.Invoice, error)
	UpdateStatusIf(tx *gorm.DB, tenantID, id uuid.UUID, from, to model.PaymentStatus) (bool, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

// Create persists the invoice header and its items in the caller's
// transaction so they commit atomically with the stock decrements.
func (r *invoiceRepo) Create(tx *gorm.DB, invoice *model.Invoice) error {
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) FindAll(tenantID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Items").Preload("Customer").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByID(tenantID, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Items").Preload("Customer").
		First(&invoice, "id = ? AND tenant_id = ?", id, tenantID).Error
	return &invoice, err
}

// UpdateStatusIf transitions payment_status only when the row still carries
// the expected current status. A false return means another caller got there
// first (or the transition was already applied), so no loan-balance delta
// may be applied for it.
func (r *invoiceRepo) UpdateStatusIf(tx *gorm.DB, tenantID, id uuid.UUID, from, to model.PaymentStatus) (bool, error) {
	res := tx.Model(&model.Invoice{}).
		Where("id = ? AND tenant_id = ? AND payment_status = ?", id, tenantID, from).
		UpdateColumn("payment_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
