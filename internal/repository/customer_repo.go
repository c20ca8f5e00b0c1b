package repository

import (
	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(tenantID uuid.UUID) ([]model.Customer, error)
	FindByID(tenantID, id uuid.UUID) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(tx *gorm.DB, tenantID, id uuid.UUID) (int64, error)
	AdjustLoanBalance(tx *gorm.DB, tenantID, id uuid.UUID, delta int64) error
	CountInvoices(tx *gorm.DB, tenantID, customerID uuid.UUID) (int64, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(tenantID uuid.UUID) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(tenantID, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ? AND tenant_id = ?", id, tenantID).Error
	return &customer, err
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(tx *gorm.DB, tenantID, id uuid.UUID) (int64, error) {
	res := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&model.Customer{})
	return res.RowsAffected, res.Error
}

// AdjustLoanBalance applies delta atomically in the caller's transaction.
// The balance is signed, so no lower bound is enforced.
func (r *customerRepo) AdjustLoanBalance(tx *gorm.DB, tenantID, id uuid.UUID, delta int64) error {
	res := tx.Model(&model.Customer{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		UpdateColumn("loan_balance", gorm.Expr("loan_balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("customer not found")
	}
	return nil
}

func (r *customerRepo) CountInvoices(tx *gorm.DB, tenantID, customerID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&model.Invoice{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Count(&count).Error
	return count, err
}
