package repository

import (
	"go-pos-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(tenantID uuid.UUID) ([]model.Supplier, error)
	FindByID(tenantID, id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(tenantID, id uuid.UUID) (int64, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(tenantID uuid.UUID) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(tenantID, id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ? AND tenant_id = ?", id, tenantID).Error
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(tenantID, id uuid.UUID) (int64, error) {
	res := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&model.Supplier{})
	return res.RowsAffected, res.Error
}
