package repository

import (
	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(tenantID uuid.UUID) ([]model.Product, error)
	FindByID(tenantID, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(tx *gorm.DB, tenantID, id uuid.UUID) (int64, error)
	AdjustStock(tx *gorm.DB, tenantID, id uuid.UUID, delta int) error
	CountInvoiceItemRefs(tx *gorm.DB, tenantID, productID uuid.UUID) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(tenantID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(tenantID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ? AND tenant_id = ?", id, tenantID).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(tx *gorm.DB, tenantID, id uuid.UUID) (int64, error) {
	res := tx.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

// AdjustStock applies delta as a single guarded UPDATE so the stock check and
// decrement are atomic with respect to concurrent decrements on the same row.
// It takes tx so invoice creation can run it inside its transaction boundary.
func (r *productRepo) AdjustStock(tx *gorm.DB, tenantID, id uuid.UUID, delta int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND tenant_id = ? AND stock + ? >= 0", id, tenantID, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// Zero rows: either the product does not exist for this tenant or the
	// guard rejected a negative result.
	var exists int64
	if err := tx.Model(&model.Product{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return apperr.NotFound("product not found")
	}
	return apperr.InsufficientStock("insufficient stock remaining")
}

func (r *productRepo) CountInvoiceItemRefs(tx *gorm.DB, tenantID, productID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&model.InvoiceItem{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Count(&count).Error
	return count, err
}
