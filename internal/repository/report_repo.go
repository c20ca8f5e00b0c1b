package repository

import (
	"go-pos-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	TotalSales(tenantID uuid.UUID) (int64, error)
	TotalExpenses(tenantID uuid.UUID) (int64, error)
	TotalCustomers(tenantID uuid.UUID) (int64, error)
	TotalProducts(tenantID uuid.UUID) (int64, error)
	GetDashboardStats(tenantID uuid.UUID) (*DashboardStats, error)
}

// DashboardStats for the per-tenant overview
type DashboardStats struct {
	TotalSales     int64 `json:"total_sales"`
	TotalExpenses  int64 `json:"total_expenses"`
	TotalCustomers int64 `json:"total_customers"`
	TotalProducts  int64 `json:"total_products"`
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// TotalSales is gross sales value: every invoice counts regardless of
// payment status.
func (r *reportRepo) TotalSales(tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&model.Invoice{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *reportRepo) TotalExpenses(tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&model.Expense{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *reportRepo) TotalCustomers(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Customer{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

func (r *reportRepo) TotalProducts(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

func (r *reportRepo) GetDashboardStats(tenantID uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalSales, err = r.TotalSales(tenantID); err != nil {
		return nil, err
	}
	if stats.TotalExpenses, err = r.TotalExpenses(tenantID); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = r.TotalCustomers(tenantID); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = r.TotalProducts(tenantID); err != nil {
		return nil, err
	}

	return &stats, nil
}
