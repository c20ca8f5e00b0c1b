package repository

import (
	"go-pos-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(tenantID uuid.UUID) ([]model.Expense, error)
	FindByID(tenantID, id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(tenantID, id uuid.UUID) (int64, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(tenantID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(tenantID, id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.First(&expense, "id = ? AND tenant_id = ?", id, tenantID).Error
	return &expense, err
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(tenantID, id uuid.UUID) (int64, error) {
	res := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&model.Expense{})
	return res.RowsAffected, res.Error
}
