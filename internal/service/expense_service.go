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

type ExpenseService interface {
	CreateExpense(tenantID uuid.UUID, req *model.Expense) error
	UpdateExpense(tenantID, id uuid.UUID, req *model.Expense) (*model.Expense, error)
	DeleteExpense(tenantID, id uuid.UUID) error
	GetExpenses(tenantID uuid.UUID) ([]model.Expense, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(eRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: eRepo}
}

func (s *expenseService) CreateExpense(tenantID uuid.UUID, req *model.Expense) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(validator.Message(errs))
	}

	req.ID = uuid.Nil
	req.TenantID = tenantID
	return s.expenseRepo.Create(req)
}

func (s *expenseService) UpdateExpense(tenantID, id uuid.UUID, req *model.Expense) (*model.Expense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.Message(errs))
	}

	existing, err := s.expenseRepo.FindByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("expense not found")
		}
		return nil, err
	}

	existing.Amount = req.Amount
	existing.Date = req.Date
	existing.Description = req.Description

	if err := s.expenseRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *expenseService) DeleteExpense(tenantID, id uuid.UUID) error {
	rows, err := s.expenseRepo.Delete(tenantID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("expense not found")
	}
	return nil
}

func (s *expenseService) GetExpenses(tenantID uuid.UUID) ([]model.Expense, error) {
	return s.expenseRepo.FindAll(tenantID)
}
