package service

import (
	"context"
	"fmt"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// ExpenseService handles standalone expense operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the input for creating an expense
type CreateExpenseInput struct {
	Date         string
	Amount       float64
	DocumentType enum.DocumentType
	Category     enum.ExpenseCategory
	BuyerName    string
	Provider     string
	Notes        string
}

// CreateExpense creates a new expense with the next "G<n>" id. The numeric
// part shares the work order floor so both sequences read as one era.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	maxID, err := s.expenseRepo.MaxAssignedID(ctx)
	if err != nil {
		return nil, err
	}
	nextID := maxID + 1
	if nextID < firstOrderID {
		nextID = firstOrderID
	}

	if input.Date == "" {
		input.Date = today()
	}
	if input.DocumentType == "" {
		input.DocumentType = enum.DocumentBoleta
	}
	if input.Category == "" {
		input.Category = enum.ExpenseGeneral
	}

	expense := &entity.Expense{
		ID:           fmt.Sprintf("G%d", nextID),
		Date:         input.Date,
		Amount:       input.Amount,
		DocumentType: input.DocumentType,
		Category:     input.Category,
		BuyerName:    input.BuyerName,
		Provider:     input.Provider,
		Notes:        input.Notes,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpensesInput represents the input for listing expenses
type ListExpensesInput struct {
	Pagination *pagination.PaginationParams
	Category   *enum.ExpenseCategory
	Month      string
	OnlyUnpaid bool
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, input *ListExpensesInput) (*pagination.PaginatedResult[entity.Expense], error) {
	params := &repository.ExpenseFilterParams{
		Pagination: input.Pagination,
		Category:   input.Category,
		Month:      input.Month,
		OnlyUnpaid: input.OnlyUnpaid,
	}

	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the input for updating an expense
type UpdateExpenseInput struct {
	ID           string
	Date         string
	Amount       float64
	DocumentType enum.DocumentType
	Category     enum.ExpenseCategory
	BuyerName    string
	Provider     string
	Notes        string
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	expense.Date = input.Date
	expense.Amount = input.Amount
	expense.DocumentType = input.DocumentType
	expense.Category = input.Category
	expense.BuyerName = input.BuyerName
	expense.Provider = input.Provider
	expense.Notes = input.Notes

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// TogglePaid flips the paid flag on an expense. Marking paid stamps today as
// the payment date; unmarking keeps the previous date as a trace of when it
// had been settled.
func (s *ExpenseService) TogglePaid(ctx context.Context, id string) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	expense.IsPaid = !expense.IsPaid
	if expense.IsPaid {
		expense.PaymentDate = today()
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
