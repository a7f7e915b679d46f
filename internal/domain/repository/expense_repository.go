package repository

import (
	"context"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/pkg/pagination"
)

// ExpenseFilterParams holds filtering options for listing expenses
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   *enum.ExpenseCategory
	Month      string
	OnlyUnpaid bool
}

// ExpenseRepository defines the interface for standalone expense operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	ListAll(ctx context.Context) ([]entity.Expense, error)
	ListByMonth(ctx context.Context, yearMonth string) ([]entity.Expense, error)
	// MaxAssignedID returns the highest n among "G<n>" ids, 0 when none
	MaxAssignedID(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, expenses []entity.Expense) error
}
