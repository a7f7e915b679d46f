package repository

import (
	"context"
	"errors"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	domainRepo "github.com/tallerlab/taller-api/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{})

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Month != "" {
		query = query.Where("date LIKE ?", params.Month+"%")
	}
	if params.OnlyUnpaid {
		query = query.Where("is_paid = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, id DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) ListAll(ctx context.Context) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) ListByMonth(ctx context.Context, yearMonth string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Where("date LIKE ?", yearMonth+"%").
		Order("date DESC, id DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) MaxAssignedID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 2) AS INTEGER)), 0)
		FROM expenses
		WHERE id ~ '^G[0-9]+$'
	`).Scan(&max).Error
	return max, err
}

func (r *expenseRepository) ReplaceAll(ctx context.Context, expenses []entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Expense{}).Error; err != nil {
			return err
		}
		if len(expenses) == 0 {
			return nil
		}
		return tx.Create(&expenses).Error
	})
}
