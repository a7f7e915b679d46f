package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

func TestCreateExpenseIDSequence(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	expense, err := svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 10000, Notes: "Arriendo"})
	require.NoError(t, err)
	assert.Equal(t, "G5090", expense.ID)

	expense, err = svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 5000, Notes: "Luz"})
	require.NoError(t, err)
	assert.Equal(t, "G5091", expense.ID)
}

func TestCreateExpenseIDSequenceAboveFloor(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExpenseRepo()
	repo.Create(ctx, &entity.Expense{ID: "G7000", Date: "2025-01-01", Amount: 1000})
	svc := NewExpenseService(repo)

	expense, err := svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 2000})
	require.NoError(t, err)
	assert.Equal(t, "G7001", expense.ID)
}

func TestCreateExpenseDefaults(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())

	expense, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{Amount: 10000})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentBoleta, expense.DocumentType)
	assert.Equal(t, enum.ExpenseGeneral, expense.Category)
	assert.NotEmpty(t, expense.Date)
	assert.False(t, expense.IsPaid)
}

// Scenario: pay, then revert. The payment date must survive the revert so the
// history shows when the expense had been settled.
func TestTogglePaidKeepsStaleDate(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(newFakeExpenseRepo())

	expense, err := svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 10000, BuyerName: "Marcelo"})
	require.NoError(t, err)
	require.Empty(t, expense.PaymentDate)

	expense, err = svc.TogglePaid(ctx, expense.ID)
	require.NoError(t, err)
	assert.True(t, expense.IsPaid)
	assert.Equal(t, today(), expense.PaymentDate)

	expense, err = svc.TogglePaid(ctx, expense.ID)
	require.NoError(t, err)
	assert.False(t, expense.IsPaid)
	assert.Equal(t, today(), expense.PaymentDate)
}

func TestTogglePaidNotFound(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())

	_, err := svc.TogglePaid(context.Background(), "G9999")
	assert.Error(t, err)
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	expense, err := svc.CreateExpense(ctx, &CreateExpenseInput{Amount: 10000})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(ctx, expense.ID))

	_, err = svc.GetExpense(ctx, expense.ID)
	assert.Error(t, err)
}
