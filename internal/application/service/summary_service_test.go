package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerlab/taller-api/internal/config"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

func newSummaryFixture() (*SummaryService, *fakeWorkOrderRepo, *fakeExpenseRepo) {
	orderRepo := newFakeWorkOrderRepo()
	expenseRepo := newFakeExpenseRepo()
	svc := NewSummaryService(orderRepo, expenseRepo, config.TaxConfig{PPMRate: 0.0025})
	return svc, orderRepo, expenseRepo
}

func TestMonthlySummaryRequiresMonth(t *testing.T) {
	svc, _, _ := newSummaryFixture()

	_, err := svc.MonthlySummary(context.Background(), "")
	assert.Error(t, err)
}

func TestMonthlySummaryFiltersByMonth(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, expenseRepo := newSummaryFixture()

	orderRepo.Create(ctx, &entity.WorkOrder{
		ID: "5090", Date: "2025-06-10", DocumentType: enum.DocumentBoleta, ClientName: "Ana",
		Items: []entity.WorkItem{
			{OrderID: "5090", Type: enum.ItemPart, Name: "Bujias", Quantity: 2, UnitPrice: 5950},
		},
	})
	orderRepo.Create(ctx, &entity.WorkOrder{
		ID: "5091", Date: "2025-07-01", DocumentType: enum.DocumentBoleta, ClientName: "Pedro",
		Items: []entity.WorkItem{
			{OrderID: "5091", Type: enum.ItemPart, Name: "Filtro", Quantity: 1, UnitPrice: 11900},
		},
	})
	expenseRepo.Create(ctx, &entity.Expense{ID: "G5090", Date: "2025-06-20", Amount: 10000, DocumentType: enum.DocumentBoleta})

	summary, err := svc.MonthlySummary(ctx, "2025-06")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OrderCount)
	assert.Equal(t, 1, summary.ExpenseCount)
	assert.InDelta(t, 11900, summary.TotalSalesGross, 0.01)
	assert.InDelta(t, 10000, summary.TotalSalesNetTaxable, 0.01)
	assert.InDelta(t, 1900, summary.TotalSalesIVATaxable, 0.01)
}

func TestF29EstimateAddsPPM(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _ := newSummaryFixture()

	orderRepo.Create(ctx, &entity.WorkOrder{
		ID: "5090", Date: "2025-06-10", DocumentType: enum.DocumentFactura, ClientName: "Ana",
		Items: []entity.WorkItem{
			{OrderID: "5090", Type: enum.ItemPart, Name: "Bujias", Quantity: 1, UnitPrice: 119000},
		},
	})

	view, err := svc.F29Estimate(ctx, "2025-06")
	require.NoError(t, err)
	assert.InDelta(t, 100000, view.TotalSalesNetTaxable, 0.01)
	assert.InDelta(t, 250, view.PPMEstimate, 0.01)
	assert.False(t, view.HasRemanente)
	// IVA debit 19000 plus PPM
	assert.InDelta(t, 19250, view.TotalToPay, 0.01)
}

func TestF29EstimateRemanente(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, expenseRepo := newSummaryFixture()

	// No taxable sales, but a documented purchase generates credit
	orderRepo.Create(ctx, &entity.WorkOrder{
		ID: "5090", Date: "2025-06-10", DocumentType: enum.DocumentCotizacion, ClientName: "Ana",
		Items: []entity.WorkItem{
			{OrderID: "5090", Type: enum.ItemLabor, Name: "Mano de obra", Quantity: 1, UnitPrice: 50000},
		},
	})
	expenseRepo.Create(ctx, &entity.Expense{ID: "G5090", Date: "2025-06-05", Amount: 23800, DocumentType: enum.DocumentFactura})

	view, err := svc.F29Estimate(ctx, "2025-06")
	require.NoError(t, err)
	assert.True(t, view.HasRemanente)
	assert.InDelta(t, 3800, view.Remanente, 0.01)
	// Remanente never nets against the PPM line
	assert.InDelta(t, view.PPMEstimate, view.TotalToPay, 0.01)
}
