package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/finance"
)

func ledgerFixtures() ([]entity.Expense, []entity.WorkOrder) {
	expenses := []entity.Expense{
		{ID: "G5090", Date: "2025-08-10", Amount: 45000, Category: enum.ExpenseGeneral, BuyerName: "Pedro", Notes: "Arriendo compresor"},
		{ID: "G5091", Date: "2025-08-20", Amount: 12000, Category: enum.ExpenseInsumos, BuyerName: "Pedro", IsPaid: true, PaymentDate: "2025-08-21"},
	}
	orders := []entity.WorkOrder{
		{
			ID:   "5090",
			Date: "2025-08-15",
			Items: []entity.WorkItem{
				// internally funded part, qualifies
				{Type: enum.ItemPart, Name: "Pastillas de freno", Quantity: 2, CostPrice: 15000, UnitPrice: 25000, Buyer: "Juan"},
				// customer-facing labor, no buyer, out
				{Type: enum.ItemLabor, Name: "Mano de obra", Quantity: 1, UnitPrice: 30000},
				// cost present but nobody fronted it, out
				{Type: enum.ItemPart, Name: "Filtro", Quantity: 1, CostPrice: 8000, UnitPrice: 12000},
				// expense line without cost price, amount falls back to gross
				{Type: enum.ItemExpense, Name: "Flete", Quantity: 1, UnitPrice: 5000, Buyer: "Juan"},
			},
		},
	}
	return expenses, orders
}

func TestBuildLedger(t *testing.T) {
	expenses, orders := ledgerFixtures()
	entries := finance.BuildLedger(expenses, orders)

	require.Len(t, entries, 4)

	// descending by date
	assert.Equal(t, "2025-08-20", entries[0].Date)
	assert.Equal(t, "2025-08-15", entries[1].Date)
	assert.Equal(t, "2025-08-15", entries[2].Date)
	assert.Equal(t, "2025-08-10", entries[3].Date)

	// ties keep input order: part before freight
	assert.Equal(t, "Pastillas de freno", entries[1].Description)
	assert.Equal(t, "Flete", entries[2].Description)

	assert.Equal(t, "Insumos Taller", entries[0].Label)
	assert.Equal(t, "OT #5090", entries[1].Label)
	assert.Equal(t, "Gasto General", entries[3].Label)

	// internally funded part amounts to cost*qty, freight falls back to gross
	assert.InDelta(t, 30000, entries[1].Amount, 1e-9)
	assert.InDelta(t, 5000, entries[2].Amount, 1e-9)
}

func TestLedgerTotalOutstandingInvariant(t *testing.T) {
	expenses, orders := ledgerFixtures()
	entries := finance.BuildLedger(expenses, orders)

	full := finance.TotalOutstanding(entries)

	// summing the pending view must match the unfiltered total
	var pendingSum float64
	for _, e := range finance.Pending(entries) {
		pendingSum += e.Amount
	}
	assert.InDelta(t, full, pendingSum, 1e-9)
	assert.InDelta(t, 45000+30000+5000, full, 1e-9)
}

func TestBuildLedgerEmptyInputs(t *testing.T) {
	assert.Empty(t, finance.BuildLedger(nil, nil))
	assert.Zero(t, finance.TotalOutstanding(nil))
}
