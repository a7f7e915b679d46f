package finance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/finance"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item entity.WorkItem
		want float64
	}{
		{
			name: "no discount",
			item: entity.WorkItem{Quantity: 2, UnitPrice: 5950},
			want: 11900,
		},
		{
			name: "amount discount",
			item: entity.WorkItem{Quantity: 1, UnitPrice: 10000, Discount: 1500, DiscountType: enum.DiscountAmount},
			want: 8500,
		},
		{
			name: "percent discount",
			item: entity.WorkItem{Quantity: 2, UnitPrice: 10000, Discount: 10, DiscountType: enum.DiscountPercent},
			want: 18000,
		},
		{
			name: "discount equal to subtotal",
			item: entity.WorkItem{Quantity: 1, UnitPrice: 5000, Discount: 5000, DiscountType: enum.DiscountAmount},
			want: 0,
		},
		{
			name: "over-large discount clamps to zero",
			item: entity.WorkItem{Quantity: 1, UnitPrice: 5000, Discount: 99999, DiscountType: enum.DiscountAmount},
			want: 0,
		},
		{
			name: "over 100 percent clamps to zero",
			item: entity.WorkItem{Quantity: 1, UnitPrice: 5000, Discount: 150, DiscountType: enum.DiscountPercent},
			want: 0,
		},
		{
			name: "zero quantity",
			item: entity.WorkItem{Quantity: 0, UnitPrice: 9999},
			want: 0,
		},
		{
			name: "NaN unit price treated as zero",
			item: entity.WorkItem{Quantity: 3, UnitPrice: math.NaN()},
			want: 0,
		},
		{
			name: "NaN discount treated as zero",
			item: entity.WorkItem{Quantity: 1, UnitPrice: 1000, Discount: math.NaN(), DiscountType: enum.DiscountAmount},
			want: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.LineTotal(tt.item)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0, "line total must never be negative")
		})
	}
}

func TestInternalCost(t *testing.T) {
	assert.InDelta(t, 20000, finance.InternalCost(entity.WorkItem{Quantity: 2, CostPrice: 10000}), 1e-9)
	assert.Zero(t, finance.InternalCost(entity.WorkItem{Quantity: 2}))
	assert.Zero(t, finance.InternalCost(entity.WorkItem{Quantity: 2, CostPrice: math.NaN()}))
}

func TestSaleTotalExcludesExpenseLines(t *testing.T) {
	order := entity.WorkOrder{Items: []entity.WorkItem{
		{Type: enum.ItemPart, Quantity: 1, UnitPrice: 11900},
		{Type: enum.ItemLabor, Quantity: 1, UnitPrice: 5000},
		{Type: enum.ItemExpense, Quantity: 1, UnitPrice: 3000, CostPrice: 3000},
	}}

	assert.InDelta(t, 16900, finance.SaleTotal(order), 1e-9)
	assert.InDelta(t, 3000, finance.CostTotal(order), 1e-9)
}
