// Package finance implements the workshop's derived-value calculations: line
// item valuation, IVA decomposition, the reimbursement ledger and the monthly
// summary behind the dashboard and F29 views. Everything here is a pure
// function over entity slices; figures are recomputed on demand and malformed
// numeric input degrades to zero rather than erroring.
package finance

import (
	"math"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

// num coerces NaN and infinities to 0 so a malformed amount can never poison
// an aggregate.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// LineTotal returns the chargeable total of a single line: quantity times
// gross unit price, minus the discount. An over-large discount clamps the
// result to zero, it never produces credit.
func LineTotal(item entity.WorkItem) float64 {
	subtotal := float64(item.Quantity) * num(item.UnitPrice)

	discount := num(item.Discount)
	if item.DiscountType == enum.DiscountPercent {
		discount = subtotal * discount / 100
	}

	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}

// GrossSale returns the pre-discount sale value of a line. The monthly sales
// figure is built on this rather than LineTotal; see Summarize.
func GrossSale(item entity.WorkItem) float64 {
	return float64(item.Quantity) * num(item.UnitPrice)
}

// InternalCost returns what the workshop itself paid for a line. Labor has no
// internal cost; a missing cost price counts as zero.
func InternalCost(item entity.WorkItem) float64 {
	return float64(item.Quantity) * num(item.CostPrice)
}

// SaleTotal returns the discounted client-facing total of an order: the sum
// of LineTotal over its part and labor lines. Expense lines are internal and
// never billed.
func SaleTotal(order entity.WorkOrder) float64 {
	var total float64
	for _, item := range order.Items {
		if item.Type.Billable() {
			total += LineTotal(item)
		}
	}
	return total
}

// CostTotal returns the summed internal cost of every line in an order.
func CostTotal(order entity.WorkOrder) float64 {
	var total float64
	for _, item := range order.Items {
		total += InternalCost(item)
	}
	return total
}
