package finance

import (
	"strings"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

// MonthlySummary holds every figure the dashboard and F29 views consume for
// one calendar month. All amounts are gross unless named otherwise.
type MonthlySummary struct {
	Month string `json:"month"`

	OrderCount   int `json:"order_count"`
	ExpenseCount int `json:"expense_count"`

	TotalSalesGross        float64 `json:"total_sales_gross"`
	TotalSalesGrossTaxable float64 `json:"total_sales_gross_taxable"`
	TotalSalesNetTaxable   float64 `json:"total_sales_net_taxable"`
	TotalSalesIVATaxable   float64 `json:"total_sales_iva_taxable"`

	TotalPartsCostInternalGross float64 `json:"total_parts_cost_internal_gross"`
	TotalGeneralExpensesGross   float64 `json:"total_general_expenses_gross"`
	TotalExpensesReal           float64 `json:"total_expenses_real"`

	GeneralExpensesIVA float64 `json:"general_expenses_iva"`
	InternalPartsIVA   float64 `json:"internal_parts_iva"`
	TotalVATCredit     float64 `json:"total_vat_credit"`

	RealProfit float64 `json:"real_profit"`
	IVABalance float64 `json:"iva_balance"`
}

// InMonth reports whether an ISO date string belongs to the yearMonth bucket
// ("2025-08"). This is a plain prefix match, not calendar math: a malformed
// date is silently excluded from every bucket.
func InMonth(date, yearMonth string) bool {
	return yearMonth != "" && strings.HasPrefix(date, yearMonth)
}

// Summarize aggregates a month of orders and standalone expenses.
//
// The sales figures intentionally ignore per-item discounts while the per-order
// profit side applies them; historical reports were reconciled against that
// asymmetry and it is preserved here.
func Summarize(orders []entity.WorkOrder, expenses []entity.Expense, yearMonth string) MonthlySummary {
	s := MonthlySummary{Month: yearMonth}

	var profitBeforeExpenses float64

	for _, o := range orders {
		if !InMonth(o.Date, yearMonth) {
			continue
		}
		s.OrderCount++

		var grossSales, itemCost float64
		for _, item := range o.Items {
			if item.Type.Billable() {
				grossSales += GrossSale(item)
			}
			cost := InternalCost(item)
			itemCost += cost

			// Deductible credit only for fiscally documented purchases,
			// and only on lines that represent bought goods
			if item.Type != enum.ItemLabor {
				s.InternalPartsIVA += PurchaseTaxCredit(cost, item.PurchaseDocType)
			}
		}

		s.TotalSalesGross += grossSales
		if o.DocumentType.Declarable() {
			s.TotalSalesGrossTaxable += grossSales
		}
		s.TotalPartsCostInternalGross += itemCost

		profitBeforeExpenses += EffectiveIncome(SaleTotal(o), o.DocumentType) - itemCost
	}

	for _, e := range expenses {
		if !InMonth(e.Date, yearMonth) {
			continue
		}
		s.ExpenseCount++
		s.TotalGeneralExpensesGross += num(e.Amount)
		s.GeneralExpensesIVA += PurchaseTaxCredit(e.Amount, e.DocumentType)
	}

	s.TotalSalesNetTaxable = Net(s.TotalSalesGrossTaxable)
	s.TotalSalesIVATaxable = Tax(s.TotalSalesGrossTaxable)
	s.TotalExpensesReal = s.TotalGeneralExpensesGross + s.TotalPartsCostInternalGross
	s.TotalVATCredit = s.GeneralExpensesIVA + s.InternalPartsIVA

	// General expenses come off once globally, not per order
	s.RealProfit = profitBeforeExpenses - s.TotalGeneralExpensesGross

	// Positive: tax owed. Negative: remanente carried forward.
	s.IVABalance = s.TotalSalesIVATaxable - s.TotalVATCredit

	return s
}
