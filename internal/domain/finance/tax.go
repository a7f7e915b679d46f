package finance

import "github.com/tallerlab/taller-api/internal/domain/enum"

// IVARate is the Chilean VAT rate. Gross amounts are tax inclusive, so the
// net is extracted by division, not multiplication.
const IVARate = 0.19

// Net returns the net portion of a tax-inclusive gross amount.
func Net(gross float64) float64 {
	return num(gross) / (1 + IVARate)
}

// Tax returns the IVA embedded in a tax-inclusive gross amount.
func Tax(gross float64) float64 {
	g := num(gross)
	return g - g/(1+IVARate)
}

// SaleTax returns the IVA owed on a sale. A cotización carries no fiscal
// declaration obligation, so its gross is treated as already-net income and
// yields no debit.
func SaleTax(gross float64, docType enum.DocumentType) float64 {
	if !docType.Declarable() {
		return 0
	}
	return Tax(gross)
}

// PurchaseTaxCredit returns the deductible IVA on a purchase. Credit exists
// only when the purchase is documented by factura or boleta; the full gross
// still counts as a cash outflow either way.
func PurchaseTaxCredit(gross float64, docType enum.DocumentType) float64 {
	if !docType.Declarable() {
		return 0
	}
	return Tax(gross)
}

// EffectiveIncome returns the income an order actually produces for profit
// purposes: the full gross for a cotización, the net for a declarable sale.
func EffectiveIncome(gross float64, docType enum.DocumentType) float64 {
	if !docType.Declarable() {
		return num(gross)
	}
	return Net(gross)
}
