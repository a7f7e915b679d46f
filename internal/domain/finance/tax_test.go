package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/finance"
)

func TestNetPlusTaxEqualsGross(t *testing.T) {
	for _, gross := range []float64{0, 1, 11900, 100000, 1234567.89} {
		assert.InDelta(t, gross, finance.Net(gross)+finance.Tax(gross), 1e-6)
		assert.InDelta(t, gross-gross/1.19, finance.Tax(gross), 1e-6)
	}
}

func TestSaleTaxByDocumentType(t *testing.T) {
	assert.Zero(t, finance.SaleTax(11900, enum.DocumentCotizacion))
	assert.InDelta(t, 1900, finance.SaleTax(11900, enum.DocumentBoleta), 1e-6)
	assert.InDelta(t, 1900, finance.SaleTax(11900, enum.DocumentFactura), 1e-6)
}

func TestPurchaseTaxCredit(t *testing.T) {
	// factura purchase yields deductible credit
	assert.InDelta(t, 100000-100000/1.19, finance.PurchaseTaxCredit(100000, enum.DocumentFactura), 1e-6)
	assert.InDelta(t, finance.PurchaseTaxCredit(100000, enum.DocumentFactura),
		finance.PurchaseTaxCredit(100000, enum.DocumentBoleta), 1e-6)

	// a cotizacion-documented purchase yields none
	assert.Zero(t, finance.PurchaseTaxCredit(100000, enum.DocumentCotizacion))
	assert.Zero(t, finance.PurchaseTaxCredit(100000, ""))
}

func TestEffectiveIncome(t *testing.T) {
	// quote income is already-net, declarable income is tax-stripped
	assert.InDelta(t, 11900, finance.EffectiveIncome(11900, enum.DocumentCotizacion), 1e-6)
	assert.InDelta(t, 10000, finance.EffectiveIncome(11900, enum.DocumentBoleta), 1e-6)
}
