package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateTotalsMixedRates(t *testing.T) {
	// Two lines: 100 x 2 at 10% discount and 18% tax,
	// plus a 20-unit line with no discount at 12% tax.
	inv := NewInvoice("INV-1")
	inv.Add(Item{ID: "1", Name: "A", Price: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)})
	inv.SetQuantity(0, 2)
	inv.SetDiscount(0, decimal.NewFromInt(10))
	inv.Add(Item{ID: "2", Name: "B", Price: decimal.NewFromInt(20), TaxRate: decimal.NewFromInt(12)})

	totals := CalculateTotals(inv.Lines)

	assert.True(t, totals.Subtotal.Equal(dec("220")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.DiscountAmount.Equal(dec("20")), "discount = %s", totals.DiscountAmount)
	assert.True(t, totals.TaxableAmount.Equal(dec("200")), "taxable = %s", totals.TaxableAmount)
	// 180 * 18% + 20 * 12% = 32.4 + 2.4
	assert.True(t, totals.TaxAmount.Equal(dec("34.8")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(dec("234.8")), "grand = %s", totals.GrandTotal)
}

func TestCalculateTotalsSingleLine(t *testing.T) {
	line := LineItem{
		Item:     Item{ID: "1", Price: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
		Quantity: 2,
		Discount: decimal.NewFromInt(10),
	}
	line.recalc()
	require.True(t, line.Total.Equal(dec("180")))

	totals := CalculateTotals([]LineItem{line})
	assert.True(t, totals.Subtotal.Equal(dec("200")))
	assert.True(t, totals.DiscountAmount.Equal(dec("20")))
	assert.True(t, totals.TaxableAmount.Equal(dec("180")))
	assert.True(t, totals.TaxAmount.Equal(dec("32.4")))
	assert.True(t, totals.GrandTotal.Equal(dec("212.4")))
}

func TestCalculateTotalsFractionalDiscount(t *testing.T) {
	// A discount like 33.33% must not lose precision in the identities.
	line := LineItem{
		Item:     Item{ID: "1", Price: dec("99.99"), TaxRate: decimal.NewFromInt(18)},
		Quantity: 3,
		Discount: dec("33.33"),
	}
	line.recalc()

	totals := CalculateTotals([]LineItem{line})
	assert.True(t, totals.TaxableAmount.Equal(totals.Subtotal.Sub(totals.DiscountAmount)))
	assert.True(t, totals.GrandTotal.Equal(totals.TaxableAmount.Add(totals.TaxAmount)))
	assert.True(t, line.Total.Equal(totals.TaxableAmount))
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxableAmount.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
