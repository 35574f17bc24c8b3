package pos

import "github.com/shopspring/decimal"

// Totals holds the derived figures of an invoice. All values are kept at
// full precision; rounding to two decimals happens only when rendering.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// CalculateTotals folds over the line list. Tax is computed per line on
// that line's own taxable amount, since tax rates differ per item.
func CalculateTotals(lines []LineItem) Totals {
	t := Totals{
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
	}

	for _, line := range lines {
		gross := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lineDiscount := gross.Mul(line.Discount).Div(hundred)
		lineTaxable := gross.Sub(lineDiscount)

		t.Subtotal = t.Subtotal.Add(gross)
		t.DiscountAmount = t.DiscountAmount.Add(lineDiscount)
		t.TaxAmount = t.TaxAmount.Add(lineTaxable.Mul(line.TaxRate).Div(hundred))
	}

	t.TaxableAmount = t.Subtotal.Sub(t.DiscountAmount)
	t.GrandTotal = t.TaxableAmount.Add(t.TaxAmount)
	return t
}
