package pos

import (
	"fmt"
	"strings"
)

// RenderReceipt formats a committed record as a plain-text receipt.
func RenderReceipt(rec CommitRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  (%s)\n", rec.Number, rec.Kind)
	fmt.Fprintf(&b, "Date: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	if rec.Counterparty != "" {
		fmt.Fprintf(&b, "Party: %s\n", rec.Counterparty)
	}
	b.WriteString(strings.Repeat("-", 58) + "\n")

	for _, line := range rec.Lines {
		fmt.Fprintf(&b, "%-28s %3d x %10s  %12s\n",
			truncate(line.Name, 28),
			line.Quantity,
			line.Price.StringFixed(2),
			line.Total.StringFixed(2))
		if !line.Discount.IsZero() {
			fmt.Fprintf(&b, "    discount %s%%\n", line.Discount.String())
		}
	}

	b.WriteString(strings.Repeat("-", 58) + "\n")
	fmt.Fprintf(&b, "%-44s %12s\n", "Subtotal", rec.Totals.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "%-44s %12s\n", "Discount", rec.Totals.DiscountAmount.StringFixed(2))
	fmt.Fprintf(&b, "%-44s %12s\n", "Taxable", rec.Totals.TaxableAmount.StringFixed(2))
	fmt.Fprintf(&b, "%-44s %12s\n", "Tax", rec.Totals.TaxAmount.StringFixed(2))
	fmt.Fprintf(&b, "%-44s %12s\n", "Grand Total", rec.Totals.GrandTotal.StringFixed(2))

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
