package pos

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem is a catalog item bound into an invoice with a quantity, a
// discount percentage and a derived total. Total is never set directly;
// every mutation goes through the Invoice methods which recompute it.
type LineItem struct {
	Item
	Quantity int             `json:"quantity"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

func (l *LineItem) recalc() {
	l.Total = lineTotal(l.Price, l.Quantity, l.Discount)
}

// lineTotal computes price * qty * (1 - discount/100) at full precision.
func lineTotal(price decimal.Decimal, qty int, discount decimal.Decimal) decimal.Decimal {
	gross := price.Mul(decimal.NewFromInt(int64(qty)))
	return gross.Sub(gross.Mul(discount).Div(hundred))
}

// Invoice is the in-progress sale or purchase document. It owns its lines
// and the selection cursor over them. Lines keep insertion order; re-adding
// an item merges into the existing line without reordering.
type Invoice struct {
	Number       string
	Counterparty string
	Lines        []LineItem
	Cursor       int
}

// NewInvoice creates an empty invoice with the given number.
func NewInvoice(number string) *Invoice {
	return &Invoice{Number: number}
}

// Empty reports whether the invoice has no lines.
func (inv *Invoice) Empty() bool {
	return len(inv.Lines) == 0
}

// Add merges the item into an existing line (quantity +1) when a line for
// the same item id already exists, otherwise appends a new line with
// quantity 1 and no discount. The cursor moves to the affected line.
func (inv *Invoice) Add(item Item) {
	for i := range inv.Lines {
		if inv.Lines[i].ID == item.ID {
			inv.Lines[i].Quantity++
			inv.Lines[i].recalc()
			inv.Cursor = i
			return
		}
	}

	line := LineItem{Item: item, Quantity: 1, Discount: decimal.Zero}
	line.recalc()
	inv.Lines = append(inv.Lines, line)
	inv.Cursor = len(inv.Lines) - 1
}

// Remove deletes the line at index and re-clamps the cursor. Out-of-range
// indexes are ignored.
func (inv *Invoice) Remove(index int) {
	if index < 0 || index >= len(inv.Lines) {
		return
	}
	inv.Lines = append(inv.Lines[:index], inv.Lines[index+1:]...)
	inv.clampCursor()
}

// SetQuantity updates the quantity of the line at index and recomputes its
// total. Quantities below 1 are rejected and the line is left unchanged.
func (inv *Invoice) SetQuantity(index, qty int) {
	if index < 0 || index >= len(inv.Lines) || qty <= 0 {
		return
	}
	inv.Lines[index].Quantity = qty
	inv.Lines[index].recalc()
}

// SetDiscount updates the discount percentage of the line at index and
// recomputes its total. Values outside [0, 100] are rejected.
func (inv *Invoice) SetDiscount(index int, discount decimal.Decimal) {
	if index < 0 || index >= len(inv.Lines) {
		return
	}
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return
	}
	inv.Lines[index].Discount = discount
	inv.Lines[index].recalc()
}

// MoveCursor moves the selection cursor by delta, clamped to the line
// range. A no-op when the invoice is empty.
func (inv *Invoice) MoveCursor(delta int) {
	if len(inv.Lines) == 0 {
		return
	}
	inv.Cursor += delta
	inv.clampCursor()
}

// Selected returns the line under the cursor, if any.
func (inv *Invoice) Selected() (LineItem, bool) {
	if len(inv.Lines) == 0 {
		return LineItem{}, false
	}
	inv.clampCursor()
	return inv.Lines[inv.Cursor], true
}

func (inv *Invoice) clampCursor() {
	if inv.Cursor < 0 {
		inv.Cursor = 0
	}
	if max := len(inv.Lines) - 1; inv.Cursor > max && max >= 0 {
		inv.Cursor = max
	}
}
