package pos

import (
	"fmt"
	"time"
)

// EditMode tracks which field of the selected line is being typed.
type EditMode int

const (
	EditNone EditMode = iota
	EditQuantity
	EditDiscount
)

func (m EditMode) String() string {
	switch m {
	case EditQuantity:
		return "quantity"
	case EditDiscount:
		return "discount"
	default:
		return "none"
	}
}

// Session is the full interactive state of one POS screen: the invoice,
// the outer search text, the picker (nil when closed) and the edit mode.
// All state lives here explicitly so the dispatcher and the transitions can
// be exercised without a terminal.
type Session struct {
	Catalog *Catalog
	Invoice *Invoice
	Search  string
	Picker  *Picker
	Edit    EditMode
}

// NewSession opens a session over the catalog. The invoice number is
// generated once and stays stable for the life of the session.
func NewSession(catalog *Catalog, numberPrefix string) *Session {
	number := fmt.Sprintf("%s-%d", numberPrefix, time.Now().UnixMilli())
	return &Session{
		Catalog: catalog,
		Invoice: NewInvoice(number),
	}
}

// Matches returns the catalog items matching the current search text.
func (s *Session) Matches() []Item {
	return s.Catalog.Filter(s.Search)
}

// PickerOpen reports whether the item picker is showing.
func (s *Session) PickerOpen() bool {
	return s.Picker != nil
}

// OpenPicker shows the item picker seeded with the current search text.
// Picker and field edit are mutually exclusive, so any active edit ends.
func (s *Session) OpenPicker() {
	s.Edit = EditNone
	s.Picker = NewPicker(s.Catalog, s.Search)
}

// CancelPicker closes the picker without selecting. The search text the
// picker was opened with stays put; query edits made inside the picker
// are discarded with it.
func (s *Session) CancelPicker() {
	s.Picker = nil
}

// ConfirmPicker adds the picker's highlighted item to the invoice and
// closes the picker. Returns the added item, or false when there was
// nothing under the cursor.
func (s *Session) ConfirmPicker() (Item, bool) {
	if s.Picker == nil {
		return Item{}, false
	}
	item, ok := s.Picker.Selected()
	if !ok {
		return Item{}, false
	}
	s.Picker = nil
	s.Search = ""
	s.Invoice.Add(item)
	return item, true
}

// EnterEdit switches to quantity or discount editing for the selected
// line. Ignored when the invoice has no lines.
func (s *Session) EnterEdit(mode EditMode) bool {
	if s.Invoice.Empty() {
		return false
	}
	s.Edit = mode
	return true
}

// ExitEdit returns to EditNone. Used by both confirm and cancel; the field
// value itself is applied live as the operator types.
func (s *Session) ExitEdit() {
	s.Edit = EditNone
}
