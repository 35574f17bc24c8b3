package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(name string) KeyEvent {
	return KeyEvent{Key: name}
}

func char(r rune) KeyEvent {
	return KeyEvent{Key: string(r), Rune: r, Printable: true}
}

func inputKey(name string) KeyEvent {
	return KeyEvent{Key: name, FromInput: true}
}

func newTestSession() *Session {
	return NewSession(SampleCatalog(), "INV")
}

func TestTypingOpensPicker(t *testing.T) {
	s := newTestSession()

	action := Dispatch(s, char('w'))
	assert.Equal(t, ActionOpenPicker, action)
	assert.True(t, s.PickerOpen())
}

func TestTypingWithNoMatchesFallsThrough(t *testing.T) {
	s := newTestSession()
	s.Search = "zzz"

	action := Dispatch(s, char('q'))
	assert.Equal(t, ActionUnhandled, action)
	assert.False(t, s.PickerOpen())
}

func TestEnterOpensPicker(t *testing.T) {
	s := newTestSession()

	action := Dispatch(s, key("enter"))
	assert.Equal(t, ActionOpenPicker, action)
	assert.True(t, s.PickerOpen())
}

func TestPickerOwnsKeysWhileOpen(t *testing.T) {
	s := newTestSession()
	s.OpenPicker()

	assert.Equal(t, ActionNone, Dispatch(s, key("down")))
	assert.Equal(t, 1, s.Picker.Cursor())
	assert.Equal(t, ActionNone, Dispatch(s, key("up")))
	assert.Equal(t, 0, s.Picker.Cursor())

	// Function keys are swallowed, not dispatched to the screen.
	assert.Equal(t, ActionForwardPicker, Dispatch(s, key("f2")))
	assert.True(t, s.Invoice.Empty())
}

func TestPickerPaging(t *testing.T) {
	s := newTestSession()
	s.OpenPicker()
	n := s.Picker.Len()
	require.Equal(t, 8, n)

	assert.Equal(t, ActionNone, Dispatch(s, key("pgdown")))
	assert.Equal(t, n-1, s.Picker.Cursor())
	assert.Equal(t, ActionNone, Dispatch(s, key("pgup")))
	assert.Equal(t, 0, s.Picker.Cursor())
	assert.Equal(t, ActionNone, Dispatch(s, key("end")))
	assert.Equal(t, n-1, s.Picker.Cursor())
	assert.Equal(t, ActionNone, Dispatch(s, key("home")))
	assert.Equal(t, 0, s.Picker.Cursor())
}

func TestPickerConfirmAddsSelected(t *testing.T) {
	s := newTestSession()
	s.Search = "s"
	s.OpenPicker()
	require.GreaterOrEqual(t, s.Picker.Len(), 3)
	want := s.Picker.Results()[2]

	Dispatch(s, key("down"))
	Dispatch(s, key("down"))
	action := Dispatch(s, key("enter"))

	assert.Equal(t, ActionItemAdded, action)
	assert.False(t, s.PickerOpen())
	assert.Equal(t, "", s.Search)
	require.Len(t, s.Invoice.Lines, 1)
	assert.Equal(t, want.ID, s.Invoice.Lines[0].ID)
}

func TestPickerConfirmWithNoResultsIsNoop(t *testing.T) {
	s := newTestSession()
	s.Search = "zzz"
	s.OpenPicker()

	action := Dispatch(s, key("enter"))
	assert.Equal(t, ActionNone, action)
	assert.True(t, s.PickerOpen())
	assert.True(t, s.Invoice.Empty())
}

func TestEscCascade(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])
	s.EnterEdit(EditQuantity)
	s.OpenPicker() // picker on top, edit forced off

	// First esc closes the picker.
	assert.Equal(t, ActionPickerClosed, Dispatch(s, key("esc")))
	assert.False(t, s.PickerOpen())

	// With an edit active, esc ends the edit.
	s.EnterEdit(EditDiscount)
	assert.Equal(t, ActionEditEnded, Dispatch(s, inputKey("esc")))
	assert.Equal(t, EditNone, s.Edit)

	// Nothing left to close, esc leaves the screen.
	assert.Equal(t, ActionCloseScreen, Dispatch(s, key("esc")))
}

func TestEscOutsideInputIgnoredWhileEditing(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])
	s.EnterEdit(EditQuantity)

	// While editing, keys always carry the input-origin flag; a bare esc
	// matches no rule and must not close the screen mid-edit.
	assert.Equal(t, ActionUnhandled, Dispatch(s, key("esc")))
	assert.Equal(t, EditQuantity, s.Edit)
}

func TestSaveWithEmptyInvoiceIsNoop(t *testing.T) {
	s := newTestSession()

	action := Dispatch(s, key("f2"))
	assert.Equal(t, ActionNone, action)
}

func TestSaveWithLinesRequestsCommit(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])

	action := Dispatch(s, key("f2"))
	assert.Equal(t, ActionCommit, action)
}

func TestEditKeysRequireLines(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, ActionUnhandled, Dispatch(s, key("f4")))
	assert.Equal(t, EditNone, s.Edit)
	assert.Equal(t, ActionUnhandled, Dispatch(s, key("f5")))
	assert.Equal(t, EditNone, s.Edit)
}

func TestEditKeysStartEditing(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])

	assert.Equal(t, ActionEditStarted, Dispatch(s, key("f4")))
	assert.Equal(t, EditQuantity, s.Edit)

	assert.Equal(t, ActionEditEnded, Dispatch(s, inputKey("enter")))
	assert.Equal(t, EditNone, s.Edit)

	assert.Equal(t, ActionEditStarted, Dispatch(s, key("f5")))
	assert.Equal(t, EditDiscount, s.Edit)
}

func TestEditSwallowsInput(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])
	s.EnterEdit(EditQuantity)

	ev := KeyEvent{Key: "5", Rune: '5', Printable: true, FromInput: true}
	assert.Equal(t, ActionEditInput, Dispatch(s, ev))
	// Typing a digit while editing must not open the picker.
	assert.False(t, s.PickerOpen())
}

func TestLineCursorMovesWithArrows(t *testing.T) {
	s := newTestSession()
	items := SampleCatalog().Items()
	s.Invoice.Add(items[0])
	s.Invoice.Add(items[1])
	s.Invoice.Add(items[2])
	require.Equal(t, 2, s.Invoice.Cursor)

	assert.Equal(t, ActionNone, Dispatch(s, key("up")))
	assert.Equal(t, 1, s.Invoice.Cursor)
	assert.Equal(t, ActionNone, Dispatch(s, key("down")))
	assert.Equal(t, 2, s.Invoice.Cursor)

	// Clamped at both ends.
	Dispatch(s, key("down"))
	assert.Equal(t, 2, s.Invoice.Cursor)
}

func TestArrowsIgnoredOnEmptyInvoice(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, ActionUnhandled, Dispatch(s, key("up")))
	assert.Equal(t, ActionUnhandled, Dispatch(s, key("down")))
	assert.Equal(t, 0, s.Invoice.Cursor)
}

func TestDeleteRemovesSelectedLine(t *testing.T) {
	s := newTestSession()
	items := SampleCatalog().Items()
	s.Invoice.Add(items[0])
	s.Invoice.Add(items[1])
	s.Invoice.MoveCursor(-1)

	assert.Equal(t, ActionNone, Dispatch(s, key("delete")))
	require.Len(t, s.Invoice.Lines, 1)
	assert.Equal(t, items[1].ID, s.Invoice.Lines[0].ID)
}

func TestDeleteIgnoredWhileEditing(t *testing.T) {
	s := newTestSession()
	s.Invoice.Add(SampleCatalog().Items()[0])
	s.EnterEdit(EditQuantity)

	action := Dispatch(s, inputKey("delete"))
	assert.Equal(t, ActionEditInput, action)
	assert.Len(t, s.Invoice.Lines, 1)
}

func TestDeleteIgnoredOnEmptyInvoice(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, ActionUnhandled, Dispatch(s, key("delete")))
}

func TestPickerForwardsTextKeys(t *testing.T) {
	s := newTestSession()
	s.OpenPicker()

	assert.Equal(t, ActionForwardPicker, Dispatch(s, char('w')))
	assert.Equal(t, ActionForwardPicker, Dispatch(s, key("backspace")))
}
