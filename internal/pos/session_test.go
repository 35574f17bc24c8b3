package pos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionNumberPrefix(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	assert.True(t, strings.HasPrefix(s.Invoice.Number, "INV-"))
	assert.True(t, s.Invoice.Empty())
	assert.False(t, s.PickerOpen())
	assert.Equal(t, EditNone, s.Edit)
}

func TestOpenPickerEndsEdit(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	s.Invoice.Add(SampleCatalog().Items()[0])
	require.True(t, s.EnterEdit(EditQuantity))

	s.OpenPicker()
	assert.Equal(t, EditNone, s.Edit)
	assert.True(t, s.PickerOpen())
}

func TestOpenPickerSeedsSearch(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	s.Search = "wireless"
	s.OpenPicker()

	assert.Equal(t, "wireless", s.Picker.Query())
	assert.Equal(t, 2, s.Picker.Len())
}

func TestCancelPickerKeepsSearch(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	s.Search = "desk"
	s.OpenPicker()
	s.Picker.SetQuery("lamp") // edits inside the picker are discarded

	s.CancelPicker()
	assert.False(t, s.PickerOpen())
	assert.Equal(t, "desk", s.Search)
	assert.True(t, s.Invoice.Empty())
}

func TestConfirmPickerAddsAndClearsSearch(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	s.Search = "office"
	s.OpenPicker()

	item, ok := s.ConfirmPicker()
	require.True(t, ok)
	assert.Equal(t, "Office Chair", item.Name)
	assert.False(t, s.PickerOpen())
	assert.Equal(t, "", s.Search)
	require.Len(t, s.Invoice.Lines, 1)
	assert.Equal(t, 1, s.Invoice.Lines[0].Quantity)
}

func TestConfirmPickerNoResults(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	s.Search = "zzz"
	s.OpenPicker()

	_, ok := s.ConfirmPicker()
	assert.False(t, ok)
	// Picker stays open so the operator can fix the query.
	assert.True(t, s.PickerOpen())
}

func TestEnterEditRequiresLines(t *testing.T) {
	s := NewSession(SampleCatalog(), "INV")
	assert.False(t, s.EnterEdit(EditQuantity))
	assert.Equal(t, EditNone, s.Edit)

	s.Invoice.Add(SampleCatalog().Items()[0])
	assert.True(t, s.EnterEdit(EditDiscount))
	assert.Equal(t, EditDiscount, s.Edit)

	s.ExitEdit()
	assert.Equal(t, EditNone, s.Edit)
}

func TestEditModeString(t *testing.T) {
	assert.Equal(t, "none", EditNone.String())
	assert.Equal(t, "quantity", EditQuantity.String())
	assert.Equal(t, "discount", EditDiscount.String())
}
