package pos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// posKind parameterizes the screen for sales vs purchase invoices.
type posKind struct {
	title      string
	prefix     string
	partyLabel string
	kind       string
}

var (
	salesPOS    = posKind{"Sales POS", "INV", "Customer", "sale"}
	purchasePOS = posKind{"Purchase POS", "PUR", "Supplier", "purchase"}
)

type commitResultMsg struct {
	gen int
	rec CommitRecord
	err error
}

// posScreen is the line-item editor. The session holds all domain state;
// the screen owns the text inputs and the commit lifecycle.
type posScreen struct {
	session *Session
	sink    CommitSink
	log     zerolog.Logger
	kind    posKind
	gen     int

	search   textinput.Model
	pickerIn textinput.Model
	editIn   textinput.Model
	partyIn  textinput.Model

	partyFocused bool
	committing   bool
	errMsg       string
	width        int
	height       int
}

func newPOSScreen(kind posKind, catalog *Catalog, sink CommitSink, log zerolog.Logger, gen int) *posScreen {
	search := textinput.New()
	search.Placeholder = "Type to search items..."
	search.CharLimit = 64
	search.Focus()

	pickerIn := textinput.New()
	pickerIn.Placeholder = "Search..."
	pickerIn.CharLimit = 64

	editIn := textinput.New()
	editIn.CharLimit = 8

	partyIn := textinput.New()
	partyIn.Placeholder = kind.partyLabel + " name"
	partyIn.CharLimit = 48

	return &posScreen{
		session:  NewSession(catalog, kind.prefix),
		sink:     sink,
		log:      log,
		kind:     kind,
		gen:      gen,
		search:   search,
		pickerIn: pickerIn,
		editIn:   editIn,
		partyIn:  partyIn,
	}
}

func (p *posScreen) setSize(w, h int) {
	p.width = w
	p.height = h
	if p.session.Picker != nil {
		p.session.Picker.SetHeight(p.pickerHeight())
	}
}

func (p *posScreen) pickerHeight() int {
	h := p.height - 12
	if h < 5 {
		h = 5
	}
	return h
}

func keyEventFromMsg(msg tea.KeyMsg, fromInput bool) KeyEvent {
	ev := KeyEvent{Key: msg.String(), FromInput: fromInput}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		ev.Rune = msg.Runes[0]
		ev.Printable = true
	}
	if msg.Type == tea.KeySpace {
		ev.Rune = ' '
		ev.Printable = true
	}
	return ev
}

// handleKey routes one key press. The bool result is true when the screen
// should close.
func (p *posScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	// The counterparty input is shell-level focus: while active, it owns
	// every key except the ones that leave it.
	if p.partyFocused && !p.session.PickerOpen() && p.session.Edit == EditNone {
		switch key {
		case "tab", "esc", "enter":
			p.partyFocused = false
			p.partyIn.Blur()
			p.search.Focus()
			return nil, false
		case "f2":
			// fall through to the dispatcher below
		default:
			var cmd tea.Cmd
			p.partyIn, cmd = p.partyIn.Update(msg)
			p.session.Invoice.Counterparty = p.partyIn.Value()
			return cmd, false
		}
	} else if key == "tab" && !p.session.PickerOpen() && p.session.Edit == EditNone {
		p.partyFocused = true
		p.search.Blur()
		p.partyIn.Focus()
		return nil, false
	}

	p.errMsg = ""

	ev := keyEventFromMsg(msg, p.session.Edit != EditNone)
	action := Dispatch(p.session, ev)

	switch action {
	case ActionCloseScreen:
		return nil, true

	case ActionOpenPicker:
		p.session.Picker.SetHeight(p.pickerHeight())
		query := p.session.Search
		if ev.Printable {
			// The keystroke that opened the picker is part of the query.
			query += string(ev.Rune)
			p.session.Picker.SetQuery(query)
		}
		p.pickerIn.SetValue(query)
		p.pickerIn.CursorEnd()
		p.search.Blur()
		p.pickerIn.Focus()
		return nil, false

	case ActionForwardPicker:
		var cmd tea.Cmd
		p.pickerIn, cmd = p.pickerIn.Update(msg)
		// Re-query only on change so keys the input ignores keep the cursor.
		if p.pickerIn.Value() != p.session.Picker.Query() {
			p.session.Picker.SetQuery(p.pickerIn.Value())
		}
		return cmd, false

	case ActionItemAdded:
		p.pickerIn.Blur()
		p.pickerIn.SetValue("")
		p.search.SetValue("")
		p.search.Focus()
		return nil, false

	case ActionPickerClosed:
		p.pickerIn.Blur()
		p.pickerIn.SetValue("")
		p.search.Focus()
		return nil, false

	case ActionEditStarted:
		line, _ := p.session.Invoice.Selected()
		if p.session.Edit == EditQuantity {
			p.editIn.SetValue(strconv.Itoa(line.Quantity))
		} else {
			p.editIn.SetValue(line.Discount.String())
		}
		p.editIn.CursorEnd()
		p.search.Blur()
		p.editIn.Focus()
		return nil, false

	case ActionEditInput:
		var cmd tea.Cmd
		p.editIn, cmd = p.editIn.Update(msg)
		p.applyEditValue()
		return cmd, false

	case ActionEditEnded:
		p.editIn.Blur()
		p.editIn.SetValue("")
		p.search.Focus()
		return nil, false

	case ActionCommit:
		if p.committing {
			return nil, false
		}
		p.committing = true
		rec := NewCommitRecord(p.kind.kind, p.session.Invoice)
		sink := p.sink
		gen := p.gen
		return func() tea.Msg {
			return commitResultMsg{gen: gen, rec: rec, err: sink.Commit(rec)}
		}, false

	case ActionUnhandled:
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.session.Search = p.search.Value()
		return cmd, false
	}

	return nil, false
}

// applyEditValue parses the edit input and applies it to the selected line.
// Unparseable or out-of-range values leave the line untouched.
func (p *posScreen) applyEditValue() {
	value := strings.TrimSpace(p.editIn.Value())
	if value == "" {
		return
	}
	cursor := p.session.Invoice.Cursor
	switch p.session.Edit {
	case EditQuantity:
		if qty, err := strconv.Atoi(value); err == nil {
			p.session.Invoice.SetQuantity(cursor, qty)
		}
	case EditDiscount:
		if d, err := decimal.NewFromString(value); err == nil {
			p.session.Invoice.SetDiscount(cursor, d)
		}
	}
}

// handleCommitResult processes the async save result. The bool result is
// true when the screen is done and should close.
func (p *posScreen) handleCommitResult(msg commitResultMsg) (tea.Cmd, bool) {
	if msg.err != nil {
		p.committing = false
		p.errMsg = fmt.Sprintf("save failed: %v", msg.err)
		p.log.Error().Err(msg.err).Str("number", msg.rec.Number).Msg("commit failed")
		return nil, false
	}
	return nil, true
}

// updateInputs forwards non-key messages (cursor blinks) to the inputs.
func (p *posScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	cmds = append(cmds, cmd)
	p.pickerIn, cmd = p.pickerIn.Update(msg)
	cmds = append(cmds, cmd)
	p.editIn, cmd = p.editIn.Update(msg)
	cmds = append(cmds, cmd)
	p.partyIn, cmd = p.partyIn.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (p *posScreen) helpLine() string {
	switch {
	case p.session.PickerOpen():
		return "↑/↓: navigate • pgup/pgdn: page • home/end: jump • enter: add item • esc: cancel"
	case p.session.Edit != EditNone:
		return "type a value • enter: confirm • esc: done"
	case p.partyFocused:
		return "type name • tab/enter: back to search"
	default:
		return "type: find item • enter: pick • ↑/↓: select line • f4: qty • f5: discount • del: remove • f2: save • tab: " +
			strings.ToLower(p.kind.partyLabel) + " • esc: back"
	}
}

func (p *posScreen) View() string {
	if p.session.PickerOpen() {
		return p.renderPicker()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(p.kind.title))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(p.session.Invoice.Number))
	b.WriteString("\n\n")

	left := p.renderSearchPanel()
	right := p.renderInvoicePanel()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + p.errMsg))
	}
	if p.committing {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Saving..."))
	}

	return b.String()
}

func (p *posScreen) renderSearchPanel() string {
	var b strings.Builder

	b.WriteString("Search\n")
	b.WriteString(p.search.View())
	b.WriteString("\n\n")

	matches := p.session.Matches()
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d matching items", len(matches))))
	b.WriteString("\n")
	for i, item := range matches {
		if i == 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %-8s %-20s %10s\n",
			item.Code, truncate(item.Name, 20), item.Price.StringFixed(2)))
	}

	b.WriteString("\n")
	b.WriteString(p.kind.partyLabel + "\n")
	b.WriteString(p.partyIn.View())

	return boxStyle.Width(46).Render(b.String())
}

func (p *posScreen) renderInvoicePanel() string {
	var b strings.Builder
	inv := p.session.Invoice

	b.WriteString(fmt.Sprintf("%-22s %4s %10s %6s %12s\n",
		"ITEM", "QTY", "PRICE", "DISC%", "TOTAL"))
	b.WriteString(strings.Repeat("-", 58) + "\n")

	if inv.Empty() {
		b.WriteString(dimStyle.Render("No items. Start typing to add one."))
		b.WriteString("\n")
	}

	for i, line := range inv.Lines {
		row := fmt.Sprintf("%-22s %4d %10s %6s %12s",
			truncate(line.Name, 22), line.Quantity,
			line.Price.StringFixed(2), line.Discount.StringFixed(0),
			line.Total.StringFixed(2))
		if i == inv.Cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	if p.session.Edit != EditNone {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Edit %s: %s\n", p.session.Edit, p.editIn.View()))
	}

	totals := CalculateTotals(inv.Lines)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-44s %12s\n", "Subtotal", totals.Subtotal.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-44s %12s\n", "Discount", totals.DiscountAmount.StringFixed(2)))
	b.WriteString(fmt.Sprintf("%-44s %12s\n", "Tax", totals.TaxAmount.StringFixed(2)))
	b.WriteString(selectedStyle.Render(
		fmt.Sprintf("%-44s %12s", "Grand Total", totals.GrandTotal.StringFixed(2))))

	return boxStyle.Render(b.String())
}

func (p *posScreen) renderPicker() string {
	var b strings.Builder
	picker := p.session.Picker

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Select Item"))
	b.WriteString("\n\n")
	b.WriteString(p.pickerIn.View())
	b.WriteString("\n\n")

	if picker.Len() == 0 {
		b.WriteString(dimStyle.Render("  No items match."))
		b.WriteString("\n")
	}

	start, end := picker.Window()
	for i := start; i < end; i++ {
		item := picker.Results()[i]
		row := fmt.Sprintf("%-8s %-26s %10s  %-12s",
			item.Code, truncate(item.Name, 26),
			item.Price.StringFixed(2), item.StockStatus())
		if i == picker.Cursor() {
			row = selectedRowStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}

	if picker.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(
			fmt.Sprintf("Item %d of %d", picker.Cursor()+1, picker.Len())))
	}

	return boxStyle.Render(b.String())
}
