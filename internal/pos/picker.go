package pos

// Picker is the modal item selector. It keeps its own query and its own
// cursor, independent of the invoice's line cursor, plus a scroll offset so
// the selected row is always inside the visible window.
type Picker struct {
	catalog *Catalog
	query   string
	results []Item
	cursor  int
	offset  int
	height  int
}

// NewPicker opens a picker over the catalog, seeded with the given query.
func NewPicker(catalog *Catalog, query string) *Picker {
	p := &Picker{catalog: catalog, height: 10}
	p.SetQuery(query)
	return p
}

// SetQuery re-runs the filter and resets the cursor to the first result.
func (p *Picker) SetQuery(query string) {
	p.query = query
	p.results = p.catalog.Filter(query)
	p.cursor = 0
	p.offset = 0
}

// Query returns the picker's current search text.
func (p *Picker) Query() string {
	return p.query
}

// Results returns the filtered items in catalog order.
func (p *Picker) Results() []Item {
	return p.results
}

// Len returns the number of filtered results.
func (p *Picker) Len() int {
	return len(p.results)
}

// Cursor returns the index of the highlighted result.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Move shifts the cursor by delta, clamped to the result range. A no-op on
// an empty result set.
func (p *Picker) Move(delta int) {
	if len(p.results) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if max := len(p.results) - 1; p.cursor > max {
		p.cursor = max
	}
	p.ensureVisible()
}

// First moves the cursor to the first result.
func (p *Picker) First() {
	p.Move(-len(p.results))
}

// Last moves the cursor to the last result.
func (p *Picker) Last() {
	p.Move(len(p.results))
}

// Selected returns the item under the cursor, if any.
func (p *Picker) Selected() (Item, bool) {
	if len(p.results) == 0 {
		return Item{}, false
	}
	return p.results[p.cursor], true
}

// SetHeight sets the number of visible rows.
func (p *Picker) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	p.height = h
	p.ensureVisible()
}

// Window returns the [start, end) bounds of the visible result slice.
func (p *Picker) Window() (int, int) {
	end := p.offset + p.height
	if end > len(p.results) {
		end = len(p.results)
	}
	return p.offset, end
}

// ensureVisible adjusts the scroll offset so the cursor row stays inside
// the window.
func (p *Picker) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
	maxOffset := len(p.results) - p.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
}
