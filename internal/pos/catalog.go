package pos

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a single catalog entry. Items are immutable for the life of a
// session; invoices copy what they need.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// StockStatus returns a short availability label for the item.
func (i Item) StockStatus() string {
	switch {
	case i.Stock == 0:
		return "Out of Stock"
	case i.Stock < 10:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// Catalog is a read-only, in-memory item list.
type Catalog struct {
	items []Item
}

// NewCatalog wraps a slice of items. The slice is not copied; callers must
// not mutate it afterwards.
func NewCatalog(items []Item) *Catalog {
	return &Catalog{items: items}
}

// Items returns all catalog items in catalog order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Filter returns every item whose name, code or category contains query,
// case-insensitively, in catalog order. An empty query matches everything.
func (c *Catalog) Filter(query string) []Item {
	if query == "" {
		return c.items
	}

	q := strings.ToLower(query)
	var matches []Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Code), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			matches = append(matches, item)
		}
	}
	return matches
}

// LoadCatalog reads a JSON item list from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cannot parse catalog: %w", err)
	}

	return NewCatalog(items), nil
}

// SampleCatalog returns the built-in demo catalog used when no catalog file
// is configured.
func SampleCatalog() *Catalog {
	return NewCatalog([]Item{
		{ID: "1", Name: "Wireless Headphones", Code: "WH001", Price: decimal.NewFromInt(2499), Stock: 45, Unit: "PCS", Category: "Electronics", TaxRate: decimal.NewFromInt(18)},
		{ID: "2", Name: "Office Chair", Code: "OC002", Price: decimal.NewFromInt(8999), Stock: 8, Unit: "PCS", Category: "Furniture", TaxRate: decimal.NewFromInt(12)},
		{ID: "3", Name: "Laptop Stand", Code: "LS003", Price: decimal.NewFromInt(1299), Stock: 25, Unit: "PCS", Category: "Accessories", TaxRate: decimal.NewFromInt(18)},
		{ID: "4", Name: "Wireless Mouse", Code: "WM004", Price: decimal.NewFromInt(799), Stock: 72, Unit: "PCS", Category: "Electronics", TaxRate: decimal.NewFromInt(18)},
		{ID: "5", Name: "Desk Lamp", Code: "DL005", Price: decimal.NewFromInt(1899), Stock: 15, Unit: "PCS", Category: "Lighting", TaxRate: decimal.NewFromInt(12)},
		{ID: "6", Name: "USB Cable", Code: "UC006", Price: decimal.NewFromInt(299), Stock: 100, Unit: "PCS", Category: "Accessories", TaxRate: decimal.NewFromInt(18)},
		{ID: "7", Name: "Monitor Stand", Code: "MS007", Price: decimal.NewFromInt(1599), Stock: 20, Unit: "PCS", Category: "Accessories", TaxRate: decimal.NewFromInt(18)},
		{ID: "8", Name: "Keyboard", Code: "KB008", Price: decimal.NewFromInt(1299), Stock: 35, Unit: "PCS", Category: "Electronics", TaxRate: decimal.NewFromInt(18)},
	})
}
