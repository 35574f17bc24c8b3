package pos

import (
	"fmt"
	"strconv"
	"strings"
)

// Colors for terminal output
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

// CmdCatalog lists catalog items, optionally filtered by a query.
func CmdCatalog(catalog *Catalog, args []string) error {
	query := strings.Join(args, " ")
	items := catalog.Filter(query)
	if len(items) == 0 {
		fmt.Printf("%sNo items match %q%s\n", Yellow, query, Reset)
		return nil
	}

	fmt.Printf("%s%-8s %-26s %10s %7s %6s %6s  %s%s\n",
		Cyan, "CODE", "NAME", "PRICE", "STOCK", "UNIT", "TAX%", "STATUS", Reset)
	for _, item := range items {
		fmt.Printf("%-8s %-26s %10s %7d %6s %6s  %s\n",
			item.Code, truncate(item.Name, 26), item.Price.StringFixed(2),
			item.Stock, item.Unit, item.TaxRate.StringFixed(0), item.StockStatus())
	}
	fmt.Printf("\n%d items\n", len(items))
	return nil
}

// CmdLedger prints receipts for the most recent committed invoices.
func CmdLedger(store *LedgerStore, args []string) error {
	n := 10
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid count %q", args[0])
		}
		n = parsed
	}

	records, err := store.Recent(n)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("%sLedger is empty%s\n", Yellow, Reset)
		return nil
	}

	for _, rec := range records {
		fmt.Println(RenderReceipt(rec))
	}
	return nil
}
