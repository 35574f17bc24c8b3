package pos

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Version info
const (
	Version = "0.4.1"
	Year    = "2026"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	creditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#7D56F4")).
				Foreground(lipgloss.Color("#FAFAFA"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	stockOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	stockLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF9500"))

	stockOutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444"))

	notificationSuccess = lipgloss.NewStyle().
				Background(lipgloss.Color("#04B575")).
				Foreground(lipgloss.Color("#FFF")).
				Padding(0, 1).
				Bold(true)

	notificationError = lipgloss.NewStyle().
				Background(lipgloss.Color("#FF4444")).
				Foreground(lipgloss.Color("#FFF")).
				Padding(0, 1).
				Bold(true)
)

// View represents different screens
type View int

const (
	ViewMain View = iota
	ViewDashboard
	ViewSalesPOS
	ViewPurchasePOS
	ViewInventory
	ViewReports
)

// MenuItem for the main menu
type MenuItem struct {
	title       string
	description string
	view        View
}

func (i MenuItem) Title() string       { return i.title }
func (i MenuItem) Description() string { return i.description }
func (i MenuItem) FilterValue() string { return i.title }

type clearNotificationMsg struct{}

// Model is the main TUI model
type Model struct {
	cfg     *Config
	catalog *Catalog
	sink    CommitSink
	log     zerolog.Logger

	view     View
	width    int
	height   int
	mainMenu list.Model
	pos      *posScreen
	posGen   int

	notification     string
	notificationType string // "success" or "error"
	showNotification bool
}

// NewTUI creates a new TUI model
func NewTUI(cfg *Config, catalog *Catalog, sink CommitSink, log zerolog.Logger) Model {
	menuItems := []list.Item{
		MenuItem{"Dashboard", "Business summary & recent activity", ViewDashboard},
		MenuItem{"Sales POS", "Create a sales invoice", ViewSalesPOS},
		MenuItem{"Purchase POS", "Create a purchase invoice", ViewPurchasePOS},
		MenuItem{"Inventory", "Catalog items & stock levels", ViewInventory},
		MenuItem{"Reports", "Sales & tax reports", ViewReports},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	mainMenu := list.New(menuItems, delegate, 0, 0)
	mainMenu.Title = cfg.Brand
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.Styles.Title = titleStyle

	return Model{
		cfg:      cfg,
		catalog:  catalog,
		sink:     sink,
		log:      log,
		view:     ViewMain,
		mainMenu: mainMenu,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func clearNotificationAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mainMenu.SetSize(msg.Width-4, msg.Height-8)
		if m.pos != nil {
			m.pos.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case clearNotificationMsg:
		m.showNotification = false
		return m, nil

	case commitResultMsg:
		// Results from a torn-down POS screen are stale; drop them.
		if m.pos == nil || msg.gen != m.posGen {
			return m, nil
		}
		cmd, closed := m.pos.handleCommitResult(msg)
		if closed {
			m.log.Info().
				Str("number", msg.rec.Number).
				Str("receipt", RenderReceipt(msg.rec)).
				Msg("invoice saved")
			m.notification = fmt.Sprintf("%s saved, total %s",
				msg.rec.Number, msg.rec.Totals.GrandTotal.StringFixed(2))
			m.notificationType = "success"
			m.showNotification = true
			m.pos = nil
			m.view = ViewMain
			return m, clearNotificationAfter(3 * time.Second)
		}
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.view == ViewSalesPOS || m.view == ViewPurchasePOS {
			cmd, closed := m.pos.handleKey(msg)
			if closed {
				m.pos = nil
				m.view = ViewMain
				return m, nil
			}
			return m, cmd
		}

		switch msg.String() {
		case "q":
			if m.view == ViewMain {
				return m, tea.Quit
			}
			m.view = ViewMain
			return m, nil

		case "esc":
			if m.view != ViewMain {
				m.view = ViewMain
			}
			return m, nil

		case "enter":
			if m.view == ViewMain {
				if item, ok := m.mainMenu.SelectedItem().(MenuItem); ok {
					return m.openView(item.view)
				}
			}
			return m, nil
		}

	default:
		if m.pos != nil {
			return m, m.pos.updateInputs(msg)
		}
	}

	if m.view == ViewMain {
		var cmd tea.Cmd
		m.mainMenu, cmd = m.mainMenu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) openView(v View) (tea.Model, tea.Cmd) {
	switch v {
	case ViewSalesPOS:
		m.posGen++
		m.pos = newPOSScreen(salesPOS, m.catalog, m.sink, m.log, m.posGen)
		m.pos.setSize(m.width, m.height)
	case ViewPurchasePOS:
		m.posGen++
		m.pos = newPOSScreen(purchasePOS, m.catalog, m.sink, m.log, m.posGen)
		m.pos.setSize(m.width, m.height)
	}
	m.view = v
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	switch m.view {
	case ViewMain:
		content = m.mainMenu.View()
	case ViewDashboard:
		content = m.renderDashboard()
	case ViewSalesPOS, ViewPurchasePOS:
		if m.pos != nil {
			content = m.pos.View()
		}
	case ViewInventory:
		content = m.renderInventory()
	case ViewReports:
		content = m.renderReports()
	}

	var b strings.Builder

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	if m.showNotification {
		if m.notificationType == "success" {
			b.WriteString(notificationSuccess.Render("✓ " + m.notification))
		} else {
			b.WriteString(notificationError.Render("✗ " + m.notification))
		}
		b.WriteString("\n")
	}

	b.WriteString(content)

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")
	b.WriteString(m.renderCredits())

	return b.String()
}

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf(" %s | %d items in catalog ", m.cfg.Brand, m.catalog.Len())
	return statusBarStyle.Render(status)
}

func (m Model) renderHelp() string {
	var help string
	switch m.view {
	case ViewMain:
		help = "↑/↓: navigate • enter: select • q: quit"
	case ViewDashboard, ViewInventory, ViewReports:
		help = "esc: back • q: main menu"
	case ViewSalesPOS, ViewPurchasePOS:
		if m.pos != nil {
			help = m.pos.helpLine()
		}
	}
	return helpStyle.Render(help)
}

func (m Model) renderCredits() string {
	return creditStyle.Render(fmt.Sprintf("%s %s • v%s", m.cfg.Brand, Year, Version))
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	cards := []struct {
		label string
		value string
		delta string
	}{
		{"Total Revenue", "₹2,45,680", "+12.5%"},
		{"Total Expenses", "₹1,58,420", "-8.2%"},
		{"Inventory Value", "₹3,21,450", "+5.8%"},
		{"Active Customers", "1,247", "+18.3%"},
	}

	var rendered []string
	for _, c := range cards {
		body := fmt.Sprintf("%s\n%s\n%s",
			dimStyle.Render(c.label),
			lipgloss.NewStyle().Bold(true).Render(c.value),
			successStyle.Render(c.delta))
		rendered = append(rendered, boxStyle.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render("Recent Transactions"))
	b.WriteString("\n")

	if store, ok := m.sink.(*LedgerStore); ok {
		records, err := store.Recent(5)
		if err == nil && len(records) > 0 {
			for _, rec := range records {
				b.WriteString(fmt.Sprintf("  %-20s %-10s %12s  %s\n",
					rec.Number, rec.Kind,
					rec.Totals.GrandTotal.StringFixed(2),
					dimStyle.Render(rec.CreatedAt.Format("2006-01-02 15:04"))))
			}
			return b.String()
		}
	}
	b.WriteString(dimStyle.Render("  No transactions yet. Open Sales POS to create one."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderInventory() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Inventory"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %-8s %-24s %10s %7s %6s  %s\n",
		"CODE", "NAME", "PRICE", "STOCK", "UNIT", "STATUS"))
	b.WriteString("  " + strings.Repeat("-", 68) + "\n")

	for _, item := range m.catalog.Items() {
		status := item.StockStatus()
		var styled string
		switch status {
		case "Out of Stock":
			styled = stockOutStyle.Render(status)
		case "Low Stock":
			styled = stockLowStyle.Render(status)
		default:
			styled = stockOKStyle.Render(status)
		}
		b.WriteString(fmt.Sprintf("  %-8s %-24s %10s %7d %6s  %s\n",
			item.Code, truncate(item.Name, 24),
			item.Price.StringFixed(2), item.Stock, item.Unit, styled))
	}

	return b.String()
}

// RunTUI starts the interactive application
func RunTUI(cfg *Config, catalog *Catalog, sink CommitSink, log zerolog.Logger) error {
	p := tea.NewProgram(NewTUI(cfg, catalog, sink, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) renderReports() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Reports"))
	b.WriteString("\n\n")

	if store, ok := m.sink.(*LedgerStore); ok {
		records, err := store.Recent(0)
		if err == nil && len(records) > 0 {
			totals := CalculateTotals(nil)
			var count int
			for _, rec := range records {
				if rec.Kind != "sale" {
					continue
				}
				count++
				totals.Subtotal = totals.Subtotal.Add(rec.Totals.Subtotal)
				totals.DiscountAmount = totals.DiscountAmount.Add(rec.Totals.DiscountAmount)
				totals.TaxAmount = totals.TaxAmount.Add(rec.Totals.TaxAmount)
				totals.GrandTotal = totals.GrandTotal.Add(rec.Totals.GrandTotal)
			}
			b.WriteString(fmt.Sprintf("  Sales invoices:  %d\n", count))
			b.WriteString(fmt.Sprintf("  Gross sales:     %s\n", totals.Subtotal.StringFixed(2)))
			b.WriteString(fmt.Sprintf("  Discounts given: %s\n", totals.DiscountAmount.StringFixed(2)))
			b.WriteString(fmt.Sprintf("  Tax collected:   %s\n", totals.TaxAmount.StringFixed(2)))
			b.WriteString(fmt.Sprintf("  Net revenue:     %s\n", totals.GrandTotal.StringFixed(2)))
			return b.String()
		}
	}
	b.WriteString(dimStyle.Render("  No data yet. Committed invoices will show up here."))
	b.WriteString("\n")

	return b.String()
}
