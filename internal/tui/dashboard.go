package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
)

type dashboardLoadedMsg struct {
	summary *books.DashboardSummary
	err     error
}

type dashboardModel struct {
	summary *books.DashboardSummary
	loading bool
	err     error
	width   int
	height  int
}

func (m *dashboardModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		summary, err := c.Dashboard(context.Background())
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err
	}
	return m, nil
}

func (m *dashboardModel) view() string {
	if m.loading {
		return "Loading dashboard..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.summary == nil {
		return dimStyle.Render("No data available.")
	}

	s := m.summary
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n")

	cards := []string{
		boxStyle.Render(fmt.Sprintf("Revenue\n%.2f", s.TotalRevenue)),
		boxStyle.Render(fmt.Sprintf("Inventory Value\n%.2f", s.InventoryValue)),
		boxStyle.Render(fmt.Sprintf("Accounts\n%d", s.AccountCount)),
		boxStyle.Render(fmt.Sprintf("Vouchers\n%d", s.VoucherCount)),
		boxStyle.Render(fmt.Sprintf("Invoices\n%d", s.SaleCount)),
		boxStyle.Render(fmt.Sprintf("Stock Items\n%d", s.StockItemCount)),
	}
	b.WriteString(joinCards(cards, m.width))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("  Recent Vouchers"))
	b.WriteString("\n")
	if len(s.RecentVouchers) == 0 {
		b.WriteString(dimStyle.Render("    (none)") + "\n")
	}
	for _, v := range s.RecentVouchers {
		debit, _ := books.LineTotals(v.Lines)
		b.WriteString(fmt.Sprintf("    %-12s %-12s %-10s %12.2f\n", v.VoucherNo, v.Date, v.Type, debit))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("  Recent Sales"))
	b.WriteString("\n")
	if len(s.RecentSales) == 0 {
		b.WriteString(dimStyle.Render("    (none)") + "\n")
	}
	for _, inv := range s.RecentSales {
		customer := inv.Customer
		if len(customer) > 24 {
			customer = customer[:22] + ".."
		}
		b.WriteString(fmt.Sprintf("    %-12s %-12s %-26s %12.2f\n", inv.InvoiceNo, inv.Date, customer, inv.Total))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("  Low Stock"))
	b.WriteString("\n")
	if len(s.LowStock) == 0 {
		b.WriteString(successStyle.Render("    All items sufficiently stocked.") + "\n")
	}
	for _, item := range s.LowStock {
		name := item.ItemName
		if len(name) > 28 {
			name = name[:26] + ".."
		}
		line := fmt.Sprintf("    %-10s %-30s qty %.0f", item.ItemCode, name, item.Quantity)
		if item.Quantity <= 0 {
			b.WriteString(errorStyle.Render(line))
		} else {
			b.WriteString(warnStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func joinCards(cards []string, width int) string {
	// Stack cards when the terminal is too narrow for one row.
	perRow := len(cards)
	if width > 0 && width < 20*len(cards) {
		perRow = width / 20
		if perRow < 1 {
			perRow = 1
		}
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}
