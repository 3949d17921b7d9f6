package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/microbooks/microbooks/internal/client"
)

type stockLoadedMsg struct {
	listing *client.StockListing
	err     error
}

type stockModel struct {
	listing *client.StockListing
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

func (m *stockModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		listing, err := c.ListStock(context.Background(), "")
		return stockLoadedMsg{listing: listing, err: err}
	}
}

func (m stockModel) update(msg tea.Msg) (stockModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stockLoadedMsg:
		m.loading = false
		m.listing = msg.listing
		m.err = msg.err
		m.cursor = 0

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.listing != nil && m.cursor < len(m.listing.Items)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *stockModel) view() string {
	if m.loading {
		return "Loading stock..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.listing == nil || len(m.listing.Items) == 0 {
		return dimStyle.Render("No stock items found.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Stock"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-10s %-30s %8s %12s %12s %-12s", "CODE", "NAME", "QTY", "UNIT PRICE", "VALUE", "STATUS")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	maxRows := m.height - 6
	if maxRows < 1 {
		maxRows = 10
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.listing.Items) && i < start+maxRows; i++ {
		item := m.listing.Items[i]
		name := item.ItemName
		if len(name) > 28 {
			name = name[:26] + ".."
		}
		line := fmt.Sprintf("  %-10s %-30s %8.0f %12.2f %12.2f %-12s",
			item.ItemCode, name, item.Quantity, item.UnitPrice, item.Value, item.Status)
		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		case item.Quantity <= 0:
			b.WriteString(errorStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %d items   total qty %.0f   total value %.2f",
		len(m.listing.Items), m.listing.TotalQuantity, m.listing.TotalValue))
	return b.String()
}
