package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
)

type vouchersLoadedMsg struct {
	vouchers []books.Voucher
	err      error
}

type voucherListModel struct {
	vouchers []books.Voucher
	cursor   int
	loading  bool
	err      error
	width    int
	height   int
}

func (m *voucherListModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		vouchers, err := c.ListVouchers(context.Background())
		return vouchersLoadedMsg{vouchers: vouchers, err: err}
	}
}

func (m voucherListModel) update(msg tea.Msg) (voucherListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case vouchersLoadedMsg:
		m.loading = false
		m.vouchers = msg.vouchers
		m.err = msg.err
		m.cursor = 0

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.vouchers)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *voucherListModel) view() string {
	if m.loading {
		return "Loading vouchers..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.vouchers) == 0 {
		return dimStyle.Render("No vouchers found.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Vouchers"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-12s %-12s %-10s %-20s %6s %12s", "VOUCHER", "DATE", "TYPE", "REFERENCE", "LINES", "AMOUNT")
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

	for i := start; i < len(m.vouchers) && i < start+maxRows; i++ {
		v := m.vouchers[i]
		ref := v.Reference
		if len(ref) > 18 {
			ref = ref[:16] + ".."
		}
		debit, _ := books.LineTotals(v.Lines)
		line := fmt.Sprintf("  %-12s %-12s %-10s %-20s %6d %12.2f",
			v.VoucherNo, v.Date, v.Type, ref, len(v.Lines), debit)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %d vouchers", len(m.vouchers)))
	return b.String()
}
