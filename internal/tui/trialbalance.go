package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/microbooks/microbooks/internal/books"
	"github.com/microbooks/microbooks/internal/client"
)

type trialBalanceLoadedMsg struct {
	tb  *books.TrialBalance
	err error
}

type trialBalanceModel struct {
	tb      *books.TrialBalance
	loading bool
	err     error
	width   int
	height  int
}

func (m *trialBalanceModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		tb, err := c.TrialBalance(context.Background(), "")
		return trialBalanceLoadedMsg{tb: tb, err: err}
	}
}

func (m trialBalanceModel) update(msg tea.Msg) (trialBalanceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case trialBalanceLoadedMsg:
		m.loading = false
		m.tb = msg.tb
		m.err = msg.err
	}
	return m, nil
}

func (m *trialBalanceModel) view() string {
	if m.loading {
		return "Loading trial balance..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.tb == nil {
		return dimStyle.Render("No data available.")
	}

	var b strings.Builder
	w := m.width
	if w < 60 {
		w = 80
	}

	nameW := w - 40
	if nameW < 16 {
		nameW = 16
	}
	if nameW > 44 {
		nameW = 44
	}

	b.WriteString(titleStyle.Render(centerStr("TRIAL BALANCE", w)))
	b.WriteString("\n")

	for _, group := range m.tb.Groups {
		b.WriteString(fmt.Sprintf("  %s\n", headerStyle.Render(strings.ToUpper(string(group.Type)))))
		for _, row := range group.Rows {
			name := row.Name
			if len(name) > nameW-2 {
				name = name[:nameW-2] + ".."
			}
			debit := ""
			credit := ""
			if row.Debit > 0 {
				debit = fmt.Sprintf("%.2f", row.Debit)
			}
			if row.Credit > 0 {
				credit = fmt.Sprintf("%.2f", row.Credit)
			}
			b.WriteString(fmt.Sprintf("    %-8s %-*s %12s %12s\n", row.Code, nameW, name, debit, credit))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("    %s\n", strings.Repeat("═", w-8)))
	b.WriteString(fmt.Sprintf("    %-*s %12.2f %12.2f\n", nameW+9, "TOTALS", m.tb.TotalDebit, m.tb.TotalCredit))

	b.WriteString("\n")
	if m.tb.Balanced {
		b.WriteString(successStyle.Render("    [BALANCED]"))
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("    [UNBALANCED! difference %.2f]", m.tb.Difference)))
	}

	return b.String()
}

func centerStr(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := (w - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
