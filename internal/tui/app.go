package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/microbooks/microbooks/internal/client"
)

type mode int

const (
	modeDashboard mode = iota
	modeTrialBalance
	modeStock
	modeVouchers
)

var tabModes = []mode{modeDashboard, modeTrialBalance, modeStock, modeVouchers}

func tabLabel(m mode) string {
	switch m {
	case modeDashboard:
		return "Dashboard"
	case modeTrialBalance:
		return "Trial Balance"
	case modeStock:
		return "Stock"
	case modeVouchers:
		return "Vouchers"
	default:
		return ""
	}
}

type App struct {
	client        *client.Client
	mode          mode
	tabIndex      int
	width, height int
	err           error

	dashboard    dashboardModel
	trialBalance trialBalanceModel
	stock        stockModel
	voucherList  voucherListModel
}

func NewApp(c *client.Client) *App {
	return &App{
		client:   c,
		mode:     modeDashboard,
		tabIndex: 0,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.init(a.client),
		a.trialBalance.init(a.client),
		a.stock.init(a.client),
		a.voucherList.init(a.client),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.width = msg.Width
		a.dashboard.height = msg.Height - 6
		a.trialBalance.width = msg.Width
		a.trialBalance.height = msg.Height - 6
		a.stock.width = msg.Width
		a.stock.height = msg.Height - 6
		a.voucherList.width = msg.Width
		a.voucherList.height = msg.Height - 6
		return a, nil
	}

	// Route data-loaded messages to the owning sub-model regardless of active
	// mode: Init fires all four loads concurrently but the bottom delegation
	// only reaches the active tab's model.
	switch msg.(type) {
	case dashboardLoadedMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, cmd
	case trialBalanceLoadedMsg:
		var cmd tea.Cmd
		a.trialBalance, cmd = a.trialBalance.update(msg)
		return a, cmd
	case stockLoadedMsg:
		var cmd tea.Cmd
		a.stock, cmd = a.stock.update(msg)
		return a, cmd
	case vouchersLoadedMsg:
		var cmd tea.Cmd
		a.voucherList, cmd = a.voucherList.update(msg)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, a.refreshTab()

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, a.refreshTab()

		case key.Matches(msg, keys.Refresh):
			return a, a.refreshTab()
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case modeTrialBalance:
		a.trialBalance, cmd = a.trialBalance.update(msg)
	case modeStock:
		a.stock, cmd = a.stock.update(msg)
	case modeVouchers:
		a.voucherList, cmd = a.voucherList.update(msg)
	}
	return a, cmd
}

func (a *App) refreshTab() tea.Cmd {
	switch a.mode {
	case modeDashboard:
		return a.dashboard.init(a.client)
	case modeTrialBalance:
		return a.trialBalance.init(a.client)
	case modeStock:
		return a.stock.init(a.client)
	case modeVouchers:
		return a.voucherList.init(a.client)
	}
	return nil
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeDashboard:
		content = a.dashboard.view()
	case modeTrialBalance:
		content = a.trialBalance.view()
	case modeStock:
		content = a.stock.view()
	case modeVouchers:
		content = a.voucherList.view()
	}

	status := ""
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	helpText := dimStyle.Render("tab:switch  r:refresh  up/down:move  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		status,
		helpText,
	)
}
