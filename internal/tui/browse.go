// Package tui implements the interactive expense browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/gontzess/expense-tracker/internal/cli"
	"github.com/gontzess/expense-tracker/internal/model"
	"github.com/gontzess/expense-tracker/internal/store"
)

// Browse modes. List is the zero value so a fresh App starts there.
const (
	modeList    = iota // table navigation (default)
	modeFilter         // typing in the memo filter
	modeConfirm        // delete confirmation pending
)

const minTableHeight = 5

// Styles
var (
	helpStyle   = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	statusStyle = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(cli.ColorRed)
	totalStyle  = lipgloss.NewStyle().Foreground(cli.ColorText).Bold(true)
)

// App is the interactive browser over the expense table.
type App struct {
	store *store.Store

	// Data
	expenses []model.Expense // every row, refreshed after deletes
	visible  []model.Expense // rows matching the filter, table order

	// UI state
	tbl    table.Model
	filter textinput.Model
	mode   int
	status string
}

// NewApp creates the browse model over preloaded expenses.
func NewApp(s *store.Store, expenses []model.Expense) App {
	ti := textinput.New()
	ti.Placeholder = "filter memos"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 30

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Date", Width: 10},
			{Title: "Amount", Width: 12},
			{Title: "Memo", Width: 40},
		}),
		table.WithFocused(true),
		table.WithHeight(minTableHeight),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Foreground(cli.ColorAccent).Bold(true)
	st.Selected = st.Selected.Foreground(cli.ColorText).Background(cli.ColorBorder)
	tbl.SetStyles(st)

	a := App{store: s, expenses: expenses, filter: ti, tbl: tbl}
	a.applyFilter()
	return a
}

// applyFilter recomputes the visible rows from the current filter text.
func (a *App) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(a.filter.Value()))

	a.visible = nil
	for _, e := range a.expenses {
		if query == "" || strings.Contains(strings.ToLower(e.Memo), query) {
			a.visible = append(a.visible, e)
		}
	}

	rows := make([]table.Row, len(a.visible))
	for i, e := range a.visible {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.CreatedOn.Format(model.DateLayout),
			fmt.Sprintf("%12s", cli.FormatAmount(e.Amount)),
			e.Memo,
		}
	}
	a.tbl.SetRows(rows)
	if c := a.tbl.Cursor(); c >= len(rows) && len(rows) > 0 {
		a.tbl.SetCursor(len(rows) - 1)
	}
}

// selected returns the expense under the cursor.
func (a App) selected() (model.Expense, bool) {
	c := a.tbl.Cursor()
	if c < 0 || c >= len(a.visible) {
		return model.Expense{}, false
	}
	return a.visible[c], true
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Chrome above and below the table: title box, filter
		// line, total, status, and help.
		h := msg.Height - 9
		if h < minTableHeight {
			h = minTableHeight
		}
		a.tbl.SetHeight(h)
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeFilter:
			return a.updateFilter(msg)
		case modeConfirm:
			return a.updateConfirm(msg)
		default:
			return a.updateList(msg)
		}
	}

	var cmd tea.Cmd
	a.tbl, cmd = a.tbl.Update(msg)
	return a, cmd
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "/":
		a.mode = modeFilter
		a.status = ""
		a.filter.Focus()
		return a, textinput.Blink
	case "d":
		if sel, ok := a.selected(); ok {
			a.mode = modeConfirm
			a.status = warnStyle.Render(fmt.Sprintf("Delete expense %d (%s)? [y/n]", sel.ID, sel.Memo))
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.tbl, cmd = a.tbl.Update(msg)
	return a, cmd
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.mode = modeList
		a.filter.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.applyFilter()
	return a, cmd
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.mode = modeList
	a.status = ""

	if strings.ToLower(msg.String()) != "y" {
		return a, nil
	}
	sel, ok := a.selected()
	if !ok {
		return a, nil
	}

	if _, err := a.store.DeleteByID(sel.ID); err != nil {
		a.status = warnStyle.Render(fmt.Sprintf("Delete failed: %v", err))
		return a, nil
	}

	expenses, err := a.store.All()
	if err != nil {
		a.status = warnStyle.Render(fmt.Sprintf("Reload failed: %v", err))
		return a, nil
	}
	a.expenses = expenses
	a.applyFilter()
	a.status = statusStyle.Render(fmt.Sprintf("Deleted expense %d.", sel.ID))
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString(cli.RenderTitle("Expenses"))
	b.WriteString("\n")
	b.WriteString(a.filter.View())
	b.WriteString("\n\n")

	if len(a.visible) == 0 {
		b.WriteString(helpStyle.Render("No matching expenses."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.tbl.View())
		b.WriteString("\n")

		total := decimal.Zero
		for _, e := range a.visible {
			total = total.Add(e.Amount)
		}
		b.WriteString(totalStyle.Render(fmt.Sprintf("Total %s", cli.FormatAmount(total))))
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString(a.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("[/] filter  [d] delete  [q] quit"))

	return b.String()
}
