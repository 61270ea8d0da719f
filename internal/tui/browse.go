// Package tui provides the interactive classified-item browser.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apothecary-tools/apothecary/internal/cli"
	"github.com/apothecary-tools/apothecary/internal/model"
)

// Model is the bubbletea model for the browse view.
type Model struct {
	table table.Model
	items []model.ClassifiedItem
}

// NewModel builds the browse table over a classified sequence. The rows keep
// the engine's descending-amount order.
func NewModel(items []model.ClassifiedItem) Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 28},
		{Title: "Amount", Width: 12},
		{Title: "%Total", Width: 8},
		{Title: "Cum%", Width: 8},
		{Title: "ABC", Width: 4},
		{Title: "VEN", Width: 4},
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			strconv.Itoa(item.ID),
			item.Name,
			fmt.Sprintf("%.2f", item.Amount),
			fmt.Sprintf("%.2f", item.PercentOfTotal),
			fmt.Sprintf("%.2f", item.CumulativePercent),
			tierCell(item.Tier),
			string(item.Criticality),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#333"))
	styles.Selected = styles.Selected.
		Foreground(cli.PrimaryColor).
		Bold(true)
	t.SetStyles(styles)

	return Model{table: t, items: items}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 4)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	title := cli.FormatTitle(fmt.Sprintf("Classified items (%d)", len(m.items)))
	help := cli.SubtleStyle.Render("↑/↓ move · q quit")
	return title + "\n" + m.table.View() + "\n" + help + "\n"
}

// tierCell renders an ABC label in its tier color.
func tierCell(tier model.Tier) string {
	return cli.TierStyle(string(tier)).Render(string(tier))
}

// Browse runs the interactive browser until the user quits.
func Browse(items []model.ClassifiedItem) error {
	program := tea.NewProgram(NewModel(items), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
