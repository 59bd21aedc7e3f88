package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/mastermind/internal/stats"
)

// TallyModel is the Bubble Tea model for the session tally screen: every
// finished game of the current sitting, newest first, plus the aggregate
// line.
type TallyModel struct {
	tally     *stats.Tally
	table     table.Model
	help      help.Model
	keys      TallyKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewTallyModel creates a tally screen over the session's results.
func NewTallyModel(tally *stats.Tally, width, height int) TallyModel {
	h := help.New()
	h.ShowAll = false

	m := TallyModel{
		tally:  tally,
		keys:   DefaultTallyKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the results table sized for the current terminal.
func (m *TallyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Result", Width: 8},
		{Title: "Turns", Width: 7},
		{Title: "Colors", Width: 7},
		{Title: "When", Width: 10},
	}

	height := m.height - 8 // Leave room for title, summary, help, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the recorded games, newest first.
func (m *TallyModel) updateTableRows() {
	results := m.tally.Results()

	rows := make([]table.Row, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			outcome,
			fmt.Sprintf("%d/%d", r.TurnsUsed, r.Tries),
			fmt.Sprintf("%d", r.Colors),
			r.When.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m TallyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tally screen.
func (m TallyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tally screen.
func (m TallyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION TALLY", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summaryLine renders the aggregate counts for the session.
func (m TallyModel) summaryLine() string {
	sum := m.tally.Summary()
	line := fmt.Sprintf("Games: %d   Won: %d   Lost: %d", sum.Games, sum.Wins, sum.Losses)
	if sum.BestWin > 0 {
		line += fmt.Sprintf("   Best win: %d turns", sum.BestWin)
	}
	return line
}

// renderTableContent renders the table or an empty-state message.
func (m TallyModel) renderTableContent() string {
	if len(m.tally.Results()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No games finished yet.\nCrack a code first!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the board.
func (m TallyModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m TallyModel) IsQuitting() bool {
	return m.quitting
}
