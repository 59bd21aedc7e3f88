package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/termgames/mastermind/internal/config"
	"github.com/termgames/mastermind/internal/game"
	"github.com/termgames/mastermind/internal/stats"
)

// Minimum terminal size for the board. Below this the board view degrades
// to a resize hint instead of clipping rows.
const (
	minBoardWidth  = 40
	minBoardHeight = 12
)

// guessRow is one submitted guess with its feedback.
type guessRow struct {
	code  game.Code
	black int
	white int
}

// BoardModel is the Bubble Tea model for the game board: guess history,
// the input line, and the end-of-game banner.
type BoardModel struct {
	cfg  game.Config
	ui   config.UISettings
	g    *game.Game
	rows []guessRow

	input    textinput.Model
	inputErr string

	keys BoardKeyMap
	help help.Model

	tally     *stats.Tally
	logger    *log.Logger
	sessionID string

	width     int
	height    int
	wantTally bool
	quitting  bool
	recorded  bool
}

// NewBoardModel creates a board for one session. The tally outlives
// individual games; a nil logger disables result logging.
func NewBoardModel(opts Options, tally *stats.Tally) BoardModel {
	cfg := game.Config{Colors: opts.Colors, Tries: opts.Tries, Seed: opts.Seed}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "0 1 2 3"
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return BoardModel{
		cfg:       cfg,
		ui:        opts.UI,
		g:         game.New(cfg),
		input:     ti,
		keys:      DefaultBoardKeyMap(),
		help:      h,
		tally:     tally,
		logger:    opts.Logger,
		sessionID: opts.SessionID,
		width:     opts.ScreenW,
		height:    opts.ScreenH,
	}
}

// Init starts the cursor blink.
func (m BoardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tally):
			m.wantTally = true
			return m, nil
		}

		if m.g.Status() == game.StatusInProgress {
			if key.Matches(msg, m.keys.Submit) {
				m.submitGuess()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		// Game over: the board is read-only until a new game starts.
		if key.Matches(msg, m.keys.NewGame) {
			m.startNewGame()
			return m, textinput.Blink
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitGuess parses the input line and plays it. Malformed input never
// reaches the engine, so it costs no turn.
func (m *BoardModel) submitGuess() {
	code, err := game.ParseCode(m.input.Value())
	if err != nil {
		m.inputErr = err.Error()
		return
	}

	m.inputErr = ""
	black, white, _ := m.g.Guess(code)
	m.rows = append(m.rows, guessRow{code: code, black: black, white: white})
	m.input.Reset()

	if m.g.Status() != game.StatusInProgress {
		m.recordResult()
	}
}

// recordResult pushes the finished game into the session tally, once.
func (m *BoardModel) recordResult() {
	if m.recorded {
		return
	}
	m.recorded = true
	m.input.Blur()

	res := m.tally.Record(stats.Result{
		Won:       m.g.Status() == game.StatusWon,
		TurnsUsed: m.cfg.Tries - m.g.TurnsLeft(),
		Colors:    m.cfg.Colors,
		Tries:     m.cfg.Tries,
	})

	if m.logger != nil {
		m.logger.Info("game finished",
			"session", m.sessionID,
			"game", res.ID,
			"result", m.g.Status().String(),
			"turns", res.TurnsUsed,
		)
	}
}

// startNewGame draws a fresh secret and clears the board. Each game gets
// its own time-based seed; only the very first game honors a fixed seed.
func (m *BoardModel) startNewGame() {
	m.cfg.Seed = time.Now().UnixNano()
	m.g = game.New(m.cfg)
	m.rows = nil
	m.inputErr = ""
	m.recorded = false
	m.input.Reset()
	m.input.Focus()
}

// WantsTally reports that the user asked to see the session tally.
// SessionModel reads and clears this.
func (m BoardModel) WantsTally() bool {
	return m.wantTally
}

// IsQuitting returns true if the user requested to quit.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < minBoardWidth || m.height < minBoardHeight) {
		return centerText("Terminal too small", m.width) + "\n" +
			centerText("Resize to continue", m.width)
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("MASTERMIND", m.width)))
	b.WriteString("\n\n")

	b.WriteString("  " + m.hudLine())
	b.WriteString("\n\n")

	b.WriteString(m.renderRows())

	switch m.g.Status() {
	case game.StatusInProgress:
		b.WriteString("  " + m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
			b.WriteString("  " + errStyle.Render(m.inputErr))
			b.WriteString("\n")
		}
	case game.StatusWon:
		wonStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		b.WriteString("  " + wonStyle.Render("Congratulations! You win!"))
		b.WriteString("\n")
	case game.StatusLost:
		lostStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		b.WriteString("  " + lostStyle.Render("Sorry! You lost!"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  The hidden pegs: %s", RenderCode(m.g.Reveal(), m.ui.UnicodePegs)))
		b.WriteString("\n")
	}

	if m.ui.ShowPalette {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString("\n")
		b.WriteString("  " + dimStyle.Render("colors:") + " " + RenderPalette(m.cfg.Colors))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("  " + helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// hudLine renders the one-line status above the board.
func (m BoardModel) hudLine() string {
	snap := m.g.Snapshot()
	switch snap.Status {
	case game.StatusWon:
		return fmt.Sprintf("Cracked in %d turns — %d colors", m.cfg.Tries-snap.TurnsLeft, snap.Colors)
	case game.StatusLost:
		return fmt.Sprintf("Out of turns — %d colors", snap.Colors)
	default:
		return fmt.Sprintf("Turn %d/%d — %d colors", len(m.rows)+1, snap.Tries, snap.Colors)
	}
}

// renderRows renders the guess history, clipping the oldest rows when the
// terminal is short.
func (m BoardModel) renderRows() string {
	if len(m.rows) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		return "  " + dimStyle.Render("No guesses yet.") + "\n\n"
	}

	// Rough budget: everything that is not history needs about ten lines.
	visible := m.rows
	hidden := 0
	if m.height > 0 {
		budget := m.height - 10
		if budget < 1 {
			budget = 1
		}
		if len(visible) > budget {
			hidden = len(visible) - budget
			visible = visible[hidden:]
		}
	}

	var b strings.Builder
	if hidden > 0 {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("(%d earlier guesses hidden)", hidden)))
		b.WriteString("\n")
	}
	for i, row := range visible {
		b.WriteString(fmt.Sprintf("  %2d. %s   %s",
			hidden+i+1,
			RenderCode(row.code, m.ui.UnicodePegs),
			RenderKeys(row.black, row.white, m.ui.UnicodePegs),
		))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
