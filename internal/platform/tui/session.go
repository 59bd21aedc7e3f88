package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/termgames/mastermind/internal/config"
	"github.com/termgames/mastermind/internal/stats"
)

// Options carries everything a session needs at startup. Colors and Tries
// must already be clamped to the engine bounds by the caller.
type Options struct {
	Colors  int
	Tries   int
	Seed    int64 // 0 means time-based; applies to the first game only
	UI      config.UISettings
	ScreenW int
	ScreenH int

	// Logger and SessionID are set by the SSH server so game results can
	// be correlated with connections. Both stay zero for local play.
	Logger    *log.Logger
	SessionID string
}

// SessionModel manages one player's sitting: the board, the session tally
// screen, and the flow between them. It is the top-level model for both
// local play and SSH sessions.
type SessionModel struct {
	opts      Options
	tally     *stats.Tally
	board     BoardModel
	tallyView TallyModel
	showTally bool
	quitting  bool
}

// NewSessionModel creates a session with a fresh tally and a first game.
func NewSessionModel(opts Options) SessionModel {
	tally := &stats.Tally{}
	return SessionModel{
		opts:  opts,
		tally: tally,
		board: NewBoardModel(opts, tally),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.board.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size globally so screen switches keep dimensions.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.ScreenW = wsm.Width
		m.opts.ScreenH = wsm.Height
	}

	if m.showTally {
		return m.updateTally(msg)
	}
	return m.updateBoard(msg)
}

// updateBoard handles updates while the board is showing.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(BoardModel); ok {
		m.board = board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.WantsTally() {
		m.board.wantTally = false
		m.tallyView = NewTallyModel(m.tally, m.opts.ScreenW, m.opts.ScreenH)
		m.showTally = true
		return m, m.tallyView.Init()
	}

	return m, cmd
}

// updateTally handles updates while the tally screen is showing.
func (m SessionModel) updateTally(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.tallyView.Update(msg)
	if tallyView, ok := newModel.(TallyModel); ok {
		m.tallyView = tallyView
	}

	if m.tallyView.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.tallyView.IsGoingBack() {
		m.showTally = false
		return m, textinputBlinkIfPlaying(m.board)
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showTally {
		return m.tallyView.View()
	}
	return m.board.View()
}

// textinputBlinkIfPlaying restarts the cursor blink when returning to a
// board that still accepts input.
func textinputBlinkIfPlaying(b BoardModel) tea.Cmd {
	if b.input.Focused() {
		return b.Init()
	}
	return nil
}

// Run starts a local full-screen session and blocks until it ends.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
