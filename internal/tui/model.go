package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/view"
)

const playTickInterval = time.Second

// PlayTickMsg accrues play time. Gen ties it to the tick chain that
// produced it so chains from before a pause die out.
type PlayTickMsg struct {
	Gen int
}

type Model struct {
	session *game.Session
	keys    KeyMap
	cursor  game.Position
	tickGen int
	flash   string
	width   int
	height  int
}

// NewModel creates the TUI over an existing session.
func NewModel(session *game.Session) Model {
	return Model{
		session: session,
		keys:    Keys,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func playTickCmd(gen int) tea.Cmd {
	return tea.Tick(playTickInterval, func(time.Time) tea.Msg {
		return PlayTickMsg{Gen: gen}
	})
}

// startTicking begins a fresh tick chain, orphaning any older one.
func (m *Model) startTicking() tea.Cmd {
	m.tickGen++
	return playTickCmd(m.tickGen)
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case PlayTickMsg:
		return m.handlePlayTick(msg)
	}
	return m, nil
}

func (m Model) handlePlayTick(msg PlayTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.session.State() != game.StatePlaying {
		return m, nil
	}
	m.session.Tick(playTickInterval)
	return m, playTickCmd(m.tickGen)
}

// --- Key handlers ---

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.session.State() {
	case game.StateMenu:
		return m.handleMenuKeys(msg)
	case game.StatePlaying:
		return m.handlePlayingKeys(msg)
	case game.StatePaused:
		return m.handlePausedKeys(msg)
	case game.StateGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rules := m.session.Rules()

	switch {
	case key.Matches(msg, m.keys.Select):
		idx := int(msg.String()[0] - '1')
		if err := m.session.SelectIndex(idx); err != nil {
			m.flash = fmt.Sprintf("no piece %d", idx+1)
		} else {
			m.flash = ""
		}
	case key.Matches(msg, m.keys.Next):
		m.selectNext()
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, rules.Rows-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, rules.Cols-1)
	case key.Matches(msg, m.keys.Place):
		m.place()
	case key.Matches(msg, m.keys.Hint):
		m.hint()
	case key.Matches(msg, m.keys.Pause):
		m.session.Pause()
	case key.Matches(msg, m.keys.Restart):
		return m.start()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePausedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		if m.session.Resume() {
			return m, m.startTicking()
		}
	case key.Matches(msg, m.keys.Restart):
		return m.start()
	case key.Matches(msg, m.keys.Menu):
		m.session.ReturnToMenu()
		m.flash = ""
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Restart), key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Menu):
		m.session.ReturnToMenu()
		m.flash = ""
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	m.session.Start()
	m.cursor = game.Position{}
	m.flash = ""
	if m.session.State() != game.StatePlaying {
		return m, nil
	}
	_ = m.session.SelectIndex(0)
	return m, m.startTicking()
}

// selectNext cycles the selection through the current set.
func (m *Model) selectNext() {
	snap := m.session.Snapshot()
	if len(snap.Pieces) == 0 {
		return
	}
	next := 0
	for i, p := range snap.Pieces {
		if p.ID == snap.Selected {
			next = (i + 1) % len(snap.Pieces)
			break
		}
	}
	if err := m.session.SelectIndex(next); err == nil {
		m.flash = ""
	}
}

// hint moves the cursor to the first anchor where the selected piece fits.
func (m *Model) hint() {
	snap := m.session.Snapshot()
	p := snap.Piece(snap.Selected)
	if p == nil {
		m.flash = "pick a piece first"
		return
	}
	spots := snap.Board.Placements(p)
	if len(spots) == 0 {
		m.flash = "no room for that piece"
		return
	}
	m.cursor = spots[0]
	m.flash = fmt.Sprintf("%d spots", len(spots))
}

func (m *Model) place() {
	res, err := m.session.PlaceSelected(m.cursor)
	switch {
	case errors.Is(err, game.ErrNoSelection):
		m.flash = "pick a piece first"
		return
	case errors.Is(err, game.ErrIllegalPlacement):
		m.flash = "it doesn't fit there"
		return
	case err != nil:
		m.flash = err.Error()
		return
	}

	switch {
	case res.Lines == 1:
		m.flash = fmt.Sprintf("+%d  1 line", res.Points)
	case res.Lines > 1:
		m.flash = fmt.Sprintf("+%d  %d lines!", res.Points, res.Lines)
	default:
		m.flash = ""
	}

	if !res.GameOver && m.session.Selected() == "" {
		_ = m.session.SelectIndex(0)
	}
}

// --- View ---

func (m Model) View() string {
	snap := m.session.Snapshot()

	switch snap.State {
	case game.StateMenu:
		return m.renderCentered(RenderMenu(snap.Stats.HighScore))
	case game.StatePaused:
		return m.renderCentered(RenderPaused(snap.Stats))
	case game.StateGameOver:
		return m.renderCentered(RenderGameOver(snap.Stats))
	}
	return m.renderPlaying(snap)
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying(snap game.Snapshot) string {
	grid := view.Project(snap.Board, snap.Piece(snap.Selected), m.cursor)
	board := RenderBoard(grid, m.cursor)
	tray := RenderTray(snap.Pieces, snap.Selected)
	info := RenderInfo(snap.Stats)

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info)

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			board,
			"",
			tray,
			flashStyle.Render(m.flash),
			RenderHelp(m.keys.PlayingHelp()),
		))

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	)
	return m.renderCentered(mainContent)
}

// Cursor returns the current anchor cell.
func (m Model) Cursor() game.Position {
	return m.cursor
}

// Flash returns the last status line.
func (m Model) Flash() string {
	return m.flash
}
