package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session *engine.Session
	driver  *engine.Driver
	screen  *core.Screen
	keys    *KeyMapper
	config  core.RuntimeConfig
	in      core.InputFrame
	name    textinput.Model
	board   table.Model
	entries []leaderboard.Entry
	notice  string
	width   int
	height  int

	paused   bool
	quitting bool
}

// NewModel creates a model for a session. The last terminal row is kept for
// the prompt and key help.
func NewModel(s *engine.Session, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1
	ti.Prompt = "Name: "
	ti.SetValue(s.Player())
	ti.Focus()

	m := Model{
		session: s,
		driver:  engine.NewDriver(s),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:    NewKeyMapper(),
		config:  cfg,
		in:      core.NewInputFrame(),
		name:    ti,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.board = newBoardTable(s.Rules().Ranking(), m.width, m.height)
	return m
}

// Init starts the cursor blink for the name prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.board = newBoardTable(m.session.Rules().Ranking(), m.width, m.height)
		m.board.SetRows(boardRows(m.session.Rules().Ranking(), m.entries))
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleTick runs one frame when the tick belongs to the armed loop.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	more := m.driver.Frame(msg.Handle, msg.At, m.in, nil)
	m.in.Clear()
	if !more {
		if m.session.State().Terminal() {
			m.name.SetValue(m.session.Player())
		}
		return m, nil
	}
	return m, tickCmd(msg.Handle, m.config.TickRate)
}

// handleKey dispatches by session state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch st := m.session.State(); {
	case st == engine.Start:
		return m.handleStartKey(msg)
	case st == engine.NameEntry:
		return m.handleNameKey(msg)
	case st == engine.Leaderboard:
		return m.handleBoardKey(msg)
	case st.Terminal():
		return m.handleResultKey(msg)
	default:
		return m.handleGameKey(msg)
	}
}

// handleStartKey edits the player name; Enter starts the round.
func (m Model) handleStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.start()
	case "esc":
		return m.quit()
	case "tab":
		m.session.ShowLeaderboard()
		return m.showBoard(m.session.Board())
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.session.Start(m.name.Value()); err != nil {
		if errors.Is(err, engine.ErrNameRequired) {
			m.notice = "Enter a name to start"
		} else {
			m.notice = err.Error()
		}
		return m, nil
	}
	m.notice = ""
	return m.arm()
}

// arm starts a fresh loop run; ticks of the previous run are dropped.
func (m Model) arm() (tea.Model, tea.Cmd) {
	m.paused = false
	m.in.Clear()
	h := m.driver.Arm()
	return m, tickCmd(h, m.config.TickRate)
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.in) {
		return m.quit()
	}
	if m.in.Has(core.ActionRestart) {
		m.session.Restart()
		return m.arm()
	}
	if m.in.Has(core.ActionPause) {
		if m.paused {
			return m.arm()
		}
		m.driver.Cancel()
		m.paused = true
		m.in.Clear()
	}
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		m.session.Restart()
		return m.arm()
	case "enter":
		if m.session.BeginNameEntry() {
			m.name.SetValue(m.session.Player())
			m.name.CursorEnd()
			return m, m.name.Focus()
		}
		m.session.ShowLeaderboard()
		return m.showBoard(m.session.Board())
	case "l", "tab":
		m.session.ShowLeaderboard()
		return m.showBoard(m.session.Board())
	case "esc", "b":
		m.session.Back()
	}
	return m, nil
}

// handleNameKey feeds the prompt; Enter submits and Esc skips saving.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		board, err := m.session.Submit(m.name.Value())
		switch {
		case errors.Is(err, engine.ErrNameRequired):
			m.notice = "Name cannot be empty"
			return m, nil
		case errors.Is(err, engine.ErrNotQualified):
			m.notice = "Not saved: that name already has a better record"
		case err != nil:
			m.notice = err.Error()
		default:
			m.notice = ""
		}
		return m.showBoard(board)
	case "esc":
		m.session.Decline()
		return m.showBoard(m.session.Board())
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) showBoard(entries []leaderboard.Entry) (tea.Model, tea.Cmd) {
	m.entries = entries
	m.board.SetRows(boardRows(m.session.Rules().Ranking(), entries))
	m.board.SetCursor(rowFor(entries, m.session.Player()))
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		m.session.Restart()
		return m.arm()
	case "enter", "esc", "b":
		m.session.Back()
		m.name.SetValue(m.session.Player())
		return m, m.name.Focus()
	}
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// handleMouse maps clicks and motion onto the playfield.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	vp := m.session.Viewport(m.screen.Width(), m.screen.Height())
	p, ok := m.keys.MapMouse(msg, vp)
	if !ok {
		return m, nil
	}
	switch st := m.session.State(); {
	case st == engine.Start && p.Pressed:
		return m.start()
	case st.Active() && !m.paused:
		m.in.SetPointer(p)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.driver.Cancel()
	m.quitting = true
	if mgr := m.session.Manager(); mgr != nil {
		mgr.Wait()
	}
	return m, tea.Quit
}

// View renders the playfield, or the leaderboard table.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.State() == engine.Leaderboard {
		return m.boardView()
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	var line string
	switch st := m.session.State(); {
	case st == engine.Start:
		line = m.name.View() + footerStyle.Render("  ENTER start · TAB board · ESC quit")
	case st == engine.NameEntry:
		line = titleStyle.Render("New record! ") + m.name.View() + footerStyle.Render("  ENTER save · ESC skip")
	case st.Terminal():
		line = footerStyle.Render("ENTER continue · R retry · L board · ESC menu · Q quit")
	case m.paused:
		line = titleStyle.Render("PAUSED ") + footerStyle.Render("P resume · R restart · Q quit")
	default:
		line = footerStyle.Render("arrows/mouse move · SPACE action · P pause · R restart · Q quit")
	}
	if m.notice != "" {
		line += "  " + errorStyle.Render(m.notice)
	}
	return line
}

func (m Model) boardView() string {
	var b strings.Builder
	title := fmt.Sprintf("LEADERBOARD - %s", m.session.Rules().Title())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(footerStyle.Italic(true).Render("  No scores recorded yet."))
	} else {
		b.WriteString(m.board.View())
	}
	b.WriteString("\n\n")

	help := "ENTER back · R play again · Q quit"
	if mgr := m.session.Manager(); mgr != nil {
		help += fmt.Sprintf(" · remote: %s", mgr.Status())
	}
	b.WriteString(footerStyle.Render(help))
	if m.notice != "" {
		b.WriteString("  " + errorStyle.Render(m.notice))
	}
	return b.String()
}

// Run starts the Bubble Tea program for a session and blocks until it ends.
func Run(s *engine.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
