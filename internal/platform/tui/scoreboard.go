package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/registry"
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// boardKeys are the scoreboard bindings.
type boardKeys struct {
	Up, Down   key.Binding
	Prev, Next key.Binding
	Reload     key.Binding
	Back, Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Reload, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultBoardKeys() boardKeys {
	return boardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next game")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// BoardSource loads the leaderboard of one game and an optional one-line
// summary (attempt statistics) shown under it. It may block on the
// shared leaderboard, so it runs as a command.
type BoardSource func(gameID string) ([]leaderboard.Entry, string)

// boardLoadedMsg carries the result of one BoardSource call.
type boardLoadedMsg struct {
	gameID  string
	entries []leaderboard.Entry
	summary string
}

type loadedBoard struct {
	ranking leaderboard.Ranking
	entries []leaderboard.Entry
	summary string
}

// ScoreboardModel browses the leaderboards of all games.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	source  BoardSource
	boards  map[string]loadedBoard
	loading map[string]bool
	table   table.Model
	help    help.Model
	keys    boardKeys
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(source BoardSource, width, height int) ScoreboardModel {
	return ScoreboardModel{
		games:   registry.List(),
		source:  source,
		boards:  make(map[string]loadedBoard),
		loading: make(map[string]bool),
		help:    help.New(),
		keys:    defaultBoardKeys(),
		width:   width,
		height:  height,
	}
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// load starts fetching a board unless a fetch is already running.
func (m ScoreboardModel) load(gameID string) (ScoreboardModel, tea.Cmd) {
	if gameID == "" || m.source == nil || m.loading[gameID] {
		return m, nil
	}
	m.loading[gameID] = true
	src := m.source
	return m, func() tea.Msg {
		entries, summary := src(gameID)
		return boardLoadedMsg{gameID: gameID, entries: entries, summary: summary}
	}
}

// show rebuilds the table for the current game from the cache, loading the
// board on first visit.
func (m ScoreboardModel) show() (ScoreboardModel, tea.Cmd) {
	id := m.gameID()
	b, ok := m.boards[id]
	if !ok {
		b.ranking = rankingFor(id)
	}
	m.table = newBoardTable(b.ranking, m.width-4, m.height)
	m.table.SetRows(boardRows(b.ranking, b.entries))
	if ok {
		return m, nil
	}
	return m.load(id)
}

func rankingFor(gameID string) leaderboard.Ranking {
	if info, ok := registry.Info(gameID); ok {
		return info.Ranking
	}
	return leaderboard.Ranking{Game: gameID}
}

// Init loads the first game's board.
func (m ScoreboardModel) Init() tea.Cmd {
	_, cmd := m.show()
	return cmd
}

// Update handles keys, resizes and finished loads.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		delete(m.loading, msg.gameID)
		m.boards[msg.gameID] = loadedBoard{
			ranking: rankingFor(msg.gameID),
			entries: msg.entries,
			summary: msg.summary,
		}
		if msg.gameID == m.gameID() {
			return m.show()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m.show()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.step(1)
		case key.Matches(msg, m.keys.Prev):
			return m.step(-1)
		case key.Matches(msg, m.keys.Reload):
			delete(m.boards, m.gameID())
			return m.show()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) step(d int) (tea.Model, tea.Cmd) {
	if len(m.games) == 0 {
		return m, nil
	}
	m.current = (m.current + d + len(m.games)) % len(m.games)
	return m.show()
}

// View renders the tab strip, the current board and the key help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("LEADERBOARDS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.panel()))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists the games, or only the current one when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return mutedStyle.Render("no games registered")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("◀ %s ▶", activeTabStyle.Render(m.games[m.current].Title))
	}
	return line
}

func (m ScoreboardModel) panel() string {
	id := m.gameID()
	b, ok := m.boards[id]
	switch {
	case !ok && m.loading[id]:
		return mutedStyle.Render("Loading…")
	case !ok:
		return mutedStyle.Render("No leaderboard.")
	}

	caption := "Top scores"
	if b.ranking.Order == leaderboard.FewerMoves {
		caption = "Fewest moves"
	}
	out := footerStyle.Render(caption) + "\n"
	if len(b.entries) == 0 {
		out += mutedStyle.Render("No scores recorded yet. Play a round to set one!")
	} else {
		out += m.table.View()
	}
	if b.summary != "" {
		out += "\n" + footerStyle.Render(b.summary)
	}
	return out
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It returns true when the player
// went back to the menu rather than quitting.
func RunScoreboard(source BoardSource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
