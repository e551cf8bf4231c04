package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/registry"
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Ranked string // "best score" or "fewest moves"
}

// menuFirstRow is the screen row of the first item in View.
const menuFirstRow = 5

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	kidsBadge       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")).Padding(0, 1)
	adultBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).Padding(0, 1)
)

// MenuModel is the game picker. It ends with a game, the scoreboard or quit.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	config core.RuntimeConfig
	keys   *KeyMapper

	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel lists the registered games. The cursor starts on last, the
// previously played game, when it is registered.
func NewMenuModel(cfg core.RuntimeConfig, last string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	cursor := 0
	for i, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Ranked: "best score"}
		if g.Ranking.Order == leaderboard.FewerMoves {
			item.Ranked = "fewest moves"
		}
		items = append(items, item)
		if g.ID == last {
			cursor = i
		}
	}
	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init does nothing; the menu waits for input.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles keys, clicks and resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.move(-1)
	case MenuActionDown:
		m.move(1)
	case MenuActionDifficulty:
		m.toggleDifficulty()
	case MenuActionSelect:
		return m.choose(m.cursor)
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse selects the item under a left click; the wheel moves the
// cursor.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.move(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.move(1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if i := msg.Y - menuFirstRow; i >= 0 && i < len(m.items) {
			return m.choose(i)
		}
	}
	return m, nil
}

// move steps the cursor, wrapping at both ends.
func (m *MenuModel) move(d int) {
	if n := len(m.items); n > 0 {
		m.cursor = (m.cursor + d + n) % n
	}
}

func (m *MenuModel) toggleDifficulty() {
	if m.config.Kids() {
		m.config.Difficulty = core.DifficultyAdult
	} else {
		m.config.Difficulty = core.DifficultyKids
	}
}

func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.items) {
		return m, nil
	}
	m.cursor = i
	item := m.items[i]
	m.selected = &item
	return m, tea.Quit
}

// View renders the title, the game list and the difficulty badge.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  T R I P   G A M E S  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a game for the road", m.width))
	b.WriteString("\n\n")

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, lipgloss.Width(it.Title))
	}
	for i, it := range m.items {
		line := fmt.Sprintf("  %-*s  %s", titleW, it.Title, footerStyle.Render(it.Ranked))
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-*s", titleW, it.Title)) + "  " + footerStyle.Render(it.Ranked)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	badge := adultBadge.Render("ADULT")
	if m.config.Kids() {
		badge = kidsBadge.Render("KIDS")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Difficulty "+badge, m.width))
	b.WriteString("\n\n")
	controls := "↑/↓ move · ENTER or click play · D difficulty · TAB scores · Q quit"
	b.WriteString(footerStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config with menu changes (size, difficulty).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, last string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, last), tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
