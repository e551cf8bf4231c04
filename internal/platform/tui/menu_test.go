package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tripgames/internal/core"
)

func TestMenuClickSelectsItem(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	next, cmd := m.Update(tea.MouseMsg{X: 40, Y: menuFirstRow, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	mm := next.(MenuModel)
	if mm.Selected() == nil || mm.Selected().GameID != m.items[0].GameID || cmd == nil {
		t.Errorf("click on first row should select %s", m.items[0].GameID)
	}

	next, _ = m.Update(tea.MouseMsg{X: 40, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if next.(MenuModel).Selected() != nil {
		t.Error("click on the title should not select anything")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := next.(MenuModel).cursor; got != len(m.items)-1 {
		t.Errorf("cursor = %d, expected wrap to %d", got, len(m.items)-1)
	}
}

func TestMenuDifficultyToggle(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	mm := next.(MenuModel)
	if !mm.Config().Kids() {
		t.Error("d should switch to kids")
	}
	if !strings.Contains(mm.View(), "KIDS") {
		t.Error("view should show the kids badge")
	}
}
