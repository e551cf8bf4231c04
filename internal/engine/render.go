package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tripgames/internal/core"
)

// Viewport maps the playfield onto a cell grid, leaving the last row for
// the status line.
func (s *Session) Viewport(cellsW, cellsH int) core.Viewport {
	w, h := s.rules.Size()
	return core.NewViewport(w, h, cellsW, max(cellsH-1, 1))
}

// Render draws the playfield, the status line and the overlay for
// passive states.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	v := View{
		State:    s.state,
		Score:    s.score,
		Elapsed:  s.elapsed,
		Player:   s.player,
		Viewport: s.Viewport(dst.Width(), dst.Height()),
	}
	if s.mgr != nil {
		v.Best = s.mgr.HighScore()
	}
	s.rules.Render(dst, v)
	s.renderStatus(dst, v)

	switch s.state {
	case Start:
		dst.DrawMessage(strings.ToUpper(s.rules.Title()), "Press ENTER or click to start")
	case Won:
		dst.DrawMessage("YOU WIN!", s.resultLine())
	case GameOver:
		dst.DrawMessage("GAME OVER", s.resultLine())
	}
}

func (s *Session) resultLine() string {
	line := fmt.Sprintf("Score: %d", s.score)
	if m, ok := s.rules.(Mover); ok {
		line = fmt.Sprintf("Moves: %d  Time: %.1fs", m.Moves(), s.elapsed)
	}
	if s.qualifies {
		return line + "  ENTER: save  R: retry"
	}
	return line + "  R: retry  L: board"
}

func (s *Session) renderStatus(dst *core.Screen, v View) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), ' ')

	parts := []string{s.rules.Title(), fmt.Sprintf("Score: %d", s.score)}
	if sl, ok := s.rules.(StatusLiner); ok {
		if st := sl.Status(); st != "" {
			parts = append(parts, st)
		}
	}
	if v.Best > 0 {
		parts = append(parts, fmt.Sprintf("Best: %d", v.Best))
	}
	dst.DrawText(0, y, strings.Join(parts, " | "))

	state := v.State.String()
	dst.DrawText(dst.Width()-len(state), y, state)
}
