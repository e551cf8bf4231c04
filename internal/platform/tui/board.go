package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// newBoardTable creates a leaderboard table sized for the given area.
func newBoardTable(r leaderboard.Ranking, width, height int) table.Model {
	value := "Score"
	if r.Order == leaderboard.FewerMoves {
		value = "Moves"
	}
	nameW := max(min(width-4-6-8-8-14, leaderboard.MaxNameLen+2), leaderboard.MaxNameLen)
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameW},
		{Title: value, Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
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

// boardRows formats entries for newBoardTable.
func boardRows(r leaderboard.Ranking, entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := ""
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("Jan 02 15:04")
		}
		value := e.Score
		if r.Order == leaderboard.FewerMoves {
			value = e.Moves
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", value),
			fmt.Sprintf("%.1fs", e.Seconds),
			date,
		}
	}
	return rows
}

// rowFor returns the index of the entry named name, or 0.
func rowFor(entries []leaderboard.Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return 0
}
