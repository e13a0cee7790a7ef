package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge/internal/games/dodge"
)

// Scoreboard layout constants
const (
	scoreboardChrome = 8 // title, summary, help and borders
	minTableHeight   = 3
)

// Scoreboard shows the finished games of this run in a table.
type Scoreboard struct {
	table   table.Model
	history []dodge.HistoryEntry
	width   int
	height  int
}

// NewScoreboard creates an empty scoreboard sized for the terminal.
func NewScoreboard(width, height int) Scoreboard {
	s := Scoreboard{width: width, height: height}
	s.table = s.createTable()
	return s
}

// createTable creates a new table with the scoreboard columns.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, s.height-scoreboardChrome)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// SetHistory replaces the rows with the given finished games, oldest first.
func (s *Scoreboard) SetHistory(history []dodge.HistoryEntry) {
	s.history = history
	best := bestGame(history)

	rows := make([]table.Row, len(history))
	for i, h := range history {
		mark := ""
		if i == best {
			mark = "best"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", h.Score),
			dodge.FormatClock(h.Duration),
			mark,
		}
	}
	s.table.SetRows(rows)
	s.table.GotoBottom()
}

// Resize adapts the table to a new terminal size.
func (s *Scoreboard) Resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.SetHistory(s.history)
}

// Update passes scrolling keys to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View renders the scoreboard.
func (s Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SCOREBOARD", s.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(s.history) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No finished games yet.")), s.width))
		return b.String()
	}

	b.WriteString(centerText(tableStyle.Render(s.table.View()), s.width))
	b.WriteString("\n")

	best := s.history[bestGame(s.history)]
	summary := fmt.Sprintf("Games: %d   Best: %d (%s)", len(s.history), best.Score, dodge.FormatClock(best.Duration))
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(summaryStyle.Render(centerText(summary, s.width)))

	return b.String()
}

// bestGame returns the index of the highest score, preferring the earliest
// game on ties. It returns -1 for an empty history.
func bestGame(history []dodge.HistoryEntry) int {
	best := -1
	for i, h := range history {
		if best < 0 || h.Score > history[best].Score {
			best = i
		}
	}
	return best
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
