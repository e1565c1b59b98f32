package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/view"
)

var (
	// palette indexed by game.ShapeKind.Color
	colors = []string{
		"0",
		"196",
		"46",
		"226",
		"21",
		"201",
		"51",
		"208",
	}

	markColors = map[view.Mark]string{
		view.MarkEmpty:    "238",
		view.MarkFilled:   "248",
		view.MarkPreview:  "51",
		view.MarkConflict: "196",
		view.MarkClearing: "226",
	}

	markChars = map[view.Mark]string{
		view.MarkEmpty:    "· ",
		view.MarkFilled:   "██",
		view.MarkPreview:  "▒▒",
		view.MarkConflict: "██",
		view.MarkClearing: "██",
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedSlotStyle = slotStyle.
				BorderForeground(lipgloss.Color("226"))

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)

	recordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))
)

// RenderBoard draws a projected grid, bracketing the cursor cell.
func RenderBoard(grid view.Grid, cursor game.Position) string {
	var sb strings.Builder

	for y, row := range grid {
		for x, mark := range row {
			char := markChars[mark]
			if y == cursor.Row && x == cursor.Col && mark == view.MarkEmpty {
				char = "[]"
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(markColors[mark])).
				Render(char))
		}
		if y < len(grid)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

func RenderPiece(p *game.Piece) string {
	if p == nil {
		return "Empty"
	}

	var sb strings.Builder
	c := p.Color()
	if c < 0 || c >= len(colors) {
		c = len(colors) - 1
	}
	pieceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[c]))

	for y := 0; y < p.Rows(); y++ {
		for x := 0; x < p.Cols(); x++ {
			if p.Occupied(y, x) {
				sb.WriteString(pieceStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < p.Rows()-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// RenderTray lays the current set side by side, numbered from 1.
func RenderTray(pieces []*game.Piece, selected string) string {
	slots := make([]string, 0, len(pieces))
	for i, p := range pieces {
		style := slotStyle
		if p.ID == selected {
			style = selectedSlotStyle
		}
		label := helpStyle.Render(fmt.Sprintf("%d", i+1))
		slots = append(slots, style.Render(label+"\n"+RenderPiece(p)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func RenderInfo(stats game.Stats) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("GO 1010") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", stats.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Best:  %d", stats.HighScore)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", stats.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", stats.Lines)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Time:  %s", FormatPlayTime(stats.PlayTime))) + "\n")

	return sb.String()
}

func RenderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func RenderMenu(highScore int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║          G O  1 0 1 0        ║
║     Block Placement Puzzle   ║
╚══════════════════════════════╝`)

	return title + "\n\n" +
		infoStyle.Render(fmt.Sprintf("   Best score: %d", highScore)) + "\n\n" +
		infoStyle.Render("   Press ENTER to start") + "\n" +
		infoStyle.Render("   Press Q to quit") + "\n"
}

func RenderPaused(stats game.Stats) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("\n\n     PAUSED     \n     Score: %d     \n\n", stats.Score)) +
		"\n" + helpStyle.Render("esc resume • r restart • m menu • q quit")
}

func RenderGameOver(stats game.Stats) string {
	var sb strings.Builder
	sb.WriteString(gameOverStyle.Render("\n\n     GAME OVER     \n\n"))
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Final score: %d", stats.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines:       %d", stats.Lines)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level:       %d", stats.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Time:        %s", FormatPlayTime(stats.PlayTime))) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Best:        %d", stats.HighScore)) + "\n")
	if stats.NewRecord {
		sb.WriteString("\n" + recordStyle.Render("  NEW RECORD!") + "\n")
	}
	sb.WriteString("\n" + helpStyle.Render("enter/r play again • m menu • q quit"))
	return sb.String()
}

// FormatPlayTime renders whole seconds as m:ss.
func FormatPlayTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
