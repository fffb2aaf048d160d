package stats

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Render formats the summary as a plain-text report sized to the
// terminal.
func Render(s Summary) string {
	width := reportWidth(os.Stdout)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Progress"))
	b.WriteByte('\n')
	b.WriteString(overviewLine(s))
	b.WriteByte('\n')
	b.WriteString(xpLine(s))
	b.WriteByte('\n')
	if len(s.Badges) > 0 {
		b.WriteString(labelStyle.Render("Badges: "))
		b.WriteString(strings.Join(s.Badges, ", "))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	headers := []string{"Category", "Total", "Done", "Correct", "Wrong", "Flagged"}
	rows := make([][]string, 0, len(s.Categories))
	for _, cs := range s.Categories {
		rows = append(rows, []string{
			cs.Category,
			fmt.Sprintf("%d", cs.Total),
			fmt.Sprintf("%d", cs.Completed),
			fmt.Sprintf("%d", cs.Correct),
			fmt.Sprintf("%d", cs.Incorrect),
			fmt.Sprintf("%d", cs.Flagged),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func overviewLine(s Summary) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		labelStyle.Render("Questions:"),
		valueStyle.Render(fmt.Sprintf("%d", s.TotalQuestions)),
		labelStyle.Render("Answered:"),
		valueStyle.Render(fmt.Sprintf("%d", s.Answered)),
		labelStyle.Render("Accuracy:"),
		valueStyle.Render(fmt.Sprintf("%.1f%%", s.Accuracy*100)),
	)
}

func xpLine(s Summary) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		labelStyle.Render("XP:"),
		valueStyle.Render(fmt.Sprintf("%d", s.XP)),
		labelStyle.Render("Streak:"),
		valueStyle.Render(fmt.Sprintf("%d", s.Streak)),
		labelStyle.Render("Best streak:"),
		dimStyle.Render(fmt.Sprintf("%d", s.MaxStreak)),
	)
}

func reportWidth(file *os.File) int {
	if !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
