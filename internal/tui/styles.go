package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	echoStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	dayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
)

// weekdayNames maps "Monday".."Sunday" to true.
var weekdayNames = func() map[string]bool {
	m := make(map[string]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[d.String()] = true
	}
	return m
}()

// renderLine styles one transcript line: echoed input is dimmed, error
// replies are red, and "Weekday: names" report lines get a bold label.
func renderLine(l line) string {
	if l.echo {
		return echoStyle.Render(l.text)
	}
	if strings.HasPrefix(l.text, "Error: ") || strings.HasPrefix(l.text, "Unexpected error: ") {
		return errorStyle.Render(l.text)
	}
	if day, rest, ok := strings.Cut(l.text, ": "); ok && weekdayNames[day] {
		return dayStyle.Render(day+":") + " " + rest
	}
	return l.text
}
