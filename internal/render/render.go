// Package render turns engine prose into terminal output: word-wrapped
// paragraphs and the lipgloss styles shared by the console.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth matches the classic terminal column budget of the shell.
const DefaultWidth = 78

// Wrap word-wraps each non-blank paragraph of text to width. Blank lines are
// preserved as paragraph breaks; already-short lines pass through unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wordwrap.String(line, width))
	}
	return strings.Join(out, "\n")
}

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	OutputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // off-white

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red
)
