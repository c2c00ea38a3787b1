package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	msgWelcome      = "Welcome to %s! What would you like to do?"
	msgAnythingElse = "Is there anything else you'd like to do?"
	msgAmountPrompt = "Please enter the amount to %s:"
	msgExit         = "Thank you for banking with %s.\nHave a nice day!"
)

var menuOptions = []string{
	"[D]eposit",
	"[W]ithdraw",
	"[P]rint statement",
	"[Q]uit",
}

// styles renders boxed messages for one output stream. Colors are dropped
// automatically when the stream is not a terminal.
type styles struct {
	box lipgloss.Style
	err lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1),
		err: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Padding(0, 1),
	}
}

func menu(heading string) string {
	return heading + "\n" + strings.Join(menuOptions, "\n")
}
