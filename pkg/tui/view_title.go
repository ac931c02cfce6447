package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle is the standard title block of the list and edit screens
type ViewTitle struct {
	text string
	hint string
}

func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

// SetHint sets the dimmed text shown next to the title, e.g. a page counter
func (v *ViewTitle) SetHint(hint string) {
	v.hint = hint
}

func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	title := titleStyle.Render(v.text)
	if v.hint != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", HelpStyle.Render(v.hint))
	}
	return title
}

// ViewWithAlignment renders the title padded to width
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(1).
		PaddingRight(1).
		Render(v.View())
}
