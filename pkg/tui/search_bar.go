package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the term filter above the pipeline list
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Filter pipelines..."
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchBar{input: ti}
}

// SetActive focuses or blurs the input
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

func (s *SearchBar) Active() bool { return s.isActive }

func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders (4), outer padding (2), icon (5), gap (1)
	s.input.Width = max(width-12, 10)
}

func (s *SearchBar) Value() string {
	return s.input.Value()
}

func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SearchBar) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}

	width := s.width
	if width < 20 {
		width = 60
	}
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(width - 4).
		Padding(0, 1)

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		// same width as the active icon
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", s.input.View())
	return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Render(searchStyle.Render(content))
}

func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
