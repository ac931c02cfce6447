package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrorStore is the global error channel. It keeps the latest reported
// message until it expires or another one replaces it.
type ErrorStore struct {
	message string
	seq     int
	armed   int
	timeout time.Duration
}

var _ Dispatcher = (*ErrorStore)(nil)

type errorExpiredMsg struct {
	seq int
}

func NewErrorStore(timeout time.Duration) *ErrorStore {
	return &ErrorStore{timeout: timeout}
}

// Dispatch records a SET_ERROR action. Other action types are ignored.
func (s *ErrorStore) Dispatch(action ErrorAction) {
	if action.Type != SetError {
		return
	}
	s.message = action.Error
	s.seq++
}

// Message returns the error currently shown, if any
func (s *ErrorStore) Message() string {
	return s.message
}

// Clear dismisses the current error
func (s *ErrorStore) Clear() {
	s.message = ""
}

// Cmd schedules expiry for an error dispatched since the last call
func (s *ErrorStore) Cmd() tea.Cmd {
	if s.message == "" || s.armed == s.seq {
		return nil
	}
	s.armed = s.seq
	seq := s.seq
	return tea.Tick(s.timeout, func(time.Time) tea.Msg {
		return errorExpiredMsg{seq: seq}
	})
}

// Update clears the error if the expiry belongs to the current message
func (s *ErrorStore) Update(msg errorExpiredMsg) {
	if msg.seq == s.seq {
		s.message = ""
	}
}

func (s *ErrorStore) View(width int) string {
	if s.message == "" {
		return ""
	}
	return ErrorBarStyle.Width(width).Render("✗ " + s.message)
}

// overlayTopRight places block on top of base, aligned to the top right corner
func overlayTopRight(base, block string, width int) string {
	if block == "" {
		return base
	}
	placed := lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	return lipgloss.JoinVertical(lipgloss.Left, placed, base)
}
