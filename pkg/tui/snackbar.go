package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Snackbar shows transient notifications in the top right corner.
// At most max are visible; enqueueing past the cap drops the oldest.
type Snackbar struct {
	items   []toast
	pending []int
	nextID  int
	max     int
	timeout time.Duration
}

var _ Notifier = (*Snackbar)(nil)

type toast struct {
	id int
	Notification
}

type toastExpiredMsg struct {
	id int
}

func NewSnackbar(max int, timeout time.Duration) *Snackbar {
	if max < 1 {
		max = 1
	}
	return &Snackbar{max: max, timeout: timeout}
}

// Enqueue adds a notification
func (s *Snackbar) Enqueue(n Notification) {
	s.nextID++
	s.items = append(s.items, toast{id: s.nextID, Notification: n})
	s.pending = append(s.pending, s.nextID)
	if len(s.items) > s.max {
		s.items = s.items[len(s.items)-s.max:]
	}
}

// Visible returns the notifications currently on screen, oldest first
func (s *Snackbar) Visible() []Notification {
	out := make([]Notification, len(s.items))
	for i, t := range s.items {
		out[i] = t.Notification
	}
	return out
}

// Cmd schedules auto-dismissal for notifications enqueued since the last call
func (s *Snackbar) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, id := range s.pending {
		id := id
		cmds = append(cmds, tea.Tick(s.timeout, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	s.pending = nil
	return tea.Batch(cmds...)
}

// Update removes an expired notification
func (s *Snackbar) Update(msg toastExpiredMsg) {
	for i, t := range s.items {
		if t.id == msg.id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Snackbar) View() string {
	if len(s.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.items))
	for _, t := range s.items {
		style := ToastSuccessStyle
		icon := "✓ "
		if t.Variant == VariantError {
			style = ToastErrorStyle
			icon = "✗ "
		}
		lines = append(lines, style.Render(icon+t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

// String is used in logs
func (s *Snackbar) String() string {
	msgs := make([]string, len(s.items))
	for i, t := range s.items {
		msgs[i] = t.Variant.String() + ":" + t.Message
	}
	return strings.Join(msgs, ", ")
}
