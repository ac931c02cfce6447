package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

type stackPollMsg struct {
	activation string
	seq        int
}

// StackStatus watches a stack that is still provisioning and asks for a
// refresh on every interval until it settles.
type StackStatus struct {
	stack    *models.Stack
	interval time.Duration
	seq      int
	polling  bool
}

func NewStackStatus(interval time.Duration) StackStatus {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return StackStatus{interval: interval}
}

// Set records the latest stack. It returns a poll tick when the stack is
// in progress and no tick is pending yet.
func (s *StackStatus) Set(stack *models.Stack, activation string) tea.Cmd {
	s.stack = stack
	if !stack.InProgress() {
		s.polling = false
		s.seq++
		return nil
	}
	if s.polling {
		return nil
	}
	s.polling = true
	return s.tick(activation)
}

// Polled consumes a tick. It reports false for ticks that were superseded.
func (s *StackStatus) Polled(msg stackPollMsg) bool {
	if msg.seq != s.seq || !s.polling {
		return false
	}
	s.polling = false
	return true
}

// Stop drops any pending tick
func (s *StackStatus) Stop() {
	s.polling = false
	s.seq++
}

func (s StackStatus) Polling() bool { return s.polling }

func (s StackStatus) tick(activation string) tea.Cmd {
	seq := s.seq
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return stackPollMsg{activation: activation, seq: seq}
	})
}

// View renders the banner, or "" when there is nothing to report
func (s StackStatus) View() string {
	switch {
	case s.stack == nil:
		return ""
	case s.stack.InProgress():
		return BannerStyle.Render(fmt.Sprintf("Stack %s · refreshing every %s", s.stack.Status, s.interval))
	case s.stack.Failed():
		return ErrorBarStyle.Render("Stack " + s.stack.Status)
	default:
		return ""
	}
}
