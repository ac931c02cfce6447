package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
	"github.com/pluqqy/pluqqy-console/pkg/tui/testhelpers"
)

// recorder implements every port and keeps what it was given
type recorder struct {
	errors        []string
	notifications []Notification
	navigations   []string
}

func (r *recorder) Dispatch(action ErrorAction) {
	if action.Type == SetError {
		r.errors = append(r.errors, action.Error)
	}
}

func (r *recorder) Enqueue(n Notification) {
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Navigate(path string) {
	r.navigations = append(r.navigations, path)
}

func (r *recorder) ports() Ports {
	return Ports{Errors: r, Notifier: r, Navigator: r}
}

func testSettings() models.UISettings {
	return models.DefaultSettings().UI
}

func newTestView(t *testing.T, fake *testhelpers.FakeClient) (*PipelineViewModel, *recorder) {
	t.Helper()
	rec := &recorder{}
	m := NewPipelineViewModel(context.Background(), testhelpers.SamplePipelineURI, api.NewService(fake), rec.ports(), testSettings())
	m.SetSize(120, 40)
	t.Cleanup(m.Close)
	return m, rec
}

// loadView runs the initial fetch synchronously
func loadView(t *testing.T, m *PipelineViewModel) {
	t.Helper()
	msg := m.fetchPipeline()()
	m.Update(msg)
	require.False(t, m.Loading())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends a key and returns the resulting command
func press(m tea.Model, s string) tea.Cmd {
	_, cmd := m.Update(key(s))
	return cmd
}
