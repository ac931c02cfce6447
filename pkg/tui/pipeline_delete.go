package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// DeleteState is the state of the delete confirmation surface
type DeleteState int

const (
	DeleteClosed DeleteState = iota
	DeleteOpen
)

func (s DeleteState) String() string {
	if s == DeleteOpen {
		return "open"
	}
	return "closed"
}

// deletePhrase must be typed to enable the confirm action
const deletePhrase = "permanently delete"

// DeleteFlow is the two-step delete interaction:
// Closed -> Open -> (Confirmed | Cancelled) -> Closed.
// At most one delete is in flight; confirm is ignored until it resolves.
type DeleteFlow struct {
	state     DeleteState
	inFlight  bool
	dialog    *ConfirmationModel
	onConfirm func(teardown bool) tea.Cmd
}

func NewDeleteFlow() *DeleteFlow {
	return &DeleteFlow{dialog: NewConfirmation()}
}

func (f *DeleteFlow) State() DeleteState { return f.state }

func (f *DeleteFlow) InFlight() bool { return f.inFlight }

// Open shows the confirmation surface. onConfirm issues the delete and
// receives the teardown flag.
func (f *DeleteFlow) Open(objectName string, width int, onConfirm func(teardown bool) tea.Cmd) {
	if f.state == DeleteOpen {
		return
	}
	f.state = DeleteOpen
	f.inFlight = false
	f.onConfirm = onConfirm
	f.dialog.Show(ConfirmationConfig{
		Title:       "Delete " + objectName,
		Message:     fmt.Sprintf("Pipeline %s and its metadata will be removed.", objectName),
		Warning:     "This action cannot be undone.",
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Phrase:      deletePhrase,
		OptionLabel: "Delete from AWS",
		Width:       dialogWidth(width),
	}, f.Confirm, func() tea.Cmd {
		f.state = DeleteClosed
		return nil
	})
}

// Confirm issues the delete with the given teardown flag. It returns nil,
// issuing nothing, when the surface is closed or a delete is already in flight.
func (f *DeleteFlow) Confirm(teardown bool) tea.Cmd {
	if f.state != DeleteOpen || f.inFlight || f.onConfirm == nil {
		return nil
	}
	f.inFlight = true
	f.dialog.SetBusy(true)
	return f.onConfirm(teardown)
}

// Cancel closes the surface without issuing anything
func (f *DeleteFlow) Cancel() bool {
	if f.state != DeleteOpen || f.inFlight {
		return false
	}
	f.state = DeleteClosed
	f.dialog.Hide()
	return true
}

// Succeeded closes the surface after the delete went through
func (f *DeleteFlow) Succeeded() {
	f.state = DeleteClosed
	f.inFlight = false
	f.dialog.Hide()
}

// Failed re-enables the surface so the user can retry or cancel
func (f *DeleteFlow) Failed() {
	f.inFlight = false
	f.dialog.SetBusy(false)
}

func (f *DeleteFlow) Update(msg tea.KeyMsg) tea.Cmd {
	if f.state != DeleteOpen {
		return nil
	}
	return f.dialog.Update(msg)
}

func (f *DeleteFlow) View() string {
	if f.state != DeleteOpen {
		return ""
	}
	return f.dialog.View()
}

func dialogWidth(width int) int {
	switch {
	case width <= 0:
		return 60
	case width < 50:
		return width - 2
	case width > 80:
		return 70
	default:
		return width - 10
	}
}
