package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFlow(t *testing.T) {
	var issued []bool
	onConfirm := func(teardown bool) tea.Cmd {
		issued = append(issued, teardown)
		return func() tea.Msg { return nil }
	}

	t.Run("closed flow issues nothing", func(t *testing.T) {
		issued = nil
		f := NewDeleteFlow()
		assert.Nil(t, f.Confirm(true))
		assert.False(t, f.Cancel())
		assert.Empty(t, f.View())
		assert.Empty(t, issued)
	})

	t.Run("cancel closes", func(t *testing.T) {
		issued = nil
		f := NewDeleteFlow()
		f.Open("ETL Job", 100, onConfirm)
		assert.Equal(t, DeleteOpen, f.State())
		assert.Contains(t, f.View(), "Delete ETL Job")
		assert.Contains(t, f.View(), "Delete from AWS")

		assert.True(t, f.Cancel())
		assert.Equal(t, DeleteClosed, f.State())
		assert.Empty(t, issued)
	})

	t.Run("single in-flight delete", func(t *testing.T) {
		issued = nil
		f := NewDeleteFlow()
		f.Open("ETL Job", 100, onConfirm)

		require.NotNil(t, f.Confirm(true))
		assert.True(t, f.InFlight())
		assert.Nil(t, f.Confirm(true))
		assert.False(t, f.Cancel(), "cannot cancel while in flight")
		assert.Equal(t, []bool{true}, issued)

		f.Failed()
		assert.Equal(t, DeleteOpen, f.State())
		require.NotNil(t, f.Confirm(false), "retry after failure")
		assert.Equal(t, []bool{true, false}, issued)

		f.Succeeded()
		assert.Equal(t, DeleteClosed, f.State())
		assert.False(t, f.InFlight())
	})

	t.Run("keys drive the dialog", func(t *testing.T) {
		issued = nil
		f := NewDeleteFlow()
		f.Open("ETL Job", 100, onConfirm)

		assert.Nil(t, f.Update(key("enter")), "phrase not typed")
		f.Update(key(deletePhrase))
		require.NotNil(t, f.Update(key("enter")))
		assert.Equal(t, []bool{false}, issued)
	})
}

func TestDeleteState_String(t *testing.T) {
	assert.Equal(t, "open", DeleteOpen.String())
	assert.Equal(t, "closed", DeleteClosed.String())
}

func TestDialogWidth(t *testing.T) {
	assert.Equal(t, 60, dialogWidth(0))
	assert.Equal(t, 38, dialogWidth(40))
	assert.Equal(t, 60, dialogWidth(70))
	assert.Equal(t, 70, dialogWidth(200))
}
