package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // y/n prompt on one line
	ConfirmTypeDialog                         // bordered dialog with friction input
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string
	Destructive bool
	Type        ConfirmationType
	// Phrase must be typed exactly before a dialog can be confirmed
	Phrase string
	// OptionLabel shows a toggle (tab or ctrl+t) passed to onConfirm
	OptionLabel string
	Width       int
}

// ConfirmationModel handles confirmation prompts.
// Inline prompts close on y/n. Dialogs stay open after confirming; the owner
// closes them with Hide once the confirmed work finishes.
type ConfirmationModel struct {
	active    bool
	busy      bool
	option    bool
	config    ConfirmationConfig
	input     textinput.Model
	onConfirm func(option bool) tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	input := textinput.New()
	input.CharLimit = 64
	return &ConfirmationModel{input: input}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm func(option bool) tea.Cmd, onCancel func() tea.Cmd) {
	m.active = true
	m.busy = false
	m.option = false
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
	m.input.SetValue("")
	if config.Phrase != "" {
		m.input.Placeholder = config.Phrase
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// ShowInline is a quick y/n confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, func(bool) tea.Cmd {
		if onConfirm != nil {
			return onConfirm()
		}
		return nil
	}, onCancel)
}

func (m *ConfirmationModel) Hide() {
	m.active = false
	m.busy = false
	m.input.Blur()
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// SetBusy disables confirm and cancel while confirmed work is in flight
func (m *ConfirmationModel) SetBusy(busy bool) {
	m.busy = busy
}

func (m *ConfirmationModel) Busy() bool {
	return m.busy
}

// Option returns the current toggle value
func (m *ConfirmationModel) Option() bool {
	return m.option
}

// Ready reports whether the friction phrase, if any, has been typed
func (m *ConfirmationModel) Ready() bool {
	if m.config.Phrase == "" {
		return true
	}
	return strings.TrimSpace(m.input.Value()) == m.config.Phrase
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}
	if m.config.Type == ConfirmTypeInline {
		return m.updateInline(msg)
	}
	return m.updateDialog(msg)
}

func (m *ConfirmationModel) updateInline(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm(false)
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

func (m *ConfirmationModel) updateDialog(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.busy {
			return nil
		}
		m.Hide()
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil

	case "enter":
		if m.busy || !m.Ready() {
			return nil
		}
		if m.onConfirm != nil {
			return m.onConfirm(m.option)
		}
		return nil

	case "tab", "ctrl+t":
		if m.config.OptionLabel != "" && !m.busy {
			m.option = !m.option
		}
		return nil
	}

	if m.config.Phrase == "" || m.busy {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	switch m.config.Type {
	case ConfirmTypeDialog:
		return m.renderDialog()
	default:
		return m.renderInline()
	}
}

func (m *ConfirmationModel) renderInline() string {
	return fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 4

	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(HeaderStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(lipgloss.NewStyle().Width(contentWidth).Render(m.config.Message))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Width(contentWidth).Render(m.config.Warning))
		b.WriteString("\n")
	}
	if m.config.OptionLabel != "" {
		box := "[ ]"
		if m.option {
			box = "[x]"
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s  %s", box, m.config.OptionLabel, HelpStyle.Render("(tab to toggle)")))
		b.WriteString("\n")
	}
	if m.config.Phrase != "" {
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render(fmt.Sprintf("To confirm, type %q", m.config.Phrase)))
		b.WriteString("\n")
		b.WriteString(InputStyle.Width(contentWidth - 4).Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var footer string
	switch {
	case m.busy:
		footer = PlaceholderStyle.Render("Deleting...")
	case m.Ready():
		footer = formatDialogOptions(m.config.Destructive)
	default:
		footer = HelpStyle.Render("esc cancel")
	}
	b.WriteString(center.Render(footer))

	border := ActiveBorderStyle
	if m.config.Destructive {
		border = border.BorderForeground(lipgloss.Color(ColorDanger))
	}
	return border.Width(width).Render(b.String())
}

// formatConfirmOptions renders [Y]es / [N]o, coloring the dangerous choice red
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	no := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorDanger))
	if destructive {
		yes, no = no, yes
	}
	return yes.Render("[Y]es") + " / " + no.Render("[N]o")
}

func formatDialogOptions(destructive bool) string {
	confirm := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	if destructive {
		confirm = confirm.Foreground(lipgloss.Color(ColorDanger))
	}
	return confirm.Render("enter confirm") + "  " + HelpStyle.Render("esc cancel")
}
