package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// FeedTarget identifies the object a feed belongs to
type FeedTarget struct {
	Owner      string
	TargetType string
	TargetURI  string
}

type feedLoadedMsg struct {
	activation string
	messages   []models.FeedMessage
	err        error
}

type feedPostedMsg struct {
	activation string
	message    *models.FeedMessage
	err        error
}

// FeedModel is the chat surface opened from a detail view header
type FeedModel struct {
	ctx        context.Context
	service    *api.Service
	ports      Ports
	activation string
	target     FeedTarget

	active   bool
	loading  bool
	posting  bool
	messages []models.FeedMessage
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

func NewFeedModel(ctx context.Context, service *api.Service, ports Ports, activation string, target FeedTarget) *FeedModel {
	input := textinput.New()
	input.Placeholder = "Write a message..."
	input.CharLimit = 1000
	input.Prompt = "> "
	return &FeedModel{
		ctx:        ctx,
		service:    service,
		ports:      ports,
		activation: activation,
		target:     target,
		input:      input,
		viewport:   viewport.New(60, 10),
	}
}

func (m *FeedModel) Active() bool { return m.active }

func (m *FeedModel) Target() FeedTarget { return m.target }

func (m *FeedModel) Messages() []models.FeedMessage { return m.messages }

// Open shows the feed and loads its messages
func (m *FeedModel) Open() tea.Cmd {
	m.active = true
	m.loading = true
	m.input.Focus()
	return m.load()
}

func (m *FeedModel) Close() {
	m.active = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *FeedModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-8, 10)
	m.viewport.Width = max(width-6, 10)
	m.viewport.Height = max(height-8, 3)
	m.refresh()
}

func (m *FeedModel) load() tea.Cmd {
	ctx, svc, t, act := m.ctx, m.service, m.target, m.activation
	return func() tea.Msg {
		messages, err := svc.GetFeed(ctx, t.TargetURI, t.TargetType)
		return feedLoadedMsg{activation: act, messages: messages, err: err}
	}
}

func (m *FeedModel) post(content string) tea.Cmd {
	ctx, svc, t, act := m.ctx, m.service, m.target, m.activation
	return func() tea.Msg {
		msg, err := svc.PostFeedMessage(ctx, t.TargetURI, t.TargetType, content)
		return feedPostedMsg{activation: act, message: msg, err: err}
	}
}

func (m *FeedModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		if msg.activation != m.activation || api.IsCanceled(msg.err) {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return nil
		}
		m.messages = msg.messages
		m.refresh()
		m.viewport.GotoBottom()

	case feedPostedMsg:
		if msg.activation != m.activation || api.IsCanceled(msg.err) {
			return nil
		}
		m.posting = false
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return nil
		}
		if msg.message != nil {
			m.messages = append(m.messages, *msg.message)
		}
		m.input.SetValue("")
		m.refresh()
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		if !m.active {
			return nil
		}
		switch msg.String() {
		case "esc":
			m.Close()
			return nil
		case "enter":
			content := strings.TrimSpace(m.input.Value())
			if content == "" || m.posting {
				return nil
			}
			m.posting = true
			return m.post(content)
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *FeedModel) refresh() {
	if len(m.messages) == 0 {
		m.viewport.SetContent(PlaceholderStyle.Render("No messages yet"))
		return
	}
	width := m.viewport.Width
	var b strings.Builder
	for i, fm := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(HeaderStyle.Render(fm.Creator))
		b.WriteString(" " + HelpStyle.Render(fm.Created) + "\n")
		b.WriteString(ValueStyle.Render(wordwrap.String(fm.Content, max(width-2, 10))))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

func (m *FeedModel) View() string {
	if !m.active {
		return ""
	}
	title := TitleStyle.Render("Chat · " + m.target.TargetURI)
	if m.target.Owner != "" {
		title += HelpStyle.Render("  owner " + m.target.Owner)
	}

	body := m.viewport.View()
	if m.loading {
		body = PlaceholderStyle.Render("Loading messages...")
	}

	status := HelpStyle.Render("enter send · ↑/↓ scroll · esc close")
	if m.posting {
		status = PlaceholderStyle.Render("Sending...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		InputStyle.Render(m.input.View()),
		status,
	)
	return ActiveBorderStyle.Padding(0, 1).Render(content)
}
