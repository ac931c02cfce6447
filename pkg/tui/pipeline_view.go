package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/logging"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

type pipelineFetchedMsg struct {
	activation string
	seq        int
	pipeline   *models.Pipeline
	err        error
}

type pipelineDeletedMsg struct {
	activation string
	err        error
}

type uriCopiedMsg struct {
	activation string
	err        error
}

// PipelineViewModel is the detail view of one pipeline. Each instance is one
// activation: its results are tagged with the activation id and its I/O runs
// under a context that Close cancels.
type PipelineViewModel struct {
	uri        string
	activation string
	ctx        context.Context
	cancel     context.CancelFunc
	service    *api.Service
	ports      Ports
	logger     zerolog.Logger

	loading    bool
	refreshing bool
	fetchSeq   int
	pipeline   *models.Pipeline

	tabs       TabRouter
	pendingTab string
	deleteFlow *DeleteFlow
	feed       *FeedModel
	status     StackStatus
	runs       runsPanel
	tags       tagsPanel
	stack      stackPanel

	spinner  spinner.Model
	viewport viewport.Model
	compact  bool
	width    int
	height   int
}

// compactWidth caps the content width when ui.compact is set
const compactWidth = 120

func NewPipelineViewModel(parent context.Context, uri string, service *api.Service, ports Ports, settings models.UISettings) *PipelineViewModel {
	ctx, cancel := context.WithCancel(parent)
	activation := uuid.NewString()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &PipelineViewModel{
		uri:        uri,
		activation: activation,
		ctx:        ctx,
		cancel:     cancel,
		service:    service,
		ports:      ports,
		logger:     logging.WithPipeline(uri, activation),
		loading:    true,
		tabs:       NewTabRouter(),
		deleteFlow: NewDeleteFlow(),
		status:     NewStackStatus(settings.StackPollInterval),
		runs:       newRunsPanel(),
		spinner:    s,
		viewport:   viewport.New(80, 20),
		compact:    settings.Compact,
	}
}

func (m *PipelineViewModel) URI() string                { return m.uri }
func (m *PipelineViewModel) Activation() string         { return m.activation }
func (m *PipelineViewModel) Loading() bool              { return m.loading }
func (m *PipelineViewModel) Pipeline() *models.Pipeline { return m.pipeline }
func (m *PipelineViewModel) Tabs() TabRouter            { return m.tabs }
func (m *PipelineViewModel) DeleteFlow() *DeleteFlow    { return m.deleteFlow }
func (m *PipelineViewModel) Feed() *FeedModel           { return m.feed }

func (m *PipelineViewModel) Init() tea.Cmd {
	m.logger.Debug().Msg("activating pipeline view")
	return tea.Batch(m.spinner.Tick, m.fetchPipeline())
}

// Close tears the activation down. In-flight results arrive with a canceled
// context and are dropped.
func (m *PipelineViewModel) Close() {
	m.cancel()
	m.status.Stop()
	m.logger.Debug().Msg("pipeline view closed")
}

func (m *PipelineViewModel) SetSize(width, height int) {
	if m.compact {
		width = min(width, compactWidth)
	}
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 10)
	m.viewport.Height = m.panelHeight()
	m.runs.setSize(width-2, m.panelHeight())
	if m.feed != nil {
		m.feed.SetSize(width, m.panelHeight())
	}
	m.syncPanel()
}

func (m *PipelineViewModel) panelHeight() int {
	// header (2), tabs, divider, banner, help
	return max(m.height-7, 3)
}

func (m *PipelineViewModel) fetchPipeline() tea.Cmd {
	m.fetchSeq++
	ctx, svc, uri, act, seq := m.ctx, m.service, m.uri, m.activation, m.fetchSeq
	return func() tea.Msg {
		p, err := svc.GetPipeline(ctx, uri)
		return pipelineFetchedMsg{activation: act, seq: seq, pipeline: p, err: err}
	}
}

// Refetch reloads the pipeline in place. Lazy panels reload on next display.
func (m *PipelineViewModel) Refetch() tea.Cmd {
	if m.loading || m.refreshing {
		return nil
	}
	m.refreshing = true
	m.runs.reset()
	m.tags.reset()
	m.stack.reset()
	return m.fetchPipeline()
}

// SelectTab selects a tab by value, as carried by a ?tab= route. Before the
// pipeline loads the stack tab is not yet enabled, so the request is held
// until the fetch completes.
func (m *PipelineViewModel) SelectTab(value string) tea.Cmd {
	if m.pipeline == nil {
		m.pendingTab = value
		return nil
	}
	m.tabs.SelectValue(value)
	m.syncPanel()
	return m.loadTab()
}

func (m *PipelineViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncPanel()
	return m, cmd
}

func (m *PipelineViewModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pipelineFetchedMsg:
		return m.handleFetched(msg)

	case pipelineDeletedMsg:
		m.handleDeleted(msg)
		return nil

	case runsLoadedMsg:
		if msg.activation != m.activation || api.IsCanceled(msg.err) {
			return nil
		}
		m.runs.finish(msg.err)
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return nil
		}
		m.runs.setRuns(msg.runs)

	case tagsLoadedMsg:
		if msg.activation != m.activation || api.IsCanceled(msg.err) {
			return nil
		}
		m.tags.finish(msg.err)
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return nil
		}
		m.tags.tags = msg.tags

	case stackLoadedMsg:
		return m.handleStack(msg)

	case stackPollMsg:
		if msg.activation != m.activation || m.pipeline == nil || !m.status.Polled(msg) {
			return nil
		}
		m.logger.Debug().Msg("polling stack status")
		return m.stackLoad()

	case uriCopiedMsg:
		if msg.activation != m.activation {
			return nil
		}
		if msg.err != nil {
			m.ports.reportError("Could not copy to clipboard: " + msg.err.Error())
			return nil
		}
		if m.ports.Notifier != nil {
			m.ports.Notifier.Enqueue(Notification{Message: "Pipeline URI copied", Variant: VariantSuccess})
		}

	case feedLoadedMsg, feedPostedMsg:
		if m.feed != nil {
			return m.feed.Update(msg)
		}

	case spinner.TickMsg:
		if !m.loading && !m.refreshing {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *PipelineViewModel) handleFetched(msg pipelineFetchedMsg) tea.Cmd {
	if msg.activation != m.activation || msg.seq != m.fetchSeq {
		m.logger.Debug().Str("result_activation", msg.activation).Msg("dropping stale pipeline result")
		return nil
	}
	if api.IsCanceled(msg.err) || m.ctx.Err() != nil {
		return nil
	}
	m.loading = false
	m.refreshing = false

	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Msg("pipeline fetch failed")
		m.ports.reportError(api.Message(msg.err))
		return nil
	}

	m.pipeline = msg.pipeline
	m.tabs.SetPipeline(m.pipeline)
	if m.pendingTab != "" {
		m.tabs.SelectValue(m.pendingTab)
		m.pendingTab = ""
	}
	m.stack.stack = m.pipeline.Stack
	m.logger.Debug().Str("label", m.pipeline.Label).Msg("pipeline loaded")

	return tea.Batch(m.status.Set(m.pipeline.Stack, m.activation), m.loadTab())
}

func (m *PipelineViewModel) handleDeleted(msg pipelineDeletedMsg) {
	if msg.activation != m.activation || api.IsCanceled(msg.err) {
		return
	}
	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Msg("pipeline delete failed")
		m.deleteFlow.Failed()
		m.ports.reportError(api.Message(msg.err))
		return
	}

	m.logger.Info().Msg("pipeline deleted")
	m.deleteFlow.Succeeded()
	if m.ports.Notifier != nil {
		m.ports.Notifier.Enqueue(Notification{Message: "Pipeline deleted", Variant: VariantSuccess})
	}
	if m.ports.Navigator != nil {
		m.ports.Navigator.Navigate(PipelinesPath)
	}
}

func (m *PipelineViewModel) handleStack(msg stackLoadedMsg) tea.Cmd {
	if msg.activation != m.activation || api.IsCanceled(msg.err) {
		return nil
	}
	m.stack.finish(msg.err)
	if msg.err != nil {
		m.status.Stop()
		m.ports.reportError(api.Message(msg.err))
		return nil
	}
	m.stack.stack = msg.stack
	if m.pipeline != nil {
		m.pipeline.Stack = msg.stack
	}
	return m.status.Set(msg.stack, m.activation)
}

func (m *PipelineViewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.deleteFlow.State() == DeleteOpen {
		return m.deleteFlow.Update(msg)
	}
	if m.feed != nil && m.feed.Active() {
		return m.feed.Update(msg)
	}

	key := msg.String()
	if key == "esc" {
		m.navigate(PipelinesPath)
		return nil
	}
	if m.pipeline == nil {
		if key == "r" && !m.loading {
			m.loading = true
			return tea.Batch(m.spinner.Tick, m.fetchPipeline())
		}
		return nil
	}

	switch key {
	case "tab", "right", "l":
		m.tabs.Next()
		return m.loadTab()
	case "shift+tab", "left", "h":
		m.tabs.Prev()
		return m.loadTab()
	case "1", "2", "3", "4":
		if m.tabs.Select(pipelineTabs[int(key[0]-'1')]) {
			return m.loadTab()
		}
		return nil
	case "r":
		return tea.Batch(m.spinner.Tick, m.Refetch())
	case "d":
		m.deleteFlow.Open(m.pipeline.DisplayName(), m.width, m.deletePipeline)
		return nil
	case "e":
		m.navigate(PipelineEditPath(m.pipeline.SqlPipelineURI))
		return nil
	case "c":
		return m.openFeed()
	case "y":
		return m.copyURI()
	}

	if m.tabs.Selected() == TabRuns {
		var cmd tea.Cmd
		m.runs.table, cmd = m.runs.table.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *PipelineViewModel) navigate(path string) {
	if m.ports.Navigator != nil {
		m.ports.Navigator.Navigate(path)
	}
}

// loadTab starts the lazy load behind the selected tab, if it has one
func (m *PipelineViewModel) loadTab() tea.Cmd {
	if m.pipeline == nil {
		return nil
	}
	uri := m.pipeline.SqlPipelineURI
	switch m.tabs.Selected() {
	case TabRuns:
		if m.runs.begin() {
			return loadRuns(m.ctx, m.service, m.activation, uri)
		}
	case TabTags:
		if m.tags.begin() {
			return loadTags(m.ctx, m.service, m.activation, uri)
		}
	case TabStack:
		if m.stack.begin() {
			return m.stackLoad()
		}
	}
	return nil
}

func (m *PipelineViewModel) stackLoad() tea.Cmd {
	if !m.pipeline.StackAvailable() {
		return nil
	}
	return loadStack(m.ctx, m.service, m.activation, m.pipeline.Environment.EnvironmentURI, m.pipeline.Stack.StackURI)
}

// deletePipeline issues the delete mutation for the loaded pipeline
func (m *PipelineViewModel) deletePipeline(teardown bool) tea.Cmd {
	ctx, svc, act := m.ctx, m.service, m.activation
	uri := m.pipeline.SqlPipelineURI
	m.logger.Info().Bool("delete_from_aws", teardown).Msg("deleting pipeline")
	return func() tea.Msg {
		err := svc.DeletePipeline(ctx, uri, teardown)
		return pipelineDeletedMsg{activation: act, err: err}
	}
}

func (m *PipelineViewModel) openFeed() tea.Cmd {
	if m.feed == nil {
		m.feed = NewFeedModel(m.ctx, m.service, m.ports, m.activation, FeedTarget{
			Owner:      m.pipeline.Owner,
			TargetType: api.FeedTargetPipeline,
			TargetURI:  m.pipeline.SqlPipelineURI,
		})
		m.feed.SetSize(m.width, m.panelHeight())
	}
	return m.feed.Open()
}

func (m *PipelineViewModel) copyURI() tea.Cmd {
	uri, act := m.pipeline.SqlPipelineURI, m.activation
	return func() tea.Msg {
		return uriCopiedMsg{activation: act, err: clipboard.WriteAll(uri)}
	}
}

// PanelView renders the selected tab's panel. Nothing renders without a
// loaded pipeline or with no tab selected.
func (m *PipelineViewModel) PanelView() string {
	if m.pipeline == nil {
		return ""
	}
	switch m.tabs.Selected() {
	case TabOverview:
		return renderOverview(m.pipeline, m.width)
	case TabRuns:
		return m.runs.view()
	case TabTags:
		return m.tags.view()
	case TabStack:
		envURI := ""
		if m.pipeline.Environment != nil {
			envURI = m.pipeline.Environment.EnvironmentURI
		}
		return m.stack.view(envURI, m.width)
	default:
		return ""
	}
}

func (m *PipelineViewModel) syncPanel() {
	if m.tabs.Selected() == TabRuns {
		return
	}
	m.viewport.SetContent(m.PanelView())
}

func (m *PipelineViewModel) View() string {
	if m.loading {
		return m.spinner.View() + " Loading pipeline..."
	}
	if m.pipeline == nil {
		return ""
	}

	parts := []string{
		NewPipelineHeader(m.pipeline).View(m.width),
		" " + m.tabs.View(),
		divider(m.width),
	}
	if banner := m.status.View(); banner != "" {
		parts = append(parts, banner)
	}

	var body string
	switch {
	case m.feed != nil && m.feed.Active():
		body = m.feed.View()
	case m.deleteFlow.State() == DeleteOpen:
		body = lipgloss.Place(max(m.width, 1), m.panelHeight(), lipgloss.Center, lipgloss.Center, m.deleteFlow.View())
	case m.tabs.Selected() == TabRuns:
		body = panelBox(m.runs.view(), m.width)
	default:
		body = panelBox(m.viewport.View(), m.width)
	}
	parts = append(parts, body)

	help := []string{"tab/←→ switch", "1-4 jump", "r refresh", "esc back"}
	if m.refreshing {
		help = append([]string{m.spinner.View() + " refreshing"}, help...)
	}
	parts = append(parts, HelpStyle.Render(" "+strings.Join(help, " · ")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
