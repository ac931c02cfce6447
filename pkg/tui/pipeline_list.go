package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

type pipelinesSearchedMsg struct {
	seq    int
	result *models.PipelineSearchResult
	err    error
}

// PipelineListModel is the /pipelines screen: one page of search results
type PipelineListModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	service *api.Service
	ports   Ports

	filter  models.PipelineFilter
	seq     int
	loading bool
	result  *models.PipelineSearchResult

	title  *ViewTitle
	search *SearchBar
	table  table.Model
	width  int
	height int
}

func NewPipelineListModel(parent context.Context, service *api.Service, ports Ports, pageSize int) *PipelineListModel {
	ctx, cancel := context.WithCancel(parent)
	if pageSize <= 0 {
		pageSize = 20
	}
	t := table.New(
		table.WithColumns(listColumns(100)),
		table.WithFocused(true),
		table.WithHeight(pageSize),
	)
	return &PipelineListModel{
		ctx:     ctx,
		cancel:  cancel,
		service: service,
		ports:   ports,
		filter:  models.PipelineFilter{Page: 1, PageSize: pageSize},
		title:   NewViewTitle("Pipelines"),
		search:  NewSearchBar(),
		table:   t,
	}
}

func listColumns(width int) []table.Column {
	label := max(width-24-20-16-10, 20)
	return []table.Column{
		{Title: "Label", Width: label},
		{Title: "Owner", Width: 24},
		{Title: "Environment", Width: 20},
		{Title: "Created", Width: 16},
	}
}

func (m *PipelineListModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *PipelineListModel) Close() {
	m.cancel()
}

func (m *PipelineListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(width)
	m.table.SetColumns(listColumns(width - 4))
	m.table.SetHeight(max(height-8, 3))
}

func (m *PipelineListModel) Filter() models.PipelineFilter { return m.filter }

func (m *PipelineListModel) Result() *models.PipelineSearchResult { return m.result }

func (m *PipelineListModel) fetch() tea.Cmd {
	m.seq++
	m.loading = true
	ctx, svc, filter, seq := m.ctx, m.service, m.filter, m.seq
	return func() tea.Msg {
		result, err := svc.SearchPipelines(ctx, filter)
		return pipelinesSearchedMsg{seq: seq, result: result, err: err}
	}
}

func (m *PipelineListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pipelinesSearchedMsg:
		if msg.seq != m.seq || api.IsCanceled(msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return m, nil
		}
		m.setResult(msg.result)
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *PipelineListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Active() {
		switch msg.String() {
		case "enter":
			m.search.SetActive(false)
			m.filter.Term = strings.TrimSpace(m.search.Value())
			m.filter.Page = 1
			return m.fetch()
		case "esc":
			m.search.SetActive(false)
			m.search.SetValue(m.filter.Term)
			return nil
		}
		return m.search.Update(msg)
	}

	switch msg.String() {
	case "/":
		m.search.SetActive(true)
		return nil
	case "r":
		return m.fetch()
	case "n":
		if m.result != nil && m.result.HasNext {
			m.filter.Page++
			return m.fetch()
		}
		return nil
	case "p":
		if m.result != nil && m.result.HasPrev && m.filter.Page > 1 {
			m.filter.Page--
			return m.fetch()
		}
		return nil
	case "enter":
		if p := m.selected(); p != nil && m.ports.Navigator != nil {
			m.ports.Navigator.Navigate(PipelinePath(p.SqlPipelineURI))
		}
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *PipelineListModel) setResult(result *models.PipelineSearchResult) {
	m.result = result
	rows := make([]table.Row, len(result.Nodes))
	for i, p := range result.Nodes {
		env := ""
		if p.Environment != nil {
			env = p.Environment.Label
		}
		rows[i] = table.Row{p.DisplayName(), p.Owner, env, p.Created}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
	m.title.SetHint(fmt.Sprintf("page %d of %d · %d total", max(result.Page, 1), max(result.Pages, 1), result.Count))
}

func (m *PipelineListModel) selected() *models.Pipeline {
	if m.result == nil {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Nodes) {
		return nil
	}
	return &m.result.Nodes[i]
}

func (m *PipelineListModel) View() string {
	var body string
	switch {
	case m.loading && m.result == nil:
		body = PlaceholderStyle.Render(" Loading pipelines...")
	case m.result == nil:
		body = ""
	case len(m.result.Nodes) == 0:
		body = PlaceholderStyle.Render(" No pipelines match")
	default:
		body = m.table.View()
	}

	help := "enter open · / filter · r refresh · n/p page · ctrl+c quit"
	if m.search.Active() {
		help = "enter apply · esc cancel"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.title.ViewWithAlignment(m.width),
		m.search.View(),
		body,
		HelpStyle.Render(" "+help),
	)
}
