package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

const (
	editFieldLabel = iota
	editFieldDescription
	editFieldTags
	editFieldCount
)

type editLoadedMsg struct {
	pipeline *models.Pipeline
	err      error
}

type pipelineSavedMsg struct {
	pipeline *models.Pipeline
	err      error
}

// PipelineEditModel is the /pipelines/{id}/edit form
type PipelineEditModel struct {
	uri     string
	ctx     context.Context
	cancel  context.CancelFunc
	service *api.Service
	ports   Ports

	loading  bool
	saving   bool
	original models.PipelineUpdate
	fields   [editFieldCount]textinput.Model
	focus    int
	confirm  *ConfirmationModel
	title    *ViewTitle
	formErr  string
	width    int
	height   int
}

func NewPipelineEditModel(parent context.Context, uri string, service *api.Service, ports Ports) *PipelineEditModel {
	ctx, cancel := context.WithCancel(parent)
	m := &PipelineEditModel{
		uri:     uri,
		ctx:     ctx,
		cancel:  cancel,
		service: service,
		ports:   ports,
		loading: true,
		confirm: NewConfirmation(),
		title:   NewViewTitle("Edit pipeline"),
	}
	placeholders := [editFieldCount]string{"Label", "Description", "topic-a, topic-b"}
	limits := [editFieldCount]int{64, 500, 200}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Prompt = ""
		m.fields[i] = ti
	}
	m.fields[editFieldLabel].Focus()
	return m
}

func (m *PipelineEditModel) URI() string { return m.uri }

func (m *PipelineEditModel) Init() tea.Cmd {
	ctx, svc, uri := m.ctx, m.service, m.uri
	return func() tea.Msg {
		p, err := svc.GetPipeline(ctx, uri)
		return editLoadedMsg{pipeline: p, err: err}
	}
}

func (m *PipelineEditModel) Close() {
	m.cancel()
}

func (m *PipelineEditModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.fields {
		m.fields[i].Width = max(width-24, 20)
	}
}

// Dirty reports whether the form differs from the loaded pipeline
func (m *PipelineEditModel) Dirty() bool {
	if m.loading {
		return false
	}
	return m.fields[editFieldLabel].Value() != m.original.Label ||
		m.fields[editFieldDescription].Value() != m.original.Description ||
		m.fields[editFieldTags].Value() != strings.Join(m.original.Tags, ", ")
}

// Input collects the form into an update. Tags are normalized and validated.
func (m *PipelineEditModel) Input() (models.PipelineUpdate, error) {
	tags, err := models.ParseTagList(m.fields[editFieldTags].Value())
	if err != nil {
		return models.PipelineUpdate{}, err
	}
	return models.PipelineUpdate{
		Label:       strings.TrimSpace(m.fields[editFieldLabel].Value()),
		Description: strings.TrimSpace(m.fields[editFieldDescription].Value()),
		Tags:        tags,
	}, nil
}

func (m *PipelineEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editLoadedMsg:
		if api.IsCanceled(msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return m, nil
		}
		m.original = models.PipelineUpdate{
			Label:       msg.pipeline.Label,
			Description: msg.pipeline.Description,
			Tags:        msg.pipeline.Tags,
		}
		m.fields[editFieldLabel].SetValue(m.original.Label)
		m.fields[editFieldDescription].SetValue(m.original.Description)
		m.fields[editFieldTags].SetValue(strings.Join(m.original.Tags, ", "))
		return m, nil

	case pipelineSavedMsg:
		if api.IsCanceled(msg.err) {
			return m, nil
		}
		m.saving = false
		if msg.err != nil {
			m.ports.reportError(api.Message(msg.err))
			return m, nil
		}
		if m.ports.Notifier != nil {
			m.ports.Notifier.Enqueue(Notification{Message: "Pipeline updated", Variant: VariantSuccess})
		}
		m.navigate(PipelinePath(m.uri))
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *PipelineEditModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	os, key := GetOS(), msg.String()
	switch {
	case Shortcuts.Cancel.Matches(os, key):
		if !m.Dirty() {
			m.navigate(PipelinePath(m.uri))
			return nil
		}
		m.confirm.ShowInline("Discard unsaved changes?", true, func() tea.Cmd {
			m.navigate(PipelinePath(m.uri))
			return nil
		}, nil)
		return nil
	case Shortcuts.Save.Matches(os, key):
		return m.save()
	case Shortcuts.NextField.Matches(os, key), key == "down":
		m.setFocus((m.focus + 1) % editFieldCount)
		return nil
	case Shortcuts.PrevField.Matches(os, key), key == "up":
		m.setFocus((m.focus + editFieldCount - 1) % editFieldCount)
		return nil
	}

	if m.loading {
		return nil
	}
	m.formErr = ""
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return cmd
}

func (m *PipelineEditModel) setFocus(i int) {
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}

func (m *PipelineEditModel) save() tea.Cmd {
	if m.loading || m.saving {
		return nil
	}
	input, err := m.Input()
	if err != nil {
		m.formErr = err.Error()
		return nil
	}
	if input.Label == "" {
		m.formErr = "label is required"
		return nil
	}
	m.saving = true
	ctx, svc, uri := m.ctx, m.service, m.uri
	return func() tea.Msg {
		p, err := svc.UpdatePipeline(ctx, uri, input)
		return pipelineSavedMsg{pipeline: p, err: err}
	}
}

func (m *PipelineEditModel) navigate(path string) {
	if m.ports.Navigator != nil {
		m.ports.Navigator.Navigate(path)
	}
}

func (m *PipelineEditModel) View() string {
	if m.loading {
		return PlaceholderStyle.Render(" Loading pipeline...")
	}

	labels := [editFieldCount]string{"Label", "Description", "Topics"}
	rows := make([]string, 0, editFieldCount)
	for i, f := range m.fields {
		style := InactiveBorderStyle
		if i == m.focus {
			style = ActiveBorderStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			LabelStyle.Render(labels[i]),
			style.Padding(0, 1).Render(f.View()),
		))
	}

	parts := []string{m.title.ViewWithAlignment(m.width), BreadcrumbStyle.Render(" " + m.uri), ""}
	parts = append(parts, rows...)
	if m.formErr != "" {
		parts = append(parts, ErrorStyle.Render(" "+m.formErr))
	}
	if m.confirm.Active() {
		parts = append(parts, "", m.confirm.View())
	}

	help := Shortcuts.Save.Get() + " save · " + Shortcuts.NextField.Get() + " next field · " + Shortcuts.Cancel.Get() + " back"
	if m.saving {
		help = "Saving..."
	}
	parts = append(parts, "", HelpStyle.Render(" "+help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
