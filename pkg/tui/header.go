package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// HeaderAction is a key-bound action shown in a screen header
type HeaderAction struct {
	Key   string
	Label string
}

// PipelineHeader is the title, breadcrumb trail and action bar of the
// pipeline detail view
type PipelineHeader struct {
	Title       string
	Breadcrumbs []string
	Actions     []HeaderAction
}

// pipelineActions are offered for every loaded pipeline
var pipelineActions = []HeaderAction{
	{Key: "c", Label: "Chat"},
	{Key: "e", Label: "Edit"},
	{Key: "d", Label: "Delete"},
	{Key: "y", Label: "Copy URI"},
}

// NewPipelineHeader presents p. The label stands in for the name everywhere.
func NewPipelineHeader(p *models.Pipeline) PipelineHeader {
	label := p.DisplayName()
	return PipelineHeader{
		Title:       "Pipeline " + label,
		Breadcrumbs: []string{"Play", "Pipelines", label},
		Actions:     pipelineActions,
	}
}

// Breadcrumb joins the trail the way it is displayed
func (h PipelineHeader) Breadcrumb() string {
	return strings.Join(h.Breadcrumbs, " > ")
}

func (h PipelineHeader) View(width int) string {
	crumbs := make([]string, len(h.Breadcrumbs))
	for i, c := range h.Breadcrumbs {
		if i == len(h.Breadcrumbs)-1 {
			crumbs[i] = BreadcrumbStyle.Render(c)
			continue
		}
		crumbs[i] = BreadcrumbLinkStyle.Render(c)
	}
	breadcrumb := strings.Join(crumbs, BreadcrumbStyle.Render(" > "))

	actions := make([]string, len(h.Actions))
	for i, a := range h.Actions {
		actions[i] = ActionStyle.Render(ActionKeyStyle.Render("["+a.Key+"]") + " " + a.Label)
	}
	actionBar := lipgloss.JoinHorizontal(lipgloss.Top, actions...)

	left := lipgloss.JoinVertical(lipgloss.Left,
		breadcrumb,
		TitleStyle.Render(h.Title),
	)

	// Actions sit on the right when they fit, below the title otherwise
	gap := width - lipgloss.Width(left) - lipgloss.Width(actionBar) - 2
	if width <= 0 || gap < 1 {
		return lipgloss.NewStyle().PaddingLeft(1).Render(
			lipgloss.JoinVertical(lipgloss.Left, left, actionBar))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), actionBar))
}

func divider(width int) string {
	if width <= 2 {
		width = 40
	}
	return DividerStyle.Render(strings.Repeat("─", width-2))
}
