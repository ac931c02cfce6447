package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

type runsLoadedMsg struct {
	activation string
	runs       []models.Execution
	err        error
}

type tagsLoadedMsg struct {
	activation string
	tags       []models.KeyValueTag
	err        error
}

type stackLoadedMsg struct {
	activation string
	stack      *models.Stack
	err        error
}

// panelState tracks the lazy load of one tab's remote data
type panelState struct {
	loaded  bool
	loading bool
	err     string
}

// begin marks a load as started. It returns false if one already ran or is running.
func (s *panelState) begin() bool {
	if s.loaded || s.loading {
		return false
	}
	s.loading = true
	s.err = ""
	return true
}

func (s *panelState) finish(err error) {
	s.loading = false
	s.loaded = err == nil
	if err != nil {
		s.err = api.Message(err)
	}
}

func (s *panelState) reset() {
	*s = panelState{}
}

// status renders the loading/error placeholder, or "" when data is ready
func (s panelState) status(what string) string {
	switch {
	case s.loading:
		return PlaceholderStyle.Render("Loading " + what + "...")
	case s.err != "":
		return ErrorStyle.Render("Could not load " + what + ": " + s.err)
	case !s.loaded:
		return PlaceholderStyle.Render("No " + what + " loaded")
	default:
		return ""
	}
}

func loadRuns(ctx context.Context, service *api.Service, activation, uri string) tea.Cmd {
	return func() tea.Msg {
		runs, err := service.ListExecutions(ctx, uri)
		return runsLoadedMsg{activation: activation, runs: runs, err: err}
	}
}

func loadTags(ctx context.Context, service *api.Service, activation, uri string) tea.Cmd {
	return func() tea.Msg {
		tags, err := service.ListTags(ctx, uri, api.TargetTypePipeline)
		return tagsLoadedMsg{activation: activation, tags: tags, err: err}
	}
}

func loadStack(ctx context.Context, service *api.Service, activation, environmentURI, stackURI string) tea.Cmd {
	return func() tea.Msg {
		stack, err := service.GetStack(ctx, environmentURI, stackURI)
		return stackLoadedMsg{activation: activation, stack: stack, err: err}
	}
}

func renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// renderOverview is the overview panel: identity, ownership and placement
func renderOverview(p *models.Pipeline, width int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("DETAILS"))
	b.WriteString("\n\n")

	b.WriteString(renderField("URI", p.SqlPipelineURI) + "\n")
	b.WriteString(renderField("Name", p.Name) + "\n")
	b.WriteString(renderField("Owner", p.Owner) + "\n")
	b.WriteString(renderField("Team", p.SamlGroupName) + "\n")
	b.WriteString(renderField("Created", p.Created) + "\n")
	b.WriteString(renderField("Repository", p.Repo) + "\n")
	b.WriteString(renderField("Dev strategy", p.DevStrategy) + "\n")
	if p.Organization != nil {
		b.WriteString(renderField("Organization", p.Organization.Label) + "\n")
	}
	if p.Environment != nil {
		b.WriteString(renderField("Environment", p.Environment.Label) + "\n")
		b.WriteString(renderField("Account", p.Environment.AwsAccountID) + "\n")
		b.WriteString(renderField("Region", p.Environment.Region) + "\n")
	}

	if len(p.Tags) > 0 {
		chips := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			chips[i] = GetTagChipStyle(models.TagColor(tag)).Render(tag)
		}
		b.WriteString(LabelStyle.Render("Topics") + strings.Join(chips, " ") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("DESCRIPTION"))
	b.WriteString("\n\n")
	description := p.Description
	if description == "" {
		description = PlaceholderStyle.Render("No description provided")
	} else if width > 8 {
		description = wordwrap.String(description, width-4)
	}
	b.WriteString(DescriptionStyle.Render(description))
	return b.String()
}

type runsPanel struct {
	panelState
	runs  []models.Execution
	table table.Model
}

func newRunsPanel() runsPanel {
	t := table.New(
		table.WithColumns(runColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return runsPanel{table: t}
}

func runColumns(width int) []table.Column {
	arn := width - 12 - 22 - 22 - 8
	if arn < 20 {
		arn = 20
	}
	return []table.Column{
		{Title: "Execution", Width: arn},
		{Title: "Status", Width: 12},
		{Title: "Started", Width: 22},
		{Title: "Stopped", Width: 22},
	}
}

func (p *runsPanel) setRuns(runs []models.Execution) {
	p.runs = runs
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{lastSegment(r.ExecutionArn), r.Status, r.StartDate, r.StopDate}
	}
	p.table.SetRows(rows)
}

func (p *runsPanel) setSize(width, height int) {
	p.table.SetColumns(runColumns(width))
	if height > 4 {
		p.table.SetHeight(height - 2)
	}
}

func (p runsPanel) view() string {
	if s := p.status("executions"); s != "" {
		return s
	}
	if len(p.runs) == 0 {
		return PlaceholderStyle.Render("This pipeline has not run yet")
	}
	return p.table.View()
}

type tagsPanel struct {
	panelState
	tags []models.KeyValueTag
}

func (p tagsPanel) view() string {
	if s := p.status("tags"); s != "" {
		return s
	}
	if len(p.tags) == 0 {
		return PlaceholderStyle.Render("No key-value tags")
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-24s %-32s %s", "KEY", "VALUE", "CASCADE")))
	b.WriteString("\n")
	for _, tag := range p.tags {
		cascade := "no"
		if tag.Cascade {
			cascade = "yes"
		}
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%-24s %-32s %s", tag.Key, tag.Value, cascade)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type stackPanel struct {
	panelState
	stack *models.Stack
}

func (p stackPanel) view(environmentURI string, width int) string {
	if s := p.status("stack"); s != "" {
		return s
	}
	if p.stack == nil {
		return PlaceholderStyle.Render("No stack")
	}
	s := p.stack
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("STACK"))
	b.WriteString("\n\n")
	b.WriteString(renderField("Name", s.Stack) + "\n")
	b.WriteString(renderField("URI", s.StackURI) + "\n")
	b.WriteString(renderField("Environment", environmentURI) + "\n")
	b.WriteString(LabelStyle.Render("Status") + StatusStyle(s.Status).Render(orDash(s.Status)) + "\n")
	b.WriteString(renderField("Console", s.Link) + "\n")
	if s.Error != "" {
		b.WriteString("\n" + ErrorStyle.Render(wrap(s.Error, width)) + "\n")
	}
	if s.Outputs != "" {
		b.WriteString("\n" + HeaderStyle.Render("OUTPUTS") + "\n" + DescriptionStyle.Render(wrap(s.Outputs, width)) + "\n")
	}
	if s.Resources != "" {
		b.WriteString("\n" + HeaderStyle.Render("RESOURCES") + "\n" + DescriptionStyle.Render(wrap(s.Resources, width)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func wrap(s string, width int) string {
	if width <= 8 {
		return s
	}
	return wordwrap.String(s, width-4)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func lastSegment(arn string) string {
	if i := strings.LastIndex(arn, ":"); i >= 0 && i < len(arn)-1 {
		return arn[i+1:]
	}
	return arn
}

func isSuccessStatus(status string) bool {
	s := strings.ToUpper(status)
	return s == "SUCCEEDED" || strings.HasSuffix(s, "_COMPLETE") && !strings.Contains(s, "ROLLBACK")
}

func isFailureStatus(status string) bool {
	s := strings.ToUpper(status)
	return s == "FAILED" || s == "TIMED_OUT" || s == "ABORTED" ||
		strings.HasSuffix(s, "_FAILED") || strings.Contains(s, "ROLLBACK")
}

func isRunningStatus(status string) bool {
	s := strings.ToUpper(status)
	return s == "RUNNING" || s == "PENDING" || strings.HasSuffix(s, "_IN_PROGRESS")
}

// panelBox frames the active panel
func panelBox(content string, width int) string {
	if width <= 4 {
		return content
	}
	return lipgloss.NewStyle().Width(width - 2).PaddingLeft(1).Render(content)
}
