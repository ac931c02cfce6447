package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
	"github.com/pluqqy/pluqqy-console/pkg/tui/testhelpers"
)

type noopMsg struct{}

func newTestApp(t *testing.T, fake *testhelpers.FakeClient, path string) *App {
	t.Helper()
	app, err := NewApp(context.Background(), api.NewService(fake), models.DefaultSettings(), path)
	require.NoError(t, err)
	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(app.Close)
	return app
}

func pipelineScreen(t *testing.T, app *App) *PipelineViewModel {
	t.Helper()
	pv, ok := app.Screen().(*PipelineViewModel)
	require.True(t, ok, "expected the pipeline view, got %T", app.Screen())
	return pv
}

// run executes a command that must produce a single message
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, batched := msg.(tea.BatchMsg)
	require.False(t, batched, "expected a single command")
	return msg
}

func TestNewApp_Routes(t *testing.T) {
	tests := []struct {
		path string
		want RouteKind
	}{
		{"", RoutePipelineList},
		{"/pipelines", RoutePipelineList},
		{"/pipelines/pipe-123", RoutePipelineView},
		{"/pipelines/pipe-123/edit", RoutePipelineEdit},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app := newTestApp(t, testhelpers.NewFakeClient(), tt.path)
			assert.Equal(t, tt.want, app.Route().Kind)
			assert.NotNil(t, app.Screen())
		})
	}

	_, err := NewApp(context.Background(), nil, nil, "/datasets")
	assert.Error(t, err)
}

func TestApp_DeleteEndToEnd(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline())).
		Respond(testhelpers.OpDeletePipeline, testhelpers.DeletePayload())
	app := newTestApp(t, fake, "/pipelines/pipe-123")
	pv := pipelineScreen(t, app)
	app.Update(pv.fetchPipeline()())

	press(app, "d")
	press(app, deletePhrase)
	press(app, "tab")
	deleted := run(t, press(app, "enter"))
	assert.Nil(t, press(app, "enter"))

	app.Update(deleted)

	req := testhelpers.RequireSingleMutation(t, fake, testhelpers.OpDeletePipeline)
	assert.Equal(t, map[string]any{"sqlPipelineUri": "pipe-123", "deleteFromAWS": true}, req.Variables)
	assert.Equal(t, RoutePipelineList, app.Route().Kind)
	assert.Equal(t, []Notification{{Message: "Pipeline deleted", Variant: VariantSuccess}}, app.Snackbar().Visible())
	assert.Error(t, pv.ctx.Err(), "old view is torn down")
	assert.Contains(t, app.View(), "Pipeline deleted")
}

func TestApp_SameIdentifierKeepsView(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
	app := newTestApp(t, fake, "/pipelines/pipe-123")
	pv := pipelineScreen(t, app)
	app.Update(pv.fetchPipeline()())

	app.Navigate("/pipelines/pipe-123?tab=tags")
	app.Update(noopMsg{})

	assert.Same(t, pv, app.Screen())
	assert.Equal(t, TabTags, pv.Tabs().Selected())
	assert.Len(t, fake.Queries(testhelpers.OpGetPipeline), 1, "no refetch")
	assert.NoError(t, pv.ctx.Err())
}

func TestApp_DeepLinkSelectsTabAfterFetch(t *testing.T) {
	tests := []struct {
		path string
		want Tab
	}{
		{"/pipelines/pipe-123?tab=stack", TabStack},
		{"/pipelines/pipe-123?tab=runs", TabRuns},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fake := testhelpers.NewFakeClient().
				Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
			app := newTestApp(t, fake, tt.path)
			pv := pipelineScreen(t, app)

			app.Update(pv.fetchPipeline()())

			assert.True(t, pv.Tabs().Enabled(TabStack))
			assert.Equal(t, tt.want, pv.Tabs().Selected())
		})
	}
}

func TestApp_DeepLinkStackWithoutStackFallsBack(t *testing.T) {
	bare := testhelpers.NewPipelineBuilder(testhelpers.SamplePipelineURI).WithLabel(testhelpers.SamplePipelineLabel).Build()
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(bare))
	app := newTestApp(t, fake, "/pipelines/pipe-123?tab=stack")
	pv := pipelineScreen(t, app)

	app.Update(pv.fetchPipeline()())

	assert.Equal(t, TabOverview, pv.Tabs().Selected())
}

func TestApp_NewIdentifierReplacesView(t *testing.T) {
	fake := testhelpers.NewFakeClient()
	app := newTestApp(t, fake, "/pipelines/pipe-123")
	old := pipelineScreen(t, app)

	app.Navigate(PipelinePath("pipe-456"))
	app.Update(noopMsg{})

	current := pipelineScreen(t, app)
	assert.NotSame(t, old, current)
	assert.Equal(t, "pipe-456", current.URI())
	assert.ErrorIs(t, old.ctx.Err(), context.Canceled)
	assert.NotEqual(t, old.Activation(), current.Activation())

	// a late result of the old activation changes nothing
	app.Update(pipelineFetchedMsg{activation: old.Activation(), seq: 1, pipeline: testhelpers.SamplePipeline()})
	assert.Nil(t, current.Pipeline())
}

func TestApp_ErrorSurface(t *testing.T) {
	fake := testhelpers.NewFakeClient().RespondErrors(testhelpers.OpGetPipeline, "Access Denied")
	app := newTestApp(t, fake, "/pipelines/pipe-123")
	pv := pipelineScreen(t, app)

	_, cmd := app.Update(pv.fetchPipeline()())

	assert.NotNil(t, cmd, "error expiry is scheduled")
	assert.Equal(t, "Access Denied", app.Errors().Message())
	assert.Contains(t, app.View(), "Access Denied")
	assert.Nil(t, pv.Pipeline())
	assert.False(t, pv.Loading())

	app.Update(errorExpiredMsg{seq: 1})
	assert.Empty(t, app.Errors().Message())
}

func TestApp_InvalidNavigation(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeClient(), "/pipelines")
	app.Navigate("/datasets")
	app.Update(noopMsg{})

	assert.Equal(t, RoutePipelineList, app.Route().Kind)
	assert.Contains(t, app.Errors().Message(), "unknown route")
}

func TestApp_SnackbarCap(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeClient(), "/pipelines")
	for i := 0; i < 5; i++ {
		app.Enqueue(Notification{Message: fmt.Sprintf("note %d", i)})
	}
	app.Update(noopMsg{})

	assert.Len(t, app.Snackbar().Visible(), 3)
	app.Update(toastExpiredMsg{id: 5})
	assert.Len(t, app.Snackbar().Visible(), 2)
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, testhelpers.NewFakeClient(), "/pipelines/pipe-123")
	pv := pipelineScreen(t, app)

	_, cmd := app.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, pv.ctx.Err())
}

func TestApp_ViewBeforeResize(t *testing.T) {
	app, err := NewApp(context.Background(), api.NewService(testhelpers.NewFakeClient()), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Loading...", app.View())
}
