package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
	"github.com/pluqqy/pluqqy-console/pkg/tui/testhelpers"
)

func TestPipelineView_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*testhelpers.FakeClient)
		wantLabel  string
		wantErrors []string
	}{
		{
			name: "success",
			setup: func(f *testhelpers.FakeClient) {
				f.Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
			},
			wantLabel: testhelpers.SamplePipelineLabel,
		},
		{
			name: "null payload",
			setup: func(f *testhelpers.FakeClient) {
				f.Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(nil))
			},
			wantErrors: []string{"Pipeline not found"},
		},
		{
			name: "errors list",
			setup: func(f *testhelpers.FakeClient) {
				f.RespondErrors(testhelpers.OpGetPipeline, "Access Denied", "second")
			},
			wantErrors: []string{"Access Denied"},
		},
		{
			name: "transport failure",
			setup: func(f *testhelpers.FakeClient) {
				f.Fail(testhelpers.OpGetPipeline, errors.New("connection refused"))
			},
			wantErrors: []string{"connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testhelpers.NewFakeClient()
			tt.setup(fake)
			m, rec := newTestView(t, fake)
			assert.True(t, m.Loading())

			loadView(t, m)

			assert.Equal(t, tt.wantErrors, rec.errors)
			if tt.wantLabel == "" {
				assert.Nil(t, m.Pipeline())
				assert.Empty(t, m.View())
				assert.Empty(t, m.PanelView())
				return
			}
			require.NotNil(t, m.Pipeline())
			assert.Equal(t, tt.wantLabel, m.Pipeline().Label)
			assert.Contains(t, m.View(), "Pipeline "+tt.wantLabel)

			queries := fake.Queries(testhelpers.OpGetPipeline)
			require.Len(t, queries, 1)
			assert.Equal(t, testhelpers.SamplePipelineURI, queries[0].Variables["sqlPipelineUri"])
		})
	}
}

func TestPipelineView_LoadingView(t *testing.T) {
	m, _ := newTestView(t, testhelpers.NewFakeClient())
	assert.Contains(t, m.View(), "Loading pipeline")
}

func TestPipelineView_DropsStaleResults(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))

	old, _ := newTestView(t, fake)
	current, rec := newTestView(t, fake)
	require.NotEqual(t, old.Activation(), current.Activation())

	current.Update(old.fetchPipeline()())

	assert.True(t, current.Loading())
	assert.Nil(t, current.Pipeline())
	assert.Empty(t, rec.errors)
}

func TestPipelineView_DropsSupersededFetch(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
	m, _ := newTestView(t, fake)

	first := m.fetchPipeline()
	second := m.fetchPipeline()

	m.Update(first())
	assert.True(t, m.Loading(), "older fetch of the same activation is ignored")

	m.Update(second())
	assert.False(t, m.Loading())
}

func TestPipelineView_IgnoresResultsAfterClose(t *testing.T) {
	fake := testhelpers.NewFakeClient().RespondErrors(testhelpers.OpGetPipeline, "Access Denied")
	m, rec := newTestView(t, fake)
	cmd := m.fetchPipeline()

	m.Close()
	m.Update(cmd())

	assert.Empty(t, rec.errors)
	assert.Nil(t, m.Pipeline())
}

func TestPipelineView_Refetch(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
	m, _ := newTestView(t, fake)
	loadView(t, m)

	renamed := testhelpers.SamplePipeline()
	renamed.Label = "Renamed"
	fake.Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(renamed))

	cmd := m.Refetch()
	require.NotNil(t, cmd)
	assert.Nil(t, m.Refetch(), "no second refetch while one is pending")

	m.Update(cmd())
	assert.Equal(t, "Renamed", m.Pipeline().Label)
	assert.Len(t, fake.Queries(testhelpers.OpGetPipeline), 2)
}

func TestPipelineView_DeleteFlow(t *testing.T) {
	setup := func(t *testing.T) (*PipelineViewModel, *recorder, *testhelpers.FakeClient) {
		fake := testhelpers.NewFakeClient().
			Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline())).
			Respond(testhelpers.OpDeletePipeline, testhelpers.DeletePayload())
		m, rec := newTestView(t, fake)
		loadView(t, m)
		return m, rec, fake
	}

	t.Run("cancel issues nothing", func(t *testing.T) {
		m, rec, fake := setup(t)

		press(m, "d")
		assert.Equal(t, DeleteOpen, m.DeleteFlow().State())
		assert.Contains(t, m.View(), "Delete "+testhelpers.SamplePipelineLabel)

		press(m, "esc")
		assert.Equal(t, DeleteClosed, m.DeleteFlow().State())
		testhelpers.RequireNoMutations(t, fake)
		assert.Empty(t, rec.navigations, "esc only closes the dialog")
	})

	t.Run("confirm needs the phrase", func(t *testing.T) {
		m, _, fake := setup(t)
		press(m, "d")
		press(m, "permanently")

		assert.Nil(t, press(m, "enter"))
		testhelpers.RequireNoMutations(t, fake)
	})

	t.Run("confirm deletes once and navigates", func(t *testing.T) {
		m, rec, fake := setup(t)
		press(m, "d")
		press(m, deletePhrase)
		press(m, "tab")

		cmd := press(m, "enter")
		require.NotNil(t, cmd)
		assert.True(t, m.DeleteFlow().InFlight())
		assert.Nil(t, press(m, "enter"), "second confirm while in flight")
		assert.Nil(t, press(m, "esc"), "cancel refused while in flight")

		m.Update(cmd())

		req := testhelpers.RequireSingleMutation(t, fake, testhelpers.OpDeletePipeline)
		assert.Equal(t, map[string]any{"sqlPipelineUri": "pipe-123", "deleteFromAWS": true}, req.Variables)
		assert.Equal(t, DeleteClosed, m.DeleteFlow().State())
		assert.Equal(t, []Notification{{Message: "Pipeline deleted", Variant: VariantSuccess}}, rec.notifications)
		assert.Equal(t, []string{PipelinesPath}, rec.navigations)
		assert.Empty(t, rec.errors)
	})

	t.Run("failure keeps the dialog open", func(t *testing.T) {
		m, rec, fake := setup(t)
		fake.RespondErrors(testhelpers.OpDeletePipeline, "Access Denied")
		press(m, "d")
		press(m, deletePhrase)

		cmd := press(m, "enter")
		require.NotNil(t, cmd)
		m.Update(cmd())

		req := testhelpers.RequireSingleMutation(t, fake, testhelpers.OpDeletePipeline)
		assert.Equal(t, false, req.Variables["deleteFromAWS"])
		assert.Equal(t, DeleteOpen, m.DeleteFlow().State())
		assert.False(t, m.DeleteFlow().InFlight())
		assert.Equal(t, []string{"Access Denied"}, rec.errors)
		assert.Empty(t, rec.notifications)
		assert.Empty(t, rec.navigations)
	})
}

func TestPipelineView_Tabs(t *testing.T) {
	run := models.Execution{ExecutionArn: "arn:aws:states:eu-west-1:1:execution:etl:run-42", Status: "SUCCEEDED"}
	tag := models.KeyValueTag{Key: "team", Value: "data", Cascade: true}
	stack := &models.Stack{StackURI: testhelpers.SampleStackURI, Stack: "pipeline-etl", Status: "UPDATE_COMPLETE"}

	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline())).
		Respond(testhelpers.OpExecutions, testhelpers.ExecutionsPayload(run)).
		Respond(testhelpers.OpTags, testhelpers.TagsPayload(tag)).
		Respond(testhelpers.OpStack, testhelpers.StackPayload(stack))
	m, _ := newTestView(t, fake)
	loadView(t, m)

	assert.Equal(t, TabOverview, m.Tabs().Selected())
	assert.Contains(t, m.PanelView(), "Loads raw events")

	cmd := press(m, "2")
	assert.Equal(t, TabRuns, m.Tabs().Selected())
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.PanelView(), "run-42")
	assert.Nil(t, press(m, "1"), "overview loads nothing")
	assert.Nil(t, press(m, "2"), "runs are loaded once")

	cmd = press(m, "3")
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.PanelView(), "team")

	tagQueries := fake.Queries(testhelpers.OpTags)
	require.Len(t, tagQueries, 1)
	assert.Equal(t, map[string]any{"targetUri": "pipe-123", "targetType": "pipeline"}, tagQueries[0].Variables)

	cmd = press(m, "4")
	assert.Equal(t, TabStack, m.Tabs().Selected())
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.PanelView(), "UPDATE_COMPLETE")

	m.SelectTab("bogus")
	assert.Empty(t, m.PanelView())

	press(m, "tab")
	assert.Equal(t, TabOverview, m.Tabs().Selected())
}

func TestPipelineView_StackTabDisabledWithoutStack(t *testing.T) {
	p := testhelpers.NewPipelineBuilder("pipe-123").WithLabel("No Stack").Build()
	fake := testhelpers.NewFakeClient().Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(p))
	m, _ := newTestView(t, fake)
	loadView(t, m)

	assert.Nil(t, press(m, "4"))
	assert.Equal(t, TabOverview, m.Tabs().Selected())

	press(m, "shift+tab")
	assert.Equal(t, TabTags, m.Tabs().Selected(), "cycling skips the disabled stack tab")
	assert.Empty(t, fake.Queries(testhelpers.OpStack))
}

func TestPipelineView_PanelErrorsAreReported(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline())).
		RespondErrors(testhelpers.OpExecutions, "Throttled")
	m, rec := newTestView(t, fake)
	loadView(t, m)

	cmd := press(m, "2")
	m.Update(cmd())

	assert.Equal(t, []string{"Throttled"}, rec.errors)
	assert.Contains(t, m.PanelView(), "Throttled")
}

func TestPipelineView_HeaderActions(t *testing.T) {
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline())).
		Respond(testhelpers.OpFeed, testhelpers.FeedPayload(models.FeedMessage{Creator: "bob", Content: "hello"})).
		Respond(testhelpers.OpPostFeed, testhelpers.FeedPostPayload(models.FeedMessage{Creator: "alice", Content: "hi bob"}))
	m, rec := newTestView(t, fake)
	loadView(t, m)

	t.Run("edit navigates", func(t *testing.T) {
		press(m, "e")
		assert.Equal(t, []string{"/pipelines/pipe-123/edit"}, rec.navigations)
	})

	t.Run("chat opens the feed", func(t *testing.T) {
		cmd := press(m, "c")
		require.NotNil(t, m.Feed())
		assert.True(t, m.Feed().Active())
		assert.Equal(t, FeedTarget{Owner: testhelpers.SampleOwner, TargetType: "SqlPipeline", TargetURI: "pipe-123"}, m.Feed().Target())

		m.Update(cmd())
		require.Len(t, m.Feed().Messages(), 1)
		assert.Contains(t, m.View(), "hello")

		press(m, "hi bob")
		post := press(m, "enter")
		require.NotNil(t, post)
		m.Update(post())
		assert.Len(t, m.Feed().Messages(), 2)
		posted := testhelpers.RequireSingleMutation(t, fake, testhelpers.OpPostFeed)
		assert.Equal(t, map[string]any{"content": "hi bob"}, posted.Variables["input"])

		press(m, "esc")
		assert.False(t, m.Feed().Active())
		assert.Len(t, rec.navigations, 1, "esc closes the feed without leaving the view")
	})

	t.Run("esc goes back to the list", func(t *testing.T) {
		press(m, "esc")
		assert.Equal(t, PipelinesPath, rec.navigations[len(rec.navigations)-1])
	})
}

func TestPipelineView_StackPolling(t *testing.T) {
	p := testhelpers.NewPipelineBuilder("pipe-123").
		WithEnvironment(testhelpers.SampleEnvironmentURI).
		WithStack(testhelpers.SampleStackURI, "CREATE_IN_PROGRESS").
		Build()
	settled := &models.Stack{StackURI: testhelpers.SampleStackURI, Status: "CREATE_COMPLETE"}
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(p)).
		Respond(testhelpers.OpStack, testhelpers.StackPayload(settled))
	m, _ := newTestView(t, fake)
	loadView(t, m)

	require.True(t, m.status.Polling())
	assert.Contains(t, m.View(), "CREATE_IN_PROGRESS")

	_, cmd := m.Update(stackPollMsg{activation: m.Activation(), seq: m.status.seq})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.False(t, m.status.Polling())
	assert.Equal(t, "CREATE_COMPLETE", m.Pipeline().Stack.Status)
	assert.NotContains(t, m.View(), "refreshing every")

	_, cmd = m.Update(stackPollMsg{activation: m.Activation(), seq: m.status.seq})
	assert.Nil(t, cmd, "no poll once settled")
}

func TestPipelineView_UsesParentContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	fake := testhelpers.NewFakeClient().
		Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
	m := NewPipelineViewModel(parent, "pipe-123", api.NewService(fake), (&recorder{}).ports(), testSettings())

	cancel()
	m.Update(m.fetchPipeline()())
	assert.True(t, m.Loading(), "results under a canceled app context are dropped")
}

func TestPipelineView_CompactCapsWidth(t *testing.T) {
	widest := func(view string) int {
		w := 0
		for _, line := range strings.Split(view, "\n") {
			w = max(w, lipgloss.Width(line))
		}
		return w
	}

	tests := []struct {
		name    string
		compact bool
		check   func(t *testing.T, width int)
	}{
		{"compact", true, func(t *testing.T, width int) {
			assert.LessOrEqual(t, width, compactWidth)
		}},
		{"full width", false, func(t *testing.T, width int) {
			assert.Greater(t, width, compactWidth)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testhelpers.NewFakeClient().
				Respond(testhelpers.OpGetPipeline, testhelpers.PipelinePayload(testhelpers.SamplePipeline()))
			settings := testSettings()
			settings.Compact = tt.compact

			m := NewPipelineViewModel(context.Background(), testhelpers.SamplePipelineURI, api.NewService(fake), (&recorder{}).ports(), settings)
			t.Cleanup(m.Close)
			m.SetSize(200, 40)
			loadView(t, m)

			tt.check(t, widest(m.View()))
		})
	}
}
