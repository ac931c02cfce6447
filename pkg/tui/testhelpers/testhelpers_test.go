package testhelpers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-console/pkg/api"
)

func TestPipelineBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := NewPipelineBuilder("pipe-9").Build()
		assert.Equal(t, "pipe-9", p.SqlPipelineURI)
		assert.Equal(t, "pipe-9", p.Label)
		assert.False(t, p.StackAvailable())
	})

	t.Run("sample has stack references", func(t *testing.T) {
		p := SamplePipeline()
		assert.Equal(t, SamplePipelineLabel, p.Label)
		assert.True(t, p.StackAvailable())
		assert.Equal(t, SampleStackURI, p.Stack.StackURI)
	})

	t.Run("builds independent copies", func(t *testing.T) {
		b := NewPipelineBuilder("pipe-9")
		first := b.Build()
		first.Label = "changed"
		assert.Equal(t, "pipe-9", b.Build().Label)
	})
}

func TestFakeClient(t *testing.T) {
	ctx := context.Background()

	t.Run("serves configured payloads through the service", func(t *testing.T) {
		fake := NewFakeClient().Respond(OpGetPipeline, PipelinePayload(SamplePipeline()))
		p, err := api.NewService(fake).GetPipeline(ctx, SamplePipelineURI)
		require.NoError(t, err)
		assert.Equal(t, SamplePipelineLabel, p.Label)
		assert.Len(t, fake.Queries(OpGetPipeline), 1)
		assert.Empty(t, fake.Mutations(""))
	})

	t.Run("unconfigured operation is a null payload", func(t *testing.T) {
		_, err := api.NewService(NewFakeClient()).GetPipeline(ctx, "missing")
		assert.True(t, api.IsNotFound(err))
	})

	t.Run("errors list", func(t *testing.T) {
		fake := NewFakeClient().RespondErrors(OpDeletePipeline, "Access Denied")
		err := api.NewService(fake).DeletePipeline(ctx, SamplePipelineURI, false)
		assert.Equal(t, "Access Denied", api.Message(err))
		RequireSingleMutation(t, fake, OpDeletePipeline)
	})

	t.Run("transport failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		fake := NewFakeClient().Fail(OpSearch, boom)
		_, err := api.NewService(fake).SearchPipelines(ctx, SearchRequestFilter())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := api.NewService(NewFakeClient()).GetPipeline(canceled, SamplePipelineURI)
		assert.True(t, api.IsCanceled(err))
	})
}
