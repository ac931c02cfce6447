package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path    string
		want    Route
		wantErr bool
	}{
		{"/pipelines", Route{Kind: RoutePipelineList}, false},
		{"/pipelines/", Route{Kind: RoutePipelineList}, false},
		{"/console/pipelines", Route{Kind: RoutePipelineList}, false},
		{"/pipelines/pipe-123", Route{Kind: RoutePipelineView, PipelineURI: "pipe-123"}, false},
		{"/pipelines/pipe-123/edit", Route{Kind: RoutePipelineEdit, PipelineURI: "pipe-123"}, false},
		{"/pipelines/a%2Fb", Route{Kind: RoutePipelineView, PipelineURI: "a/b"}, false},
		{"/pipelines/pipe-123?tab=runs", Route{Kind: RoutePipelineView, PipelineURI: "pipe-123", Tab: "runs"}, false},
		{"/pipelines/pipe-123?tab=bogus", Route{Kind: RoutePipelineView, PipelineURI: "pipe-123", Tab: "bogus"}, false},
		{"/pipelines/pipe-123/delete", Route{}, true},
		{"/datasets", Route{}, true},
		{"/pipelines/pipe-123/edit/more", Route{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseRoute(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoutePath_RoundTrip(t *testing.T) {
	for _, r := range []Route{
		{Kind: RoutePipelineList},
		{Kind: RoutePipelineView, PipelineURI: "pipe-123"},
		{Kind: RoutePipelineView, PipelineURI: "pipe-123", Tab: "stack"},
		{Kind: RoutePipelineEdit, PipelineURI: "with/slash"},
	} {
		parsed, err := ParseRoute(r.Path())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	assert.Equal(t, "/pipelines/pipe-123/edit", PipelineEditPath("pipe-123"))
}
