package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "ETL", "etl"},
		{"trim spaces", "  etl  ", "etl"},
		{"replace spaces", "nightly batch", "nightly-batch"},
		{"remove invalid chars", "etl@job!", "etljob"},
		{"keep underscores", "raw_zone", "raw_zone"},
		{"numbers allowed", "etl-v2", "etl-v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTagName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTagName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidateTagName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType error
	}{
		{"valid simple", "etl", nil},
		{"valid with spaces", "nightly batch", nil},
		{"empty string", "", ErrEmptyTagName},
		{"too long", "this-is-a-very-long-tag-name-that-exceeds-fifty-characters-limit", ErrTagNameTooLong},
		{"invalid chars", "etl#job", ErrInvalidTagCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagName(tt.input)
			if tt.errType == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.errType), "got %v", err)
		})
	}
}

func TestParseTagList(t *testing.T) {
	tags, err := ParseTagList("ETL, nightly batch,, etl ")
	require.NoError(t, err)
	assert.Equal(t, []string{"etl", "nightly-batch"}, tags)

	tags, err = ParseTagList("")
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = ParseTagList("ok, bad!")
	assert.ErrorIs(t, err, ErrInvalidTagCharacter)
}

func TestTagColor_IsStable(t *testing.T) {
	assert.Equal(t, TagColor("etl"), TagColor("ETL"))
	assert.Contains(t, TagColorPalette, TagColor("anything"))
}

func TestPipeline_StackAvailable(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *Pipeline
		want     bool
	}{
		{"nil pipeline", nil, false},
		{"no environment", &Pipeline{Stack: &Stack{StackURI: "s"}}, false},
		{"no stack", &Pipeline{Environment: &Environment{EnvironmentURI: "e"}}, false},
		{"empty stack uri", &Pipeline{Environment: &Environment{EnvironmentURI: "e"}, Stack: &Stack{}}, false},
		{"both present", &Pipeline{Environment: &Environment{EnvironmentURI: "e"}, Stack: &Stack{StackURI: "s"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pipeline.StackAvailable())
		})
	}
}

func TestStack_InProgress(t *testing.T) {
	assert.True(t, (&Stack{Status: "CREATE_IN_PROGRESS"}).InProgress())
	assert.True(t, (&Stack{Status: "pending"}).InProgress())
	assert.False(t, (&Stack{Status: "CREATE_COMPLETE"}).InProgress())
	assert.False(t, (*Stack)(nil).InProgress())
	assert.True(t, (&Stack{Status: "UPDATE_ROLLBACK_COMPLETE"}).Failed())
}

func TestPipeline_DisplayName(t *testing.T) {
	assert.Equal(t, "ETL Job", (&Pipeline{Label: "ETL Job", Name: "etl"}).DisplayName())
	assert.Equal(t, "etl", (&Pipeline{Name: "etl"}).DisplayName())
	assert.Equal(t, "pipe-1", (&Pipeline{SqlPipelineURI: "pipe-1"}).DisplayName())
}
