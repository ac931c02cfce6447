package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestValidatePipelineURI(t *testing.T) {
	tests := []struct {
		uri     string
		wantErr bool
	}{
		{"pipe-123", false},
		{"", true},
		{"   ", true},
		{"pipe 123", true},
	}
	for _, tt := range tests {
		err := ValidatePipelineURI(tt.uri)
		if tt.wantErr {
			assert.Error(t, err, tt.uri)
		} else {
			assert.NoError(t, err, tt.uri)
		}
	}
}

func TestValidatePaging(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantErr  bool
	}{
		{"defaults", 1, 20, false},
		{"max size", 3, 100, false},
		{"zero page", 0, 20, true},
		{"zero size", 1, 0, true},
		{"size too large", 1, 101, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaging(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
