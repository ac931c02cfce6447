package cli

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat checks the --output flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
	}
}

// ValidatePipelineURI rejects identifiers that cannot address a pipeline
func ValidatePipelineURI(uri string) error {
	if strings.TrimSpace(uri) == "" {
		return fmt.Errorf("pipeline URI cannot be empty")
	}
	if strings.ContainsAny(uri, " \t\n") {
		return fmt.Errorf("pipeline URI cannot contain whitespace: %q", uri)
	}
	return nil
}

// ValidatePaging checks --page and --page-size
func ValidatePaging(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	if pageSize < 1 || pageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100, got %d", pageSize)
	}
	return nil
}
