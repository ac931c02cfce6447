package models

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

// Tag-related errors
var (
	ErrEmptyTagName        = errors.New("tag name cannot be empty")
	ErrTagNameTooLong      = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidTagCharacter = errors.New("tag name contains invalid characters")
)

// TagColorPalette provides the colors used to render pipeline topic tags
var TagColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// TagColor returns a stable color for a tag name
func TagColor(tagName string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(tagName)))
	return TagColorPalette[int(h.Sum32())%len(TagColorPalette)]
}

// NormalizeTagName lowercases, trims and hyphenates a tag, dropping characters
// the API does not accept.
func NormalizeTagName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")

	var result strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ValidateTagName checks a tag name as typed by the user, before normalization
func ValidateTagName(name string) error {
	if name == "" {
		return ErrEmptyTagName
	}
	if len(name) > 50 {
		return ErrTagNameTooLong
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == ' ') {
			return ErrInvalidTagCharacter
		}
	}
	return nil
}

// ParseTagList splits a comma separated list into normalized, de-duplicated
// tags. Empty entries are skipped.
func ParseTagList(input string) ([]string, error) {
	seen := make(map[string]bool)
	tags := []string{}
	for _, raw := range strings.Split(input, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if err := ValidateTagName(raw); err != nil {
			return nil, fmt.Errorf("tag %q: %w", raw, err)
		}
		tag := NormalizeTagName(raw)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}
