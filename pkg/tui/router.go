package tui

import (
	"fmt"
	"net/url"
	"strings"
)

// RouteKind identifies a screen
type RouteKind int

const (
	RoutePipelineList RouteKind = iota
	RoutePipelineView
	RoutePipelineEdit
)

// PipelinesPath is the collection view
const PipelinesPath = "/pipelines"

// Route is a parsed logical path
type Route struct {
	Kind        RouteKind
	PipelineURI string
	// Tab is the optional ?tab= value of a detail route
	Tab string
}

// PipelinePath returns /pipelines/{id}
func PipelinePath(uri string) string {
	return PipelinesPath + "/" + url.PathEscape(uri)
}

// PipelineEditPath returns /pipelines/{id}/edit
func PipelineEditPath(uri string) string {
	return PipelinePath(uri) + "/edit"
}

// Path renders the route back into its logical path
func (r Route) Path() string {
	switch r.Kind {
	case RoutePipelineView:
		if r.Tab != "" {
			return PipelinePath(r.PipelineURI) + "?tab=" + url.QueryEscape(r.Tab)
		}
		return PipelinePath(r.PipelineURI)
	case RoutePipelineEdit:
		return PipelineEditPath(r.PipelineURI)
	default:
		return PipelinesPath
	}
}

// ParseRoute parses one of /pipelines, /pipelines/{id}[?tab=...] or
// /pipelines/{id}/edit. A leading /console prefix is accepted and dropped.
func ParseRoute(path string) (Route, error) {
	trimmed, rawQuery, _ := strings.Cut(path, "?")
	trimmed = strings.TrimPrefix(trimmed, "/console")
	trimmed = strings.Trim(trimmed, "/")
	parts := strings.Split(trimmed, "/")

	if len(parts) == 0 || parts[0] != "pipelines" {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}

	switch len(parts) {
	case 1:
		return Route{Kind: RoutePipelineList}, nil
	case 2, 3:
		uri, err := url.PathUnescape(parts[1])
		if err != nil || uri == "" {
			return Route{}, fmt.Errorf("invalid pipeline identifier in %q", path)
		}
		if len(parts) == 2 {
			query, err := url.ParseQuery(rawQuery)
			if err != nil {
				return Route{}, fmt.Errorf("invalid query in %q: %w", path, err)
			}
			return Route{Kind: RoutePipelineView, PipelineURI: uri, Tab: query.Get("tab")}, nil
		}
		if parts[2] == "edit" {
			return Route{Kind: RoutePipelineEdit, PipelineURI: uri}, nil
		}
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}
