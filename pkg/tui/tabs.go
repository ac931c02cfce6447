package tui

import (
	"strings"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// Tab is one of the pipeline detail panels
type Tab int

const (
	TabOverview Tab = iota
	TabRuns
	TabTags
	TabStack

	// tabNone is selected after an unknown tab value; it renders no panel
	tabNone Tab = -1
)

// pipelineTabs lists the tabs in display order
var pipelineTabs = []Tab{TabOverview, TabRuns, TabTags, TabStack}

// Value is the stable identifier used in links and on the command line
func (t Tab) Value() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabRuns:
		return "runs"
	case TabTags:
		return "tags"
	case TabStack:
		return "stack"
	default:
		return ""
	}
}

func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabRuns:
		return "Execution"
	case TabTags:
		return "Tags"
	case TabStack:
		return "Stack"
	default:
		return ""
	}
}

// ParseTab maps a tab value to its Tab
func ParseTab(value string) (Tab, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, t := range pipelineTabs {
		if t.Value() == v {
			return t, true
		}
	}
	return tabNone, false
}

// TabRouter holds the selected tab of one view activation.
// The stack tab is only selectable when the pipeline carries environment and
// stack references.
type TabRouter struct {
	selected       Tab
	stackAvailable bool
}

func NewTabRouter() TabRouter {
	return TabRouter{selected: TabOverview}
}

// SetPipeline refreshes which tabs are enabled. If the stack tab was selected
// and is no longer available the router falls back to overview.
func (r *TabRouter) SetPipeline(p *models.Pipeline) {
	r.stackAvailable = p.StackAvailable()
	if r.selected == TabStack && !r.stackAvailable {
		r.selected = TabOverview
	}
}

func (r TabRouter) Selected() Tab {
	return r.selected
}

// Enabled reports whether t can be selected
func (r TabRouter) Enabled(t Tab) bool {
	switch t {
	case TabOverview, TabRuns, TabTags:
		return true
	case TabStack:
		return r.stackAvailable
	default:
		return false
	}
}

// Select moves to t. Disabled tabs are refused and leave the selection as is.
func (r *TabRouter) Select(t Tab) bool {
	if !r.Enabled(t) {
		return false
	}
	r.selected = t
	return true
}

// SelectValue selects by tab value. An unknown value clears the selection so
// that no panel renders.
func (r *TabRouter) SelectValue(value string) bool {
	t, ok := ParseTab(value)
	if !ok {
		r.selected = tabNone
		return false
	}
	return r.Select(t)
}

// Next moves to the following enabled tab, wrapping around
func (r *TabRouter) Next() {
	r.step(1)
}

// Prev moves to the preceding enabled tab, wrapping around
func (r *TabRouter) Prev() {
	r.step(-1)
}

func (r *TabRouter) step(dir int) {
	n := len(pipelineTabs)
	start := 0
	for i, t := range pipelineTabs {
		if t == r.selected {
			start = i
			break
		}
	}
	if r.selected == tabNone {
		// the first step from no selection lands on an end of the strip
		start = 0
		if dir > 0 {
			start = -1
		}
	}
	for i := 1; i <= n; i++ {
		candidate := pipelineTabs[((start+dir*i)%n+n)%n]
		if r.Enabled(candidate) {
			r.selected = candidate
			return
		}
	}
}

// View renders the tab strip
func (r TabRouter) View() string {
	parts := make([]string, 0, len(pipelineTabs))
	for i, t := range pipelineTabs {
		label := string(rune('1'+i)) + " " + t.Label()
		switch {
		case !r.Enabled(t):
			parts = append(parts, TabDisabledStyle.Render(label))
		case t == r.selected:
			parts = append(parts, TabActiveStyle.Render(label))
		default:
			parts = append(parts, TabInactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, "")
}
