package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 80))
}

func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults writes data as JSON or YAML. Text output is formatted by the
// caller; data is printed as is.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WritePipelineTable renders one page of pipelines as text
func WritePipelineTable(w io.Writer, result *models.PipelineSearchResult) {
	table := NewTableFormatter(w)
	table.Header("URI", "LABEL", "OWNER", "ENVIRONMENT", "CREATED")
	for _, p := range result.Nodes {
		env := "-"
		if p.Environment != nil {
			env = p.Environment.Label
		}
		table.Row(p.SqlPipelineURI, TruncateString(p.DisplayName(), 40), p.Owner, env, p.Created)
	}
	table.Flush()
	fmt.Fprintf(w, "\npage %d of %d (%d pipelines)\n", max(result.Page, 1), max(result.Pages, 1), result.Count)
}

// WritePipelineDetails renders one pipeline as text
func WritePipelineDetails(w io.Writer, p *models.Pipeline) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%s:\t%s\n", label, value)
	}
	field("URI", p.SqlPipelineURI)
	field("Label", p.Label)
	field("Name", p.Name)
	field("Owner", p.Owner)
	field("Team", p.SamlGroupName)
	field("Created", p.Created)
	field("Repository", p.Repo)
	field("Dev strategy", p.DevStrategy)
	field("Topics", strings.Join(p.Tags, ", "))
	if p.Environment != nil {
		field("Environment", fmt.Sprintf("%s (%s, %s)", p.Environment.Label, p.Environment.AwsAccountID, p.Environment.Region))
	}
	if p.Stack != nil {
		field("Stack status", p.Stack.Status)
	}
	field("Description", p.Description)
	tw.Flush()
}

// TruncateString truncates a string to the specified length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
