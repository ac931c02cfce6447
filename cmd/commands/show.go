package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

var (
	showRuns bool
	showTags bool
)

// ShowResult is the structured output of show
type ShowResult struct {
	Pipeline   *models.Pipeline     `json:"pipeline" yaml:"pipeline"`
	Executions []models.Execution   `json:"executions,omitempty" yaml:"executions,omitempty"`
	Tags       []models.KeyValueTag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <pipeline-uri>",
		Short: "Display a pipeline",
		Long: `Display a pipeline's details, optionally with its executions and
key-value tags.

Examples:
  pluqqy-console show pipe-123
  pluqqy-console show pipe-123 --runs --tags
  pluqqy-console show pipe-123 -o yaml`,
		Args: uriArg,
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showRuns, "runs", false, "Include executions")
	cmd.Flags().BoolVar(&showTags, "tags", false, "Include key-value tags")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cc, ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	uri := args[0]

	pipeline, err := cc.Service.GetPipeline(ctx, uri)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err))
	}
	result := ShowResult{Pipeline: pipeline}

	if showRuns {
		if result.Executions, err = cc.Service.ListExecutions(ctx, uri); err != nil {
			return fmt.Errorf("failed to list executions: %w", err)
		}
	}
	if showTags {
		if result.Tags, err = cc.Service.ListTags(ctx, uri, api.TargetTypePipeline); err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}
	}

	out := cli.Stdout()
	if cc.Output != string(cli.FormatText) {
		return cli.OutputResults(out, cc.Output, result)
	}

	cli.WritePipelineDetails(out, pipeline)
	if showRuns {
		fmt.Fprintln(out)
		table := cli.NewTableFormatter(out)
		table.Header("EXECUTION", "STATUS", "STARTED", "STOPPED")
		for _, e := range result.Executions {
			table.Row(e.ExecutionArn, e.Status, e.StartDate, e.StopDate)
		}
		table.Flush()
	}
	if showTags {
		fmt.Fprintln(out)
		table := cli.NewTableFormatter(out)
		table.Header("KEY", "VALUE", "CASCADE")
		for _, t := range result.Tags {
			table.Row(t.Key, t.Value, fmt.Sprintf("%t", t.Cascade))
		}
		table.Flush()
	}
	return nil
}
