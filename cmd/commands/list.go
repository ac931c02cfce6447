package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

var (
	listPage     int
	listPageSize int
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [term]",
		Short: "List pipelines",
		Long: `Search pipelines and print one page of results.

Examples:
  # First page of all pipelines
  pluqqy-console list

  # Pipelines matching a term
  pluqqy-console list etl

  # Second page as JSON
  pluqqy-console list --page 2 -o json`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"ls", "search"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidatePaging(listPage, listPageSize)
		},
		RunE: runList,
	}

	cmd.Flags().IntVar(&listPage, "page", 1, "Page to fetch")
	cmd.Flags().IntVar(&listPageSize, "page-size", 20, "Pipelines per page")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cc, ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	filter := models.PipelineFilter{Page: listPage, PageSize: listPageSize}
	if len(args) > 0 {
		filter.Term = strings.TrimSpace(args[0])
	}

	result, err := cc.Service.SearchPipelines(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list pipelines: %w", err)
	}

	out := cli.Stdout()
	if cc.Output != string(cli.FormatText) {
		return cli.OutputResults(out, cc.Output, result)
	}
	if len(result.Nodes) == 0 {
		cli.PrintInfo("No pipelines found")
		return nil
	}
	cli.WritePipelineTable(out, result)
	return nil
}
