package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

var (
	updateLabel       string
	updateDescription string
	updateTags        string
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <pipeline-uri>",
		Short: "Update a pipeline's label, description or tags",
		Long: `Update the editable fields of a pipeline. Fields whose flags are not
given keep their current value.

Examples:
  pluqqy-console update pipe-123 --label "Nightly ETL"
  pluqqy-console update pipe-123 --tags "etl, nightly"
  pluqqy-console update pipe-123 --description ""`,
		Args:    uriArg,
		Aliases: []string{"set"},
		RunE:    runUpdate,
	}

	cmd.Flags().StringVar(&updateLabel, "label", "", "New label")
	cmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	cmd.Flags().StringVar(&updateTags, "tags", "", "Comma separated tags, replacing the current ones")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("label") && !flags.Changed("description") && !flags.Changed("tags") {
		return errors.New("nothing to update: pass --label, --description or --tags")
	}

	cc, ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	uri := args[0]

	current, err := cc.Service.GetPipeline(ctx, uri)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err))
	}

	input := models.PipelineUpdate{
		Label:       current.Label,
		Description: current.Description,
		Tags:        current.Tags,
	}
	if flags.Changed("label") {
		input.Label = strings.TrimSpace(updateLabel)
		if input.Label == "" {
			return errors.New("label cannot be empty")
		}
	}
	if flags.Changed("description") {
		input.Description = updateDescription
	}
	if flags.Changed("tags") {
		if input.Tags, err = models.ParseTagList(updateTags); err != nil {
			return err
		}
	}

	updated, err := cc.Service.UpdatePipeline(ctx, uri, input)
	if err != nil {
		return fmt.Errorf("failed to update pipeline: %s", api.Message(err))
	}

	if cc.Output != string(cli.FormatText) {
		return cli.OutputResults(cli.Stdout(), cc.Output, updated)
	}
	cli.PrintSuccess("Updated pipeline: %s", updated.DisplayName())
	return nil
}
