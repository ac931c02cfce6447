package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/api"
)

// deletePhrase must be typed back unless --yes is given
const deletePhrase = "permanently delete"

var (
	deleteFromAWS bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <pipeline-uri>",
		Short: "Delete a pipeline",
		Long: `Permanently delete a pipeline.

This action cannot be undone. With --delete-from-aws the pipeline's
cloud resources are torn down as well.

Examples:
  # Delete with confirmation
  pluqqy-console delete pipe-123

  # Delete including cloud resources, without prompting
  pluqqy-console delete pipe-123 --delete-from-aws -y`,
		Args:    uriArg,
		Aliases: []string{"rm"},
		RunE:    runDelete,
	}

	cmd.Flags().BoolVar(&deleteFromAWS, "delete-from-aws", false, "Also tear down the pipeline's cloud resources")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cc, ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	uri := args[0]

	pipeline, err := cc.Service.GetPipeline(ctx, uri)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err))
	}

	if deleteFromAWS {
		cli.PrintWarning("Cloud resources of '%s' will be deleted as well.", pipeline.DisplayName())
	}
	prompt := fmt.Sprintf("Permanently delete pipeline '%s'? This cannot be undone.", pipeline.DisplayName())
	confirmed, err := cli.ConfirmPhrase(prompt, deletePhrase)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Deletion cancelled")
		return nil
	}

	cc.Logger.Info().Str("pipeline_uri", uri).Bool("delete_from_aws", deleteFromAWS).Msg("deleting pipeline")
	if err := cc.Service.DeletePipeline(ctx, uri, deleteFromAWS); err != nil {
		return fmt.Errorf("failed to delete pipeline: %s", api.Message(err))
	}

	cli.PrintSuccess("Deleted pipeline: %s", pipeline.DisplayName())
	return nil
}
