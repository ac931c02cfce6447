package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/api"
)

var (
	copyDetails bool
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewClipboardCommand creates the copy command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <pipeline-uri>",
		Short: "Copy a pipeline URI to the clipboard",
		Long: `Copy a pipeline's URI to the system clipboard. With --details the
pipeline is fetched and copied as YAML instead.

Examples:
  pluqqy-console copy pipe-123
  pluqqy-console copy pipe-123 --details`,
		Args:    uriArg,
		Aliases: []string{"cp", "clipboard"},
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&copyDetails, "details", false, "Copy the pipeline as YAML")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	uri := args[0]
	content := uri

	if copyDetails {
		cc, ctx, err := commandContext(cmd)
		if err != nil {
			return err
		}
		pipeline, err := cc.Service.GetPipeline(ctx, uri)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		data, err := yaml.Marshal(pipeline)
		if err != nil {
			return fmt.Errorf("failed to encode pipeline: %w", err)
		}
		content = string(data)
	}

	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	if copyDetails {
		cli.PrintSuccess("Copied pipeline %s to clipboard", uri)
	} else {
		cli.PrintSuccess("Copied %s to clipboard", uri)
	}
	return nil
}
