package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/internal/cli"
)

// logOutput receives CLI logs; the TUI logs to a file instead
var logOutput io.Writer = os.Stderr

// commandContext builds the service context for cmd
func commandContext(cmd *cobra.Command) (*cli.CommandContext, context.Context, error) {
	cc, err := cli.NewCommandContext(cmd, logOutput)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return cc, ctx, nil
}

// uriArg validates the single pipeline URI argument
func uriArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	return cli.ValidatePipelineURI(args[0])
}
