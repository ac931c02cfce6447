package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/cmd/commands"
	"github.com/pluqqy/pluqqy-console/internal/cli"
	"github.com/pluqqy/pluqqy-console/pkg/logging"
	"github.com/pluqqy/pluqqy-console/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pluqqy-console [pipeline-uri]",
	Short: "Terminal console for data pipelines",
	Long: `pluqqy-console browses, inspects and manages SQL pipelines through the
platform's GraphQL API. Without a subcommand it starts the interactive TUI,
opening the given pipeline directly when a URI is passed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pluqqy-console",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cli.Stdout(), "pluqqy-console version %s\n", version)
	},
}

func init() {
	cli.RegisterGlobalFlags(rootCmd)
	rootCmd.AddCommand(
		commands.NewListCommand(),
		commands.NewShowCommand(),
		commands.NewDeleteCommand(),
		commands.NewUpdateCommand(),
		commands.NewClipboardCommand(),
		versionCmd,
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, _, err := cli.LoadSettings(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs only go to a file.
	var logOut io.Writer
	if settings.Logging.File != "" {
		f, err := logging.OpenFile(settings.Logging.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	cc, err := cli.NewCommandContext(cmd, logOut)
	if err != nil {
		return err
	}

	initialPath := ""
	if len(args) == 1 {
		if err := cli.ValidatePipelineURI(args[0]); err != nil {
			return err
		}
		initialPath = tui.PipelinePath(args[0])
	}

	app, err := tui.NewApp(cmd.Context(), cc.Service, cc.Settings, initialPath)
	if err != nil {
		return err
	}
	defer app.Close()

	cc.Logger.Info().Str("version", version).Str("path", initialPath).Msg("starting tui")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError("%v", err)
		stop()
		os.Exit(1)
	}
}
