package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/config"
	"github.com/pluqqy/pluqqy-console/pkg/logging"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// Persistent flag names shared by every command
const (
	FlagConfig   = "config"
	FlagEndpoint = "endpoint"
	FlagToken    = "token"
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
	FlagQuiet    = "quiet"
	FlagNoColor  = "no-color"
	FlagYes      = "yes"
)

// flagKeys maps flags onto the settings they override
var flagKeys = map[string]string{
	FlagEndpoint: "api.endpoint",
	FlagToken:    "api.token",
	FlagLogLevel: "logging.level",
}

// RegisterGlobalFlags adds the persistent flags and copies the output flags
// into this package before any command runs.
func RegisterGlobalFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String(FlagConfig, "", "config file (default $XDG_CONFIG_HOME/"+config.AppName+"/config.yaml)")
	pf.String(FlagEndpoint, "", "GraphQL endpoint URL")
	pf.String(FlagToken, "", `Authorization header value sent as is with every request, e.g. "Bearer <token>"`)
	pf.String(FlagLogLevel, "", "log level: debug, info, warn, error")
	pf.StringP(FlagOutput, "o", string(FormatText), "output format: text, json, yaml")
	pf.BoolP(FlagQuiet, "q", false, "suppress informational output")
	pf.Bool(FlagNoColor, false, "disable symbols and colors")
	pf.BoolP(FlagYes, "y", false, "skip confirmation prompts")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		q, _ := cmd.Flags().GetBool(FlagQuiet)
		nc, _ := cmd.Flags().GetBool(FlagNoColor)
		yes, _ := cmd.Flags().GetBool(FlagYes)
		SetGlobalFlags(q, nc, yes)

		output, _ := cmd.Flags().GetString(FlagOutput)
		return ValidateOutputFormat(output)
	}
}

// CommandContext carries what a command needs to talk to the service
type CommandContext struct {
	Settings   *models.Settings
	Service    *api.Service
	Logger     zerolog.Logger
	Output     string
	ConfigFile string
}

// LoadSettings resolves settings from defaults, the config file, the
// environment and the persistent flags, in that order.
func LoadSettings(cmd *cobra.Command) (*models.Settings, string, error) {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString(FlagConfig); path != "" {
		loader.SetConfigFile(path)
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := loader.BindFlag(key, f); err != nil {
				return nil, "", err
			}
		}
	}

	settings, err := loader.Load()
	if err != nil {
		return nil, "", err
	}
	return settings, loader.ConfigFileUsed(), nil
}

// NewCommandContext loads settings, sets up logging to logOut and builds the
// API service.
func NewCommandContext(cmd *cobra.Command, logOut io.Writer) (*CommandContext, error) {
	settings, configFile, err := LoadSettings(cmd)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  settings.Logging.Level,
		Format: settings.Logging.Format,
		Output: logOut,
	})
	logger := logging.Component("cli")
	if configFile != "" {
		logger.Debug().Str("config", configFile).Msg("loaded config file")
	}

	client, err := api.NewHTTPClient(api.ClientConfig{
		Endpoint: settings.API.Endpoint,
		Token:    settings.API.Token,
		Timeout:  settings.API.Timeout,
		Logger:   logging.Component("api"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	output, _ := cmd.Flags().GetString(FlagOutput)
	if output == "" {
		output = string(FormatText)
	}

	return &CommandContext{
		Settings:   settings,
		Service:    api.NewService(client),
		Logger:     logger,
		Output:     output,
		ConfigFile: configFile,
	}, nil
}
