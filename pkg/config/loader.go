// Package config loads console settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// AppName names the config directory and the environment prefix
const AppName = "pluqqy-console"

// EnvPrefix is prepended to every environment override, e.g. PLUQQY_API_ENDPOINT
const EnvPrefix = "PLUQQY"

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// BindFlag makes a command line flag override the given key when the user set it.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %s", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load loads configuration with proper precedence:
// defaults < config file < env vars < CLI flags
func (l *Loader) Load() (*models.Settings, error) {
	settings := models.DefaultSettings()

	l.setupViper(settings)

	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := l.v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	settings.Logging.File = expandTilde(settings.Logging.File)

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return settings, nil
}

// ConfigFileUsed returns the config file that was loaded, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setupViper(settings *models.Settings) {
	v := l.v

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, AppName))
	}
	if homeDir, _ := os.UserHomeDir(); homeDir != "" {
		v.AddConfigPath(filepath.Join(homeDir, ".config", AppName))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults double as the key registry AutomaticEnv needs for Unmarshal.
	v.SetDefault("api.endpoint", settings.API.Endpoint)
	v.SetDefault("api.token", settings.API.Token)
	v.SetDefault("api.timeout", settings.API.Timeout)
	v.SetDefault("ui.compact", settings.UI.Compact)
	v.SetDefault("ui.max_notifications", settings.UI.MaxNotifications)
	v.SetDefault("ui.notification_timeout", settings.UI.NotificationTimeout)
	v.SetDefault("ui.error_timeout", settings.UI.ErrorTimeout)
	v.SetDefault("ui.stack_poll_interval", settings.UI.StackPollInterval)
	v.SetDefault("ui.page_size", settings.UI.PageSize)
	v.SetDefault("logging.level", settings.Logging.Level)
	v.SetDefault("logging.format", settings.Logging.Format)
	v.SetDefault("logging.file", settings.Logging.File)

	v.AutomaticEnv()
}

// loadConfigFile reads the config file. A missing file is only an error when
// it was named explicitly.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && l.configFile == "" {
			return nil
		}
		return err
	}
	return nil
}

func expandTilde(path string) string {
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
