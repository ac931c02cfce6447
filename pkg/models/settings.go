package models

import (
	"errors"
	"fmt"
	"time"
)

// Settings represents the application configuration
type Settings struct {
	API     APISettings     `yaml:"api" mapstructure:"api"`
	UI      UISettings      `yaml:"ui" mapstructure:"ui"`
	Logging LoggingSettings `yaml:"logging" mapstructure:"logging"`
}

// APISettings controls how the console reaches the GraphQL service
type APISettings struct {
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Token    string        `yaml:"token" mapstructure:"token"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// UISettings controls UI preferences
type UISettings struct {
	Compact             bool          `yaml:"compact" mapstructure:"compact"`
	MaxNotifications    int           `yaml:"max_notifications" mapstructure:"max_notifications"`
	NotificationTimeout time.Duration `yaml:"notification_timeout" mapstructure:"notification_timeout"`
	ErrorTimeout        time.Duration `yaml:"error_timeout" mapstructure:"error_timeout"`
	StackPollInterval   time.Duration `yaml:"stack_poll_interval" mapstructure:"stack_poll_interval"`
	PageSize            int           `yaml:"page_size" mapstructure:"page_size"`
}

// LoggingSettings controls log output. The TUI only logs when File is set.
type LoggingSettings struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			Endpoint: "http://localhost:5000/graphql/api",
			Timeout:  30 * time.Second,
		},
		UI: UISettings{
			Compact:             false,
			MaxNotifications:    3,
			NotificationTimeout: 4 * time.Second,
			ErrorTimeout:        8 * time.Second,
			StackPollInterval:   10 * time.Second,
			PageSize:            20,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the settings for values the console cannot run with
func (s *Settings) Validate() error {
	var errs []error
	if s.API.Endpoint == "" {
		errs = append(errs, errors.New("api.endpoint is required"))
	}
	if s.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", s.API.Timeout))
	}
	if s.UI.MaxNotifications < 1 {
		errs = append(errs, fmt.Errorf("ui.max_notifications must be at least 1, got %d", s.UI.MaxNotifications))
	}
	if s.UI.NotificationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ui.notification_timeout must be positive, got %s", s.UI.NotificationTimeout))
	}
	if s.UI.ErrorTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ui.error_timeout must be positive, got %s", s.UI.ErrorTimeout))
	}
	if s.UI.StackPollInterval <= 0 {
		errs = append(errs, fmt.Errorf("ui.stack_poll_interval must be positive, got %s", s.UI.StackPollInterval))
	}
	if s.UI.PageSize < 1 {
		errs = append(errs, fmt.Errorf("ui.page_size must be at least 1, got %d", s.UI.PageSize))
	}
	return errors.Join(errs...)
}
