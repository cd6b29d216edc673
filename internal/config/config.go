package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/smart-home/internal/logger"
)

// AlertRoute binds one alert category to the label its handler prints.
type AlertRoute struct {
	// Category is the alert category the handler matches.
	Category string `yaml:"category"`
	// Label prefixes the alert message when the handler fires.
	Label string `yaml:"label"`
}

// Config holds the settings shared by the demo and script commands.
type Config struct {
	// DeviceName is the name of the demonstrated device.
	DeviceName string `yaml:"device_name"`
	// HubName is the key the device is registered under in the hub.
	HubName string `yaml:"hub_name"`
	// LogLevel pins the event log sink threshold. Empty follows --log-level.
	LogLevel string `yaml:"log_level"`
	// Format selects the transcript renderer: text or json.
	Format string `yaml:"format"`
	// ScheduleTime is the hour the timed strategy announces.
	ScheduleTime string `yaml:"schedule_time"`
	// AlertChain lists handlers head first.
	AlertChain []AlertRoute `yaml:"alert_chain"`
	// InterpreterCommands are the phrases fed to the interpreter section.
	InterpreterCommands []string `yaml:"interpreter_commands"`
}

const (
	// DefaultConfigFilename is the default filename for demo settings.
	DefaultConfigFilename = "smart-home.yaml"

	// DefaultDeviceName is the device the demo drives.
	DefaultDeviceName = "Living Room Light"

	// DefaultHubName is the hub key of the demo device.
	DefaultHubName = "living_room_light"

	// DefaultScheduleTime is announced by the timed strategy.
	DefaultScheduleTime = "7 PM"

	// FormatText renders the transcript line by line.
	FormatText = "text"

	// FormatJSON renders one JSON object per event.
	FormatJSON = "json"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownFormat is returned for a transcript format other than text or json.
	errUnknownFormat = errors.New("unknown transcript format")
	// errUnknownLogLevel is returned when log_level cannot be parsed.
	errUnknownLogLevel = errors.New("unknown log level")
	// errEmptyCategory is returned when an alert route has no category.
	errEmptyCategory = errors.New("alert category must be provided")
	// errDuplicateCategory is returned when two alert routes share a category.
	errDuplicateCategory = errors.New("duplicate alert category")
)

// Default returns the settings of the built-in demonstration.
func Default() *Config {
	return &Config{
		DeviceName:   DefaultDeviceName,
		HubName:      DefaultHubName,
		Format:       FormatText,
		ScheduleTime: DefaultScheduleTime,
		AlertChain:   DefaultAlertChain(),
		InterpreterCommands: []string{
			"turn on light",
			"turn off light",
			"toggle light",
		},
	}
}

// DefaultAlertChain returns the motion, alarm, police chain.
func DefaultAlertChain() []AlertRoute {
	return []AlertRoute{
		{Category: "motion", Label: "Motion detected!"},
		{Category: "alarm", Label: "Alarm triggered!"},
		{Category: "police", Label: "Police notified!"},
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := new(Config)
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and rejects malformed settings.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.DeviceName == "" {
		cfg.DeviceName = DefaultDeviceName
	}

	if cfg.HubName == "" {
		cfg.HubName = DefaultHubName
	}

	if cfg.ScheduleTime == "" {
		cfg.ScheduleTime = DefaultScheduleTime
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); cfg.LogLevel != "" && !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, cfg.Format)
	}

	if len(cfg.AlertChain) == 0 {
		cfg.AlertChain = DefaultAlertChain()
	}

	seen := make(map[string]struct{}, len(cfg.AlertChain))
	for i, route := range cfg.AlertChain {
		if route.Category == "" {
			return fmt.Errorf("alert route %d: %w", i, errEmptyCategory)
		}

		if _, ok := seen[route.Category]; ok {
			return fmt.Errorf("%w: %q", errDuplicateCategory, route.Category)
		}

		seen[route.Category] = struct{}{}
	}

	return nil
}
