package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// Config holds the settings shared by the alarm binaries.
// Every field can be overridden by the environment variable named in its env tag.
type Config struct {
	// ServerAddress is the gRPC address of the alarm service.
	ServerAddress string `yaml:"server_addr" env:"ALARM_CLOCK_SERVER_ADDR" env-description:"gRPC address of the alarm service"`
	// AlarmsFile is the path to the JSON file the service stores alarms in.
	AlarmsFile string `yaml:"alarms_file" env:"ALARM_CLOCK_ALARMS_FILE" env-description:"file the alarm service stores alarms in"`
	// Timeout bounds each RPC issued by alarmctl.
	Timeout time.Duration `yaml:"timeout" env:"ALARM_CLOCK_TIMEOUT" env-description:"timeout of a single alarmctl call"`
	// LogLevel is the minimum level of log messages (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"ALARM_CLOCK_LOG_LEVEL" env-description:"minimum log level"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultAlarmsFilename is the default filename for stored alarms.
	DefaultAlarmsFilename = "alarm-clock-alarms.json"

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read settings from environment: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
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

// Validate checks required fields and fills in defaults for optional ones.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.AlarmsFile == "" {
		settings.AlarmsFile = DefaultAlarmsFilename
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	return nil
}

// ApplyLogLevel sets the global log level from the configuration.
func (c *Config) ApplyLogLevel() {
	if level, ok := logger.ParseLogLevel(c.LogLevel); ok {
		logger.SetLevel(level)
	}
}

// EnvHelp lists the environment variables that override the settings file.
func EnvHelp() string {
	header := "Environment variables:"

	help, err := cleanenv.GetDescription(new(Config), &header)
	if err != nil {
		return ""
	}

	return help
}
