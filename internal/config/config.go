package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"inventory-manager/internal/logger"
)

const (
	DefaultConfigFile = "inventory.toml"
	DefaultEnvFile    = ".env"
	DefaultFormat     = "TSV"
)

// Environment variables read by Load.
const (
	EnvConfigFile   = "INVENTORY_CONFIG"
	EnvLogLevel     = "INVENTORY_LOG_LEVEL"
	EnvJSONLogs     = "INVENTORY_JSON_LOGS"
	EnvExportDir    = "INVENTORY_EXPORT_DIR"
	EnvExportFormat = "INVENTORY_EXPORT_FORMAT"
	EnvDebugFiles   = "INVENTORY_DEBUG_FILES"
	EnvDebugTiming  = "INVENTORY_DEBUG_TIMING"
)

// Config holds application settings. File values are overridden by the environment.
type Config struct {
	LogLevel string `toml:"log_level"`
	JSONLogs bool   `toml:"json_logs"`

	Export ExportConfig `toml:"export"`
	Window WindowConfig `toml:"window"`
	Debug  DebugConfig  `toml:"debug"`
}

type ExportConfig struct {
	// Directory preselected on the save screen
	Directory string `toml:"directory"`
	Format    string `toml:"format"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// DebugConfig toggles the diagnostic trackers
type DebugConfig struct {
	FileTracking bool `toml:"file_tracking"`
	Timing       bool `toml:"timing"`
	EventBuffer  int  `toml:"event_buffer"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Export: ExportConfig{
			Format: DefaultFormat,
		},
		Window: WindowConfig{
			Width:  900,
			Height: 600,
		},
		Debug: DebugConfig{
			FileTracking: true,
			Timing:       true,
			EventBuffer:  256,
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file, the
// optional .env file and finally the process environment.
func Load() (Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = DefaultConfigFile
	}
	return LoadFrom(path, DefaultEnvFile)
}

// LoadFrom is Load with explicit file locations. Missing files are not errors.
func LoadFrom(configPath, envPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if envPath != "" {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file %s: %w", envPath, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvJSONLogs); ok {
		cfg.JSONLogs = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvDebugFiles); ok {
		cfg.Debug.FileTracking = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvDebugTiming); ok {
		cfg.Debug.Timing = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvExportDir); ok {
		cfg.Export.Directory = v
	}
	if v, ok := os.LookupEnv(EnvExportFormat); ok {
		cfg.Export.Format = v
	}
}

func parseBool(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, "true") || v == "1"
}

// Validate checks the log level and the default export format.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch strings.ToUpper(strings.TrimSpace(c.Export.Format)) {
	case "TSV", "JSON", "HTML":
	default:
		return fmt.Errorf("invalid export format %q", c.Export.Format)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Debug.EventBuffer <= 0 {
		return fmt.Errorf("invalid event buffer size %d", c.Debug.EventBuffer)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() zerolog.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// NewLogger builds the application logger described by the configuration.
func (c Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.Level())
	}
	return logger.NewConsoleLogger(c.Level())
}
