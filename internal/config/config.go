package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// DefaultFontPath is the macOS system Helvetica collection.
const DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

// Config holds all generator configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds the icon set destination.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// RenderConfig holds icon drawing settings.
type RenderConfig struct {
	Label    string `yaml:"label"`
	FontPath string `yaml:"font_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	FilePath string `yaml:"file_path"`
}

// Default returns a Config with sensible defaults. The log format is left
// empty so that it can be resolved against the terminal after loading.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: "AppIcon.appiconset",
		},
		Render: RenderConfig{
			Label:    "TX",
			FontPath: DefaultFontPath,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = detectLogFormat()
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is operator supplied
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("APPICON_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("APPICON_LABEL"); v != "" {
		c.Render.Label = v
	}
	if v := os.Getenv("APPICON_FONT_PATH"); v != "" {
		c.Render.FontPath = v
	}
	if v := os.Getenv("APPICON_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("APPICON_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("APPICON_LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
}

func (c *Config) validate() error {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}
	if strings.TrimSpace(c.Render.Label) == "" {
		return fmt.Errorf("label is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	return nil
}

// detectLogFormat picks human readable logs for interactive runs.
func detectLogFormat() string {
	if term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // G115: fd fits in int
		return "text"
	}
	return "json"
}
