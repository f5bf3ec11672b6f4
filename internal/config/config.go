package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/multisel/internal/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultPattern splits on runs of whitespace.
const DefaultPattern = `\s+`

// Config holds all multisel settings.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Output  OutputConfig  `toml:"output"`
	Split   SplitConfig   `toml:"split"`
}

// LoggingConfig configures diagnostics.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	// Format is text or yaml.
	Format string `toml:"format"`
	// Color enables styled text output.
	Color bool `toml:"color"`
}

// SplitConfig configures the split command.
type SplitConfig struct {
	// Pattern is the separator regular expression.
	Pattern string `toml:"pattern"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Format: FormatText, Color: true},
		Split:   SplitConfig{Pattern: DefaultPattern},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "multisel", "config.toml")
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path uses DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logging.Default().Debug("no config file", logging.FieldPath, path)
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := Parse(path, data, &cfg); err != nil {
				return cfg, err
			}
			logging.Default().Debug("loaded config", logging.FieldPath, path)
		}
	}

	ApplyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg. Keys missing from data keep their
// current values.
func Parse(source string, data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		pe := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		return pe
	}
	return nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%q (must be %s or %s): %w", c.Output.Format, FormatText, FormatYAML, ErrInvalidFormat)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%q (must be debug, info, warn, or error): %w", c.Logging.Level, ErrInvalidLogLevel)
	}

	if _, err := regexp.Compile(c.Split.Pattern); err != nil {
		return fmt.Errorf("%q: %w: %v", c.Split.Pattern, ErrInvalidPattern, err)
	}
	return nil
}
