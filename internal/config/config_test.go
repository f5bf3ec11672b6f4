package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, DefaultPattern, cfg.Split.Pattern)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPattern, cfg.Split.Pattern)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "yaml"

[split]
pattern = ","
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, ",", cfg.Split.Pattern)
	assert.True(t, cfg.Output.Color, "unset keys keep defaults")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[output\nformat = 1\n")

	_, err := Load(path)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
	assert.Equal(t, path, pe.Path)
	assert.Equal(t, 1, pe.Line)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"format", "[output]\nformat = \"xml\"\n", ErrInvalidFormat},
		{"log level", "[logging]\nlevel = \"loud\"\n", ErrInvalidLogLevel},
		{"pattern", "[split]\npattern = \"(\"\n", ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MULTISEL_LOG_LEVEL": "DEBUG",
		"MULTISEL_FORMAT":    "yaml",
		"MULTISEL_COLOR":     "false",
		"MULTISEL_PATTERN":   ";",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	ApplyEnv(&cfg, lookup)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, ";", cfg.Split.Pattern)
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	cfg := Default()
	ApplyEnv(&cfg, func(key string) (string, bool) {
		if key == "MULTISEL_COLOR" {
			return "sometimes", true
		}
		return "", false
	})
	assert.True(t, cfg.Output.Color)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[split]\npattern = \",\"\n")
	t.Setenv("MULTISEL_PATTERN", "-")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Split.Pattern)
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "a.toml", Line: 2, Column: 3, Message: "boom"}
	assert.Equal(t, "parse error in a.toml at line 2, column 3: boom", err.Error())

	err = &ParseError{Path: "a.toml", Message: "boom"}
	assert.Equal(t, "parse error in a.toml: boom", err.Error())
}
