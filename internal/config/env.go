package config

import (
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every multisel environment variable.
const EnvPrefix = "MULTISEL_"

// LookupFunc looks up an environment variable. os.LookupEnv matches it.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with values from the environment.
// Empty string values are treated as valid values, not as unset.
// Unparseable booleans are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.Color = b
		}
	}
	if v, ok := lookup(EnvPrefix + "PATTERN"); ok {
		cfg.Split.Pattern = v
	}
}
