// Package config provides configuration for the multisel command.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← MULTISEL_PATTERN, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/multisel/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Flags are applied by the cli package; this package handles the rest.
//
// # Basic Usage
//
//	cfg, err := config.Load("")  // default path
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Split.Pattern)
//
// A missing config file is not an error; the defaults are used.
package config
