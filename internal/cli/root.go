// Package cli provides the Cobra command structure for multisel.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/multisel/internal/config"
	"github.com/dshills/multisel/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions carries the persistent flags and the resolved config.
type globalOptions struct {
	configPath string
	debug      bool
	logLevel   string
	format     string
	color      string

	cfg config.Config
}

// NewRootCommand creates the root multisel command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "multisel",
		Short: "Inspect multi-range selections over text",
		Long: `multisel builds a multi-range selection over a text, normalizes it, and
shows what each range selects.

Ranges are given as ANCHOR:HEAD character offsets. Both ends are inclusive
when the selected text is shown. The split command cuts every range on a
regular expression; the map command moves the ranges through a set of edits.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config file")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&opts.format, "format", "f", "", "output format: text or yaml")
	pf.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newSplitCommand(opts))
	rootCmd.AddCommand(newMapCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// resolve layers the flags over the loaded config.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetLevel(cfg.Logging.Level)
	o.cfg = cfg

	logging.FromContext(cmd.Context()).Debug("resolved config",
		logging.FieldConfig, o.configPath,
		logging.FieldFormat, cfg.Output.Format,
		logging.FieldPattern, cfg.Split.Pattern,
	)
	return nil
}

// colorEnabled combines the --color flag with the config setting.
func (o *globalOptions) colorEnabled(cmd *cobra.Command) bool {
	if o.color == "auto" && !o.cfg.Output.Color {
		return false
	}
	return IsColorEnabled(o.color, cmd.OutOrStdout())
}
