package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dshills/multisel/internal/engine"
	"github.com/dshills/multisel/internal/logging"
)

type splitFlags struct {
	ranges  []string
	pattern string
	primary int
}

func newSplitCommand(opts *globalOptions) *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split [flags] FILE|-",
		Short: "Split selected ranges on a pattern",
		Long: `Split every selected range on the matches of a regular expression.

The matched separators are left out and the pieces between them become the
new ranges. Without --range the whole text is selected. The pattern defaults
to the split.pattern config setting.`,
		Example: `  multisel split --range 0:10 --pattern ', *' notes.txt
  echo 'a b c' | multisel split -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&flags.ranges, "range", "r", nil,
		"range as ANCHOR:HEAD or a cursor offset (repeatable)")
	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", "", "separator regular expression")
	cmd.Flags().IntVar(&flags.primary, "primary", 0, "index of the primary range among --range values")

	return cmd
}

func runSplit(cmd *cobra.Command, opts *globalOptions, flags *splitFlags, path string) error {
	logger := logging.FromContext(cmd.Context())

	pattern := opts.cfg.Split.Pattern
	if cmd.Flags().Changed("pattern") {
		pattern = flags.pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("pattern %q: %w: %v", pattern, ErrInvalidUsage, err)
	}

	doc, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	sel, err := buildSelection(doc, flags.ranges, flags.primary)
	if err != nil {
		return err
	}
	logger.Debug("splitting selection",
		logging.FieldPath, path,
		logging.FieldRanges, sel.Len(),
		logging.FieldPattern, pattern,
	)

	e := engine.New(engine.WithRope(doc), engine.WithSelection(sel), engine.WithReadOnly())
	result := e.SplitSelection(re)
	logger.Debug("split done", logging.FieldSelected, result.Len())

	rep := newReport("split", result, e.Rope())
	rep.Pattern = pattern
	return writeReport(cmd.OutOrStdout(), rep, opts.cfg.Output.Format, NewStyles(opts.colorEnabled(cmd)))
}
