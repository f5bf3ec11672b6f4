package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/multisel/internal/engine"
	"github.com/dshills/multisel/internal/logging"
)

type mapFlags struct {
	ranges  []string
	edits   []string
	primary int
}

func newMapCommand(opts *globalOptions) *cobra.Command {
	flags := &mapFlags{}

	cmd := &cobra.Command{
		Use:   "map [flags] FILE|-",
		Short: "Move selected ranges through a set of edits",
		Long: `Apply edits to the text and show where each selected range ends up.

Edits are FROM:TO:TEXT in offsets of the original text: the characters in
[FROM, TO) are replaced by TEXT. Leave TEXT empty to delete, use FROM:FROM:TEXT
to insert. Range ends sitting exactly on an insertion move after it. Ranges
that collapse onto each other are merged.`,
		Example: `  multisel map --range 6:10 --edit 0:0:big notes.txt
  multisel map -r 0:4 -r 6:10 -e 4:6 -f yaml notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&flags.ranges, "range", "r", nil,
		"range as ANCHOR:HEAD or a cursor offset (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.edits, "edit", "e", nil, "edit as FROM:TO:TEXT (repeatable)")
	cmd.Flags().IntVar(&flags.primary, "primary", 0, "index of the primary range among --range values")

	return cmd
}

func runMap(cmd *cobra.Command, opts *globalOptions, flags *mapFlags, path string) error {
	logger := logging.FromContext(cmd.Context())

	doc, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	sel, err := buildSelection(doc, flags.ranges, flags.primary)
	if err != nil {
		return err
	}
	changes, err := buildChanges(doc, flags.edits)
	if err != nil {
		return err
	}

	e := engine.New(engine.WithRope(doc), engine.WithSelection(sel))
	if err := e.Apply(changes); err != nil {
		return fmt.Errorf("applying edits: %w", err)
	}
	mapped := e.Selection()
	edited := e.Rope()

	logger.Debug("mapped selection",
		logging.FieldPath, path,
		logging.FieldChanges, len(flags.edits),
		logging.FieldRanges, sel.Len(),
		logging.FieldSelected, mapped.Len(),
		logging.FieldPrimary, mapped.PrimaryIndex(),
	)

	rep := newReport("map", mapped, edited)
	rep.Changes = changes.String()
	text := edited.String()
	rep.Text = &text
	return writeReport(cmd.OutOrStdout(), rep, opts.cfg.Output.Format, NewStyles(opts.colorEnabled(cmd)))
}
