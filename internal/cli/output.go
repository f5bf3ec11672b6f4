package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/multisel/internal/config"
	"github.com/dshills/multisel/internal/engine/cursor"
)

// Report is the printable result of a command.
type Report struct {
	Command string        `yaml:"command"`
	Pattern string        `yaml:"pattern,omitempty"`
	Changes string        `yaml:"changes,omitempty"`
	Text    *string       `yaml:"text,omitempty"`
	Primary int           `yaml:"primary"`
	Ranges  []RangeReport `yaml:"ranges"`
}

// RangeReport describes one range of a selection.
type RangeReport struct {
	Anchor   int    `yaml:"anchor"`
	Head     int    `yaml:"head"`
	From     int    `yaml:"from"`
	To       int    `yaml:"to"`
	Fragment string `yaml:"fragment"`
}

// newReport collects the ranges of sel with their fragments of text.
func newReport(command string, sel cursor.Selection, text cursor.Text) Report {
	rep := Report{
		Command: command,
		Primary: sel.PrimaryIndex(),
		Ranges:  make([]RangeReport, 0, sel.Len()),
	}
	it := sel.Fragments(text)
	for it.Next() {
		r := it.Range()
		rep.Ranges = append(rep.Ranges, RangeReport{
			Anchor:   r.Anchor,
			Head:     r.Head,
			From:     r.From(),
			To:       r.To(),
			Fragment: it.Fragment(),
		})
	}
	return rep
}

// writeReport prints rep in the given format.
func writeReport(w io.Writer, rep Report, format string, styles *Styles) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderText(rep, styles))
		return err
	}
}

func renderText(rep Report, styles *Styles) string {
	var b strings.Builder

	header := fmt.Sprintf("%s: %d ranges", rep.Command, len(rep.Ranges))
	b.WriteString(styles.Title.Render(header))
	switch {
	case rep.Pattern != "":
		b.WriteString(styles.Dim.Render(" on " + strconv.Quote(rep.Pattern)))
	case rep.Changes != "":
		b.WriteString(styles.Dim.Render(" through " + rep.Changes))
	}
	b.WriteByte('\n')

	for i, r := range rep.Ranges {
		marker := " "
		if i == rep.Primary {
			marker = styles.Primary.Render("*")
		}
		rng := cursor.NewRange(r.Anchor, r.Head).String()
		fmt.Fprintf(&b, "%s %s %s %s\n",
			marker,
			styles.Index.Render(fmt.Sprintf("%3d", i)),
			styles.Range.Render(rng),
			styles.Fragment.Render(strconv.Quote(r.Fragment)),
		)
	}

	if rep.Text != nil {
		b.WriteString(styles.Dim.Render("text: "))
		b.WriteString(strconv.Quote(*rep.Text))
		b.WriteByte('\n')
	}
	return b.String()
}
