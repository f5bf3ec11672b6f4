package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for text output.
type Styles struct {
	Title    lipgloss.Style
	Index    lipgloss.Style
	Primary  lipgloss.Style
	Range    lipgloss.Style
	Fragment lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:    plain,
			Index:    plain,
			Primary:  plain,
			Range:    plain,
			Fragment: plain,
			Dim:      plain,
		}
	}
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Range:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Fragment: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
