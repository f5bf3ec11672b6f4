package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dshills/multisel/internal/cli"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

// execute runs the root command with stdin as input and an empty config.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	configPath := filepath.Join(t.TempDir(), "absent.toml")
	cmd.SetArgs(append([]string{"--config", configPath, "--color", "never"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, out string) cli.Report {
	t.Helper()
	var rep cli.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep), "output:\n%s", out)
	return rep
}

func fragments(rep cli.Report) []string {
	out := make([]string, len(rep.Ranges))
	for i, r := range rep.Ranges {
		out[i] = r.Fragment
	}
	return out
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "multisel", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"split", "map", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"config", "debug", "log-level", "format", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "global flag %q", name)
	}
}

func TestSplitWholeDocument(t *testing.T) {
	out, err := execute(t, "hello world foo", "split", "-f", "yaml", "-")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, "split", rep.Command)
	assert.Equal(t, `\s+`, rep.Pattern)
	assert.Equal(t, 0, rep.Primary)
	assert.Equal(t, []string{"hello", "world", "foo"}, fragments(rep))
	assert.Equal(t, cli.RangeReport{Anchor: 6, Head: 10, From: 6, To: 10, Fragment: "world"}, rep.Ranges[1])
}

func TestSplitRangesAndPattern(t *testing.T) {
	out, err := execute(t, "a,b;c d",
		"split", "-f", "yaml",
		"--range", "0:2", "--range", "6:4", "--primary", "1",
		"--pattern", `[,;\s]`, "-")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, []string{"a", "b", "c", "d"}, fragments(rep))
	assert.Equal(t, 0, rep.Primary)
	for _, r := range rep.Ranges {
		assert.Equal(t, r.Anchor, r.Head, "single characters")
	}
}

func TestSplitTextOutput(t *testing.T) {
	out, err := execute(t, "hello world foo", "split", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "split: 3 ranges")
	assert.Contains(t, out, `Range(0→4) "hello"`)
	assert.Contains(t, out, `Range(12→14) "foo"`)
	assert.True(t, strings.HasPrefix(strings.Split(out, "\n")[1], "*"), "primary is marked:\n%s", out)
}

func TestSplitReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("x-y"), 0o600))

	out, err := execute(t, "", "split", "-f", "yaml", "--pattern=-", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, fragments(decodeReport(t, out)))
}

func TestMapInsertBefore(t *testing.T) {
	out, err := execute(t, "hello world",
		"map", "-f", "yaml", "--range", "6:10", "--edit", "0:0:big ", "-")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	require.NotNil(t, rep.Text)
	assert.Equal(t, "big hello world", *rep.Text)
	require.Len(t, rep.Ranges, 1)
	assert.Equal(t, cli.RangeReport{Anchor: 10, Head: 14, From: 10, To: 14, Fragment: "world"}, rep.Ranges[0])
}

func TestMapMergesCollapsedRanges(t *testing.T) {
	out, err := execute(t, "abc def",
		"map", "-f", "yaml", "-r", "0:2", "-r", "4:6", "--primary", "1", "-e", "0:7:", "-")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	require.NotNil(t, rep.Text)
	assert.Empty(t, *rep.Text)
	require.Len(t, rep.Ranges, 1)
	assert.Equal(t, 0, rep.Primary)
	assert.Equal(t, 0, rep.Ranges[0].Anchor)
	assert.Equal(t, 0, rep.Ranges[0].Head)
}

func TestMapUnorderedEdits(t *testing.T) {
	out, err := execute(t, "one two",
		"map", "-f", "yaml", "-r", "4:6", "-e", "4:7:2", "-e", "0:3:1", "-")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	require.NotNil(t, rep.Text)
	assert.Equal(t, "1 2", *rep.Text)
}

func TestConfigFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o600))

	cmd := cli.NewRootCommand(testInfo)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("a b"))
	cmd.SetArgs([]string{"--config", path, "split", "-"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"a", "b"}, fragments(decodeReport(t, out.String())))
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  int
	}{
		{"bad range", "abc", []string{"split", "-r", "x:1", "-"}, cli.ExitInvalidUsage},
		{"range past end", "abc", []string{"split", "-r", "0:9", "-"}, cli.ExitInvalidUsage},
		{"bad primary", "abc", []string{"split", "-r", "0:1", "--primary", "3", "-"}, cli.ExitInvalidUsage},
		{"bad pattern", "abc", []string{"split", "-p", "(", "-"}, cli.ExitInvalidUsage},
		{"overlapping edits", "abcdef", []string{"map", "-e", "0:3:x", "-e", "2:4:y", "-"}, cli.ExitInvalidUsage},
		{"bad format", "abc", []string{"split", "-f", "xml", "-"}, cli.ExitConfigError},
		{"missing file", "", []string{"split", "/nonexistent/input.txt"}, cli.ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, cli.ExitCode(err), "error: %v", err)
		})
	}
}

func TestExitCodeSuccess(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "multisel")
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, cli.IsColorEnabled("always", &buf))
	assert.False(t, cli.IsColorEnabled("never", os.Stdout))
	assert.False(t, cli.IsColorEnabled("auto", &buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, cli.IsColorEnabled("auto", os.Stdout))
}

func TestNoColorStylesArePlain(t *testing.T) {
	styles := cli.NewStyles(false)
	assert.Equal(t, "text", styles.Primary.Render("text"))
	assert.Equal(t, "text", styles.Range.Render("text"))
}
