package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands print through these so glyphs and indentation stay the same
// across architect's CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info / state change

// out and errOut are swapped by tests.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#5b21b6")).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7c3aed"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))
)

// printBanner prints the title bar shown at the top of `architect new`.
func printBanner(title string) {
	fmt.Fprintln(out, bannerStyle.Render(title))
}

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(title string) {
	fmt.Fprintf(out, "\n%s\n", sectionStyle.Render("=== "+title+" ==="))
}

// printGroup prints a sub-heading inside a section, e.g. "[ Skills ]".
func printGroup(title string) {
	fmt.Fprintf(out, "\n[ %s ]\n", title)
}

// printMuted prints a dimmed hint line.
func printMuted(msg string) {
	fmt.Fprintf(out, "  %s\n", mutedStyle.Render(msg))
}

func line(w io.Writer, glyph, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", glyph, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", glyph, name, msg)
	}
}

// printOK prints a success line, "  ✓  msg", or "  ✓  [name] msg" when name
// is set.
func printOK(name, msg string) { line(out, "✓", name, msg) }

// printErr prints an error line to stderr.
func printErr(name, msg string) { line(errOut, "✗", name, msg) }

func printWarn(name, msg string) { line(out, "⚠", name, msg) }

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) { line(out, "○", name, msg) }

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) { line(out, "~", name, msg) }
