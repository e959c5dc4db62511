package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"fixturelint/internal/config"
	"fixturelint/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer

	header *color.Color
	path   *color.Color
	ok     *color.Color
	muted  *color.Color
}

// NewFormatter creates a new Formatter writing to out. Colors are used only
// when out is a terminal and --no-color is not set.
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	f := &Formatter{
		config: cfg,
		out:    out,
		header: color.New(color.FgRed, color.Bold),
		path:   color.New(color.FgYellow),
		ok:     color.New(color.FgGreen),
		muted:  color.New(color.FgCyan),
	}
	if cfg.Flags.NoColor || !IsTerminal(out) {
		for _, c := range []*color.Color{f.header, f.path, f.ok, f.muted} {
			c.DisableColor()
		}
	}
	return f
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

// Header returns the block title printed above the paths of a category
func (f *Formatter) Header(c domain.Category) string {
	input := rootLabel(f.config.InputDir)
	expected := rootLabel(f.config.ExpectedDir)

	switch c {
	case domain.OrphanedOutput:
		return fmt.Sprintf("ERROR: There are outputs in %s without corresponding tests in %s:", expected, input)
	case domain.MissingFailSuffix:
		return fmt.Sprintf("ERROR: There are tests in %s without corresponding outputs in %s, but they don't have a %s suffix:", input, expected, f.config.FailSuffix)
	case domain.MissingTrailingNewline:
		return fmt.Sprintf("ERROR: There are outputs in %s that don't end with a newline:", expected)
	}
	return fmt.Sprintf("ERROR: %s:", c)
}

func rootLabel(dir string) string {
	dir = filepath.ToSlash(dir)
	if strings.HasPrefix(dir, "/") {
		return dir
	}
	return "/" + dir
}

// PrintReport prints one block per non-empty category: a header line followed
// by each path indented by two spaces. Nothing is printed for a clean report.
func (f *Formatter) PrintReport(report domain.Report) {
	for _, c := range domain.Categories {
		paths := report.Paths(c)
		if len(paths) == 0 {
			continue
		}
		f.header.Fprintln(f.out, f.Header(c))
		for _, p := range paths {
			f.path.Fprintf(f.out, "  %s\n", p)
		}
	}
}

// PrintResolvedReport prints a saved report, marking violations resolved in the viewer
func (f *Formatter) PrintResolvedReport(output *domain.ReportOutput) {
	var current domain.Category
	for _, failure := range output.Details {
		if failure.Category != current {
			current = failure.Category
			f.header.Fprintln(f.out, f.Header(current))
		}
		if failure.Resolved {
			f.muted.Fprintf(f.out, "  %s (resolved)\n", failure.Path)
			continue
		}
		f.path.Fprintf(f.out, "  %s\n", failure.Path)
	}
	if len(output.Details) == 0 {
		f.PrintClean()
	}
}

// PrintClean reports a saved report without violations
func (f *Formatter) PrintClean() {
	f.ok.Fprintln(f.out, "✓ No fixture violations found!")
}

// PrintNoFixtures reports an empty (or fully filtered) pair list
func (f *Formatter) PrintNoFixtures() {
	f.path.Fprintln(f.out, "No fixtures found")
}

// PrintPairList prints fixture pairs with their status
func (f *Formatter) PrintPairList(pairs []domain.Pair) {
	f.ok.Fprintf(f.out, "Found %d fixture(s):\n\n", len(pairs))

	for i, pair := range pairs {
		connector := "├── "
		if i == len(pairs)-1 {
			connector = "└── "
		}
		fmt.Fprint(f.out, connector)

		marker := "[" + string(pair.Status()) + "]"
		switch pair.Status() {
		case domain.StatusComplete:
			f.muted.Fprintf(f.out, "%s %s\n", pair.Path, marker)
		case domain.StatusExpectedFailure:
			f.ok.Fprintf(f.out, "%s %s\n", pair.Path, marker)
		default:
			f.header.Fprintf(f.out, "%s %s\n", pair.Path, marker)
		}
	}
}
