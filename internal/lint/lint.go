// Package lint checks that a pair of fixture trees follow the corpus
// conventions: every input has an expected output or is marked as an
// expected failure, no output lacks an input, and every output ends with a
// newline.
package lint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fixturelint/internal/domain"
)

// Scanner enumerates the relative file paths of a fixture root
type Scanner interface {
	Scan(root string) (domain.PathSet, error)
}

// Options configures a Linter
type Options struct {
	Input      domain.Root
	Expected   domain.Root
	FailSuffix string
}

// Result is everything a single lint run produced
type Result struct {
	Report   domain.Report
	Inputs   domain.PathSet
	Outputs  domain.PathSet
	Duration time.Duration
}

// Linter runs the fixture checks over two roots
type Linter struct {
	scanner  Scanner
	opts     Options
	progress func(total int) Progress
}

// NewLinter creates a new Linter
func NewLinter(scanner Scanner, opts Options) *Linter {
	return &Linter{scanner: scanner, opts: opts}
}

// SetProgress installs a factory for the newline-check progress reporter
func (l *Linter) SetProgress(factory func(total int) Progress) {
	l.progress = factory
}

// Enumerate scans both roots
func (l *Linter) Enumerate() (inputs, outputs domain.PathSet, err error) {
	inputs, err = l.scanner.Scan(l.opts.Input.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", l.opts.Input.Name, err)
	}
	outputs, err = l.scanner.Scan(l.opts.Expected.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", l.opts.Expected.Name, err)
	}
	return inputs, outputs, nil
}

// Run enumerates both roots and applies every check. Violations are returned
// in the report; only environmental failures are returned as errors.
func (l *Linter) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	inputs, outputs, err := l.Enumerate()
	if err != nil {
		return nil, err
	}

	consistency := CheckConsistency(inputs, outputs, l.opts.FailSuffix)

	var progress Progress
	if l.progress != nil {
		progress = l.progress(len(outputs))
	}
	missingNewline, err := CheckTrailingNewlines(ctx, outputs, l.opts.Expected.Path, progress)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", l.opts.Expected.Name, err)
	}

	result := &Result{
		Report: domain.Report{
			Orphaned:       consistency.Orphaned,
			MissingSuffix:  consistency.MissingSuffix,
			MissingNewline: missingNewline,
		},
		Inputs:   inputs,
		Outputs:  outputs,
		Duration: time.Since(start),
	}

	slog.Info("fixture lint finished",
		"inputs", len(inputs),
		"outputs", len(outputs),
		"orphaned", len(result.Report.Orphaned),
		"missing_suffix", len(result.Report.MissingSuffix),
		"missing_newline", len(result.Report.MissingNewline),
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result, nil
}
