package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fixturelint/internal/domain"
)

// DecodeError reports an expected-output fixture that is not valid UTF-8
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8", e.Path)
}

// Progress receives one tick per file read by the newline check
type Progress interface {
	Add(n int) error
}

// CheckTrailingNewlines reads every output under outputRoot and returns the
// sorted paths whose content does not end with a line break. Empty files fail.
// Read and decoding errors abort the check.
func CheckTrailingNewlines(ctx context.Context, outputs domain.PathSet, outputRoot string, progress Progress) ([]string, error) {
	var missing []string

	for _, p := range outputs.Sorted() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := filepath.Join(outputRoot, filepath.FromSlash(p))
		//nolint:gosec // fixture paths come from walking the configured root.
		content, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("read expected output: %w", err)
		}
		if !utf8.Valid(content) {
			return nil, &DecodeError{Path: full}
		}

		if !endsWithNewline(content) {
			missing = append(missing, p)
		}

		if progress != nil {
			_ = progress.Add(1)
		}
	}

	return missing, nil
}

// endsWithNewline reads line endings the way a text-mode read does: "\r\n"
// and a bare "\r" both count as a newline.
func endsWithNewline(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	last := content[len(content)-1]
	return last == '\n' || last == '\r'
}
