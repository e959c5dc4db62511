package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"fixturelint/internal/domain"
)

// AccessError reports a fixture root that cannot be walked or read
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Scanner enumerates fixture files under a root directory
type Scanner struct {
	exclude []string
}

// NewScanner creates a new Scanner; files whose relative path matches any of
// the doublestar patterns in exclude are left out.
func NewScanner(exclude []string) (*Scanner, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Scanner{exclude: exclude}, nil
}

// Scan returns the slash-separated paths of every file under root, relative
// to root. Directories are descended into; symlinked directories are not.
func (s *Scanner) Scan(root string) (domain.PathSet, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &AccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &AccessError{Path: root, Err: errors.New("not a directory")}
	}

	paths := make(domain.PathSet)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &AccessError{Path: path, Err: err}
		}
		if d.IsDir() || linksToDir(path, d) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &AccessError{Path: path, Err: err}
		}
		rel = filepath.ToSlash(rel)

		if s.excluded(rel) {
			slog.Debug("excluded fixture", "root", root, "path", rel)
			return nil
		}

		paths.Add(rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("scanned fixture root", "root", root, "files", len(paths))
	return paths, nil
}

// linksToDir reports a symlink whose target is a directory; such links are
// listed but never descended into, so they are not fixtures.
func linksToDir(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
