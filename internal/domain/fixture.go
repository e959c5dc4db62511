package domain

import "sort"

// Root is one of the two paired fixture trees
type Root struct {
	Name string // Display name, e.g. "input"
	Path string // Location on disk
}

// PathSet is a set of slash-separated paths relative to a root
type PathSet map[string]struct{}

// NewPathSet creates a PathSet holding the given paths
func NewPathSet(paths ...string) PathSet {
	set := make(PathSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}
	return set
}

// Add inserts a path
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether path is in the set
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Difference returns the paths in s that are not in other
func (s PathSet) Difference(other PathSet) PathSet {
	out := make(PathSet)
	for p := range s {
		if !other.Contains(p) {
			out.Add(p)
		}
	}
	return out
}

// Sorted returns the paths in lexicographic order, nil for an empty set
func (s PathSet) Sorted() []string {
	if len(s) == 0 {
		return nil
	}
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// PairStatus classifies a fixture pair
type PairStatus string

const (
	StatusComplete        PairStatus = "complete"
	StatusExpectedFailure PairStatus = "expected-failure"
	StatusOrphaned        PairStatus = "orphaned"
	StatusMissingOutput   PairStatus = "missing-output"
)

// Pair associates an input fixture with its expected output by relative path
type Pair struct {
	Path        string
	HasInput    bool
	HasExpected bool
	// FailMarked is true when the base name carries the expected-failure suffix
	FailMarked bool
}

// Status returns the classification of the pair
func (p Pair) Status() PairStatus {
	switch {
	case p.HasInput && p.HasExpected:
		return StatusComplete
	case p.HasExpected:
		return StatusOrphaned
	case p.FailMarked:
		return StatusExpectedFailure
	default:
		return StatusMissingOutput
	}
}
