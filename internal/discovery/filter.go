package discovery

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fixturelint/internal/domain"
)

// Filter filters fixture pairs by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps pairs whose path or file name matches pattern.
// Supports patterns like "*_fail.kdl", "**/comments/*" or a plain substring.
func (f *Filter) FilterByName(pairs []domain.Pair, pattern string) []domain.Pair {
	if pattern == "" {
		return pairs
	}

	var filtered []domain.Pair
	for _, pair := range pairs {
		if f.matches(pair.Path, pattern) {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}

// FilterByStatus keeps pairs with the given status; an empty status keeps all
func (f *Filter) FilterByStatus(pairs []domain.Pair, status domain.PairStatus) []domain.Pair {
	if status == "" {
		return pairs
	}

	var filtered []domain.Pair
	for _, pair := range pairs {
		if pair.Status() == status {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}

func (f *Filter) matches(rel, pattern string) bool {
	name := path.Base(rel)

	if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
		return true
	}
	if ok, err := doublestar.Match(pattern, name); err == nil && ok {
		return true
	}

	// "*comment*" style patterns also match when every literal part appears in the name
	if strings.Contains(pattern, "*") {
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			if !strings.Contains(name, part) {
				return false
			}
			hasPart = true
		}
		return hasPart
	}

	if !strings.ContainsAny(pattern, "?[{") {
		return strings.Contains(name, pattern)
	}
	return false
}
