package discovery

import (
	"testing"

	"fixturelint/internal/domain"
)

func pairsFor(paths ...string) []domain.Pair {
	pairs := make([]domain.Pair, 0, len(paths))
	for _, p := range paths {
		pairs = append(pairs, domain.Pair{Path: p, HasInput: true, HasExpected: true})
	}
	return pairs
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		paths    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			paths:    []string{"arg.kdl", "comment.kdl", "escline.kdl"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			paths:    []string{"arg.kdl", "arg_fail.kdl", "comment.kdl"},
			pattern:  "*_fail.kdl",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			paths:    []string{"comment.kdl", "block_comment.kdl", "arg.kdl", "slashdash_comment_fail.kdl"},
			pattern:  "*comment*",
			expected: 3,
		},
		{
			name:     "simple contains match",
			paths:    []string{"arg.kdl", "escline.kdl", "escline_node.kdl"},
			pattern:  "escline",
			expected: 2,
		},
		{
			name:     "no matches",
			paths:    []string{"arg.kdl", "comment.kdl"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "doublestar path pattern",
			paths:    []string{"v1/strings/raw.kdl", "v2/strings/raw.kdl", "v2/numbers/hex.kdl"},
			pattern:  "**/strings/*",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(pairsFor(tt.paths...), tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByStatus(t *testing.T) {
	filter := NewFilter()
	pairs := []domain.Pair{
		{Path: "ok.kdl", HasInput: true, HasExpected: true},
		{Path: "bad_fail.kdl", HasInput: true, FailMarked: true},
		{Path: "bad.kdl", HasInput: true},
		{Path: "orphan.kdl", HasExpected: true},
	}

	if got := filter.FilterByStatus(pairs, ""); len(got) != 4 {
		t.Errorf("expected all pairs, got %d", len(got))
	}

	result := filter.FilterByStatus(pairs, domain.StatusMissingOutput)
	if len(result) != 1 || result[0].Path != "bad.kdl" {
		t.Errorf("expected only bad.kdl, got %v", result)
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty pair list", func(t *testing.T) {
		result := filter.FilterByName(nil, "*.kdl")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		result := filter.FilterByName(pairsFor("node_arg_fail.kdl", "node_prop_fail.kdl", "arg.kdl"), "*node*fail*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})
}
