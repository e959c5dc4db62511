package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixturelint/internal/domain"
)

func TestCheckConsistency(t *testing.T) {
	tests := map[string]struct {
		inputs            []string
		outputs           []string
		wantOrphaned      []string
		wantMissingSuffix []string
	}{
		"complete pairs": {
			inputs:  []string{"ok.kdl", "nested/ok.kdl"},
			outputs: []string{"ok.kdl", "nested/ok.kdl"},
		},
		"expected failure accepted": {
			inputs: []string{"bad_fail.kdl"},
		},
		"missing suffix": {
			inputs:            []string{"bad.kdl"},
			wantMissingSuffix: []string{"bad.kdl"},
		},
		"orphaned output": {
			outputs:      []string{"orphan.kdl"},
			wantOrphaned: []string{"orphan.kdl"},
		},
		"orphaned regardless of name": {
			outputs:      []string{"orphan_fail.kdl"},
			wantOrphaned: []string{"orphan_fail.kdl"},
		},
		"pairing uses the full relative path": {
			inputs:            []string{"a/x.kdl"},
			outputs:           []string{"b/x.kdl"},
			wantOrphaned:      []string{"b/x.kdl"},
			wantMissingSuffix: []string{"a/x.kdl"},
		},
		"sorted output": {
			inputs:            []string{"z.kdl", "a.kdl", "m_fail.kdl"},
			outputs:           []string{"y.kdl", "b.kdl"},
			wantOrphaned:      []string{"b.kdl", "y.kdl"},
			wantMissingSuffix: []string{"a.kdl", "z.kdl"},
		},
		"empty roots": {},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := CheckConsistency(domain.NewPathSet(test.inputs...), domain.NewPathSet(test.outputs...), "_fail")
			assert.Equal(t, test.wantOrphaned, c.Orphaned)
			assert.Equal(t, test.wantMissingSuffix, c.MissingSuffix)
		})
	}
}

func TestCheckConsistency_CustomSuffix(t *testing.T) {
	c := CheckConsistency(domain.NewPathSet("x_bad.kdl", "y_fail.kdl"), domain.NewPathSet(), "_bad")

	assert.Empty(t, c.Orphaned)
	assert.Equal(t, []string{"y_fail.kdl"}, c.MissingSuffix)
}

func TestPairs(t *testing.T) {
	pairs := Pairs(
		domain.NewPathSet("ok.kdl", "bad_fail.kdl", "bad.kdl"),
		domain.NewPathSet("ok.kdl", "orphan.kdl"),
		"_fail",
	)

	got := make(map[string]domain.PairStatus, len(pairs))
	var order []string
	for _, p := range pairs {
		got[p.Path] = p.Status()
		order = append(order, p.Path)
	}

	assert.Equal(t, []string{"bad.kdl", "bad_fail.kdl", "ok.kdl", "orphan.kdl"}, order)
	assert.Equal(t, map[string]domain.PairStatus{
		"ok.kdl":       domain.StatusComplete,
		"bad_fail.kdl": domain.StatusExpectedFailure,
		"bad.kdl":      domain.StatusMissingOutput,
		"orphan.kdl":   domain.StatusOrphaned,
	}, got)
}
