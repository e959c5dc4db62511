package lint

import (
	"fixturelint/internal/domain"
)

// Consistency is the outcome of pairing the two fixture roots
type Consistency struct {
	// Orphaned holds expected outputs without an input, sorted
	Orphaned []string
	// MissingSuffix holds unpaired inputs not marked as expected failures, sorted
	MissingSuffix []string
}

// CheckConsistency pairs inputs with outputs by relative path. Every output
// without an input is orphaned; every input without an output must carry
// failSuffix on its base name.
func CheckConsistency(inputs, outputs domain.PathSet, failSuffix string) Consistency {
	var c Consistency

	c.Orphaned = outputs.Difference(inputs).Sorted()

	for _, p := range inputs.Difference(outputs).Sorted() {
		if !HasFailSuffix(p, failSuffix) {
			c.MissingSuffix = append(c.MissingSuffix, p)
		}
	}

	return c
}

// Pairs returns every fixture pair across both roots, sorted by path
func Pairs(inputs, outputs domain.PathSet, failSuffix string) []domain.Pair {
	all := make(domain.PathSet, len(inputs)+len(outputs))
	for p := range inputs {
		all.Add(p)
	}
	for p := range outputs {
		all.Add(p)
	}

	sorted := all.Sorted()
	pairs := make([]domain.Pair, 0, len(sorted))
	for _, p := range sorted {
		pairs = append(pairs, domain.Pair{
			Path:        p,
			HasInput:    inputs.Contains(p),
			HasExpected: outputs.Contains(p),
			FailMarked:  HasFailSuffix(p, failSuffix),
		})
	}
	return pairs
}
