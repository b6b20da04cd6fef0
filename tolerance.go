package bde

import "gonum.org/v1/gonum/floats/scalar"

// ToleranceComparator is the equality predicate on real-valued timestamps
// combining absolute and relative tolerance. It is carried explicitly by
// BooleanSeries operations and the DelayEngine rather than kept as a
// package global, so that callers can vary tolerances per solve without
// hidden coupling (see the "tolerance comparator as a first-class value"
// design note).
type ToleranceComparator struct {
	AbsTol float64
	RelTol float64
}

// DefaultTolerance returns the default comparator: RelTol = 1e-9, AbsTol = 0.
func DefaultTolerance() ToleranceComparator {
	return ToleranceComparator{AbsTol: 0, RelTol: 1e-9}
}

// Equal reports whether a and b are equal within the comparator's combined
// absolute/relative tolerance: |a-b| <= max(RelTol*max(|a|,|b|), AbsTol).
func (tc ToleranceComparator) Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tc.AbsTol, tc.RelTol)
}

// Less reports whether a < b, with values within tolerance of each other
// never considered less than one another.
func (tc ToleranceComparator) Less(a, b float64) bool {
	return a < b && !tc.Equal(a, b)
}

// LessOrEqual reports whether a <= b under tolerance, i.e. a < b or a == b
// within tolerance.
func (tc ToleranceComparator) LessOrEqual(a, b float64) bool {
	return a <= b || tc.Equal(a, b)
}

// GreaterOrEqual reports whether a >= b under tolerance.
func (tc ToleranceComparator) GreaterOrEqual(a, b float64) bool {
	return a >= b || tc.Equal(a, b)
}
