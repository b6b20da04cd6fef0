package bde

import (
	"fmt"
	"sort"
	"strings"
)

// BooleanSeries represents the state of a single Boolean variable over the
// closed time interval [T[0], End]. Y[i] is the state in force from T[i]
// (inclusive) until either T[i+1] (exclusive) or End.
//
// BooleanSeries is conceptually immutable after construction: every
// operation on it returns a fresh instance, except WithLabel, which sets
// the presentation fields in place.
type BooleanSeries struct {
	T     []float64
	Y     []bool
	End   float64
	Label string
	Style string

	tol ToleranceComparator
}

// NewBooleanSeries validates and constructs a BooleanSeries. If len(y) ==
// 1, y is padded by alternating Booleans to len(t), so a caller can supply
// just the initial state when every subsequent switch simply flips it. tol
// is the tolerance comparator used for all later operations on the
// returned series; if it is the zero value, DefaultTolerance is used.
func NewBooleanSeries(t []float64, y []bool, end float64, tol ToleranceComparator) (*BooleanSeries, error) {
	if tol == (ToleranceComparator{}) {
		tol = DefaultTolerance()
	}
	if len(t) == 0 {
		return nil, newErr(KindInvalidSeriesShape, "series must have at least one switch time")
	}
	if len(y) == 1 && len(t) > 1 {
		py := make([]bool, len(t))
		v := y[0]
		for i := range py {
			py[i] = v
			v = !v
		}
		y = py
	}
	if len(t) != len(y) {
		return nil, newErr(KindInvalidSeriesShape, "len(t)=%d != len(y)=%d", len(t), len(y))
	}
	for i := 1; i < len(t); i++ {
		if !tol.Less(t[i-1], t[i]) {
			return nil, newErr(KindTimesNotSorted, "t[%d]=%v is not strictly less than t[%d]=%v", i-1, t[i-1], i, t[i])
		}
	}
	if tol.Less(end, t[len(t)-1]) {
		return nil, newErr(KindEndBeforeLastSwitch, "end=%v before last switch time=%v", end, t[len(t)-1])
	}
	return &BooleanSeries{
		T:   append([]float64(nil), t...),
		Y:   append([]bool(nil), y...),
		End: end,
		tol: tol,
	}, nil
}

// WithLabel sets presentation metadata (not part of semantic identity) and
// returns the receiver for chaining.
func (s *BooleanSeries) WithLabel(label, style string) *BooleanSeries {
	s.Label = label
	s.Style = style
	return s
}

// Tolerance returns the comparator the series was built with.
func (s *BooleanSeries) Tolerance() ToleranceComparator { return s.tol }

// Start returns T[0].
func (s *BooleanSeries) Start() float64 { return s.T[0] }

// searchIndex returns the largest i such that T[i] <= t under tolerance
// (right-limit semantics: a t that tolerance-equals T[i] resolves to i,
// not i-1).
func (s *BooleanSeries) searchIndex(t float64) int {
	// binary search for first index with T[i] > t (strictly, under
	// tolerance), then step back one.
	lo, hi := 0, len(s.T)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.tol.Less(t, s.T[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// EvaluateAt returns the state in force at t. t must lie in [T[0], End]
// (inclusive on both ends); otherwise KindOutOfRange is returned.
func (s *BooleanSeries) EvaluateAt(t float64) (bool, error) {
	if s.tol.Less(t, s.T[0]) || s.tol.Less(s.End, t) {
		return false, newErr(KindOutOfRange, "t=%v outside [%v, %v]", t, s.T[0], s.End)
	}
	i := s.searchIndex(t)
	if i < 0 {
		i = 0
	}
	return s.Y[i], nil
}

// Cut returns a sub-series on [newStart, newEnd]. If newStart lies strictly
// inside an existing interval, a leading switch carrying the state at
// newStart is synthesised. A switch exactly equal to newEnd is dropped
// unless keepSwitchOnEnd is true. [newStart, newEnd] must be a subset of
// the series' own domain.
func (s *BooleanSeries) Cut(newStart, newEnd float64, keepSwitchOnEnd bool) (*BooleanSeries, error) {
	if s.tol.Less(newStart, s.T[0]) || s.tol.Less(s.End, newEnd) || s.tol.Less(newEnd, newStart) {
		return nil, newErr(KindOutOfRange, "[%v, %v] not a subset of [%v, %v]", newStart, newEnd, s.T[0], s.End)
	}

	startVal, err := s.EvaluateAt(newStart)
	if err != nil {
		return nil, err
	}

	var t []float64
	var y []bool
	t = append(t, newStart)
	y = append(y, startVal)

	for i, tt := range s.T {
		if !s.tol.Less(newStart, tt) {
			// tt <= newStart: already covered by the synthesised leading switch.
			continue
		}
		if s.tol.Less(newEnd, tt) {
			break
		}
		if s.tol.Equal(tt, newEnd) && !keepSwitchOnEnd {
			break
		}
		t = append(t, tt)
		y = append(y, s.Y[i])
	}

	return &BooleanSeries{T: t, Y: y, End: newEnd, tol: s.tol}, nil
}

// HammingDistance returns the total measure of time over the intersection
// of the two series' domains on which they disagree. Series with
// different start/end points are compared only on the overlap.
func (s *BooleanSeries) HammingDistance(other *BooleanSeries) (float64, error) {
	lo := s.T[0]
	if other.T[0] > lo {
		lo = other.T[0]
	}
	hi := s.End
	if other.End < hi {
		hi = other.End
	}
	if s.tol.Less(hi, lo) {
		return 0, newErr(KindDomainMismatch, "series domains do not overlap")
	}

	// merge both switch-time lists restricted to [lo, hi] and walk
	// intervals, summing the length of disagreeing intervals.
	times := map[float64]struct{}{lo: {}, hi: {}}
	for _, tt := range s.T {
		if tt > lo && tt < hi {
			times[tt] = struct{}{}
		}
	}
	for _, tt := range other.T {
		if tt > lo && tt < hi {
			times[tt] = struct{}{}
		}
	}
	sorted := make([]float64, 0, len(times))
	for tt := range times {
		sorted = append(sorted, tt)
	}
	sort.Float64s(sorted)

	var dist float64
	for i := 0; i+1 < len(sorted); i++ {
		mid := (sorted[i] + sorted[i+1]) / 2
		a, err := s.EvaluateAt(clamp(mid, s.T[0], s.End))
		if err != nil {
			return 0, err
		}
		b, err := other.EvaluateAt(clamp(mid, other.T[0], other.End))
		if err != nil {
			return 0, err
		}
		if a != b {
			dist += sorted[i+1] - sorted[i]
		}
	}
	return dist, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Canonicalise returns an equivalent series with consecutive duplicate
// states merged into single intervals.
func (s *BooleanSeries) Canonicalise() *BooleanSeries {
	t := []float64{s.T[0]}
	y := []bool{s.Y[0]}
	for i := 1; i < len(s.T); i++ {
		if s.Y[i] != y[len(y)-1] {
			t = append(t, s.T[i])
			y = append(y, s.Y[i])
		}
	}
	return &BooleanSeries{T: t, Y: y, End: s.End, tol: s.tol, Label: s.Label, Style: s.Style}
}

// Equal reports whether two series have the same canonical switch list and
// end, under tolerance.
func (s *BooleanSeries) Equal(other *BooleanSeries) bool {
	a, b := s.Canonicalise(), other.Canonicalise()
	if len(a.T) != len(b.T) || !s.tol.Equal(a.End, b.End) {
		return false
	}
	for i := range a.T {
		if !s.tol.Equal(a.T[i], b.T[i]) || a.Y[i] != b.Y[i] {
			return false
		}
	}
	return true
}

// ToLogical converts sampled numeric data to a BooleanSeries via a direct
// pointwise map (y[i] > 0), with no interpolated crossing search. Useful
// when the caller already knows the data is sign-separated and doesn't
// need AbsoluteThreshold or RelativeThreshold's interpolation.
func ToLogical(tSamples, ySamples []float64, tol ToleranceComparator) (*BooleanSeries, error) {
	if len(tSamples) != len(ySamples) || len(tSamples) == 0 {
		return nil, newErr(KindInvalidSeriesShape, "t/y sample length mismatch or empty")
	}
	y := make([]bool, len(ySamples))
	for i, v := range ySamples {
		y[i] = v > 0
	}
	s, err := NewBooleanSeries(append([]float64(nil), tSamples...), y, tSamples[len(tSamples)-1], tol)
	if err != nil {
		return nil, err
	}
	return s.Canonicalise(), nil
}

// String renders the series as a compact switch list, for diagnostics.
func (s *BooleanSeries) String() string {
	var b strings.Builder
	b.WriteString(s.Label)
	if s.Label != "" {
		b.WriteString(": ")
	}
	for i, t := range s.T {
		if i > 0 {
			b.WriteString(", ")
		}
		c := "F"
		if s.Y[i] {
			c = "T"
		}
		fmt.Fprintf(&b, "%v:%s", t, c)
	}
	fmt.Fprintf(&b, " -> end=%v", s.End)
	return b.String()
}
