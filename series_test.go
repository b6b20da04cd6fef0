package bde

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBooleanSeriesPadding(t *testing.T) {
	s, err := NewBooleanSeries([]float64{0, 1, 2, 3}, []bool{true}, 4, DefaultTolerance())
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, false}, s.Y)
}

func TestNewBooleanSeriesShapeMismatch(t *testing.T) {
	_, err := NewBooleanSeries([]float64{0, 1}, []bool{true, false, true}, 2, DefaultTolerance())
	require.Error(t, err)
	require.Equal(t, KindInvalidSeriesShape, err.(*Error).Kind)
}

func TestNewBooleanSeriesNotSorted(t *testing.T) {
	_, err := NewBooleanSeries([]float64{0, 1, 0.5}, []bool{true, false, true}, 2, DefaultTolerance())
	require.Error(t, err)
	require.Equal(t, KindTimesNotSorted, err.(*Error).Kind)
}

func TestNewBooleanSeriesEndBeforeLastSwitch(t *testing.T) {
	_, err := NewBooleanSeries([]float64{0, 1, 2}, []bool{true, false, true}, 1, DefaultTolerance())
	require.Error(t, err)
	require.Equal(t, KindEndBeforeLastSwitch, err.(*Error).Kind)
}

func TestEvaluateAt(t *testing.T) {
	s, err := NewBooleanSeries([]float64{0, 1, 2}, []bool{true, false, true}, 3, DefaultTolerance())
	require.NoError(t, err)

	cases := []struct {
		t    float64
		want bool
	}{
		{0, true},
		{0.5, true},
		{1, false}, // right-limit: state at the switch itself is the new state.
		{1.5, false},
		{2, true},
		{3, true},
	}
	for _, c := range cases {
		got, err := s.EvaluateAt(c.t)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "t=%v", c.t)
	}

	_, err = s.EvaluateAt(-0.1)
	require.Error(t, err)
	require.Equal(t, KindOutOfRange, err.(*Error).Kind)

	_, err = s.EvaluateAt(3.1)
	require.Error(t, err)
	require.Equal(t, KindOutOfRange, err.(*Error).Kind)
}

func TestCut(t *testing.T) {
	s, err := NewBooleanSeries([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 4, DefaultTolerance())
	require.NoError(t, err)

	cut, err := s.Cut(0.5, 2.5, false)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, 2}, cut.T)
	require.Equal(t, []bool{true, false, true}, cut.Y)
	require.Equal(t, 2.5, cut.End)

	cutKeep, err := s.Cut(0, 2, true)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, cutKeep.T)

	cutDrop, err := s.Cut(0, 2, false)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, cutDrop.T)

	_, err = s.Cut(-1, 2, false)
	require.Error(t, err)
	require.Equal(t, KindOutOfRange, err.(*Error).Kind)
}

func TestCutIdempotence(t *testing.T) {
	s, err := NewBooleanSeries([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 4, DefaultTolerance())
	require.NoError(t, err)
	cut, err := s.Cut(s.T[0], s.End, false)
	require.NoError(t, err)
	require.True(t, cut.Canonicalise().Equal(s.Canonicalise()))
}

func TestHammingDistance(t *testing.T) {
	// two seven-switch series differing only at 1.0 vs 1.5, and 4.0 vs 4.3,
	// over [0, 7].
	a, err := NewBooleanSeries(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]bool{true, false, true, false, true, false, true}, 7, DefaultTolerance())
	require.NoError(t, err)
	b, err := NewBooleanSeries(
		[]float64{0, 1.5, 2, 3, 4.3, 5, 6},
		[]bool{true, false, true, false, true, false, true}, 7, DefaultTolerance())
	require.NoError(t, err)

	d, err := a.HammingDistance(b)
	require.NoError(t, err)
	require.InDelta(t, 0.8, d, 1e-9)

	d2, err := b.HammingDistance(a)
	require.NoError(t, err)
	require.InDelta(t, d, d2, 1e-9)

	dSelf, err := a.HammingDistance(a)
	require.NoError(t, err)
	require.InDelta(t, 0, dSelf, 1e-9)
}

func TestCanonicaliseDropsDuplicates(t *testing.T) {
	s := &BooleanSeries{
		T:   []float64{0, 1, 2, 3},
		Y:   []bool{true, true, false, false},
		End: 4,
		tol: DefaultTolerance(),
	}
	c := s.Canonicalise()
	require.Equal(t, []float64{0, 2}, c.T)
	require.Equal(t, []bool{true, false}, c.Y)
}

func TestToLogical(t *testing.T) {
	s, err := ToLogical([]float64{0, 1, 2}, []float64{-1, 1, 0}, DefaultTolerance())
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, s.Y)
}
