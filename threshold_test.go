package bde

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsoluteThreshold(t *testing.T) {
	s, err := AbsoluteThreshold(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 10, 8, 3, 12},
		5, DefaultTolerance())
	require.NoError(t, err)

	require.Len(t, s.T, 4)
	require.InDelta(t, 0, s.T[0], 1e-9)
	require.InDelta(t, 0.5, s.T[1], 1e-9)
	require.InDelta(t, 2.6, s.T[2], 1e-6)
	require.InDelta(t, 29.0/9.0, s.T[3], 1e-6)
	require.Equal(t, []bool{false, true, false, true}, s.Y)
	require.Equal(t, 4.0, s.End)
}

func TestRelativeThreshold(t *testing.T) {
	s, err := RelativeThreshold(
		[]float64{0, 1, 2, 3, 4},
		[]float64{4, 10, 8, 2, 12},
		0.5, DefaultTolerance())
	require.NoError(t, err)

	require.Len(t, s.T, 4)
	require.InDelta(t, 0, s.T[0], 1e-9)
	require.InDelta(t, 0.5, s.T[1], 1e-9)
	require.InDelta(t, 13.0/6.0, s.T[2], 1e-6)
	require.InDelta(t, 3.5, s.T[3], 1e-9)
	require.Equal(t, []bool{false, true, false, true}, s.Y)
}

func TestThresholdMonotone(t *testing.T) {
	t1, y1 := []float64{0, 1, 2, 3}, []float64{0, 10, 0, 10}
	low, err := AbsoluteThreshold(t1, y1, 2, DefaultTolerance())
	require.NoError(t, err)
	high, err := AbsoluteThreshold(t1, y1, 8, DefaultTolerance())
	require.NoError(t, err)

	// total true-time should never increase as theta increases.
	trueTime := func(s *BooleanSeries) float64 {
		var total float64
		for i := range s.T {
			end := s.End
			if i+1 < len(s.T) {
				end = s.T[i+1]
			}
			if s.Y[i] {
				total += end - s.T[i]
			}
		}
		return total
	}
	require.GreaterOrEqual(t, trueTime(low), trueTime(high))
}

func TestMergeUnmergeRoundTrip(t *testing.T) {
	a, err := NewBooleanSeries([]float64{0, 1, 2}, []bool{true, false, true}, 3, DefaultTolerance())
	require.NoError(t, err)
	b, err := NewBooleanSeries([]float64{0, 1.5}, []bool{false, true}, 3, DefaultTolerance())
	require.NoError(t, err)

	tShared, yShared, err := Merge([]*BooleanSeries{a, b}, DefaultTolerance())
	require.NoError(t, err)

	out, err := Unmerge(tShared, yShared, 3, DefaultTolerance())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.True(t, out[0].Equal(a.Canonicalise()))
	require.True(t, out[1].Equal(b.Canonicalise()))
}

func TestMergeDomainMismatch(t *testing.T) {
	a, err := NewBooleanSeries([]float64{0}, []bool{true}, 3, DefaultTolerance())
	require.NoError(t, err)
	b, err := NewBooleanSeries([]float64{0}, []bool{true}, 4, DefaultTolerance())
	require.NoError(t, err)

	_, _, err = Merge([]*BooleanSeries{a, b}, DefaultTolerance())
	require.Error(t, err)
	require.Equal(t, KindDomainMismatch, err.(*Error).Kind)
}
