package bde

import "sort"

// AbsoluteThreshold converts sampled numeric data to a BooleanSeries: the
// state at sample i is true iff ySamples[i] >= theta. Between samples whose
// states differ, the crossing time is found by linear interpolation on the
// numeric signal. tSamples must be strictly increasing.
func AbsoluteThreshold(tSamples, ySamples []float64, theta float64, tol ToleranceComparator) (*BooleanSeries, error) {
	if len(tSamples) != len(ySamples) || len(tSamples) < 1 {
		return nil, newErr(KindInvalidSeriesShape, "t/y sample length mismatch or empty")
	}
	if tol == (ToleranceComparator{}) {
		tol = DefaultTolerance()
	}

	state := func(y float64) bool { return y >= theta }

	t := []float64{tSamples[0]}
	y := []bool{state(ySamples[0])}

	for i := 0; i+1 < len(tSamples); i++ {
		y0, y1 := ySamples[i], ySamples[i+1]
		s0, s1 := state(y0), state(y1)
		if s0 == s1 {
			continue
		}
		var tc float64
		switch {
		case y0 == theta:
			tc = tSamples[i]
		case y1 == theta:
			tc = tSamples[i+1]
		default:
			tc = tSamples[i] + (theta-y0)/(y1-y0)*(tSamples[i+1]-tSamples[i])
		}
		if tol.Equal(tc, t[len(t)-1]) {
			// crossing coincides with the previous switch; collapse.
			y[len(y)-1] = s1
			continue
		}
		t = append(t, tc)
		y = append(y, s1)
	}

	s, err := NewBooleanSeries(t, y, tSamples[len(tSamples)-1], tol)
	if err != nil {
		return nil, err
	}
	return s.Canonicalise(), nil
}

// RelativeThreshold is AbsoluteThreshold with the threshold value computed
// as min(ySamples) + theta*(max(ySamples)-min(ySamples)), theta in [0, 1].
func RelativeThreshold(tSamples, ySamples []float64, theta float64, tol ToleranceComparator) (*BooleanSeries, error) {
	if len(ySamples) == 0 {
		return nil, newErr(KindInvalidSeriesShape, "empty sample set")
	}
	mn, mx := ySamples[0], ySamples[0]
	for _, v := range ySamples {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return AbsoluteThreshold(tSamples, ySamples, mn+theta*(mx-mn), tol)
}

// Merge combines several BooleanSeries sharing the same End into a shared
// time grid: tShared is the sorted, tolerance-deduplicated union of every
// series' switch times, and yShared[i] holds every series' state at
// tShared[i].
func Merge(series []*BooleanSeries, tol ToleranceComparator) (tShared []float64, yShared [][]bool, err error) {
	if len(series) == 0 {
		return nil, nil, newErr(KindInvalidSeriesShape, "no series to merge")
	}
	if tol == (ToleranceComparator{}) {
		tol = DefaultTolerance()
	}
	end := series[0].End
	for _, s := range series[1:] {
		if !tol.Equal(s.End, end) {
			return nil, nil, newErr(KindDomainMismatch, "series end %v != %v", s.End, end)
		}
	}

	var all []float64
	for _, s := range series {
		all = append(all, s.T...)
	}
	sort.Float64s(all)

	var dedup []float64
	for _, t := range all {
		if len(dedup) == 0 || !tol.Equal(dedup[len(dedup)-1], t) {
			dedup = append(dedup, t)
		}
	}

	yShared = make([][]bool, len(dedup))
	for i, t := range dedup {
		row := make([]bool, len(series))
		for k, s := range series {
			v, err := s.EvaluateAt(t)
			if err != nil {
				return nil, nil, err
			}
			row[k] = v
		}
		yShared[i] = row
	}
	return dedup, yShared, nil
}

// Unmerge is the inverse of Merge: given a shared time grid and per-time
// state vectors, it reconstructs one canonical BooleanSeries per variable,
// dropping consecutive duplicate states.
func Unmerge(tShared []float64, yShared [][]bool, end float64, tol ToleranceComparator) ([]*BooleanSeries, error) {
	if len(tShared) != len(yShared) || len(tShared) == 0 {
		return nil, newErr(KindInvalidSeriesShape, "tShared/yShared length mismatch or empty")
	}
	nVars := len(yShared[0])
	out := make([]*BooleanSeries, nVars)
	for v := 0; v < nVars; v++ {
		t := make([]float64, len(tShared))
		y := make([]bool, len(tShared))
		for i := range tShared {
			t[i] = tShared[i]
			y[i] = yShared[i][v]
		}
		s, err := NewBooleanSeries(t, y, end, tol)
		if err != nil {
			return nil, err
		}
		out[v] = s.Canonicalise()
	}
	return out, nil
}
