// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bdelib

import (
	"fmt"
	"io"

	bde "github.com/kbrennan/bdesim"
)

// ToStepPlotData turns a BooleanSeries into edge-stepped (x, y) points: xs
// duplicates each switch time and ys duplicates each level, so a line plot
// renders as square-edged steps. Deterministic.
func ToStepPlotData(s *bde.BooleanSeries) (xs []float64, ys []bool) {
	xs = append(xs, s.T[0])
	ys = append(ys, s.Y[0])
	for i := 1; i < len(s.T); i++ {
		xs = append(xs, s.T[i], s.T[i])
		ys = append(ys, s.Y[i-1], s.Y[i])
	}
	if s.End > s.T[len(s.T)-1] {
		xs = append(xs, s.End)
		ys = append(ys, s.Y[len(s.Y)-1])
	}
	return xs, ys
}

// ToStepPlotDataMulti applies ToStepPlotData to every series in a solved
// multi-series result, sharing a single xs axis built from the union of
// all series' switch times. If the series' End values differ, Merge fails
// and the result is not on a shared axis: xs is the first series' own step
// axis and each ys[v] holds that series' own levels, so a row's length can
// differ from len(xs).
func ToStepPlotDataMulti(series []*bde.BooleanSeries, tol bde.ToleranceComparator) (xs []float64, ys [][]bool) {
	if len(series) == 0 {
		return nil, nil
	}
	tShared, yShared, err := bde.Merge(series, tol)
	if err != nil {
		// fall back to per-series plotting if domains disagree; callers
		// that need the merged grid should call Merge themselves first.
		ys = make([][]bool, len(series))
		for i, s := range series {
			x, y := ToStepPlotData(s)
			if i == 0 {
				xs = x
			}
			ys[i] = y
		}
		return xs, ys
	}

	xs = append(xs, tShared[0])
	for i := 1; i < len(tShared); i++ {
		xs = append(xs, tShared[i], tShared[i])
	}
	end := series[0].End
	if end > tShared[len(tShared)-1] {
		xs = append(xs, end)
	}

	ys = make([][]bool, len(series))
	for v := range series {
		row := []bool{yShared[0][v]}
		for i := 1; i < len(tShared); i++ {
			row = append(row, yShared[i-1][v], yShared[i][v])
		}
		if end > tShared[len(tShared)-1] {
			row = append(row, yShared[len(yShared)-1][v])
		}
		ys[v] = row
	}
	return xs, ys
}

// PrintTabular emits one line per interval of the merged multi-series:
//
//	  t_start  ->  t_end : S1 S2 ...
//
// with states rendered as single characters (T/F). Field widths are not a
// compatibility boundary.
func PrintTabular(w io.Writer, series []*bde.BooleanSeries, labels []string, tol bde.ToleranceComparator) error {
	if len(series) == 0 {
		return nil
	}
	tShared, yShared, err := bde.Merge(series, tol)
	if err != nil {
		return err
	}
	if len(labels) > 0 {
		fmt.Fprint(w, "                         ")
		for _, l := range labels {
			fmt.Fprintf(w, "%3s", l)
		}
		fmt.Fprintln(w)
	}
	end := series[0].End
	for i, t := range tShared {
		tEnd := end
		if i+1 < len(tShared) {
			tEnd = tShared[i+1]
		}
		fmt.Fprintf(w, "  %8.4f  ->  %8.4f :", t, tEnd)
		for _, v := range yShared[i] {
			c := "F"
			if v {
				c = "T"
			}
			fmt.Fprintf(w, " %s", c)
		}
		fmt.Fprintln(w)
	}
	return nil
}
