// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bdetest provides utility functions for testing bde models.
package bdetest

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	bde "github.com/kbrennan/bdesim"
)

// CompareTransitions runs two transition functions through independent
// DelayEngines built from the same base problem and fails the test if
// their completed series ever disagree. base.Transition is ignored; fn1
// and fn2 are substituted in turn, so two candidate models can be checked
// for equivalence variable by variable.
func CompareTransitions(t *testing.T, base bde.Problem, fn1, fn2 bde.TransitionFunc) {
	p1, p2 := base, base
	p1.Transition, p2.Transition = fn1, fn2

	e1, err := bde.NewEngine(p1)
	if err != nil {
		t.Fatalf("building engine 1: %v", err)
	}
	e2, err := bde.NewEngine(p2)
	if err != nil {
		t.Fatalf("building engine 2: %v", err)
	}

	r1, err := e1.Solve(context.Background())
	if err != nil {
		t.Fatalf("solving with fn1: %v", err)
	}
	r2, err := e2.Solve(context.Background())
	if err != nil {
		t.Fatalf("solving with fn2: %v", err)
	}

	if len(r1) != len(r2) {
		t.Fatalf("variable count mismatch: %d vs %d", len(r1), len(r2))
	}
	for v := range r1 {
		if !r1[v].Equal(r2[v]) {
			t.Errorf("variable %d differs:\n  fn1: %s\n  fn2: %s", v, r1[v], r2[v])
		}
	}
}

// RandomHistory builds a random BooleanSeries history for use in property
// tests: nSwitches switches spaced evenly over [0, span], each with a
// random state, ending at span with no switch on the end point.
func RandomHistory(r *rand.Rand, nSwitches int, span float64, tol bde.ToleranceComparator) (*bde.BooleanSeries, error) {
	if nSwitches < 1 {
		nSwitches = 1
	}
	t := make([]float64, nSwitches)
	y := make([]bool, nSwitches)
	step := span / float64(nSwitches+1)
	for i := range t {
		t[i] = step * float64(i)
		y[i] = r.Intn(2) == 0
	}
	return bde.NewBooleanSeries(t, y, span, tol)
}

// AssertNoPhantomEvents checks the no-phantom-events property: every switch
// time t in series strictly after tSimStart must equal, within tolerance,
// some history, forcing or output-series switch time plus some delay.
func AssertNoPhantomEvents(t *testing.T, series []*bde.BooleanSeries, history, forcing []*bde.BooleanSeries, delays []float64, tSimStart float64, tol bde.ToleranceComparator) {
	var roots []float64
	for _, s := range history {
		roots = append(roots, s.T...)
	}
	for _, s := range forcing {
		roots = append(roots, s.T...)
	}
	for _, s := range series {
		roots = append(roots, s.T...)
	}

	for _, s := range series {
		for _, tc := range s.T {
			if !tol.Less(tSimStart, tc) {
				continue
			}
			found := false
			for _, root := range roots {
				for _, d := range delays {
					if tol.Equal(root+d, tc) {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				t.Errorf("phantom switch at t=%v: no root+delay explains it", tc)
			}
		}
	}
}

// FormatSwitches renders a series' raw switch list for failure messages.
func FormatSwitches(s *bde.BooleanSeries) string {
	return fmt.Sprintf("%v", s)
}
