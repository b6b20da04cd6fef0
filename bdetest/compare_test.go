package bdetest

import (
	"context"
	"math/rand"
	"testing"

	bde "github.com/kbrennan/bdesim"
)

func TestCompareTransitionsAgree(t *testing.T) {
	history, err := bde.NewBooleanSeries([]float64{0}, []bool{true}, 1, bde.DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	base := bde.Problem{
		NVars:   1,
		Delays:  []float64{1},
		History: []*bde.BooleanSeries{history},
		EndTime: 5,
	}

	notA := func(z, f [][]bool) []bool { return []bool{!z[0][0]} }
	notB := func(z, f [][]bool) []bool {
		v := z[0][0]
		if v {
			return []bool{false}
		}
		return []bool{true}
	}
	CompareTransitions(t, base, notA, notB)
}

func TestRandomHistory(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	h, err := RandomHistory(r, 5, 10, bde.DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(h.T) != 5 {
		t.Errorf("got %d switches, want 5", len(h.T))
	}
	if h.End != 10 {
		t.Errorf("got End=%v, want 10", h.End)
	}
}

func TestAssertNoPhantomEventsPasses(t *testing.T) {
	tol := bde.DefaultTolerance()
	history, err := bde.NewBooleanSeries([]float64{0}, []bool{true}, 1, tol)
	if err != nil {
		t.Fatal(err)
	}
	engine, err := bde.NewEngine(bde.Problem{
		NVars:  1,
		Delays: []float64{1},
		Transition: func(z, f [][]bool) []bool {
			return []bool{!z[0][0]}
		},
		History: []*bde.BooleanSeries{history},
		EndTime: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	AssertNoPhantomEvents(t, result, []*bde.BooleanSeries{history}, nil, []float64{1}, 1, tol)
}

func TestFormatSwitches(t *testing.T) {
	s, err := bde.NewBooleanSeries([]float64{0, 1}, []bool{true, false}, 2, bde.DefaultTolerance())
	if err != nil {
		t.Fatal(err)
	}
	if FormatSwitches(s) == "" {
		t.Error("FormatSwitches should not be empty")
	}
}
