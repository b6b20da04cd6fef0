// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"context"
	"log"
	"os"

	bde "github.com/kbrennan/bdesim"
	"github.com/kbrennan/bdesim/bdelib"
)

func main() {
	logger := log.New(os.Stdout, "", 0)

	negationExample(logger)
	twoVariableExample(logger)
	forcedInputExample(logger)
}

// negationExample: a single variable negating its own value one time unit
// in the past. x(t) = !x(t-1).
func negationExample(logger *log.Logger) {
	tol := bde.DefaultTolerance()
	history, err := bde.NewBooleanSeries([]float64{0}, []bool{true}, 1, tol)
	if err != nil {
		logger.Fatal(err)
	}

	engine, err := bde.NewEngine(bde.Problem{
		NVars:  1,
		Delays: []float64{1},
		Transition: func(z, f [][]bool) []bool {
			return []bool{bdelib.Not(bdelib.At(z, 0, 0))}
		},
		History: []*bde.BooleanSeries{history},
		EndTime: 5,
	})
	if err != nil {
		logger.Fatal(err)
	}

	result, err := engine.Solve(context.Background())
	if err != nil {
		logger.Fatal(err)
	}

	logger.Print("negation example:")
	if err := bdelib.PrintTabular(logger.Writer(), result, []string{"x"}, tol); err != nil {
		logger.Fatal(err)
	}
}

// twoVariableExample: x1(t) = x2(t-1); x2(t) = !x1(t-0.5).
func twoVariableExample(logger *log.Logger) {
	tol := bde.DefaultTolerance()
	x1, err := bde.NewBooleanSeries([]float64{0, 1.5}, []bool{true, false}, 2, tol)
	if err != nil {
		logger.Fatal(err)
	}
	x2, err := bde.NewBooleanSeries([]float64{0, 1}, []bool{true, false}, 2, tol)
	if err != nil {
		logger.Fatal(err)
	}

	engine, err := bde.NewEngine(bde.Problem{
		NVars:  2,
		Delays: []float64{1, 0.5},
		Transition: func(z, f [][]bool) []bool {
			return []bool{
				bdelib.At(z, 0, 1),
				bdelib.Not(bdelib.At(z, 1, 0)),
			}
		},
		History: []*bde.BooleanSeries{x1, x2},
		EndTime: 6,
	})
	if err != nil {
		logger.Fatal(err)
	}

	result, err := engine.Solve(context.Background())
	if err != nil {
		logger.Fatal(err)
	}

	logger.Print("two-variable two-delay example:")
	if err := bdelib.PrintTabular(logger.Writer(), result, []string{"x1", "x2"}, tol); err != nil {
		logger.Fatal(err)
	}
}

// forcedInputExample: x2(t) follows a forcing input delayed by 0.3.
func forcedInputExample(logger *log.Logger) {
	tol := bde.DefaultTolerance()
	history, err := bde.NewBooleanSeries([]float64{0}, []bool{true}, 0.5, tol)
	if err != nil {
		logger.Fatal(err)
	}
	forcing, err := bde.NewBooleanSeries(
		[]float64{0, 0.5, 1, 1.5, 2, 2.5, 3},
		[]bool{false, true, false, true, false, true, false},
		3, tol)
	if err != nil {
		logger.Fatal(err)
	}

	engine, err := bde.NewEngine(bde.Problem{
		NVars:   1,
		NForced: 1,
		Delays:  []float64{0.3},
		Transition: func(z, f [][]bool) []bool {
			return []bool{bdelib.At(f, 0, 0)}
		},
		History: []*bde.BooleanSeries{history},
		Forcing: []*bde.BooleanSeries{forcing},
		EndTime: 3,
	})
	if err != nil {
		logger.Fatal(err)
	}

	result, err := engine.Solve(context.Background())
	if err != nil {
		logger.Fatal(err)
	}

	logger.Print("forced input example:")
	if err := bdelib.PrintTabular(logger.Writer(), result, []string{"x2"}, tol); err != nil {
		logger.Fatal(err)
	}
}
