package bde

import (
	"container/heap"
	"context"

	"github.com/google/uuid"
)

// DelayEngine is the event-driven BDE solver. It extends the supplied
// histories into a complete multi-variable BooleanSeries set on
// [tSimStart, EndTime].
type DelayEngine struct {
	problem   *Problem
	tol       ToleranceComparator
	tSimStart float64
	maxDelay  float64
	runID     uuid.UUID
}

// NewEngine validates problem and returns a ready-to-run DelayEngine.
func NewEngine(problem Problem) (*DelayEngine, error) {
	tSimStart, err := problem.validate()
	if err != nil {
		return nil, err
	}
	return &DelayEngine{
		problem:   &problem,
		tol:       problem.tolerance(),
		tSimStart: tSimStart,
		maxDelay:  maxDelay(problem.Delays),
		runID:     uuid.New(),
	}, nil
}

// RunID returns the correlation id assigned to this engine's solve, for
// tagging diagnostics when several solves run concurrently.
func (e *DelayEngine) RunID() uuid.UUID { return e.runID }

// candidate is one entry in the event priority queue: a candidate switch
// time. Source tagging beyond the time itself is unnecessary in this
// implementation since evaluation re-derives Z/F by direct lookup rather
// than incremental index tracking.
type candidate struct {
	t float64
}

type candidateQueue struct {
	items []candidate
}

func (q *candidateQueue) Len() int          { return len(q.items) }
func (q *candidateQueue) Less(i, j int) bool { return q.items[i].t < q.items[j].t }
func (q *candidateQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *candidateQueue) Push(x interface{}) { q.items = append(q.items, x.(candidate)) }
func (q *candidateQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// runningSeries accumulates one modelled variable's switches during a
// solve. Unlike BooleanSeries, its domain has no fixed End while the solve
// is in progress: any query at or after the last recorded switch returns
// the last recorded state.
type runningSeries struct {
	t   []float64
	y   []bool
	tol ToleranceComparator
}

func newRunningSeries(h *BooleanSeries) *runningSeries {
	return &runningSeries{
		t:   append([]float64(nil), h.T...),
		y:   append([]bool(nil), h.Y...),
		tol: h.tol,
	}
}

func (r *runningSeries) at(t float64) bool {
	lo, hi := 0, len(r.t)
	for lo < hi {
		mid := (lo + hi) / 2
		if r.tol.Less(t, r.t[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	i := lo - 1
	if i < 0 {
		i = 0
	}
	return r.y[i]
}

func (r *runningSeries) last() bool { return r.y[len(r.y)-1] }

func (r *runningSeries) commit(t float64, state bool) {
	r.t = append(r.t, t)
	r.y = append(r.y, state)
}

func (r *runningSeries) toSeries(end float64) *BooleanSeries {
	return &BooleanSeries{T: r.t, Y: r.y, End: end, tol: r.tol}
}

// Solve extends the problem's histories to EndTime and returns one
// completed BooleanSeries per modelled variable, in variable index order.
// ctx is checked between event-loop iterations only; a single transition
// evaluation always runs to completion.
func (e *DelayEngine) Solve(ctx context.Context) ([]*BooleanSeries, error) {
	p := e.problem
	tol := e.tol

	series := make([]*runningSeries, p.NVars)
	for v, h := range p.History {
		series[v] = newRunningSeries(h)
	}
	forcing := make([]*ForcingView, p.NForced)
	for k, f := range p.Forcing {
		forcing[k] = NewForcingView(f)
	}

	q := &candidateQueue{}
	heap.Init(q)

	// Candidates are accepted on [tSimStart, EndTime]: a candidate landing
	// exactly on tSimStart is a legitimate first event (e.g. a
	// single-delay negation immediately flips the history value), and the
	// "no switch on history end" input invariant already rules out any
	// contradiction between history's asserted value and a transition
	// evaluated at that same instant.
	pushIfInRange := func(t float64) {
		if tol.LessOrEqual(e.tSimStart, t) && tol.LessOrEqual(t, p.EndTime) {
			heap.Push(q, candidate{t: t})
		}
	}

	for _, d := range p.Delays {
		for _, s := range p.History {
			for _, ts := range s.T {
				pushIfInRange(ts + d)
			}
		}
		for _, f := range p.Forcing {
			for _, ts := range f.T {
				pushIfInRange(ts + d)
			}
		}
	}

	var recentSwitches []float64 // sliding window for density check

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tc := heap.Pop(q).(candidate).t
		// coalesce: drop any further candidates within tolerance of tc.
		for q.Len() > 0 && tol.Equal(q.items[0].t, tc) {
			heap.Pop(q)
		}

		z := make([][]bool, len(p.Delays))
		for d, delay := range p.Delays {
			row := make([]bool, p.NVars)
			for v, s := range series {
				row[v] = s.at(tc - delay)
			}
			z[d] = row
		}

		var f [][]bool
		if p.NForced > 0 {
			f = make([][]bool, len(p.Delays))
			for d, delay := range p.Delays {
				row := make([]bool, p.NForced)
				for k, fv := range forcing {
					val, err := fv.At(tc - delay)
					if err != nil {
						return nil, err
					}
					row[k] = val
				}
				f[d] = row
			}
		}

		newState := p.Transition(z, f)
		if len(newState) != p.NVars {
			return nil, newErr(KindTransitionArityMismatch, "transition returned %d values, expected %d", len(newState), p.NVars)
		}

		for v, s := range series {
			if newState[v] == s.last() {
				continue
			}
			s.commit(tc, newState[v])

			recentSwitches = append(recentSwitches, tc)
			cut := tc - 1.0
			i := 0
			for i < len(recentSwitches) && recentSwitches[i] < cut {
				i++
			}
			recentSwitches = recentSwitches[i:]
			if float64(len(recentSwitches)) > p.maxSwitchDensity() {
				return nil, newErr(KindSwitchDensityExceeded,
					"run %s: more than %v switches per unit time near t=%v on variable %d",
					e.runID, p.maxSwitchDensity(), tc, v)
			}

			for _, d := range p.Delays {
				pushIfInRange(tc + d)
			}
		}
	}

	out := make([]*BooleanSeries, p.NVars)
	for v, s := range series {
		out[v] = s.toSeries(p.EndTime)
	}
	return out, nil
}
