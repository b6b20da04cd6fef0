package bde

// TransitionFunc is the user-supplied transition function. z[d][v] is the
// state of modelled variable v at delay d (z[d][v] = series[v] evaluated
// at t - delays[d]); if forcing variables are in play, f[d][k] is the
// analogous state of forcing variable k. f is nil when the problem has no
// forcing inputs. TransitionFunc must be pure: called repeatedly with the
// same arguments, it must return the same result, and it must not retain
// or mutate z or f.
type TransitionFunc func(z, f [][]bool) []bool

// Problem bundles everything the DelayEngine needs to run a solve.
type Problem struct {
	// NVars is the number of modelled variables. Must equal len(History).
	NVars int
	// NForced is the number of forcing variables. Must equal len(Forcing).
	NForced int
	// Delays are the strictly positive delay values; the index exposed to
	// Transition matches this order.
	Delays []float64
	// Transition is the user's pure transition function.
	Transition TransitionFunc
	// History holds one BooleanSeries per modelled variable, in variable
	// index order. All histories must share the same End.
	History []*BooleanSeries
	// Forcing holds one BooleanSeries per forcing variable, in forcing
	// index order. May be empty if NForced == 0.
	Forcing []*BooleanSeries
	// EndTime is the simulation end time; must be > history End.
	EndTime float64
	// Tolerance is the comparator used throughout the solve. The zero
	// value resolves to DefaultTolerance.
	Tolerance ToleranceComparator
	// MaxSwitchesPerUnitTime bounds the rate of committed switches as a
	// safety net against Zeno-like or chattering models. Zero selects a
	// built-in default.
	MaxSwitchesPerUnitTime float64
}

const defaultMaxSwitchesPerUnitTime = 10000

func (p *Problem) tolerance() ToleranceComparator {
	if p.Tolerance == (ToleranceComparator{}) {
		return DefaultTolerance()
	}
	return p.Tolerance
}

func (p *Problem) maxSwitchDensity() float64 {
	if p.MaxSwitchesPerUnitTime <= 0 {
		return defaultMaxSwitchesPerUnitTime
	}
	return p.MaxSwitchesPerUnitTime
}

// maxDelay returns the largest delay value.
func maxDelay(delays []float64) float64 {
	m := delays[0]
	for _, d := range delays[1:] {
		if d > m {
			m = d
		}
	}
	return m
}

// validate checks every Problem input invariant, each as a distinct error
// Kind.
func (p *Problem) validate() (tSimStart float64, err error) {
	tol := p.tolerance()

	if len(p.Delays) == 0 {
		return 0, newErr(KindInvalidDelay, "no delays specified")
	}
	for i, d := range p.Delays {
		if d <= 0 {
			return 0, newErr(KindInvalidDelay, "delay[%d]=%v is not strictly positive", i, d)
		}
	}
	if len(p.History) != p.NVars {
		return 0, newErr(KindInvalidSeriesShape, "len(History)=%d != NVars=%d", len(p.History), p.NVars)
	}
	if len(p.Forcing) != p.NForced {
		return 0, newErr(KindInvalidSeriesShape, "len(Forcing)=%d != NForced=%d", len(p.Forcing), p.NForced)
	}
	if p.NVars == 0 {
		return 0, newErr(KindInvalidSeriesShape, "no modelled variables")
	}

	tSimStart = p.History[0].End
	for i, h := range p.History {
		if !tol.Equal(h.End, tSimStart) {
			return 0, newErr(KindInvalidSeriesShape, "history[%d].End=%v != history[0].End=%v", i, h.End, tSimStart)
		}
	}
	if !tol.Less(tSimStart, p.EndTime) {
		return 0, newErr(KindInvalidSeriesShape, "end_time=%v must be after history end=%v", p.EndTime, tSimStart)
	}

	md := maxDelay(p.Delays)
	for i, h := range p.History {
		span := tSimStart - h.T[0]
		if tol.Less(span, md) {
			return 0, newErr(KindHistoryTooShort, "history[%d] spans %v, shorter than max delay %v", i, span, md)
		}
		if tol.Equal(h.End, h.T[len(h.T)-1]) {
			return 0, newErr(KindHistoryEndsOnSwitch, "history[%d] ends on its own last switch at t=%v", i, h.End)
		}
	}

	for i, f := range p.Forcing {
		required := tSimStart - md
		if tol.Less(required, f.T[0]) {
			return 0, newErr(KindForcingTooShort, "forcing[%d] starts at %v, needed from %v", i, f.T[0], required)
		}
		if tol.Less(f.End, p.EndTime) {
			return 0, newErr(KindForcingTooShort, "forcing[%d] ends at %v, needed through %v", i, f.End, p.EndTime)
		}
	}

	return tSimStart, nil
}
