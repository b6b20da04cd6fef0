package bde

import "github.com/pkg/errors"

// Kind identifies the taxonomy of a bde error, so callers can branch on
// the failure without parsing error strings.
type Kind int

const (
	// KindInvalidSeriesShape: BooleanSeries constructor, length mismatch or
	// bad end value.
	KindInvalidSeriesShape Kind = iota
	// KindTimesNotSorted: BooleanSeries constructor, times not strictly
	// increasing under tolerance.
	KindTimesNotSorted
	// KindEndBeforeLastSwitch: BooleanSeries constructor, end < t[-1].
	KindEndBeforeLastSwitch
	// KindOutOfRange: EvaluateAt or Cut, point or interval outside domain.
	KindOutOfRange
	// KindDomainMismatch: Merge or HammingDistance, series domains differ.
	KindDomainMismatch
	// KindInvalidDelay: engine construction, non-positive delay.
	KindInvalidDelay
	// KindHistoryTooShort: engine construction, max delay exceeds history span.
	KindHistoryTooShort
	// KindForcingTooShort: engine construction or solve, forcing does not
	// cover the required span.
	KindForcingTooShort
	// KindHistoryEndsOnSwitch: engine construction, last switch coincides
	// with history end.
	KindHistoryEndsOnSwitch
	// KindTransitionArityMismatch: solve, user function returns the wrong
	// number of values.
	KindTransitionArityMismatch
	// KindSwitchDensityExceeded: solve, safety bound tripped.
	KindSwitchDensityExceeded
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSeriesShape:
		return "InvalidSeriesShape"
	case KindTimesNotSorted:
		return "TimesNotSorted"
	case KindEndBeforeLastSwitch:
		return "EndBeforeLastSwitch"
	case KindOutOfRange:
		return "OutOfRange"
	case KindDomainMismatch:
		return "DomainMismatch"
	case KindInvalidDelay:
		return "InvalidDelay"
	case KindHistoryTooShort:
		return "HistoryTooShort"
	case KindForcingTooShort:
		return "ForcingTooShort"
	case KindHistoryEndsOnSwitch:
		return "HistoryEndsOnSwitch"
	case KindTransitionArityMismatch:
		return "TransitionArityMismatch"
	case KindSwitchDensityExceeded:
		return "SwitchDensityExceeded"
	default:
		return "Unknown"
	}
}

// Error is a bde error carrying its Kind plus a human-readable message.
// Use errors.As or Error.Is to branch on Kind; the message carries
// whatever context (variable index, time, offending value) is relevant
// to the specific failure.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.msg }

// Is reports whether target is a *Error with the same Kind, so callers
// can write errors.Is(err, bde.ErrKind(bde.KindOutOfRange)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ErrKind builds a sentinel *Error for use with errors.Is.
func ErrKind(k Kind) error { return &Error{Kind: k} }

func newErr(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, msg: errors.Errorf(format, args...).Error()}
}
