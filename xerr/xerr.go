// Package xerr defines the error kinds the sweep engine can raise.
//
// Propagation follows a poisoned-state contract: once a [*Sweep] (see
// package sweep) returns an Error, it refuses all further operations
// except release of its pool, and returns the same Error again. There is
// no local recovery; callers retry with adjusted input, per the kind's
// advice.
package xerr

import (
	"fmt"

	"github.com/moehriegitt/hob3l-sub002/loc"
)

// Kind enumerates the fatal/advisory conditions the sweep engine reports.
type Kind uint8

// Valid values for Kind.
const (
	// Overflow indicates an integer product or division in the
	// intersection arithmetic did not fit in the available width. Fatal.
	// The caller should coarsen the input coordinate grid.
	Overflow Kind = iota

	// EmptyInput indicates a polygon with fewer than three vertices was
	// fed to the sweep. Advisory: only raised if the caller opted into the
	// strict check via options.WithStrictEmptyInput; otherwise the polygon
	// is ignored.
	EmptyInput

	// CollapsedOutput indicates the reduced edge set could not be turned
	// into clean output: a vertex of odd degree or a dead end while
	// reconstructing paths, a zero-area path, or a hole with no visibility
	// bridge while triangulating. Advisory, same strict-check gating as
	// EmptyInput; otherwise the affected output is dropped.
	CollapsedOutput

	// Unimplemented indicates a composition wider than the sweep is set up
	// for: an edge naming a polygon bit at or above the configured
	// MaxSimultaneous, or a truth table too short for a segment's
	// membership mask.
	Unimplemented
)

// String renders the Kind's name. It panics on a value outside the
// enumerated constants, mirroring the invalid-enum idiom used throughout
// this module's ancestor geometry library.
func (k Kind) String() string {
	switch k {
	case Overflow:
		return "Overflow"
	case EmptyInput:
		return "EmptyInput"
	case CollapsedOutput:
		return "CollapsedOutput"
	case Unimplemented:
		return "Unimplemented"
	default:
		panic(fmt.Errorf("xerr: unsupported Kind: %d", uint8(k)))
	}
}

// Error is the concrete error value returned by the sweep engine. It
// implements the standard error interface and carries enough context for
// a caller to decide whether to retry.
type Error struct {
	Kind Kind
	Loc  loc.Loc
	msg  string
}

// New constructs an Error of the given kind at the given location.
func New(kind Kind, at loc.Loc, format string, args ...any) *Error {
	return &Error{Kind: kind, Loc: at, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Loc.IsNone() {
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.msg)
}

// Overflowf builds an [Overflow] error, appending the standard remedy
// advice to the message per the error-handling contract in spec.md §7.
func Overflowf(at loc.Loc, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return New(Overflow, at, "%s (try a coarser coordinate grid)", msg)
}
