// Package loc carries the thin source-location contract the sweep engine
// needs from its caller.
//
// SCAD parsing, the CSG tree, and the rest of the front end that would
// normally stamp file:line information onto geometry are out of scope for
// this module (see the parent project's parser). Callers that have that
// information attach it with [New]; callers that don't pass [None].
package loc

import "fmt"

// Loc identifies where, in caller-owned source, a piece of geometry came
// from. It is opaque to the sweep engine: the engine only ever carries a
// Loc forward into an error value.
type Loc struct {
	file string
	line int
}

// New returns a Loc pointing at file:line.
func New(file string, line int) Loc {
	return Loc{file: file, line: line}
}

// None is the zero Loc, used when the caller has no location to attach.
var None = Loc{}

// IsNone reports whether l carries no location information.
func (l Loc) IsNone() bool {
	return l.file == "" && l.line == 0
}

// String renders the location as "file:line", or "<unknown>" for [None].
func (l Loc) String() string {
	if l.IsNone() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.file, l.line)
}
