// Package options provides the functional-options pattern a [sweep.Sweep]
// is configured with, the same way the rest of this codebase's geometric
// operations are configured: an Option closure mutates a Config, applied
// in order over a set of defaults.
//
// There is no Epsilon here -- the sweep operates on exact fixed-point
// coordinates (spec.md §4.1) and has no floating-point tolerance to tune.
// What it does need tuned is how many input polygons one sweep may
// compose, whether run-on collinear edges get merged, and whether empty
// output faces are reported or silently dropped.
package options

// Config holds every tunable behavior of a sweep.
type Config struct {
	// MaxSimultaneous bounds how many input polygons one sweep composes:
	// an edge whose membership names a polygon bit at or above this value
	// is rejected with xerr.Unimplemented. With zero, every edge that names
	// a polygon is rejected.
	MaxSimultaneous int

	// DropCollinear, when true, merges consecutive collinear edges into a
	// single edge during path reconstruction instead of emitting a
	// redundant intermediate vertex.
	DropCollinear bool

	// SkipEmpty, when true, silently omits zero-area output faces from
	// [path.Polygon] results instead of returning them.
	SkipEmpty bool

	// StrictEmptyInput, when true, turns the advisory xerr.EmptyInput and
	// xerr.CollapsedOutput conditions into hard errors (spec.md §7: "raised
	// only if the caller enabled the corresponding strict check"). When
	// false (the default), a degenerate input or a dead end during
	// reconstruction or triangulation is absorbed -- the offending piece of
	// output is dropped and an empty or partial result is returned instead
	// of an error.
	StrictEmptyInput bool
}

// Option is a functional option that configures a [Config].
type Option func(*Config)

// WithMaxSimultaneous sets the number of input polygon bits (0 .. n-1) a
// sweep accepts; a negative n is treated as zero.
func WithMaxSimultaneous(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.MaxSimultaneous = n
	}
}

// WithDropCollinear enables collinear-edge merging during reconstruction.
func WithDropCollinear(drop bool) Option {
	return func(c *Config) { c.DropCollinear = drop }
}

// WithSkipEmpty enables silent omission of zero-area output faces.
func WithSkipEmpty(skip bool) Option {
	return func(c *Config) { c.SkipEmpty = skip }
}

// WithStrictEmptyInput enables the strict check that turns EmptyInput and
// CollapsedOutput from an absorbed, advisory condition into a hard error.
func WithStrictEmptyInput(strict bool) Option {
	return func(c *Config) { c.StrictEmptyInput = strict }
}

// Apply folds a set of Options over defaults, returning the resulting
// Config. Options are applied in the order given.
func Apply(defaults Config, opts ...Option) Config {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
