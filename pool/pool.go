// Package pool implements the bump-allocation arena that backs every
// scratch object a single sweep operation creates (spec.md §4.8).
//
// Unlike the original C library's arena of raw pointer rings, objects here
// are addressed by typed, arena-relative [Index] values rather than
// pointers (the redesign spec.md §9 calls for: "an index-based arena with
// typed indices; raw pointer rings are not necessary"). Go's runtime
// already owns memory safety and garbage collection, so this Arena's job
// is narrower than the original's: it is the single release point the
// sweep's scratch objects share, holding one typed slab per element type,
// rather than a raw byte-slab allocator.
package pool

// zeroer is satisfied by every slab; it lets [Arena.Clear] reset a slab's
// backing storage without the Arena needing to know its element type.
type zeroer interface {
	zero()
	shrink()
}

// Arena is a bump-allocated scratch region: a sequence of typed slabs,
// each growing by doubling, released together on [Arena.Clear] or
// [Arena.Fini]. There is no per-object free.
type Arena struct {
	slabs []zeroer
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// slab is the per-type backing store an [Index] is carved out of.
type slab[T any] struct {
	vals []T
}

func (s *slab[T]) zero() {
	var zero T
	for i := range s.vals {
		s.vals[i] = zero
	}
}

func (s *slab[T]) shrink() {
	s.vals = s.vals[:0]
}

// Index is an arena-relative handle to a contiguous run of values of T.
// It remains valid for the arena's lifetime; it is meaningless once the
// arena that produced it is cleared or dropped.
type Index[T any] struct {
	slab *slab[T]
	off  int
	n    int
}

// Get dereferences the handle, returning the live backing slice. Mutating
// it mutates the arena's storage in place.
func (ix Index[T]) Get() []T {
	return ix.slab.vals[ix.off : ix.off+ix.n]
}

// typedSlab finds (or lazily creates) the slab of type T belonging to a.
// Each distinct T gets exactly one growing slab per Arena, found by a
// linear scan -- sweeps only ever instantiate a handful of scratch types
// (events, segments, path vertices), so this is never a hot loop.
func typedSlab[T any](a *Arena) *slab[T] {
	for _, z := range a.slabs {
		if s, ok := z.(*slab[T]); ok {
			return s
		}
	}
	s := &slab[T]{}
	a.slabs = append(a.slabs, s)
	return s
}

// Alloc reserves room for n zero-valued T in the arena and returns a
// handle to them.
func Alloc[T any](a *Arena, n int) Index[T] {
	s := typedSlab[T](a)
	off := len(s.vals)
	var zero T
	for i := 0; i < n; i++ {
		s.vals = append(s.vals, zero)
	}
	return Index[T]{slab: s, off: off, n: n}
}

// Clear resets every slab to empty and zeroes its backing storage, so the
// arena can be reused for a new sweep without the allocator traffic of
// building new slabs from scratch.
func (a *Arena) Clear() {
	for _, s := range a.slabs {
		s.zero()
		s.shrink()
	}
}

// Fini drops every underlying slab. Handles allocated before Fini are
// invalid afterward; the Arena itself can be reused, starting again from
// no slabs, as after [New].
func (a *Arena) Fini() {
	a.slabs = nil
}
