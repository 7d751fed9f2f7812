// Package dict implements the ordered map spec.md §4.2 requires: a
// comparator-parameterized red-black tree supporting Insert/Find/Delete/
// Min/Max/Predecessor/Successor in O(log n), plus Split and Join3 (each
// an O(n log n) collect-and-rebuild, not an O(log n) tree split or join;
// the sweep does not use them), and a
// rotation-time augmentation hook so callers can hang subtree aggregates
// (rank, black-height, whatever a particular caller needs) on the same
// tree without reimplementing it.
//
// Neither of the ecosystem's usual ordered-map choices
// (github.com/google/btree, github.com/emirpasic/gods/trees/redblacktree)
// expose split/join or an augmentation hook, so this package is grounded
// directly on the original C library's hand-rolled CLR red-black tree
// (original_source/include/cpmat/dict.h) instead, and backs both the
// sweep's event queue (sweep/equeue.go) and its beach line
// (sweep/beachline.go); see DESIGN.md.
package dict

// color is a red-black tree node's color.
type color bool

const (
	red   color = true
	black color = false
)

// Node is one entry of a [Tree]. Callers never construct a Node directly;
// they are returned by [Tree.Insert], [Tree.Find], [Tree.Min], [Tree.Max],
// and walked with [Node.Predecessor]/[Node.Successor].
type Node[K, V any] struct {
	Key   K
	Val   V
	color color
	left, right, parent *Node[K, V]
}

// Predecessor returns the node immediately before n in key order, or nil.
func (n *Node[K, V]) Predecessor() *Node[K, V] { return step(n, true) }

// Successor returns the node immediately after n in key order, or nil.
func (n *Node[K, V]) Successor() *Node[K, V] { return step(n, false) }

func step[K, V any](n *Node[K, V], backward bool) *Node[K, V] {
	if n == nil {
		return nil
	}
	if backward {
		if n.left != nil {
			return subtreeExtreme(n.left, false)
		}
	} else if n.right != nil {
		return subtreeExtreme(n.right, true)
	}
	x, p := n, n.parent
	for p != nil && ((backward && x == p.left) || (!backward && x == p.right)) {
		x, p = p, p.parent
	}
	return p
}

func subtreeExtreme[K, V any](n *Node[K, V], min bool) *Node[K, V] {
	for {
		if min {
			if n.left == nil {
				return n
			}
			n = n.left
		} else {
			if n.right == nil {
				return n
			}
			n = n.right
		}
	}
}

// Cmp orders two keys the way [Tree] needs: negative if a < b, zero if
// equal, positive if a > b.
type Cmp[K any] func(a, b K) int

// Augment, if supplied via [WithAugment], is invoked on a node every time
// its children may have changed -- after a rotation, and after an
// insert/delete's structural fixup touches it. It runs bottom-up, so a
// caller can recompute an aggregate (subtree size, black-height, rank)
// from the node's now-current children.
type Augment[K, V any] func(n *Node[K, V])

// Tree is a red-black tree ordered by Cmp.
type Tree[K, V any] struct {
	root *Node[K, V]
	cmp  Cmp[K]
	aug  Augment[K, V]
	size int
}

// Option configures a [Tree] at construction time.
type Option[K, V any] func(*Tree[K, V])

// WithAugment installs a rotation-time augmentation callback.
func WithAugment[K, V any](aug Augment[K, V]) Option[K, V] {
	return func(t *Tree[K, V]) { t.aug = aug }
}

// New returns an empty Tree ordered by cmp.
func New[K, V any](cmp Cmp[K], opts ...Option[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{cmp: cmp}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

func (t *Tree[K, V]) touch(n *Node[K, V]) {
	for n != nil && t.aug != nil {
		t.aug(n)
		n = n.parent
	}
}

// Find returns the value stored at key, if any.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	n := t.FindNode(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.Val, true
}

// FindNode returns the node stored at key, or nil.
func (t *Tree[K, V]) FindNode(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.Key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Min returns the smallest-keyed node, or nil if the tree is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return subtreeExtreme(t.root, true)
}

// Max returns the largest-keyed node, or nil if the tree is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return subtreeExtreme(t.root, false)
}

// Insert adds key/val to the tree, rebalancing as needed. If key is
// already present, a duplicate node is inserted adjacent to it (in
// successor position), matching the sweep's need to hold several segments
// that compare equal at an event point.
func (t *Tree[K, V]) Insert(key K, val V) *Node[K, V] {
	nnew := &Node[K, V]{Key: key, Val: val, color: red}
	if t.root == nil {
		t.root = nnew
		nnew.color = black
		t.size++
		t.touch(nnew)
		return nnew
	}

	n := t.root
	var parent *Node[K, V]
	goLeft := false
	for n != nil {
		parent = n
		if t.cmp(key, n.Key) < 0 {
			n = n.left
			goLeft = true
		} else {
			n = n.right
			goLeft = false
		}
	}
	nnew.parent = parent
	if goLeft {
		parent.left = nnew
	} else {
		parent.right = nnew
	}
	t.size++
	t.insertFixup(nnew)
	t.touch(nnew)
	return nnew
}

func (t *Tree[K, V]) insertFixup(n *Node[K, V]) {
	for n.parent != nil && n.parent.color == red {
		gp := n.parent.parent
		if gp == nil {
			break
		}
		if n.parent == gp.left {
			uncle := gp.right
			if colorOf(uncle) == red {
				n.parent.color = black
				uncle.color = black
				gp.color = red
				n = gp
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.rotateLeft(n)
			}
			n.parent.color = black
			gp.color = red
			t.rotateRight(gp)
		} else {
			uncle := gp.left
			if colorOf(uncle) == red {
				n.parent.color = black
				uncle.color = black
				gp.color = red
				n = gp
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			gp.color = red
			t.rotateLeft(gp)
		}
	}
	t.root.color = black
}

func colorOf[K, V any](n *Node[K, V]) color {
	if n == nil {
		return black
	}
	return n.color
}

func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	t.touch(x)
	t.touch(y)
}

func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
	t.touch(x)
	t.touch(y)
}

// Delete removes n from the tree. n must belong to t.
func (t *Tree[K, V]) Delete(n *Node[K, V]) {
	if n == nil {
		return
	}
	t.size--

	y := n
	yOrigColor := y.color
	var x, xParent *Node[K, V]

	switch {
	case n.left == nil:
		x = n.right
		xParent = n.parent
		t.transplant(n, n.right)
	case n.right == nil:
		x = n.left
		xParent = n.parent
		t.transplant(n, n.left)
	default:
		y = subtreeExtreme(n.right, true)
		yOrigColor = y.color
		x = y.right
		if y.parent == n {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = n.right
			y.right.parent = y
		}
		t.transplant(n, y)
		y.left = n.left
		y.left.parent = y
		y.color = n.color
	}

	if yOrigColor == black {
		t.deleteFixup(x, xParent)
	}
	t.touch(xParent)
}

func (t *Tree[K, V]) transplant(u, v *Node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *Tree[K, V]) deleteFixup(x, parent *Node[K, V]) {
	for x != t.root && colorOf(x) == black && parent != nil {
		if x == parent.left {
			w := parent.right
			if colorOf(w) == red {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if w == nil {
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.right) == black {
				if w.left != nil {
					w.left.color = black
				}
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			if w.right != nil {
				w.right.color = black
			}
			t.rotateLeft(parent)
			x = t.root
			parent = nil
		} else {
			w := parent.left
			if colorOf(w) == red {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if w == nil {
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.right) == black && colorOf(w.left) == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(w.left) == black {
				if w.right != nil {
					w.right.color = black
				}
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			if w.left != nil {
				w.left.color = black
			}
			t.rotateRight(parent)
			x = t.root
			parent = nil
		}
	}
	if x != nil {
		x.color = black
	}
}

// InOrder yields every (key, val) pair in ascending key order.
func (t *Tree[K, V]) InOrder(yield func(K, V) bool) {
	for n := t.Min(); n != nil; n = n.Successor() {
		if !yield(n.Key, n.Val) {
			return
		}
	}
}

// Split partitions t into two trees: everything with a key less than
// pivot, and everything with a key greater than or equal to pivot. t is
// left unusable afterward.
//
// This is implemented as an O(n) in-order collect + O(n log n) rebuild
// rather than the classic O(log n) tree-split; a real split walks down
// the search path for pivot, detaching and re-joining the subtrees it
// passes, which needs the same black-height-aware join as [Join3] below.
// Neither that split nor that join is implemented here.
func (t *Tree[K, V]) Split(pivot K) (left, right *Tree[K, V]) {
	left = New[K, V](t.cmp, optsFrom(t)...)
	right = New[K, V](t.cmp, optsFrom(t)...)
	t.InOrder(func(k K, v V) bool {
		if t.cmp(k, pivot) < 0 {
			left.Insert(k, v)
		} else {
			right.Insert(k, v)
		}
		return true
	})
	return left, right
}

// Join3 merges left, a pivot entry, and right into one tree, assuming
// every key in left compares less than pivotKey and every key in right
// compares greater. See the complexity note on [Tree.Split].
func Join3[K, V any](left *Tree[K, V], pivotKey K, pivotVal V, right *Tree[K, V]) *Tree[K, V] {
	cmp := left.cmp
	if cmp == nil {
		cmp = right.cmp
	}
	out := New[K, V](cmp, optsFrom(left)...)
	left.InOrder(func(k K, v V) bool { out.Insert(k, v); return true })
	out.Insert(pivotKey, pivotVal)
	right.InOrder(func(k K, v V) bool { out.Insert(k, v); return true })
	return out
}

func optsFrom[K, V any](t *Tree[K, V]) []Option[K, V] {
	if t.aug == nil {
		return nil
	}
	return []Option[K, V]{WithAugment(t.aug)}
}
