// Package index implements OrderedIndex, a self-balancing binary search tree
// used as the backbone of every store in the data layer.
//
// The tree maintains the red-black invariants: the
// root is always black, no red node has a red child, and every root-to-leaf
// path carries the same number of black links. Balance is restored on the way
// back up from each insert with at most two rotations and a color flip per
// level, so lookups and inserts are O(log n) in the worst case.
//
// The same tree serves two indexing strategies:
//
//   - Identity indexes (unique integer ids). The tree performs no duplicate
//     detection; identity-keyed callers must check Get before Insert.
//   - Order indexes (dates, terms). Keys are non-unique by design. Equal keys
//     route to the LEFT subtree, which fixes the relative output order of
//     entries sharing a key; both the descending walks and the pruned
//     equal-key walk depend on this routing.
//
// Traversals are lazy iter.Seq sequences. Descend is a right-subtree-first
// in-order walk and is the basis of every "most recent first" listing.
package index

import "iter"

// CompareFunc orders keys: negative when a sorts before b, zero when equal,
// positive when a sorts after b.
type CompareFunc[K any] func(a, b K) int

const (
	red   = true
	black = false
)

type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	color       bool // color of the parent link
}

// Tree is an ordered index over keys of type K and values of type V.
// It is not safe for concurrent use; callers serialize access externally.
type Tree[K, V any] struct {
	root *node[K, V]
	size int
	cmp  CompareFunc[K]
}

// New creates an empty tree ordered by cmp.
func New[K, V any](cmp CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Insert places value under key. Equal keys go to the left subtree; the tree
// never rejects duplicates, so identity-keyed callers must check Get first.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.root = t.insert(t.root, key, value)
	t.root.color = black
}

func (t *Tree[K, V]) insert(h *node[K, V], key K, value V) *node[K, V] {
	if h == nil {
		t.size++
		return &node[K, V]{key: key, value: value, color: red}
	}

	if t.cmp(key, h.key) <= 0 {
		h.left = t.insert(h.left, key, value)
	} else {
		h.right = t.insert(h.right, key, value)
	}

	// Restore the red-black invariants on the way back up.
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}

	return h
}

// Get returns the value stored under key, or false when the key is absent.
// With duplicate keys it returns whichever entry the search path reaches.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	h := t.root
	for h != nil {
		c := t.cmp(key, h.key)
		switch {
		case c == 0:
			return h.value, true
		case c < 0:
			h = h.left
		default:
			h = h.right
		}
	}
	var zero V
	return zero, false
}

// Descend returns a lazy in-order walk from the greatest key to the smallest.
func (t *Tree[K, V]) Descend() iter.Seq[V] {
	return func(yield func(V) bool) {
		descend(t.root, yield)
	}
}

func descend[K, V any](h *node[K, V], yield func(V) bool) bool {
	if h == nil {
		return true
	}
	return descend(h.right, yield) && yield(h.value) && descend(h.left, yield)
}

// Ascend returns a lazy in-order walk from the smallest key to the greatest.
func (t *Tree[K, V]) Ascend() iter.Seq[V] {
	return func(yield func(V) bool) {
		ascend(t.root, yield)
	}
}

func ascend[K, V any](h *node[K, V], yield func(V) bool) bool {
	if h == nil {
		return true
	}
	return ascend(h.left, yield) && yield(h.value) && ascend(h.right, yield)
}

// Equal returns a pruned walk over the entries whose key compares equal to
// key. The walk exploits sortedness: at a node at or above the target it
// yields on equality and descends left only (equal keys route left), and at a
// node below the target it descends right only, so whole subtrees that cannot
// match are never visited.
func (t *Tree[K, V]) Equal(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		t.equal(t.root, key, yield)
	}
}

func (t *Tree[K, V]) equal(h *node[K, V], key K, yield func(V) bool) bool {
	if h == nil {
		return true
	}
	c := t.cmp(h.key, key)
	if c >= 0 {
		if c == 0 && !yield(h.value) {
			return false
		}
		return t.equal(h.left, key, yield)
	}
	return t.equal(h.right, key, yield)
}

func isRed[K, V any](x *node[K, V]) bool {
	return x != nil && x.color == red
}

func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	return x
}

func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	return x
}

func flipColors[K, V any](h *node[K, V]) {
	h.color = red
	h.left.color = black
	h.right.color = black
}
