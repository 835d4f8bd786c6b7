// Package index provides an ordered in-memory index that counts every
// key comparison it performs, so callers can observe what their lookups
// actually cost.
package index

// Tree is an in-memory binary search tree mapping keys to values.
//
// The tree does not self-balance: its shape is determined entirely by
// insertion order, so a sorted insertion order degrades every operation
// to O(n). That is deliberate — the comparison counter exists to make
// exactly this kind of degradation visible.
//
// Not safe for concurrent use.
type Tree[K, V any] struct {
	root        *node[K, V]
	cmp         func(a, b K) int
	size        int
	comparisons int
}

type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// New creates an empty tree using the given comparator. The comparator
// must return a negative value when a < b, zero when a == b, and a
// positive value when a > b.
func New[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// compare invokes the comparator and records one comparison.
func (t *Tree[K, V]) compare(a, b K) int {
	t.comparisons++
	return t.cmp(a, b)
}

// Insert adds a key→value mapping. If the key is already present the
// stored value is replaced in place; there is never more than one node
// per key.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++
		return
	}
	n := t.root
	for {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			if n.left == nil {
				n.left = &node[K, V]{key: key, value: value}
				t.size++
				return
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = &node[K, V]{key: key, value: value}
				t.size++
				return
			}
			n = n.right
		default:
			n.value = value
			return
		}
	}
}

// Find looks up a key and returns a pointer to its stored value, or nil
// if the key is absent. The pointer stays valid until the key is erased
// and may be used to mutate the value in place.
//
// Find never resets the comparison counter; pairing ResetMetrics with
// Comparisons around a call is the caller's job.
func (t *Tree[K, V]) Find(key K) *V {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return &n.value
		}
	}
	return nil
}

// Erase removes a key. Returns false if the key was not present.
func (t *Tree[K, V]) Erase(key K) bool {
	var erased bool
	t.root, erased = t.erase(t.root, key)
	if erased {
		t.size--
	}
	return erased
}

// erase removes key from the subtree rooted at n and returns the new
// subtree root.
func (t *Tree[K, V]) erase(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	c := t.compare(key, n.key)
	switch {
	case c < 0:
		var ok bool
		n.left, ok = t.erase(n.left, key)
		return n, ok
	case c > 0:
		var ok bool
		n.right, ok = t.erase(n.right, key)
		return n, ok
	}

	// Leaf or single child: splice the node out.
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Two children: copy the in-order successor (leftmost node of the
	// right subtree) into this slot, then remove the successor, which
	// by construction has no left child and falls under the splice
	// cases above.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.key, n.value = succ.key, succ.value
	n.right, _ = t.erase(n.right, succ.key)
	return n, true
}

// RangeApply visits every key in [lo, hi] inclusive, in ascending key
// order. Subtrees that cannot contain in-range keys are never entered,
// so the comparison counter reflects only the work a bounded scan has
// to do — the pruning is part of the cost contract, not an
// optimization.
func (t *Tree[K, V]) RangeApply(lo, hi K, visit func(key K, value V)) {
	t.rangeApply(t.root, lo, hi, visit)
}

func (t *Tree[K, V]) rangeApply(n *node[K, V], lo, hi K, visit func(K, V)) {
	if n == nil {
		return
	}
	cLo := t.compare(n.key, lo)
	if cLo > 0 {
		t.rangeApply(n.left, lo, hi, visit)
	}
	cHi := t.compare(n.key, hi)
	if cLo >= 0 && cHi <= 0 {
		visit(n.key, n.value)
	}
	if cHi < 0 {
		t.rangeApply(n.right, lo, hi, visit)
	}
}

// ResetMetrics zeroes the comparison counter.
func (t *Tree[K, V]) ResetMetrics() {
	t.comparisons = 0
}

// Comparisons returns the number of key comparisons performed since the
// last ResetMetrics. Every comparator invocation inside Insert, Find,
// Erase, and RangeApply counts as one comparison.
func (t *Tree[K, V]) Comparisons() int {
	return t.comparisons
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}
