package bst

// Ascend calls fn for every key in ascending order. Iteration stops
// early when fn returns false. The tree is read-locked for the whole
// walk; fn must not call back into the tree.
func (t *Tree) Ascend(fn func(key int64) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ascend(t.root, fn)
}

func ascend(n *node, fn func(int64) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return ascend(n.right, fn)
}

// Keys returns every key in ascending order. The slice is a snapshot;
// later mutations of the tree do not affect it.
func (t *Tree) Keys() []int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]int64, 0, t.size)
	ascend(t.root, func(key int64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Iterator provides sequential ascending access to the tree's keys.
// It holds the path to the next key on an explicit stack, so it does
// not mutate the tree. An Iterator observes the tree as it was when
// created; the tree must not be mutated while an Iterator is in use.
type Iterator struct {
	stack []*node
}

// NewIterator returns an iterator positioned before the smallest key.
// A fresh iterator restarts the traversal from the beginning.
func (t *Tree) NewIterator() *Iterator {
	t.mu.RLock()
	defer t.mu.RUnlock()

	it := &Iterator{stack: make([]*node, 0, t.root.height())}
	it.pushLeft(t.root)
	return it
}

// pushLeft descends the left spine of the subtree, stacking each node
// on the way down.
func (it *Iterator) pushLeft(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next returns the next key in ascending order.
// The second return value is false once the iterator is exhausted.
func (it *Iterator) Next() (int64, bool) {
	if len(it.stack) == 0 {
		return 0, false
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.key, true
}
