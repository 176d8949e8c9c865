package bst

import (
	"sync"
)

// Tree is an unbalanced binary search tree over int64 keys.
// For every node, all keys in the left subtree are strictly smaller
// than the node's key and all keys in the right subtree are strictly
// greater; duplicates are never stored.
//
// A Tree is safe for concurrent use through a single lock around the
// whole structure. The zero value is not usable; call New.
type Tree struct {
	root *node
	size int
	mu   sync.RWMutex
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// IsEmpty returns true if the tree has no keys.
func (t *Tree) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root == nil
}

// Height returns the number of node levels on the longest path from
// the root to a leaf. An empty tree has height 0. The value is
// recomputed on every call, O(n).
func (t *Tree) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.height()
}

// Min returns the smallest key in the tree.
// The second return value is false if the tree is empty.
func (t *Tree) Min() (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return 0, false
	}
	return t.root.min().key, true
}

// Max returns the largest key in the tree.
// The second return value is false if the tree is empty.
func (t *Tree) Max() (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return 0, false
	}
	return t.root.max().key, true
}

// Clear removes every key from the tree. Subtrees are detached
// children-first so that no released node keeps a subtree reachable.
// Clearing an empty tree is a no-op.
func (t *Tree) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	release(t.root)
	t.root = nil
	t.size = 0
}

// release unlinks the subtree in post-order.
func release(n *node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left = nil
	n.right = nil
}
