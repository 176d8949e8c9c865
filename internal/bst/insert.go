package bst

// Insert adds a key to the tree. Inserting a key that is already
// present leaves the tree unchanged. Returns true if the key was
// added, false if it was already present.
//
// Algorithm:
//  1. Descend recursively, right for greater keys, left for smaller
//  2. An empty subtree becomes a new leaf holding the key
//  3. Each frame reattaches the subtree returned by its recursive call
func (t *Tree) Insert(key int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	root, added := insertNode(t.root, key)
	t.root = root
	if added {
		t.size++
	}
	return added
}

// insertNode inserts key into the subtree rooted at n and returns the
// new subtree root. added is false when the key was already present.
func insertNode(n *node, key int64) (_ *node, added bool) {
	if n == nil {
		return newNode(key), true
	}

	switch {
	case key > n.key:
		n.right, added = insertNode(n.right, key)
	case key < n.key:
		n.left, added = insertNode(n.left, key)
	default:
		// Duplicate key, nothing to do.
	}
	return n, added
}
