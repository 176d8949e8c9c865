package bst

// Delete removes a key from the tree. Deleting an absent key is a
// no-op. Returns true if the key was removed, false if it was not
// present.
//
// Algorithm:
//  1. Descend to the node holding the key
//  2. A node with at most one child is replaced by that child
//  3. A node with two children takes the key of its in-order
//     predecessor (the largest key of its left subtree), and the
//     predecessor is deleted from the left subtree instead
//
// The predecessor in step 3 has no right child, so the nested delete
// always terminates in step 2.
func (t *Tree) Delete(key int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	root, removed := deleteNode(t.root, key)
	t.root = root
	if removed {
		t.size--
	}
	return removed
}

// deleteNode removes key from the subtree rooted at n and returns the
// new subtree root. removed is false when the key was not present.
func deleteNode(n *node, key int64) (_ *node, removed bool) {
	if n == nil {
		return nil, false
	}

	switch {
	case key > n.key:
		n.right, removed = deleteNode(n.right, key)
		return n, removed
	case key < n.key:
		n.left, removed = deleteNode(n.left, key)
		return n, removed
	}

	// The key lives in this node.
	switch {
	case n.left == nil && n.right == nil:
		return nil, true
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	}

	// Two children: promote the in-order predecessor. Promoting the
	// successor would be equally valid, but the resulting shape is
	// observable, so the policy is fixed.
	pred := n.left.max()
	n.key = pred.key
	n.left, _ = deleteNode(n.left, pred.key)
	return n, true
}
