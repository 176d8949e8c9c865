package bst

// Contains reports whether the key is present in the tree.
// O(height), no mutation.
func (t *Tree) Contains(key int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for n := t.root; n != nil; {
		switch {
		case key > n.key:
			n = n.right
		case key < n.key:
			n = n.left
		default:
			return true
		}
	}
	return false
}
