// Package bst implements an unbalanced binary search tree over int64
// keys, used as the ordered key store behind the ordset shell.
//
// # Overview
//
// The tree supports:
//
//   - Insertion and deletion with duplicate keys silently ignored
//   - Membership queries
//   - Height measurement
//   - Ascending traversal, both callback and iterator form
//   - Structural rendering for inspection
//
// No balancing is performed: the shape of the tree depends entirely on
// the order of inserts and deletes. All operations are guarded by one
// coarse lock around the whole aggregate; the recursive reattachment
// style of the mutating operations is not designed for finer-grained
// locking.
//
// # Usage
//
// Create and use a tree:
//
//	tree := bst.New()
//	tree.Insert(5)
//	tree.Insert(3)
//
//	if tree.Contains(3) {
//	    // ...
//	}
//
//	keys := tree.Keys() // [3 5]
//
//	it := tree.NewIterator()
//	for key, ok := it.Next(); ok; key, ok = it.Next() {
//	    // keys in ascending order
//	}
//
// # Deletion policy
//
// Deleting a node with two children promotes the in-order predecessor
// (the largest key of the left subtree). The resulting shape is
// observable through Height and Render, so the policy is fixed rather
// than left to the implementation.
package bst
