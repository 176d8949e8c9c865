package bst

// node is a single stored key. Each node exclusively owns its
// children; the tree holds the only root reference.
type node struct {
	key   int64
	left  *node
	right *node
}

func newNode(key int64) *node {
	return &node{key: key}
}

// min returns the node holding the smallest key in the subtree.
// The receiver must not be nil.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the node holding the largest key in the subtree.
// The receiver must not be nil.
func (n *node) max() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// height counts node levels on the longest path to a leaf.
// A nil subtree has height 0.
func (n *node) height() int {
	if n == nil {
		return 0
	}
	leftH := n.left.height()
	rightH := n.right.height()
	if rightH > leftH {
		return rightH + 1
	}
	return leftH + 1
}
