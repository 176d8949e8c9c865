package bst

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xlab/treeprint"
)

// sidewaysStep is the number of columns each tree level is shifted by
// in the sideways rendering.
const sidewaysStep = 6

// Render returns the tree as an indented branch diagram, one node per
// line, children tagged L and R. Returns the empty string for an
// empty tree.
func (t *Tree) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return ""
	}

	diagram := treeprint.NewWithRoot(strconv.FormatInt(t.root.key, 10))
	addBranches(diagram, t.root)
	return diagram.String()
}

func addBranches(diagram treeprint.Tree, n *node) {
	if n.left != nil {
		if n.left.left == nil && n.left.right == nil {
			diagram.AddMetaNode("L", strconv.FormatInt(n.left.key, 10))
		} else {
			addBranches(diagram.AddMetaBranch("L", strconv.FormatInt(n.left.key, 10)), n.left)
		}
	}
	if n.right != nil {
		if n.right.left == nil && n.right.right == nil {
			diagram.AddMetaNode("R", strconv.FormatInt(n.right.key, 10))
		} else {
			addBranches(diagram.AddMetaBranch("R", strconv.FormatInt(n.right.key, 10)), n.right)
		}
	}
}

// RenderSideways writes the tree rotated 90 degrees counterclockwise:
// the right subtree comes first, the left subtree last, and each level
// is indented one step further than its parent. Nothing is written for
// an empty tree.
func (t *Tree) RenderSideways(w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	renderSideways(w, t.root, 0)
}

func renderSideways(w io.Writer, n *node, depth int) {
	if n == nil {
		return
	}
	renderSideways(w, n.right, depth+1)
	fmt.Fprintf(w, "%*s%d\n", depth*sidewaysStep, "", n.key)
	renderSideways(w, n.left, depth+1)
}
