package bst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyTree(t *testing.T) {
	assert.Equal(t, "", New().Render())
}

func TestRender(t *testing.T) {
	tree := New()
	for _, key := range []int64{5, 3, 8} {
		tree.Insert(key)
	}

	out := tree.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "5", lines[0])
	assert.Contains(t, out, "[L]")
	assert.Contains(t, out, "[R]")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "8")
}

func TestRenderSideways(t *testing.T) {
	tree := New()
	for _, key := range []int64{2, 1, 3} {
		tree.Insert(key)
	}

	var buf strings.Builder
	tree.RenderSideways(&buf)

	// Rotated layout: right subtree above, root flush left, left
	// subtree below, children indented one step beyond the parent.
	assert.Equal(t, "      3\n2\n      1\n", buf.String())
}

func TestRenderSidewaysDepthIndentation(t *testing.T) {
	tree := New()
	for _, key := range []int64{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key)
	}

	var buf strings.Builder
	tree.RenderSideways(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	// Top-to-bottom the sideways layout is a descending in-order walk.
	wantOrder := []string{"7", "6", "5", "4", "3", "2", "1"}
	wantDepth := []int{2, 1, 2, 0, 2, 1, 2}
	for i, line := range lines {
		assert.Equal(t, wantOrder[i], strings.TrimLeft(line, " "))
		indent := len(line) - len(strings.TrimLeft(line, " "))
		assert.Equal(t, wantDepth[i]*sidewaysStep, indent, "line %d", i)
	}
}

func TestRenderSidewaysEmptyTree(t *testing.T) {
	var buf strings.Builder
	New().RenderSideways(&buf)
	assert.Equal(t, "", buf.String())
}
