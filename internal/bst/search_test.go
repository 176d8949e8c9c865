package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyTreeQueries(t *testing.T) {
	tree := New()

	assert.False(t, tree.Contains(0))
	assert.False(t, tree.Contains(12345))
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Keys())
	assert.True(t, tree.IsEmpty())

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	tree := New()
	present := []int64{5, 3, 8, 1, 4, 7, 9}
	for _, key := range present {
		tree.Insert(key)
	}

	for _, key := range present {
		assert.True(t, tree.Contains(key), "expected %d present", key)
	}
	for _, key := range []int64{0, 2, 6, 10, -5} {
		assert.False(t, tree.Contains(key), "expected %d absent", key)
	}
}

func TestMinMax(t *testing.T) {
	tree := New()
	for _, key := range []int64{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}

	minKey, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, int64(1), minKey)

	maxKey, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, int64(9), maxKey)
}

func TestHeightBounds(t *testing.T) {
	tests := []struct {
		name   string
		keys   []int64
		height int
	}{
		{"empty", nil, 0},
		{"single", []int64{1}, 1},
		{"balanced seven", []int64{4, 2, 6, 1, 3, 5, 7}, 3},
		{"left spine", []int64{5, 4, 3, 2, 1}, 5},
		{"right spine", []int64{1, 2, 3, 4, 5}, 5},
		{"zigzag", []int64{1, 5, 2, 4, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New()
			for _, key := range tt.keys {
				tree.Insert(key)
			}
			assert.Equal(t, tt.height, tree.Height())
			assert.LessOrEqual(t, tree.Height(), len(tt.keys))
		})
	}
}
