package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordset/ordset/internal/bst"
)

func TestLoadKeys(t *testing.T) {
	tree := bst.New()
	require.NoError(t, loadKeys(tree, "5, 3,8,1"))
	assert.Equal(t, []int64{1, 3, 5, 8}, tree.Keys())
}

func TestLoadKeysEmptyList(t *testing.T) {
	tree := bst.New()
	require.NoError(t, loadKeys(tree, ""))
	assert.True(t, tree.IsEmpty())
}

func TestLoadKeysInvalid(t *testing.T) {
	err := loadKeys(bst.New(), "5,x,8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid key "x"`)
}

func TestStatsCommand(t *testing.T) {
	var out strings.Builder
	app := newApp()
	app.Writer = &out

	err := app.Run([]string{"ordset", "stats", "--keys", "5,3,8,1,4,7,9"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "keys:   7")
	assert.Contains(t, out.String(), "height: 3")
	assert.Contains(t, out.String(), "min:    1")
	assert.Contains(t, out.String(), "max:    9")
}

func TestStatsCommandBadKeys(t *testing.T) {
	var out strings.Builder
	app := newApp()
	app.Writer = &out

	err := app.Run([]string{"ordset", "stats", "--keys", "nope"})
	require.Error(t, err)
}
