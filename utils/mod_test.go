package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a", "b", "c"}, "z"))
	require.Equal(t, -1, FindIndex(nil, 7))
}

func TestDedupe(t *testing.T) {
	require.Equal(t, []string{"e4", "e2", "*"}, Dedupe([]string{"e4", "e2", "e4", "*", "e2"}),
		"order of first occurrence must be preserved")
	require.Equal(t, []int{3, 1, 2}, Dedupe([]int{3, 1, 3, 2, 1}))
	require.Empty(t, Dedupe([]string(nil)))
}
