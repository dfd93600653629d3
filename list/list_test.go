// Copyright (c) 2026 The hashcons authors
//
// MIT License

package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	require.Nil(t, FromSlice(nil))
	require.Equal(t, 0, FromSlice(nil).Len())
	l := FromSlice([]int{1, 2, 3})
	require.Equal(t, 3, l.Len())
	require.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input, expected []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
		{[]int{4, 4, 4}, []int{4, 4, 4}},
		{[]int{7, -1, 0, 7, 12}, []int{12, 7, 0, -1, 7}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Reverse(FromSlice(tt.input)).Slice())
	}
}

// Reversal must rewire the original cells, not allocate fresh ones.
func TestReverseInPlace(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	head := l
	rev := Reverse(l)
	// the old head is now the last cell
	require.Same(t, head, rev.Next.Next)
	require.Nil(t, head.Next)

	cells := make(map[*Cell]bool)
	for c := rev; c != nil; c = c.Next {
		cells[c] = true
	}
	require.Len(t, cells, 3)
	require.True(t, cells[head])
}

func TestReverseRoundTrip(t *testing.T) {
	xs := []int{9, 8, 7, 6, 5, 1, 2, 3}
	l := FromSlice(xs)
	require.Equal(t, xs, Reverse(Reverse(l)).Slice())
}
