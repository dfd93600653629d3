// Copyright (c) 2026 The hashcons authors
//
// MIT License

// Package list implements singly linked lists of integers together with a
// destructive, in-place reversal.
package list

// A Cell is one link of a singly linked list. A list is identified by a
// pointer to its first cell, with nil standing for the empty list.
type Cell struct {
	Value int
	Next  *Cell
}

// FromSlice builds a list holding the values of xs, in the same order.
func FromSlice(xs []int) *Cell {
	var head *Cell
	for k := len(xs) - 1; k >= 0; k-- {
		head = &Cell{Value: xs[k], Next: head}
	}
	return head
}

// Slice returns the values of the list, in order. The result is nil for the
// empty list.
func (l *Cell) Slice() []int {
	var res []int
	for ; l != nil; l = l.Next {
		res = append(res, l.Value)
	}
	return res
}

// Len returns the number of cells in the list.
func (l *Cell) Len() int {
	res := 0
	for ; l != nil; l = l.Next {
		res++
	}
	return res
}

// Reverse reverses the list in place and returns its new head. No cell is
// allocated or copied: the links of l are rewired so that the cells appear
// in the opposite order. The head passed by the caller becomes the last cell
// of the result, so the caller must use the returned value and forget the
// old head.
//
// At every step of the loop, rev holds the already reversed prefix and l the
// untouched suffix; together they hold exactly the cells of the original
// list. The suffix shrinks by one cell per iteration, which gives
// termination.
func Reverse(l *Cell) *Cell {
	var rev *Cell
	for l != nil {
		next := l.Next
		l.Next = rev
		rev = l
		l = next
	}
	return rev
}
