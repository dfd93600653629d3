// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

// Node is the canonical handle of a vertex in a BDD. Handles are indexes
// into the node table of the manager that created them. Two nodes obtained
// from the same manager denote the same Boolean function exactly when their
// handles are equal, so == is the only equivalence test callers ever need.
type Node int

// The two constant functions have reserved handles, registered in the node
// table when the manager is created.
const (
	// False is the handle of the constant function 0.
	False Node = 0

	// True is the handle of the constant function 1.
	True Node = 1
)
