// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
)

// tables is the interface shared by the two unicity-table implementations.
// Handles returned by makenode are stable: a table only ever grows and no
// binding between a triple (level, low, high) and its handle is ever removed
// or altered.
type tables interface {
	// makenode returns the canonical handle for the triple (level, low,
	// high), creating a fresh node only when the triple is not already in
	// the table. When low == high it returns low without touching the
	// table.
	makenode(level int32, low, high int) (int, error)

	// level, low and high give access to the content of an allocated node.
	level(n int) int32
	low(n int) int
	high(n int) int

	// nodecount returns the number of allocated nodes, constants included.
	nodecount() int

	// allnodes calls f on every allocated node, in handle order.
	allnodes(f func(id, level, low, high int) error) error

	// stats returns information about the table.
	stats() string
}

// BDD is a manager for a set of interdependent, hash-consed BDD nodes. All
// the state of a computation (unicity table, operation caches, error status)
// lives in the manager, so independent managers never share nodes and can be
// used side by side.
type BDD struct {
	varnum    int32    // Number of BDD variables
	varset    [][2]int // Handle of the positive and negative occurrence of each variable
	replaceid int      // Number of Replacers created by this manager
	error              // Error status to help chain operations
	tables             // Unicity table implementation
	applycache         // Cache for apply results
	itecache           // Cache for ITE results
	quantcache         // Cache for exist results
	appexcache         // Cache for AppEx results
	replacecache       // Cache for Replace results
	quantset   []int32 // Current variable set for quantification
	quantsetID int32   // Current id used in quantset
	quantlast  int32   // Current last variable to be quantified
}

// New initializes a new BDD manager with varnum variables. The two constants
// and the positive and negative nodes for each variable are created
// eagerly, so Ithvar and NIthvar never allocate.
//
// The default unicity table relies on the Go runtime hashmap; use the
// Chained option to select a BuDDy-like chained table instead. Other options
// control the initial size of the table (Nodesize), a hard cap on its growth
// (Maxnodesize, Maxnodeincrease) and the size of the operation caches
// (Cachesize).
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if varnum < 1 || int32(varnum) > _MAXVAR {
		return nil, fmt.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{varnum: int32(varnum)}
	if c.chained {
		b.tables = makechain(c)
	} else {
		b.tables = makehmap(c)
	}
	b.varset = make([][2]int, varnum)
	for k := int32(0); k < b.varnum; k++ {
		v0, err := b.tables.makenode(k, 0, 1)
		if err != nil {
			return nil, fmt.Errorf("cannot allocate variable %d: %w", k, err)
		}
		v1, err := b.tables.makenode(k, 1, 0)
		if err != nil {
			return nil, fmt.Errorf("cannot allocate variable %d: %w", k, err)
		}
		b.varset[k] = [2]int{v0, v1}
	}
	b.cacheinit(c)
	return b, nil
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// True returns the constant true BDD.
func (b *BDD) True() Node {
	return True
}

// False returns the constant false BDD.
func (b *BDD) False() Node {
	return False
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return True
	}
	return False
}

// Ithvar returns a BDD representing the i'th variable on success, otherwise
// we set the error status in the manager and return the constant False. The
// requested variable must be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || int32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to Ithvar", i)
	}
	return Node(b.varset[i][0])
}

// NIthvar returns a BDD representing the negation of the i'th variable on
// success, otherwise the constant False. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || int32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to NIthvar", i)
	}
	return Node(b.varset[i][1])
}

// Label returns the variable (index) corresponding to node n. We set the
// manager to its error state and return -1 if we try to access a constant
// node.
func (b *BDD) Label(n Node) int {
	if err := b.checknode(n); err != nil {
		b.seterror("illegal access to node %d in call to Label; %s", n, err)
		return -1
	}
	if n < 2 {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(b.level(int(n)))
}

// Low returns the false branch of node n, or the constant False if there is
// an error.
func (b *BDD) Low(n Node) Node {
	if err := b.checknode(n); err != nil {
		return b.seterror("illegal access to node %d in call to Low; %s", n, err)
	}
	return Node(b.low(int(n)))
}

// High returns the true branch of node n, or the constant False if there is
// an error.
func (b *BDD) High(n Node) Node {
	if err := b.checknode(n); err != nil {
		return b.seterror("illegal access to node %d in call to High; %s", n, err)
	}
	return Node(b.high(int(n)))
}

// makenode is the internal version of If. It checks the error condition of
// the underlying table and propagates the invalid handle (-1) returned by
// failed recursive constructions.
func (b *BDD) makenode(level int32, low, high int) int {
	if low < 0 || high < 0 {
		return -1
	}
	res, err := b.tables.makenode(level, low, high)
	if err != nil {
		b.seterror("cannot create node (%d, %d, %d); %s", level, low, high, err)
		return -1
	}
	return res
}

// retnode converts an internal handle into a Node. Failed computations,
// reported with a negative handle, have already set the error status of the
// manager and degrade to the constant False.
func (b *BDD) retnode(n int) Node {
	if n < 0 {
		return False
	}
	return Node(n)
}
