// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"log"
	"math"
	"unsafe"
)

// chain implements a unicity table using the data structure found in the
// BuDDy library: hash chains are threaded through the node array itself,
// with the hash field of a slot giving the head of the chain of nodes that
// hash to this slot. Slots [0, nused) hold allocated nodes; slots above
// nused are spare capacity. Allocated nodes never move, even when the table
// is resized, so handles are stable for the lifetime of the manager.
type chain struct {
	nodes           []chainnode // List of all the BDD nodes. Constants are always kept at index 0 and 1
	nused           int         // Number of allocated nodes; also the next fresh handle
	produced        int         // Total number of new nodes ever produced
	maxnodesize     int         // Maximum total number of nodes (0 if no limit)
	maxnodeincrease int         // Maximum number of nodes that can be added to the table at each resize (0 if no limit)
	uniqueAccess    int         // Accesses to the unique node table
	uniqueChain     int         // Iterations through the hash chains in the unique node table
	uniqueHit       int         // Entries actually found in the unique node table
	uniqueMiss      int         // Entries not found in the unique node table
}

type chainnode struct {
	level int32 // Order of the variable in the BDD
	low   int   // Reference to the false branch
	high  int   // Reference to the true branch
	hash  int   // Index where to (possibly) find a node with this hash value
	next  int   // Next index to check in case of a collision, 0 if last
}

func makechain(c *configs) *chain {
	size := primeGte(c.nodesize)
	t := &chain{
		nodes:           make([]chainnode, size),
		nused:           2,
		maxnodesize:     c.maxnodesize,
		maxnodeincrease: c.maxnodeincrease,
	}
	// Creating the two constants. They are not linked into any hash chain
	// and always keep the highest level.
	t.nodes[0] = chainnode{level: int32(c.varnum), low: 0, high: 0}
	t.nodes[1] = chainnode{level: int32(c.varnum), low: 1, high: 1}
	return t
}

// The hash function for nodes is #(level, low, high).

func (t *chain) nodehash(level int32, low, high int) int {
	return _TRIPLE(int(level), low, high, len(t.nodes))
}

func (t *chain) ptrhash(n int) int {
	return _TRIPLE(int(t.nodes[n].level), t.nodes[n].low, t.nodes[n].high, len(t.nodes))
}

func (t *chain) makenode(level int32, low, high int) (int, error) {
	if _DEBUG {
		t.uniqueAccess++
	}
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low, nil
	}
	// otherwise try to find an existing node using the hash and next fields
	hash := t.nodehash(level, low, high)
	res := t.nodes[hash].hash
	for res != 0 {
		if t.nodes[res].level == level && t.nodes[res].low == low && t.nodes[res].high == high {
			if _DEBUG {
				t.uniqueHit++
			}
			return res, nil
		}
		res = t.nodes[res].next
		if _DEBUG {
			t.uniqueChain++
		}
	}
	if _DEBUG {
		t.uniqueMiss++
	}
	// If no existing node, we build one, growing the table first when all
	// the slots are in use.
	if t.nused == len(t.nodes) {
		if err := t.resize(); err != nil {
			return -1, err
		}
		hash = t.nodehash(level, low, high)
	}
	res = t.nused
	t.nused++
	t.produced++
	t.nodes[res].level = level
	t.nodes[res].low = low
	t.nodes[res].high = high
	t.nodes[res].next = t.nodes[hash].hash
	t.nodes[hash].hash = res
	return res, nil
}

// resize grows the node array, typically doubling its size, and recomputes
// every hash chain since the hash function depends on the size of the array.
// Allocated nodes keep their position.
func (t *chain) resize() error {
	oldsize := len(t.nodes)
	if t.maxnodesize > 0 && oldsize >= t.maxnodesize {
		return errMemory
	}
	nodesize := oldsize
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if t.maxnodeincrease > 0 && nodesize > (oldsize+t.maxnodeincrease) {
		nodesize = oldsize + t.maxnodeincrease
	}
	if t.maxnodesize > 0 && nodesize > t.maxnodesize {
		nodesize = t.maxnodesize
	}
	nodesize = primeLte(nodesize)
	if nodesize <= oldsize {
		return errMemory
	}
	if _LOGLEVEL > 0 {
		log.Printf("start resize: %d\n", oldsize)
	}

	tmp := t.nodes
	t.nodes = make([]chainnode, nodesize)
	copy(t.nodes, tmp)

	// We recompute the hashes since nodesize is modified.
	for n := range t.nodes {
		t.nodes[n].hash = 0
		t.nodes[n].next = 0
	}
	for n := t.nused - 1; n > 1; n-- {
		hash := t.ptrhash(n)
		t.nodes[n].next = t.nodes[hash].hash
		t.nodes[hash].hash = n
	}

	if _LOGLEVEL > 0 {
		log.Printf("end resize: %d\n", nodesize)
	}
	return nil
}

func (t *chain) nodecount() int {
	return t.nused
}

func (t *chain) level(n int) int32 {
	return t.nodes[n].level
}

func (t *chain) low(n int) int {
	return t.nodes[n].low
}

func (t *chain) high(n int) int {
	return t.nodes[n].high
}

func (t *chain) allnodes(f func(id, level, low, high int) error) error {
	for k := 0; k < t.nused; k++ {
		v := t.nodes[k]
		if err := f(k, int(v.level), v.low, v.high); err != nil {
			return err
		}
	}
	return nil
}

// stats returns information about the table.
func (t *chain) stats() string {
	res := "Impl.:      chained\n"
	res += fmt.Sprintf("Allocated:  %d  (%s)\n", len(t.nodes), humanSize(len(t.nodes), unsafe.Sizeof(chainnode{})))
	res += fmt.Sprintf("Used:       %d\n", t.nused)
	res += fmt.Sprintf("Produced:   %d\n", t.produced)
	if _DEBUG {
		res += "==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", t.uniqueAccess)
		res += fmt.Sprintf("Unique Chain:   %d\n", t.uniqueChain)
		res += fmt.Sprintf("Unique Hit:     %d\n", t.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d\n", t.uniqueMiss)
	}
	return res
}
