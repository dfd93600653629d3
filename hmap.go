// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"unsafe"
)

// hmap implements a unicity table using the runtime hashmap. We encode a
// triplet (level, low, high) into a fixed-size byte array (to avoid
// allocations) and use the unique map to associate each triplet with its
// entry in the nodes table. Nodes are only ever appended, so a handle is
// simply the position of a node in the table and never moves.
type hmap struct {
	nodes        []mapnode             // List of all the BDD nodes. Constants are always kept at index 0 and 1
	unique       map[[keysize]byte]int // Unicity table, used to associate each triplet to a single node
	hbuff        [keysize]byte         // Used to compute the key of nodes. A buffer needs no initialization
	produced     int                   // Total number of new nodes ever produced
	maxnodesize  int                   // Maximum total number of nodes (0 if no limit)
	uniqueAccess int                   // Accesses to the unique node table
	uniqueHit    int                   // Entries actually found in the unique node table
	uniqueMiss   int                   // Entries not found in the unique node table
}

type mapnode struct {
	level int32 // Order of the variable in the BDD
	low   int   // Reference to the false branch
	high  int   // Reference to the true branch
}

func makehmap(c *configs) *hmap {
	t := &hmap{}
	t.nodes = make([]mapnode, 2, c.nodesize)
	t.unique = make(map[[keysize]byte]int, c.nodesize)
	t.maxnodesize = c.maxnodesize
	// Creating the two constants. They are not added to the unique map and
	// always keep the highest level.
	t.nodes[0] = mapnode{level: int32(c.varnum), low: 0, high: 0}
	t.nodes[1] = mapnode{level: int32(c.varnum), low: 1, high: 1}
	return t
}

// key encodes the triplet into t.hbuff. Two triplets are structurally equal
// exactly when their encodings are equal, which gives us the hash/equality
// congruence the map needs.
func (t *hmap) key(level int32, low, high int) {
	t.hbuff[0] = byte(level)
	t.hbuff[1] = byte(level >> 8)
	t.hbuff[2] = byte(level >> 16)
	t.hbuff[3] = byte(level >> 24)
	t.hbuff[4] = byte(low)
	t.hbuff[5] = byte(low >> 8)
	t.hbuff[6] = byte(low >> 16)
	t.hbuff[7] = byte(low >> 24)
	if keysize == 20 {
		// 64 bits machine
		t.hbuff[8] = byte(low >> 32)
		t.hbuff[9] = byte(low >> 40)
		t.hbuff[10] = byte(low >> 48)
		t.hbuff[11] = byte(low >> 56)
		t.hbuff[12] = byte(high)
		t.hbuff[13] = byte(high >> 8)
		t.hbuff[14] = byte(high >> 16)
		t.hbuff[15] = byte(high >> 24)
		t.hbuff[16] = byte(high >> 32)
		t.hbuff[17] = byte(high >> 40)
		t.hbuff[18] = byte(high >> 48)
		t.hbuff[19] = byte(high >> 56)
		return
	}
	// 32 bits machine
	t.hbuff[8] = byte(high)
	t.hbuff[9] = byte(high >> 8)
	t.hbuff[10] = byte(high >> 16)
	t.hbuff[11] = byte(high >> 24)
}

func (t *hmap) makenode(level int32, low, high int) (int, error) {
	if _DEBUG {
		t.uniqueAccess++
	}
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low, nil
	}
	// otherwise try to find an existing node using the unique map
	t.key(level, low, high)
	if res, ok := t.unique[t.hbuff]; ok {
		if _DEBUG {
			t.uniqueHit++
		}
		return res, nil
	}
	if _DEBUG {
		t.uniqueMiss++
	}
	if t.maxnodesize > 0 && len(t.nodes) >= t.maxnodesize {
		return -1, errMemory
	}
	// We can now build the new node at the end of the table. The binding in
	// the unique map is permanent.
	res := len(t.nodes)
	t.nodes = append(t.nodes, mapnode{level: level, low: low, high: high})
	t.unique[t.hbuff] = res
	t.produced++
	return res, nil
}

func (t *hmap) nodecount() int {
	return len(t.nodes)
}

func (t *hmap) level(n int) int32 {
	return t.nodes[n].level
}

func (t *hmap) low(n int) int {
	return t.nodes[n].low
}

func (t *hmap) high(n int) int {
	return t.nodes[n].high
}

func (t *hmap) allnodes(f func(id, level, low, high int) error) error {
	for k, v := range t.nodes {
		if err := f(k, int(v.level), v.low, v.high); err != nil {
			return err
		}
	}
	return nil
}

// stats returns information about the table.
func (t *hmap) stats() string {
	res := "Impl.:      hashmap\n"
	res += fmt.Sprintf("Allocated:  %d  (%s)\n", len(t.nodes), humanSize(len(t.nodes), unsafe.Sizeof(mapnode{})))
	res += fmt.Sprintf("Produced:   %d\n", t.produced)
	if _DEBUG {
		res += "==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", t.uniqueAccess)
		res += fmt.Sprintf("Unique Hit:     %d\n", t.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d\n", t.uniqueMiss)
	}
	return res
}
