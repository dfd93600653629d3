// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"math"
)

// cache is used for caching apply/ite/exist etc. results. Caches only ever
// memoize; they never affect which nodes exist in the unicity table.
type cache struct {
	table []cacheData
}

// cacheData is a unit of information stored in an operation cache.
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// ************************************************************

// Different kinds of caches used in the manager

type applycache struct {
	cache          // Cache for apply results
	op    Operator // Current operation during an apply
}

type itecache struct {
	cache // Cache for ITE results
}

type quantcache struct {
	cache     // Cache for exist results
	id    int // Current cache id for quantifications
}

// appexcache is a mix of the quant and apply caches
type appexcache struct {
	cache          // Cache for appex results
	id    int      // Current cache id for quantifications
	op    Operator // Current operator for appex
}

type replacecache struct {
	cache     // Cache for replace results
	id    int // Current cache id for replace
}

// Hash value modifiers for replace

const cacheid_REPLACE int = 0x0

// Hash value modifiers for quantification

const cacheid_EXIST int = 0x0
const cacheid_APPEX int = 0x3

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) cacheinit(size int) {
	size = primeGte(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// ************************************************************

func (b *BDD) cacheinit(c *configs) {
	cachesize := c.cachesize
	if cachesize <= 0 {
		cachesize = c.nodesize/5 + 1
	}
	b.applycache.cacheinit(cachesize)
	b.itecache.cacheinit(cachesize)
	b.quantcache.cacheinit(cachesize)
	b.appexcache.cacheinit(cachesize)
	b.replacecache.cacheinit(cachesize)
	b.quantset = make([]int32, b.varnum)
	b.quantsetID = 0
}

// ************************************************************
//
// Quantification set

// quantset2cache takes a variable set, similar to the ones generated with
// Makeset, and records its variables in the quantification set.
func (b *BDD) quantset2cache(n int) error {
	if n < 2 {
		b.seterror("illegal variable set (%d) in quantification", n)
		return b.error
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	for i := n; i > 1; i = b.high(i) {
		b.quantset[b.level(i)] = b.quantsetID
		b.quantlast = b.level(i)
	}
	return nil
}
