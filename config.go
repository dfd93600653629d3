// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

// configs is used to store the values of different parameters of a BDD
// manager.
type configs struct {
	varnum          int  // number of BDD variables
	nodesize        int  // initial number of nodes in the table
	cachesize       int  // initial size of the operation caches
	maxnodesize     int  // maximum total number of nodes (0 if no limit)
	maxnodeincrease int  // maximum number of nodes added at each resize of the chained table (0 if no limit)
	chained         bool // select the chained-hash unicity table
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	c.cachesize = 10000
	// we build enough nodes to include the constants and all the variables
	c.nodesize = 2*varnum + 2
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial size for the node table. The table grows
// during computation; by default it starts large enough to hold the two
// constants and the nodes used by Ithvar and NIthvar.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in
// New it sets a limit to the number of nodes in the table. An operation
// trying to raise the number of nodes above this limit sets the error status
// of the manager and returns the constant False. The default value (0) means
// that there is no limit, in which case allocation can panic if we exhaust
// all the available memory.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease is a configuration option (function). Used as a parameter
// in New it sets a limit on the increase in size of the chained node table,
// which typically doubles each time it needs to grow. The default value is
// about a million nodes. Set the value to zero to avoid imposing a limit.
func Maxnodeincrease(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the number of entries in the operation caches. The default value
// is 10 000. Typical values are 10 000 for small examples and up to
// 1 000 000 for large ones.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Chained is a configuration option (function). Used as a parameter in New
// it selects a unicity table close to the one of the BuDDy library, where
// hash chains are threaded through the node array, instead of the default
// table based on the runtime hashmap.
func Chained() func(*configs) {
	return func(c *configs) {
		c.chained = true
	}
}
