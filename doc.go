// Copyright (c) 2026 The hashcons authors
//
// MIT License

/*
Package bdd implements hash-consed Binary Decision Diagrams (BDD), a data
structure used to efficiently represent Boolean functions over a fixed set of
variables or, equivalently, sets of Boolean vectors with a fixed size.

Basics

Each BDD manager has a fixed number of variables, Varnum, declared when it is
initialized (using the function New), and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. The library
supports the creation of multiple managers with possibly different numbers of
variables.

Operations over a BDD return a Node: an integer handle naming a vertex in the
shared node table. Handles are canonical, meaning that two nodes of the same
manager represent the same Boolean function exactly when their handles are
equal. Comparing handles with == is therefore the only equivalence test ever
needed; there is no structural comparison in the API. The two constant
functions have reserved handles: False is always 0 and True is always 1.

Every decision node follows the branching convention that the low branch is
taken when its variable is false and the high branch when it is true. The
variable of a decision node always orders strictly before the variables found
in its branches, and no node has two equal branches; together with
hash-consing this makes the representation canonical and minimal.

Unicity tables

Canonicity is enforced by a unicity table that maps the content of a node,
the triple (level, low, high), to its unique handle. Two implementations are
provided. The default one uses a standard Go runtime hashmap keyed by a
fixed-size encoding of the triple. With the Chained option, the manager
switches to a data structure close to the one of the C-library BuDDy,
developed by Jorn Lind-Nielsen, where hash chains are threaded through the
node array itself. Both tables grow monotonically: a node, once created,
keeps its handle and its content for the lifetime of the manager.

Memory management

The library assumes that enough memory is available for the computation at
hand: nodes are never reclaimed and there is no reference counting. This is a
deliberate design choice, since evicting nodes would break the stability of
handles that callers rely upon for equality tests. The Maxnodesize option can
be used to put a hard cap on the table, in which case an operation hitting
the cap sets the error status of the manager and returns False.

The package is written for sequential use. A manager is a single mutable
resource; callers that share one across goroutines must provide their own
synchronization.
*/
package bdd
