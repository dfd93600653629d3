// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"errors"
)

// number of bytes needed to encode a (level, low, high) triple, adapted from
// uintSize in the math/bits package. 12 on 32 bits machines, 20 on 64 bits.
const keysize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8

// _MAXVAR is the maximal number of levels in a BDD. We use only the first 21
// bits for encoding levels, and we make sure to always use int32 to avoid
// problems when we change architecture.
const _MAXVAR int32 = 0x1FFFFF

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize of the chained table. It is approx. one
// million nodes (1 048 576).
const _DEFAULTMAXNODEINC int = 1 << 20

var errMemory = errors.New("unable to grow the node table")
