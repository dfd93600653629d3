// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"math"
)

// Replacer is the type of association lists used to replace variables in a
// BDD node.
type Replacer interface {
	Replace(int32) (int32, bool)
	Id() int
}

type replacer struct {
	id    int     // unique identifier used for caching intermediate results
	image []int32 // map the level of old variables to the level of new variables
	last  int32   // last index in the Replacer, to speed up computations
}

func (r *replacer) String() string {
	res := fmt.Sprintf("replacer(last: %d)[", r.last)
	first := true
	for k, v := range r.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *replacer) Id() int {
	return r.id
}

// NewReplacer returns a Replacer for substituting variable oldvars[k] with
// newvars[k]. We return an error if the two slices do not have the same
// length or if we find the same index twice in either of them. All values
// must be in [0..Varnum).
func (b *BDD) NewReplacer(oldvars []int, newvars []int) (Replacer, error) {
	res := &replacer{}
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("unmatched length of slices")
	}
	if b.replaceid == (math.MaxInt32 >> 2) {
		return nil, fmt.Errorf("too many replacers created")
	}
	b.replaceid++
	res.id = (b.replaceid << 2) | cacheid_REPLACE
	varnum := b.Varnum()
	support := make([]bool, varnum)
	res.image = make([]int32, varnum)
	for k := range res.image {
		res.image[k] = int32(k)
	}
	for k, v := range oldvars {
		if v < 0 || v >= varnum {
			return nil, fmt.Errorf("invalid variable in oldvars (%d)", v)
		}
		if support[v] {
			return nil, fmt.Errorf("duplicate variable (%d) in oldvars", v)
		}
		if newvars[k] < 0 || newvars[k] >= varnum {
			return nil, fmt.Errorf("invalid variable in newvars (%d)", newvars[k])
		}
		support[v] = true
		res.image[v] = int32(newvars[k])
		if int32(v) > res.last {
			res.last = int32(v)
		}
	}
	for _, v := range newvars {
		if int(res.image[v]) != v {
			return nil, fmt.Errorf("variable in newvars (%d) also occurs in oldvars", v)
		}
	}
	return res, nil
}

// Replace takes a Replacer and computes the result of n after replacing old
// variables with new ones. See type Replacer.
func (b *BDD) Replace(n Node, r Replacer) Node {
	if err := b.checknode(n); err != nil {
		return b.seterror("wrong operand in call to Replace (%d); %s", n, err)
	}
	b.replacecache.id = r.Id()
	return b.retnode(b.replace(int(n), r))
}

func (b *BDD) replace(n int, r Replacer) int {
	image, ok := r.Replace(b.level(n))
	if !ok {
		return n
	}
	if res := b.matchreplace(n); res >= 0 {
		return res
	}
	low := b.replace(b.low(n), r)
	high := b.replace(b.high(n), r)
	res := b.correctify(image, low, high)
	return b.setreplace(n, res)
}

// correctify rebuilds a decision on variable level above the nodes low and
// high, sinking the variable to its proper place in the order when the
// renaming moved it below the top of either branch.
func (b *BDD) correctify(level int32, low, high int) int {
	if low < 0 || high < 0 {
		return -1
	}
	if (level < b.level(low)) && (level < b.level(high)) {
		return b.makenode(level, low, high)
	}
	if (level == b.level(low)) || (level == b.level(high)) {
		b.seterror("error in replace: level (%d) is the level of low (%d:%d) or high (%d:%d)", level, low, b.level(low), high, b.level(high))
		return -1
	}
	switch {
	case b.level(low) == b.level(high):
		left := b.correctify(level, b.low(low), b.low(high))
		right := b.correctify(level, b.high(low), b.high(high))
		return b.makenode(b.level(low), left, right)
	case b.level(low) < b.level(high):
		left := b.correctify(level, b.low(low), high)
		right := b.correctify(level, b.high(low), high)
		return b.makenode(b.level(low), left, right)
	default:
		left := b.correctify(level, low, b.low(high))
		right := b.correctify(level, low, b.high(high))
		return b.makenode(b.level(high), left, right)
	}
}
