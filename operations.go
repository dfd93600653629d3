// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"math/big"
)

// If returns the canonical node for the decision "if variable i is true
// then high, else low". The variable must order strictly before every
// variable appearing in low and high; violating this precondition is a
// caller bug, reported through the error status of the manager.
//
// When low and high are the same node the decision is redundant and If
// returns that node directly, without consulting the table.
func (b *BDD) If(i int, low, high Node) Node {
	if i < 0 || int32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to If", i)
	}
	if err := b.checknode(low); err != nil {
		return b.seterror("wrong low branch in call to If; %s", err)
	}
	if err := b.checknode(high); err != nil {
		return b.seterror("wrong high branch in call to If; %s", err)
	}
	if int32(i) >= b.level(int(low)) || int32(i) >= b.level(int(high)) {
		return b.seterror("variable (%d) does not precede its branches in call to If", i)
	}
	return b.retnode(b.makenode(int32(i), int(low), int(high)))
}

// Not returns the negation (!n) of expression n. It negates a BDD by
// exchanging all references to the zero-terminal with references to the
// one-terminal and vice versa.
func (b *BDD) Not(n Node) Node {
	if err := b.checknode(n); err != nil {
		return b.seterror("wrong operand in call to Not; %s", err)
	}
	return b.retnode(b.not(int(n)))
}

// not recurses on the children of n only, never on a reconstructed node, so
// it terminates by structural descent.
func (b *BDD) not(n int) int {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	if res := b.matchnot(n); res >= 0 {
		return res
	}
	low := b.not(b.low(n))
	high := b.not(b.high(n))
	res := b.makenode(b.level(n), low, high)
	return b.setnot(n, res)
}

// Apply performs all of the basic binary operations on BDD nodes, such as
// AND, OR etc. Left and right are the operands and op is the requested
// operation, which must be one of the following:
//
//  Identifier    Description           Truth table
//
//  OPand         logical and           [0,0,0,1]
//  OPxor         logical xor           [0,1,1,0]
//  OPor          logical or            [0,1,1,1]
//  OPnand        logical not-and       [1,1,1,0]
//  OPnor         logical not-or        [1,0,0,0]
//  OPimp         implication           [1,1,0,1]
//  OPbiimp       equivalence           [1,0,0,1]
//  OPdiff        set difference        [0,0,1,0]
//  OPless        less than             [0,1,0,0]
//  OPinvimp      reverse implication   [1,0,1,1]
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if err := b.checknode(left); err != nil {
		return b.seterror("wrong operand in call to Apply %s (left: %d); %s", op, left, err)
	}
	if err := b.checknode(right); err != nil {
		return b.seterror("wrong operand in call to Apply %s (right: %d); %s", op, right, err)
	}
	if op > OPinvimp {
		return b.seterror("unauthorized operation (%s) in call to Apply", op)
	}
	b.applycache.op = op
	return b.retnode(b.apply(int(left), int(right)))
}

// apply decreases the sum of the sizes of its two operands at every
// recursive call, which gives the termination measure.
func (b *BDD) apply(left int, right int) int {
	switch b.applycache.op {
	case OPand:
		if left == right {
			return left
		}
		if (left == 0) || (right == 0) {
			return 0
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if (left == 1) || (right == 1) {
			return 1
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPnand:
		if (left == 0) || (right == 0) {
			return 1
		}
	case OPnor:
		if (left == 1) || (right == 1) {
			return 0
		}
	case OPimp:
		if left == 0 {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	case OPbiimp:
		if left == right {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPdiff:
		if left == right {
			return 0
		}
		if right == 1 {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPless:
		if (left == right) || (left == 1) {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPinvimp:
		if right == 0 {
			return 1
		}
		if right == 1 {
			return left
		}
		if left == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	}

	// we check for errors in the recursive calls
	if left < 0 || right < 0 {
		return -1
	}

	// we deal with the other cases where the two operands are constants
	if (left < 2) && (right < 2) {
		return opres[b.applycache.op][left][right]
	}
	if res := b.matchapply(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	switch {
	case leftlvl == rightlvl:
		low := b.apply(b.low(left), b.low(right))
		high := b.apply(b.high(left), b.high(right))
		res = b.makenode(leftlvl, low, high)
	case leftlvl < rightlvl:
		low := b.apply(b.low(left), right)
		high := b.apply(b.high(left), right)
		res = b.makenode(leftlvl, low, high)
	default:
		low := b.apply(left, b.low(right))
		high := b.apply(left, b.high(right))
		res = b.makenode(rightlvl, low, high)
	}
	return b.setapply(left, right, res)
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if err := b.checknode(f); err != nil {
		return b.seterror("wrong operand in call to Ite (f: %d); %s", f, err)
	}
	if err := b.checknode(g); err != nil {
		return b.seterror("wrong operand in call to Ite (g: %d); %s", g, err)
	}
	if err := b.checknode(h); err != nil {
		return b.seterror("wrong operand in call to Ite (h: %d); %s", h, err)
	}
	return b.retnode(b.ite(int(f), int(g), int(h)))
}

// ite_low returns n if p is strictly higher than q or r, otherwise it
// returns n's low branch. This is used in function ite to know which node to
// follow: we always follow the smallest node(s).
func (b *BDD) ite_low(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.low(n)
}

func (b *BDD) ite_high(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.high(n)
}

// min3 returns the smallest value between p, q and r. This is used in
// function ite to compute the smallest level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) ite(f, g, h int) int {
	switch {
	case f == 1:
		return g
	case f == 0:
		return h
	case g == h:
		return g
	case (g == 1) && (h == 0):
		return f
	case (g == 0) && (h == 1):
		return b.not(f)
	}
	// we check for errors in the recursive calls
	if f < 0 || g < 0 || h < 0 {
		return -1
	}
	if res := b.matchite(f, g, h); res >= 0 {
		return res
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.ite(b.ite_low(p, q, r, f), b.ite_low(q, p, r, g), b.ite_low(r, p, q, h))
	high := b.ite(b.ite_high(p, q, r, f), b.ite_high(q, p, r, g), b.ite_high(r, p, q, h))
	res := b.makenode(min3(p, q, r), low, high)
	return b.setite(f, g, h, res)
}

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a. It returns False and sets the error condition in
// b if one of the variables is outside the scope of the manager (see
// documentation for function Ithvar).
func (b *BDD) Makeset(varset []int) Node {
	res := True
	for _, level := range varset {
		tmp := b.Apply(res, b.Ithvar(level), OPand)
		if b.error != nil {
			return False
		}
		res = tmp
	}
	return res
}

// Scanset returns the set of variables (levels) found when following the
// high branch of node n. This is the dual of function Makeset. The result
// may be nil if there is an error and it is an empty slice if the set is
// empty.
func (b *BDD) Scanset(n Node) []int {
	if err := b.checknode(n); err != nil {
		b.seterror("wrong node in call to Scanset; %s", err)
		return nil
	}
	if n < 2 {
		return nil
	}
	res := []int{}
	for i := int(n); i > 1; i = b.high(i) {
		res = append(res, int(b.level(i)))
	}
	return res
}

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset. We
// return False and set the error flag in b if there is an error.
func (b *BDD) Exist(n, varset Node) Node {
	if err := b.checknode(n); err != nil {
		return b.seterror("wrong node in call to Exist (n: %d); %s", n, err)
	}
	if err := b.checknode(varset); err != nil {
		return b.seterror("wrong varset in call to Exist (%d); %s", varset, err)
	}
	if varset < 2 { // we have an empty set or a constant
		return n
	}
	if err := b.quantset2cache(int(varset)); err != nil {
		return False
	}
	b.quantcache.id = (int(varset) << 2) | cacheid_EXIST
	b.applycache.op = OPor
	return b.retnode(b.quant(int(n), int(varset)))
}

func (b *BDD) quant(n, varset int) int {
	if (n < 2) || (b.level(n) > b.quantlast) {
		return n
	}
	if res := b.matchquant(n); res >= 0 {
		return res
	}
	low := b.quant(b.low(n), varset)
	high := b.quant(b.high(n), varset)
	var res int
	if b.quantset[b.level(n)] == b.quantsetID {
		res = b.apply(low, high)
	} else {
		res = b.makenode(b.level(n), low, high)
	}
	return b.setquant(n, res)
}

// AppEx applies the binary operator op on the two operands left and right
// then performs an existential quantification over the variables in varset,
// where varset is a node computed with an operation such as Makeset. This is
// done in a bottom-up manner such that both the apply and the
// quantification are done on the lower nodes before stepping up to the
// higher nodes. This makes AppEx much more efficient than an apply operation
// followed by a quantification. Note that, when op is a conjunction, this
// operation returns the relational product of two BDDs.
func (b *BDD) AppEx(left Node, right Node, op Operator, varset Node) Node {
	if op > OPnor {
		return b.seterror("operator %s not supported in call to AppEx", op)
	}
	if err := b.checknode(varset); err != nil {
		return b.seterror("wrong varset in call to AppEx (%d); %s", varset, err)
	}
	if varset < 2 { // we have an empty set
		return b.Apply(left, right, op)
	}
	if err := b.checknode(left); err != nil {
		return b.seterror("wrong operand in call to AppEx %s (left: %d); %s", op, left, err)
	}
	if err := b.checknode(right); err != nil {
		return b.seterror("wrong operand in call to AppEx %s (right: %d); %s", op, right, err)
	}
	if err := b.quantset2cache(int(varset)); err != nil {
		return False
	}
	b.applycache.op = OPor
	b.appexcache.op = op
	b.appexcache.id = (int(varset) << 2) | int(op)
	b.quantcache.id = (b.appexcache.id << 3) | cacheid_APPEX
	return b.retnode(b.appquant(int(left), int(right), int(varset)))
}

func (b *BDD) appquant(left, right, varset int) int {
	switch b.appexcache.op {
	case OPand:
		if left == 0 || right == 0 {
			return 0
		}
		if left == right {
			return b.quant(left, varset)
		}
		if left == 1 {
			return b.quant(right, varset)
		}
		if right == 1 {
			return b.quant(left, varset)
		}
	case OPor:
		if left == 1 || right == 1 {
			return 1
		}
		if left == right {
			return b.quant(left, varset)
		}
		if left == 0 {
			return b.quant(right, varset)
		}
		if right == 0 {
			return b.quant(left, varset)
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return b.quant(right, varset)
		}
		if right == 0 {
			return b.quant(left, varset)
		}
	case OPnand:
		if left == 0 || right == 0 {
			return 1
		}
	case OPnor:
		if left == 1 || right == 1 {
			return 0
		}
	}

	// we check for errors in the recursive calls
	if left < 0 || right < 0 {
		return -1
	}

	// we deal with the other cases where the two operands are constants
	if (left < 2) && (right < 2) {
		return opres[b.appexcache.op][left][right]
	}

	// and the case where we have no more variables to quantify
	if (b.level(left) > b.quantlast) && (b.level(right) > b.quantlast) {
		oldop := b.applycache.op
		b.applycache.op = b.appexcache.op
		res := b.apply(left, right)
		b.applycache.op = oldop
		return res
	}

	// next we check if the operation is already in our cache
	if res := b.matchappex(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var lvl int32
	var low, high int
	switch {
	case leftlvl == rightlvl:
		lvl = leftlvl
		low = b.appquant(b.low(left), b.low(right), varset)
		high = b.appquant(b.high(left), b.high(right), varset)
	case leftlvl < rightlvl:
		lvl = leftlvl
		low = b.appquant(b.low(left), right, varset)
		high = b.appquant(b.high(left), right, varset)
	default:
		lvl = rightlvl
		low = b.appquant(left, b.low(right), varset)
		high = b.appquant(left, b.high(right), varset)
	}
	var res int
	if b.quantset[lvl] == b.quantsetID {
		res = b.apply(low, high)
	} else {
		res = b.makenode(lvl, low, high)
	}
	return b.setappex(left, right, res)
}

// Eval returns the value of the function denoted by n under the assignment
// env, where env[k] gives the value of variable k. The slice must have at
// least Varnum entries.
func (b *BDD) Eval(n Node, env []bool) bool {
	if err := b.checknode(n); err != nil {
		b.seterror("wrong node in call to Eval; %s", err)
		return false
	}
	if len(env) < int(b.varnum) {
		b.seterror("assignment too short (%d) in call to Eval", len(env))
		return false
	}
	r := int(n)
	for r > 1 {
		if env[b.level(r)] {
			r = b.high(r)
		} else {
			r = b.low(r)
		}
	}
	return r == 1
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows. The result is zero (and we set the
// error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if err := b.checknode(n); err != nil {
		b.seterror("wrong operand in call to Satcount; %s", err)
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(b.level(int(n))), 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, b.satcount(int(n), satc))
}

func (b *BDD) satcount(n int, satc map[int]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each node
	res, ok := satc[n]
	if ok {
		return res
	}
	level := b.level(n)
	low := b.low(n)
	high := b.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.level(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.level(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls
// the function f on each of them. We pass an int slice of length Varnum to
// f where each entry is either 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care. We stop and return an error if f returns an
// error at some point.
//
// The following is an example of a callback handler that counts the number
// of possible assignments (such that we do not count don't cares twice):
//
//     acc := new(int)
//     b.Allsat(n, func(varset []int) error {
//         *acc++
//         return nil
//     })
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if err := b.checknode(n); err != nil {
		return fmt.Errorf("wrong node in call to Allsat; %s", err)
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(int(n), prof, f)
}

func (b *BDD) allsat(n int, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}
	if low := b.low(n); low != 0 {
		prof[b.level(n)] = 0
		for v := b.level(low) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := b.high(n); high != 0 {
		prof[b.level(n)] = 1
		for v := b.level(high) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the nodes accessible from the nodes
// in the sequence n..., or all the nodes in the table if n is absent. The
// parameters to function f are the id, level, and id's of the low and high
// successors of each node. The two constant nodes (True and False) have
// always the id 1 and 0, respectively.
//
// Nodes are visited in handle order. Like with Allsat, we stop the
// computation and return an error if f returns an error at some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if err := b.checknode(v); err != nil {
			return fmt.Errorf("wrong node in call to Allnodes; %s", err)
		}
	}
	if len(n) == 0 {
		return b.allnodes(f)
	}
	return b.allnodesfrom(f, n)
}

func (b *BDD) allnodesfrom(f func(id, level, low, high int) error, n []Node) error {
	marked := make(map[int]bool)
	for _, v := range n {
		b.markrec(marked, int(v))
	}
	if err := f(0, int(b.level(0)), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.level(1)), 1, 1); err != nil {
		return err
	}
	for k := 2; k < b.nodecount(); k++ {
		if marked[k] {
			if err := f(k, int(b.level(k)), b.low(k), b.high(k)); err != nil {
				return err
			}
		}
	}
	return nil
}

// markrec collects the nodes reachable from n. Children always have smaller
// handles than the nodes built from them, so the recursion is structural.
func (b *BDD) markrec(marked map[int]bool, n int) {
	if n < 2 || marked[n] {
		return
	}
	marked[n] = true
	b.markrec(marked, b.low(n))
	b.markrec(marked, b.high(n))
}
