// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return True
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return False
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Xor returns the logical 'exclusive or' of two nodes.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two nodes.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// AndExist returns the "relational composition" of two nodes with respect
// to varset, meaning the result of (Exists varset . n1 & n2).
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}
