// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

// Operator describes the potential (binary) operations available in a call
// to Apply. Only the operators OPand to OPnor can be used in AppEx.
type Operator int

const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Set difference
	OPless                   // Less than
	OPinvimp                 // Reverse implication
	op_not                   // Negation. Should not be used in Apply, but used in caches
)

var opnames = [11]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
	op_not:   "not",
}

func (op Operator) String() string {
	return opnames[op]
}

var opres = [11][2][2]int{
	//                      00    01               10    11
	OPand:    {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 0001
	OPxor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 0111
	OPnand:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 1110
	OPnor:    {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 1000
	OPimp:    {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 1001
	OPdiff:   {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 0010
	OPless:   {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 0100
	OPinvimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 1011
}
