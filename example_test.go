// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd_test

import (
	"fmt"
	"log"

	"github.com/hashcons/bdd"
)

// This example shows the basic usage of the package: create a manager, build
// a formula, quantify some variables away and count the number of satisfying
// assignments.
func Example_basic() {
	b, err := bdd.New(6, bdd.Nodesize(10000), bdd.Cachesize(3000))
	if err != nil {
		log.Fatal(err)
	}
	v1 := b.Makeset([]int{2, 3, 5})
	n1 := b.Or(b.Ithvar(1), b.NIthvar(3), b.Ithvar(4))
	n2 := b.AndExist(v1, n1, b.Ithvar(3))
	fmt.Printf("Number of sat. assignments is %s\n", b.Satcount(n2))
	// Output:
	// Number of sat. assignments is 48
}
