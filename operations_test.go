// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"testing"
)

func TestMin3(t *testing.T) {
	tests := []struct {
		p, q, r  int32
		expected int32
	}{
		{0, 1, 2, 0},
		{1, 0, 2, 0},
		{2, 1, 0, 0},
		{1, 1, 2, 1},
		{2, 2, 2, 2},
		{3, 2, 2, 2},
		{0, 2, 1, 0},
		{2, 0, 1, 0},
	}
	for _, tt := range tests {
		if actual := min3(tt.p, tt.q, tt.r); actual != tt.expected {
			t.Errorf("min3(%d, %d, %d) = %d, expected %d", tt.p, tt.q, tt.r, actual, tt.expected)
		}
	}
}

func TestIte(t *testing.T) {
	b, err := New(5, Nodesize(1000), Cachesize(300))
	if err != nil {
		t.Fatal(err)
	}
	n1 := b.Makeset([]int{0, 2, 3})
	n2 := b.Makeset([]int{0, 3})
	ite := b.Ite(n1, n2, b.Not(n2))
	expected := b.Or(b.And(n1, n2), b.And(b.Not(n1), b.Not(n2)))
	if ite != expected {
		t.Errorf("Ite(n1, n2, !n2) = %d, expected %d", ite, expected)
	}
	if b.Errored() {
		t.Errorf("error status: %s", b.Error())
	}
}

func TestOperations(t *testing.T) {
	for _, chained := range []bool{false, true} {
		opts := []func(*configs){Nodesize(1000), Cachesize(500)}
		if chained {
			opts = append(opts, Chained())
		}
		b, err := New(4, opts...)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 4; i++ {
			x := b.Ithvar(i)
			nx := b.NIthvar(i)
			if b.And(x, nx) != False {
				t.Errorf("x%d & !x%d should be False", i, i)
			}
			if b.Or(x, nx) != True {
				t.Errorf("x%d | !x%d should be True", i, i)
			}
			if b.Not(x) != nx {
				t.Errorf("!x%d should equal NIthvar(%d)", i, i)
			}
			if b.Xor(x, nx) != True {
				t.Errorf("x%d ^ !x%d should be True", i, i)
			}
			if c := b.Satcount(x).Int64(); c != 8 {
				t.Errorf("Satcount(x%d) = %d, expected 8", i, c)
			}
		}
		// the disjunction of all the assignments enumerated by Allsat must
		// give back the function we started from
		f := b.Or(b.And(b.Ithvar(0), b.Ithvar(1)), b.And(b.NIthvar(2), b.Ithvar(3)))
		acc := 0
		allsat := b.False()
		err = b.Allsat(f, func(prof []int) error {
			acc++
			cube := b.True()
			for k, v := range prof {
				switch v {
				case 0:
					cube = b.And(cube, b.NIthvar(k))
				case 1:
					cube = b.And(cube, b.Ithvar(k))
				}
			}
			if b.Apply(cube, f, OPdiff) != False {
				return fmt.Errorf("assignment %v does not satisfy f", prof)
			}
			allsat = b.Or(allsat, cube)
			return nil
		})
		if err != nil {
			t.Error(err)
		}
		if acc == 0 {
			t.Error("Allsat found no assignment for a satisfiable function")
		}
		if allsat != f {
			t.Error("sum of Allsat assignments differs from f")
		}
		if b.Errored() {
			t.Errorf("error status: %s", b.Error())
		}
	}
}

func TestApplyErrors(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	if res := b.Apply(b.Ithvar(0), b.Ithvar(1), op_not); res != False {
		t.Errorf("Apply with an internal operator should return False, not %d", res)
	}
	if !b.Errored() {
		t.Error("Apply with an internal operator should set the error status")
	}

	b, err = New(4)
	if err != nil {
		t.Fatal(err)
	}
	if res := b.Apply(Node(b.nodecount()), True, OPand); res != False {
		t.Errorf("Apply with an out of range handle should return False, not %d", res)
	}
	if !b.Errored() {
		t.Error("Apply with an out of range handle should set the error status")
	}
}

func TestEvalErrors(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	if b.Eval(b.Ithvar(0), []bool{true}) {
		t.Error("Eval with a short assignment should return false")
	}
	if !b.Errored() {
		t.Error("Eval with a short assignment should set the error status")
	}
}
