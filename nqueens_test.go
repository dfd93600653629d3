// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"math/big"
	"testing"
)

// nqueens builds the constraints of the N-queens problem over N*N variables,
// one for each square of the board, and returns the number of solutions.
func nqueens(b *BDD, N int) *big.Int {
	X := make([][]Node, N)
	for i := range X {
		X[i] = make([]Node, N)
		for j := range X[i] {
			X[i][j] = b.Ithvar(i*N + j)
		}
	}
	queen := b.True()
	// one queen in each row
	for i := 0; i < N; i++ {
		e := b.False()
		for j := 0; j < N; j++ {
			e = b.Or(e, X[i][j])
		}
		queen = b.And(queen, e)
	}
	// build requirements for each variable (field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			a := b.True()
			for k := 0; k < N; k++ {
				if k != j {
					a = b.And(a, b.Imp(X[i][j], b.Not(X[i][k])))
				}
			}
			c := b.True()
			for k := 0; k < N; k++ {
				if k != i {
					c = b.And(c, b.Imp(X[i][j], b.Not(X[k][j])))
				}
			}
			d := b.True()
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N && k != i {
					d = b.And(d, b.Imp(X[i][j], b.Not(X[k][ll])))
				}
			}
			e := b.True()
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N && k != i {
					e = b.And(e, b.Imp(X[i][j], b.Not(X[k][ll])))
				}
			}
			queen = b.And(queen, a, c, d, e)
		}
	}
	return b.Satcount(queen)
}

func TestNQueens(t *testing.T) {
	expected := map[int]int64{4: 2, 5: 10, 6: 4}
	for _, chained := range []bool{false, true} {
		for N, count := range expected {
			opts := []func(*configs){Nodesize(N * N * 256), Cachesize(N * N * 64)}
			if chained {
				opts = append(opts, Chained())
			}
			b, err := New(N*N, opts...)
			if err != nil {
				t.Fatal(err)
			}
			if c := nqueens(b, N).Int64(); c != count {
				t.Errorf("found %d solutions to the %d-queens problem, expected %d", c, N, count)
			}
			if b.Errored() {
				t.Errorf("error status: %s", b.Error())
			}
		}
	}
}

func BenchmarkNQueens8(bench *testing.B) {
	for i := 0; i < bench.N; i++ {
		b, err := New(64, Nodesize(1<<17), Cachesize(1<<15))
		if err != nil {
			bench.Fatal(err)
		}
		if c := nqueens(b, 8).Int64(); c != 92 {
			bench.Errorf("found %d solutions to the 8-queens problem, expected 92", c)
		}
	}
}
