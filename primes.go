// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import "math/big"

// functions for prime number calculations, used to size the chained table
// and the operation caches

func hasFactor(src int, n int) bool {
	if (src != n) && (src%n == 0) {
		return true
	}
	return false
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

// primeGte returns the first prime greater than or equal to src.
func primeGte(src int) int {
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src = src + 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src = src + 2
	}
}

// primeLte returns the last prime less than or equal to src.
func primeLte(src int) int {
	if src == 0 {
		return 1
	}
	if src%2 == 0 {
		src--
	}
	for {
		if hasEasyFactors(src) {
			src = src - 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src = src - 2
	}
}
