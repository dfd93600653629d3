// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import "fmt"

// Stats returns information about the manager and its unicity table.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += b.tables.stats()
	return res
}

// humanSize returns a human-readable description of the memory occupied by
// n records of the given size.
func humanSize(n int, size uintptr) string {
	v := float64(n) * float64(size)
	switch {
	case v >= 1<<30:
		return fmt.Sprintf("%.1f GB", v/(1<<30))
	case v >= 1<<20:
		return fmt.Sprintf("%.1f MB", v/(1<<20))
	case v >= 1<<10:
		return fmt.Sprintf("%.1f KB", v/(1<<10))
	}
	return fmt.Sprintf("%.0f B", v)
}
