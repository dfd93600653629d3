// Copyright (c) 2026 The hashcons authors
//
// MIT License

package bdd

import (
	"fmt"
	"log"
)

// Error returns the error status of the manager. We return an empty string
// if there are no errors.
func (b *BDD) Error() string {
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	return b.error != nil
}

// seterror records an error and returns the constant False, so that calls
// can degrade without corrupting the table. Precondition violations are
// caller bugs; they are never cleared and every subsequent error chains onto
// the first one.
func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.error != nil {
		format = format + "; " + b.Error()
		b.error = fmt.Errorf(format, a...)
		return False
	}
	b.error = fmt.Errorf(format, a...)
	if _DEBUG {
		log.Println(b.error)
	}
	return False
}

// checknode reports whether n is a valid handle for this manager.
func (b *BDD) checknode(n Node) error {
	if n < 0 || int(n) >= b.nodecount() {
		return fmt.Errorf("invalid node handle (%d)", n)
	}
	return nil
}
