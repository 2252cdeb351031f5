package util

import (
	"sync/atomic"
)

// RunOnce is a function wrapper that calls the underlying function at most once
//
// Returns true when the wrapped function is actually called
//
// Used to protect resource closing, which must happen exactly once no matter how many
// goroutines race on it
type RunOnce func() bool

// NewRunOnce creates a function that would call the given "f" at most once
func NewRunOnce(f func()) RunOnce {
	var invoked int32
	return func() bool {
		if atomic.CompareAndSwapInt32(&invoked, 0, 1) {
			f()
			return true
		}
		return false
	}
}
