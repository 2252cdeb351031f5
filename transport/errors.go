package transport

import (
	"fmt"
)

// Error wraps a socket failure with the operation that produced it, keeping the
// original error reachable for errors.Is / errors.As
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport %s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}
