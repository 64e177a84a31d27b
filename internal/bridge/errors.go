package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrTaskPanicked = errors.New("bridge: task panicked")
	ErrInvalidSize  = errors.New("bridge: pool size must be positive")
)

// PanicError carries a recovered panic. Error() holds only the panic value;
// the stack is kept for logs and never rendered.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTaskPanicked, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrTaskPanicked
}
