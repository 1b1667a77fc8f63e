// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package par

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrWorkerFailure is matched (via errors.Is) by every fault raised inside a
// pooled job or a fan-out goroutine.
var ErrWorkerFailure = errors.New("par: worker failure")

// PanicError carries a panic recovered from a worker goroutine to the caller
// of the parallel entry point that spawned it.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the stack of the panicking goroutine at recovery time.
	Stack []byte
}

// NewPanicError captures the current goroutine's stack. Call it from the
// deferred function that recovered v.
func NewPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("par: worker panic: %v", e.Value)
}

// Is reports ErrWorkerFailure as a match.
func (e *PanicError) Is(target error) bool {
	return target == ErrWorkerFailure
}

// Unwrap exposes the panic value when it was itself an error, so that
// errors.Is/As reach through to it.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Guard runs fn and converts a panic into a *PanicError.
func Guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	fn()
	return nil
}
