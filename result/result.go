// Package result provides the success/failure shape produced by option
// conversions. A Result is either Ok with a payload or Err with a reason.
package result

import (
	"errors"
	"fmt"
)

// ErrUnknown stands in for a failure created without an error, including
// the zero Result.
var ErrUnknown = errors.New("result: failure without reason")

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result. A nil err is replaced by ErrUnknown.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Result[T]{err: err}
}

// Fail creates a failed Result from a reason of any type. Errors are kept
// as they are; any other reason is carried by a *ReasonError[E].
func Fail[T, E any](reason E) Result[T] {
	return Err[T](Reason(reason))
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and the error, in the usual Go order.
// A failed Result always reports a non-nil error.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.failure()
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.failure().Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.failure()
}

// String renders Ok(v) or Err(reason).
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return "Err(" + r.failure().Error() + ")"
}

func (r Result[T]) failure() error {
	if r.err == nil {
		return ErrUnknown
	}
	return r.err
}
