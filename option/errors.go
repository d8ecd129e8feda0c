package option

import "errors"

var (
	// ErrEmpty is the panic value of Unwrap on None and the error returned
	// by TryUnwrap.
	ErrEmpty = errors.New("option: empty option")

	// ErrEmptyResult is the default failure reason of ToResult.
	ErrEmptyResult = errors.New("option.ToResult: the option was empty")
)

// ExpectError is the panic value of Expect on None. It carries the
// caller's message verbatim and matches ErrEmpty.
type ExpectError struct {
	Message string
}

// Error implements the error interface.
func (e *ExpectError) Error() string {
	return e.Message
}

// Is reports ErrEmpty as the target so callers recovering from Expect can
// treat both unwrap failures alike.
func (e *ExpectError) Is(target error) bool {
	return target == ErrEmpty
}
