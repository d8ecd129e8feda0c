package result

import (
	"errors"
	"fmt"
)

// ReasonError carries a failure reason that is not itself an error.
type ReasonError[E any] struct {
	Reason E
}

// Error implements the error interface.
func (e *ReasonError[E]) Error() string {
	return fmt.Sprint(e.Reason)
}

// Reason turns a reason of any type into an error. An error reason is
// returned unchanged.
func Reason[E any](reason E) error {
	if err, ok := any(reason).(error); ok {
		return err
	}
	return &ReasonError[E]{Reason: reason}
}

// ReasonOf recovers a reason of type E from an error chain, either from a
// *ReasonError[E] or from an error that is itself an E.
func ReasonOf[E any](err error) (E, bool) {
	var re *ReasonError[E]
	if errors.As(err, &re) {
		return re.Reason, true
	}
	if e, ok := any(err).(E); ok {
		return e, true
	}
	var zero E
	return zero, false
}
