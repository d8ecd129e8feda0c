package option

import (
	"iter"

	"github.com/authcorp/libs/go/optionex/result"
)

// ToResult converts Some(v) to Ok(v) and None to Err(ErrEmptyResult).
func ToResult[T any](o Option[T]) result.Result[T] {
	if o.present {
		return result.Ok(o.value)
	}
	return result.Err[T](ErrEmptyResult)
}

// ToResultWith converts Some(v) to Ok(v) and None to a failure carrying
// reason. An error reason is used as is; any other reason can be read back
// with result.ReasonOf.
func ToResultWith[T, E any](o Option[T], reason E) result.Result[T] {
	if o.present {
		return result.Ok(o.value)
	}
	return result.Fail[T](reason)
}

// ToEither converts Some(v) to Right(v) and None to Left(left).
func ToEither[L, T any](o Option[T], left L) result.Either[L, T] {
	if o.present {
		return result.Right[L](o.value)
	}
	return result.Left[L, T](left)
}

// ToBool reports whether o holds a value.
func ToBool[T any](o Option[T]) bool {
	return o.present
}

// FromResult keeps the success value of r and discards its error.
func FromResult[T any](r result.Result[T]) Option[T] {
	if r.IsErr() {
		return None[T]()
	}
	v, _ := r.Get()
	return Some(v)
}

// All returns an iterator over the Option (0 or 1 element).
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}
