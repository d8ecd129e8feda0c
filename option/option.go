// Package option provides Option, a value that is either present (Some) or
// absent (None), and the combinators to thread computations through it
// without explicit absence checks.
//
// Every combinator is a pure function returning a new Option. Absence
// propagates silently through Map, Bind, Appl, Flatten and the Flatten*
// sequence operations; it only becomes a failure when the caller unwraps.
package option

import (
	"fmt"
	"reflect"
)

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of lifts a value into an Option. A nil pointer, map, slice, channel,
// function or interface becomes None; anything else becomes Some.
func Of[T any](value T) Option[T] {
	if isNil(value) {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsZero reports whether the Option is None, so that encoders honouring
// omitzero skip empty options.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// ToPtr converts Option to a pointer to a copy of the value.
func (o Option[T]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// unwrapAny exposes the payload without its static type; it lets the
// dynamic operations recognise an Option of any payload type.
func (o Option[T]) unwrapAny() (any, bool) {
	return o.value, o.present
}

type anyOption interface {
	unwrapAny() (any, bool)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
