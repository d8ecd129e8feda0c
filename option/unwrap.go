package option

// Unwrap returns the contained value. It panics with ErrEmpty on None and
// is meant for call sites where absence is a programming error.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(ErrEmpty)
	}
	return o.value
}

// Expect returns the contained value or panics with an *ExpectError
// carrying message.
func (o Option[T]) Expect(message string) T {
	if !o.present {
		panic(&ExpectError{Message: message})
	}
	return o.value
}

// TryUnwrap is the non-panicking form of Unwrap.
func (o Option[T]) TryUnwrap() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrEmpty
	}
	return o.value, nil
}

// OrElse returns the contained value or defaultValue. The default is
// evaluated by the caller whatever the branch; use OrElseWith to defer it.
func (o Option[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// OrElseWith returns the contained value or the result of fn. fn is only
// invoked on None.
func (o Option[T]) OrElseWith(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Or returns o if it is present, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// OrWith returns o if it is present, otherwise the Option computed by fn.
func (o Option[T]) OrWith(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}
