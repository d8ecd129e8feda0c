package option

// Map applies fn to the contained value if present. fn is never called on
// None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapFunc is the curried form of Map, for use in pipelines.
func MapFunc[T, U any](fn func(T) U) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		return Map(o, fn)
	}
}

// Bind applies a function that itself returns an Option. A None from fn
// short-circuits the rest of a chain.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// BindFunc is the curried form of Bind.
func BindFunc[T, U any](fn func(T) Option[U]) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		return Bind(o, fn)
	}
}

// Filter returns None if predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Fold executes one of two functions and returns the result.
func Fold[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Pair holds two values, as produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two options into an Option of their pair.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.present && b.present {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}

// Identity returns its input unchanged.
func Identity[T any](v T) T {
	return v
}

// ComposeFunc composes f and then g.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
