package option

// Stage is one step of an option pipeline.
type Stage[T any] func(Option[T]) Option[T]

// Pipe runs o through stages left to right.
func Pipe[T any](o Option[T], stages ...Stage[T]) Option[T] {
	for _, stage := range stages {
		o = stage(o)
	}
	return o
}

// AndThen creates a stage that applies stages left-to-right.
func AndThen[T any](stages ...Stage[T]) Stage[T] {
	return func(o Option[T]) Option[T] {
		return Pipe(o, stages...)
	}
}

// Compose creates a stage that applies stages right-to-left.
func Compose[T any](stages ...Stage[T]) Stage[T] {
	return func(o Option[T]) Option[T] {
		for i := len(stages) - 1; i >= 0; i-- {
			o = stages[i](o)
		}
		return o
	}
}

// Tap returns a stage that calls fn with the value when present and
// passes the option on unchanged.
func Tap[T any](fn func(T)) Stage[T] {
	return func(o Option[T]) Option[T] {
		if o.present {
			fn(o.value)
		}
		return o
	}
}

// FilterFunc is the curried form of Filter.
func FilterFunc[T any](predicate func(T) bool) Stage[T] {
	return func(o Option[T]) Option[T] {
		return o.Filter(predicate)
	}
}
