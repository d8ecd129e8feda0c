package option

import (
	"iter"
	"reflect"
)

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.present {
		return o.value
	}
	return None[T]()
}

// FlattenAll collapses any depth of nesting: options wrapping options are
// unwrapped until a payload that is not an Option is reached. A None at
// any level gives None, and so does a nil innermost payload. A v that is
// not an Option is lifted with Of.
func FlattenAll(v any) Option[any] {
	for {
		o, ok := v.(anyOption)
		if !ok {
			return Of(v)
		}
		inner, present := o.unwrapAny()
		if !present {
			return None[any]()
		}
		if _, nested := inner.(anyOption); !nested {
			return Of(inner)
		}
		v = inner
	}
}

// FlattenSlice turns a slice of options into an Option of the slice of
// their values, in order, or None as soon as one element is None.
func FlattenSlice[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// FlattenMap turns a map of options into an Option of the map of their
// values, keeping every key, or None if any value is None.
func FlattenMap[K comparable, T any](opts map[K]Option[T]) Option[map[K]T] {
	values := make(map[K]T, len(opts))
	for k, o := range opts {
		if !o.present {
			return None[map[K]T]()
		}
		values[k] = o.value
	}
	return Some(values)
}

// FlattenSeq collects a sequence of options. It stops pulling from seq at
// the first None.
func FlattenSeq[T any](seq iter.Seq[Option[T]]) Option[[]T] {
	values := []T{}
	for o := range seq {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// FlattenSeq2 collects a keyed sequence of options into a map. It stops
// pulling from seq at the first None. Later duplicate keys win.
func FlattenSeq2[K comparable, T any](seq iter.Seq2[K, Option[T]]) Option[map[K]T] {
	values := map[K]T{}
	for k, o := range seq {
		if !o.present {
			return None[map[K]T]()
		}
		values[k] = o.value
	}
	return Some(values)
}

// Traverse maps fn over values and collects the results, or None as soon
// as fn returns None.
func Traverse[T, U any](values []T, fn func(T) Option[U]) Option[[]U] {
	out := make([]U, 0, len(values))
	for _, v := range values {
		o := fn(v)
		if !o.present {
			return None[[]U]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// FlattenEnum is the dynamic form of FlattenSlice and FlattenMap for
// collections whose element type is only known at run time. A slice or
// array of options gives Some([]any); a map of options gives Some of a map
// with the same key type and any values. Elements that are not options,
// and any other shape, give None.
func FlattenEnum(collection any) Option[any] {
	rv := reflect.ValueOf(collection)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			v, ok := payload(rv.Index(i))
			if !ok {
				return None[any]()
			}
			values[i] = v
		}
		return Some[any](values)
	case reflect.Map:
		values := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			v, ok := payload(it.Value())
			if !ok {
				return None[any]()
			}
			values.SetMapIndex(it.Key(), reflect.ValueOf(&v).Elem())
		}
		return Some(values.Interface())
	default:
		return None[any]()
	}
}

var anyType = reflect.TypeFor[any]()

func payload(rv reflect.Value) (any, bool) {
	if !rv.CanInterface() {
		return nil, false
	}
	o, ok := rv.Interface().(anyOption)
	if !ok {
		return nil, false
	}
	return o.unwrapAny()
}
