// Package optiontest provides rapid generators for property tests over
// options and option collections.
package optiontest

import (
	"github.com/authcorp/libs/go/optionex/option"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[option.Option[T]] {
	return rapid.Just(option.None[T]())
}

// Nested is an option wrapped depth times, with its innermost state.
type Nested struct {
	Value   any
	Depth   int
	Present bool
	Inner   int
}

// NestedGen generates Some wrapped 1..maxDepth times around either an int
// or a None at a random level.
func NestedGen(maxDepth int) *rapid.Generator[Nested] {
	return rapid.Custom(func(t *rapid.T) Nested {
		depth := rapid.IntRange(1, maxDepth).Draw(t, "depth")
		inner := rapid.Int().Draw(t, "inner")
		present := rapid.Bool().Draw(t, "present")

		var v any = inner
		if !present {
			v = option.None[int]()
		}
		for range depth {
			v = wrap(v)
		}
		return Nested{Value: v, Depth: depth, Present: present, Inner: inner}
	})
}

// SliceGen generates slices of options with between minLen and maxLen
// elements.
func SliceGen[T any](valueGen *rapid.Generator[T], minLen, maxLen int) *rapid.Generator[[]option.Option[T]] {
	return rapid.SliceOfN(OptionGen(valueGen), minLen, maxLen)
}

// MapGen generates maps from keys to options.
func MapGen[K comparable, T any](keyGen *rapid.Generator[K], valueGen *rapid.Generator[T], minLen, maxLen int) *rapid.Generator[map[K]option.Option[T]] {
	return rapid.MapOfN(keyGen, OptionGen(valueGen), minLen, maxLen)
}

// wrap puts v in Some, keeping the static type of the previous level for
// the first few levels; deeper levels are wrapped as Option[any].
func wrap(v any) any {
	switch x := v.(type) {
	case int:
		return option.Some(x)
	case option.Option[int]:
		return option.Some(x)
	case option.Option[option.Option[int]]:
		return option.Some(x)
	case option.Option[option.Option[option.Option[int]]]:
		return option.Some(x)
	default:
		return option.Some(v)
	}
}
