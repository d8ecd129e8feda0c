package optiontest

import (
	"reflect"
	"testing"

	"github.com/authcorp/libs/go/optionex/option"
	"pgregory.net/rapid"
)

func TestNestedGenDepth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nested := NestedGen(4).Draw(t, "nested")

		v := nested.Value
		for level := 0; level < nested.Depth; level++ {
			o, ok := v.(interface{ IsSome() bool })
			if !ok || !o.IsSome() {
				t.Fatalf("level %d of %d is not Some: %#v", level, nested.Depth, v)
			}
			v = unwrapOnce(v)
		}
		if nested.Present && v != nested.Inner {
			t.Fatalf("innermost value %v, want %d", v, nested.Inner)
		}
		if !nested.Present && v != option.None[int]() {
			t.Fatalf("innermost value %v, want None", v)
		}
	})
}

func TestSliceGenBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opts := SliceGen(rapid.Int(), 2, 5).Draw(t, "opts")
		if len(opts) < 2 || len(opts) > 5 {
			t.Fatalf("length %d out of bounds", len(opts))
		}
	})
}

func unwrapOnce(v any) any {
	return reflect.ValueOf(v).MethodByName("Unwrap").Call(nil)[0].Interface()
}
