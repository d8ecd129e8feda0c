package option

import (
	"fmt"
	"reflect"
)

// Func is a function of declared arity together with the arguments it has
// received so far. A Func is immutable: supplying an argument builds a new
// Func sharing the earlier arguments, so one partial application can be
// continued along several branches or from several goroutines.
type Func struct {
	call  func(args []any) (any, bool)
	arity int
	args  *argStack
	n     int
}

// argStack holds received arguments newest first.
type argStack struct {
	head any
	tail *argStack
}

// NewFunc wraps fn as a Func expecting arity arguments. fn receives them
// in the order they were supplied. It panics if arity is negative.
func NewFunc(arity int, fn func(args ...any) any) Func {
	if arity < 0 {
		panic(fmt.Sprintf("option: negative arity %d", arity))
	}
	return Func{
		arity: arity,
		call: func(args []any) (any, bool) {
			return fn(args...), true
		},
	}
}

// Lift wraps fn as a Func of the given arity and places it in Some, ready
// for Appl.
func Lift(arity int, fn func(args ...any) any) Option[any] {
	return Some[any](NewFunc(arity, fn))
}

// Func0 adapts a nullary function. Applying any argument to it yields None.
func Func0[R any](fn func() R) Func {
	return Func{call: func([]any) (any, bool) { return fn(), true }}
}

// Func1 adapts a unary function.
func Func1[A, R any](fn func(A) R) Func {
	return Func{
		arity: 1,
		call: func(args []any) (any, bool) {
			a, ok := argAs[A](args[0])
			if !ok {
				return nil, false
			}
			return fn(a), true
		},
	}
}

// Func2 adapts a binary function.
func Func2[A, B, R any](fn func(A, B) R) Func {
	return Func{
		arity: 2,
		call: func(args []any) (any, bool) {
			a, okA := argAs[A](args[0])
			b, okB := argAs[B](args[1])
			if !okA || !okB {
				return nil, false
			}
			return fn(a, b), true
		},
	}
}

// Func3 adapts a ternary function.
func Func3[A, B, C, R any](fn func(A, B, C) R) Func {
	return Func{
		arity: 3,
		call: func(args []any) (any, bool) {
			a, okA := argAs[A](args[0])
			b, okB := argAs[B](args[1])
			c, okC := argAs[C](args[2])
			if !okA || !okB || !okC {
				return nil, false
			}
			return fn(a, b, c), true
		},
	}
}

// FuncOf adapts a function of any arity, read from its type. A function
// without results produces struct{}{}, one with several results produces
// them as []any. FuncOf panics if fn is not a non-variadic function.
func FuncOf(fn any) Func {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		panic(fmt.Sprintf("option: FuncOf called with %T", fn))
	}
	rt := rv.Type()
	if rt.IsVariadic() {
		panic(fmt.Sprintf("option: FuncOf called with variadic %s", rt))
	}
	return Func{
		arity: rt.NumIn(),
		call: func(args []any) (any, bool) {
			in := make([]reflect.Value, len(args))
			for i, arg := range args {
				v, ok := reflectArg(arg, rt.In(i))
				if !ok {
					return nil, false
				}
				in[i] = v
			}
			out := rv.Call(in)
			switch len(out) {
			case 0:
				return struct{}{}, true
			case 1:
				return out[0].Interface(), true
			default:
				results := make([]any, len(out))
				for i, v := range out {
					results[i] = v.Interface()
				}
				return results, true
			}
		},
	}
}

// Arity returns the declared number of arguments.
func (f Func) Arity() int {
	return f.arity
}

// Remaining returns how many arguments are still missing.
func (f Func) Remaining() int {
	return f.arity - f.n
}

// Call supplies one more argument. Once the declared arity is reached the
// function runs and its result is returned in Some; before that the
// returned Some holds the next partial Func. A nullary Func cannot take an
// argument and yields None, as does an argument of the wrong type.
func (f Func) Call(arg any) Option[any] {
	if f.arity == 0 || f.call == nil {
		return None[any]()
	}
	next := Func{
		call:  f.call,
		arity: f.arity,
		args:  &argStack{head: arg, tail: f.args},
		n:     f.n + 1,
	}
	if next.n < next.arity {
		return Some[any](next)
	}
	out, ok := next.call(next.args.ordered(next.n))
	if !ok {
		return None[any]()
	}
	return Some(out)
}

// Appl applies the Func held by fo to the value held by vo. Either side
// being None gives None without inspecting the other. A plain non-variadic
// Go function in fo is adapted with FuncOf; any other payload, variadic
// functions included, gives None.
func Appl[V any](fo Option[any], vo Option[V]) Option[any] {
	if !fo.present || !vo.present {
		return None[any]()
	}
	f, ok := asFunc(fo.value)
	if !ok {
		return None[any]()
	}
	return f.Call(vo.value)
}

func asFunc(v any) (Func, bool) {
	if f, ok := v.(Func); ok {
		return f, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() || rv.Type().IsVariadic() {
		return Func{}, false
	}
	return FuncOf(v), true
}

// ApplFunc is the curried form of Appl, taking the argument first so that
// arguments can be fed through Pipe.
func ApplFunc[V any](vo Option[V]) func(Option[any]) Option[any] {
	return func(fo Option[any]) Option[any] {
		return Appl(fo, vo)
	}
}

// ordered returns the n stacked arguments oldest first.
func (s *argStack) ordered(n int) []any {
	args := make([]any, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = s.head
		s = s.tail
	}
	return args
}

// argAs converts a received argument; nil stands for the zero value.
func argAs[T any](arg any) (T, bool) {
	if v, ok := arg.(T); ok {
		return v, true
	}
	var zero T
	return zero, arg == nil
}

func reflectArg(arg any, want reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		return reflect.Zero(want), true
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, false
	}
	return v, true
}
