package option

// Ap applies the function held by fo to the value held by o. Combined with
// the Curry helpers it saturates an n-ary function one Option at a time:
//
//	Ap(Ap(Some(Curry2(add)), Some(1)), Some(2)) // Some(3)
func Ap[A, B any](fo Option[func(A) B], o Option[A]) Option[B] {
	if !fo.present || !o.present {
		return None[B]()
	}
	return Some(fo.value(o.value))
}

// Curry2 converts a two-argument function to curried form.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 converts a three-argument function to curried form.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Curry4 converts a four-argument function to curried form.
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return fn(a, b, c, d)
				}
			}
		}
	}
}

// Map2 applies fn when both options are present.
func Map2[A, B, R any](a Option[A], b Option[B], fn func(A, B) R) Option[R] {
	return Ap(Ap(Some(Curry2(fn)), a), b)
}

// Map3 applies fn when all three options are present.
func Map3[A, B, C, R any](a Option[A], b Option[B], c Option[C], fn func(A, B, C) R) Option[R] {
	return Ap(Ap(Ap(Some(Curry3(fn)), a), b), c)
}
