package result

// Map applies fn to the success value, leaving the other variants untouched
// apart from re-tagging them with the new value type.
func Map[T, E, R any](r ResultState[T, E], fn func(T) R) ResultState[R, E] {
	switch r.kind {
	case kindData:
		return Data[R, E](fn(r.value))
	case kindError:
		return Error[R](r.err)
	case kindLoading:
		return Loading[R, E]()
	default:
		return Initial[R, E]()
	}
}

// MapError applies fn to the failure value, leaving the other variants
// untouched apart from re-tagging them with the new failure type.
func MapError[T, E, F any](r ResultState[T, E], fn func(E) F) ResultState[T, F] {
	switch r.kind {
	case kindError:
		return Error[T](fn(r.err))
	case kindData:
		return Data[T, F](r.value)
	case kindLoading:
		return Loading[T, F]()
	default:
		return Initial[T, F]()
	}
}

// BiMap applies onData to a success value or onError to a failure value,
// whichever matches the active variant.
func BiMap[T, E, R, F any](r ResultState[T, E], onData func(T) R, onError func(E) F) ResultState[R, F] {
	switch r.kind {
	case kindData:
		return Data[R, F](onData(r.value))
	case kindError:
		return Error[R](onError(r.err))
	case kindLoading:
		return Loading[R, F]()
	default:
		return Initial[R, F]()
	}
}

// FlatMap invokes fn on the success value and returns the produced state
// directly, with no extra wrapping. Non-Data variants pass through re-tagged.
func FlatMap[T, E, R any](r ResultState[T, E], fn func(T) ResultState[R, E]) ResultState[R, E] {
	switch r.kind {
	case kindData:
		return fn(r.value)
	case kindError:
		return Error[R](r.err)
	case kindLoading:
		return Loading[R, E]()
	default:
		return Initial[R, E]()
	}
}

// Swap exchanges the Data and Error payloads: Data(v) becomes Error(v) and
// Error(e) becomes Data(e). Initial and Loading are unchanged apart from the
// flipped type parameters. Swapping twice restores the original state.
func Swap[T, E any](r ResultState[T, E]) ResultState[E, T] {
	switch r.kind {
	case kindData:
		return Error[E](r.value)
	case kindError:
		return Data[E, T](r.err)
	case kindLoading:
		return Loading[E, T]()
	default:
		return Initial[E, T]()
	}
}

// Recover converts a failure into a success using fn. Every other variant,
// including existing Data, is returned unchanged; Recover never replaces a
// value that is already there.
//
// This is a pure data transform. It does not re-run anything.
func (r ResultState[T, E]) Recover(fn func(E) T) ResultState[T, E] {
	if !r.IsError() {
		return r
	}
	return Data[T, E](fn(r.err))
}

// MapWhere applies fn to the success value only when pred holds for it;
// otherwise r is returned unchanged.
func (r ResultState[T, E]) MapWhere(pred func(T) bool, fn func(T) T) ResultState[T, E] {
	if !r.IsSuccess() || !pred(r.value) {
		return r
	}
	return Data[T, E](fn(r.value))
}

// MapErrorWhere applies fn to the failure value only when pred holds for it;
// otherwise r is returned unchanged.
func (r ResultState[T, E]) MapErrorWhere(pred func(E) bool, fn func(E) E) ResultState[T, E] {
	if !r.IsError() || !pred(r.err) {
		return r
	}
	return Error[T](fn(r.err))
}

// Validate demotes a success whose value fails pred into an Error built by
// onInvalid, which receives the rejected value. Every other variant, and any
// success passing pred, is returned unchanged.
func (r ResultState[T, E]) Validate(pred func(T) bool, onInvalid func(T) E) ResultState[T, E] {
	if !r.IsSuccess() || pred(r.value) {
		return r
	}
	return Error[T](onInvalid(r.value))
}

// Filter demotes a success whose value fails pred into an Error built by
// onReject. Unlike Validate's builder, onReject takes no argument; the two
// signatures are kept distinct on purpose, call sites depend on both shapes.
func (r ResultState[T, E]) Filter(pred func(T) bool, onReject func() E) ResultState[T, E] {
	if !r.IsSuccess() || pred(r.value) {
		return r
	}
	return Error[T](onReject())
}

// Observers is an optional side-effect callback per variant, for Tap.
type Observers[T, E any] struct {
	OnInitial func()
	OnLoading func()
	OnData    func(T)
	OnError   func(E)
}

// Tap invokes the observer matching r's variant, if set, and returns r
// itself. It exists purely for observation, logging, metrics, debugging,
// and never constructs a new state.
func (r ResultState[T, E]) Tap(obs Observers[T, E]) ResultState[T, E] {
	switch r.kind {
	case kindInitial:
		if obs.OnInitial != nil {
			obs.OnInitial()
		}
	case kindLoading:
		if obs.OnLoading != nil {
			obs.OnLoading()
		}
	case kindData:
		if obs.OnData != nil {
			obs.OnData(r.value)
		}
	case kindError:
		if obs.OnError != nil {
			obs.OnError(r.err)
		}
	}
	return r
}

// Any reports whether r is a success whose value satisfies pred. All other
// variants report false.
func (r ResultState[T, E]) Any(pred func(T) bool) bool {
	return r.IsSuccess() && pred(r.value)
}
