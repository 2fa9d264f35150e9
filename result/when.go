package result

import "fmt"

// When dispatches exhaustively on r's variant: exactly one of the four
// handlers fires and its result is returned. All handlers are required;
// passing a nil handler panics, since a missing arm is a bug at the call
// site, not a runtime condition.
//
// Go cannot verify the match at compile time the way a sealed-union pattern
// match would, so the four mandatory parameters stand in for exhaustiveness:
// every call site spells out every arm.
func When[T, E, R any](
	r ResultState[T, E],
	onInitial func() R,
	onLoading func() R,
	onData func(T) R,
	onError func(E) R,
) R {
	if onInitial == nil || onLoading == nil || onData == nil || onError == nil {
		panic(fmt.Sprintf("result: When with nil handler, state: %s", r.kind))
	}
	switch r.kind {
	case kindInitial:
		return onInitial()
	case kindLoading:
		return onLoading()
	case kindData:
		return onData(r.value)
	case kindError:
		return onError(r.err)
	default:
		panic(fmt.Sprintf("exhaustive match fallback, kind: %d", r.kind))
	}
}

// Handlers is an optional handler per variant, for the partial dispatchers.
// Nil fields mean "no handler for that state". Explicit per-state fields keep
// the four arms visible at the call site; there is deliberately no map keyed
// by state.
type Handlers[T, E, R any] struct {
	OnInitial func() R
	OnLoading func() R
	OnData    func(T) R
	OnError   func(E) R
}

// MaybeWhen invokes the handler matching r's variant if one is set, and
// orElse otherwise. orElse is required.
func MaybeWhen[T, E, R any](r ResultState[T, E], orElse func() R, h Handlers[T, E, R]) R {
	if orElse == nil {
		panic("result: MaybeWhen requires an orElse fallback")
	}
	if out, ok := TryWhen(r, h); ok {
		return out
	}
	return orElse()
}

// TryWhen invokes the handler matching r's variant if one is set, returning
// its result and true; it returns the zero R and false when no handler covers
// the active variant.
func TryWhen[T, E, R any](r ResultState[T, E], h Handlers[T, E, R]) (R, bool) {
	var zero R
	switch r.kind {
	case kindInitial:
		if h.OnInitial == nil {
			return zero, false
		}
		return h.OnInitial(), true
	case kindLoading:
		if h.OnLoading == nil {
			return zero, false
		}
		return h.OnLoading(), true
	case kindData:
		if h.OnData == nil {
			return zero, false
		}
		return h.OnData(r.value), true
	case kindError:
		if h.OnError == nil {
			return zero, false
		}
		return h.OnError(r.err), true
	default:
		panic(fmt.Sprintf("exhaustive match fallback, kind: %d", r.kind))
	}
}

// WhenInitial invokes fn and returns its result and true iff r is Initial.
func WhenInitial[T, E, R any](r ResultState[T, E], fn func() R) (R, bool) {
	return TryWhen(r, Handlers[T, E, R]{OnInitial: fn})
}

// WhenLoading invokes fn and returns its result and true iff r is Loading.
func WhenLoading[T, E, R any](r ResultState[T, E], fn func() R) (R, bool) {
	return TryWhen(r, Handlers[T, E, R]{OnLoading: fn})
}

// WhenData invokes fn with the success value and returns its result and true
// iff r is Data.
func WhenData[T, E, R any](r ResultState[T, E], fn func(T) R) (R, bool) {
	return TryWhen(r, Handlers[T, E, R]{OnData: fn})
}

// WhenError invokes fn with the failure value and returns its result and true
// iff r is Error.
func WhenError[T, E, R any](r ResultState[T, E], fn func(E) R) (R, bool) {
	return TryWhen(r, Handlers[T, E, R]{OnError: fn})
}
