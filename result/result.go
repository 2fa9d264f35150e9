package result

import "fmt"

// kind discriminates the four variants. The zero value is kindInitial, so the
// zero ResultState is a valid Initial instance.
type kind uint8

const (
	kindInitial kind = iota
	kindLoading
	kindData
	kindError
)

func (k kind) String() string {
	switch k {
	case kindInitial:
		return "initial"
	case kindLoading:
		return "loading"
	case kindData:
		return "data"
	case kindError:
		return "error"
	default:
		panic(fmt.Sprintf("exhaustive match fallback, kind: %d", k))
	}
}

// ResultState is the state of an asynchronous operation: Initial, Loading,
// Data carrying a T, or Error carrying an E.
//
// Exactly one variant is active, decided by the tag set at construction.
// Instances are immutable values; combinators return new instances and never
// mutate their inputs. The zero value is Initial.
//
// E is any caller-defined failure type. It does not have to implement the
// error interface; plain data is valid.
type ResultState[T, E any] struct {
	kind  kind
	value T
	err   E
}

// Initial returns the not-yet-started state.
func Initial[T, E any]() ResultState[T, E] {
	return ResultState[T, E]{kind: kindInitial}
}

// Loading returns the in-progress state.
func Loading[T, E any]() ResultState[T, E] {
	return ResultState[T, E]{kind: kindLoading}
}

// Data returns the succeeded state wrapping value.
//
// Any value of T is a legitimate success payload, including nil pointers and
// zero values; the state is carried by the tag alone.
func Data[T, E any](value T) ResultState[T, E] {
	return ResultState[T, E]{kind: kindData, value: value}
}

// Error returns the failed state wrapping err.
func Error[T, E any](err E) ResultState[T, E] {
	return ResultState[T, E]{kind: kindError, err: err}
}

// IsInitial reports whether the operation has not started.
func (r ResultState[T, E]) IsInitial() bool { return r.kind == kindInitial }

// IsLoading reports whether the operation is in flight.
func (r ResultState[T, E]) IsLoading() bool { return r.kind == kindLoading }

// IsSuccess reports whether the operation succeeded.
func (r ResultState[T, E]) IsSuccess() bool { return r.kind == kindData }

// HasData is a synonym for IsSuccess.
func (r ResultState[T, E]) HasData() bool { return r.IsSuccess() }

// IsError reports whether the operation failed.
func (r ResultState[T, E]) IsError() bool { return r.kind == kindError }

// HasError is a synonym for IsError.
func (r ResultState[T, E]) HasError() bool { return r.IsError() }

// IsLoadingOrInitial reports whether the operation has not completed yet.
func (r ResultState[T, E]) IsLoadingOrInitial() bool {
	return r.IsLoading() || r.IsInitial()
}

// IsCompleted reports whether the operation reached a terminal state,
// successfully or not.
func (r ResultState[T, E]) IsCompleted() bool {
	return r.IsSuccess() || r.IsError()
}

// IsDataOrError is a synonym for IsCompleted.
func (r ResultState[T, E]) IsDataOrError() bool { return r.IsCompleted() }

// Get returns the success value and true if the state is Data, or the zero T
// and false otherwise.
func (r ResultState[T, E]) Get() (T, bool) {
	if !r.IsSuccess() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// MustData returns the success value.
// It panics with a *DataNotFoundError if the state is not Data; guard with
// IsSuccess, or use Get or DataOr, when the state is uncertain.
func (r ResultState[T, E]) MustData() T {
	if !r.IsSuccess() {
		panic(&DataNotFoundError{State: r.kind.String(), Type: fmt.Sprintf("%T", r.value)})
	}
	return r.value
}

// GetError returns the failure value and true if the state is Error, or the
// zero E and false otherwise.
func (r ResultState[T, E]) GetError() (E, bool) {
	if !r.IsError() {
		var zero E
		return zero, false
	}
	return r.err, true
}

// MustError returns the failure value.
// It panics with an *ErrorNotFoundError if the state is not Error.
func (r ResultState[T, E]) MustError() E {
	if !r.IsError() {
		panic(&ErrorNotFoundError{State: r.kind.String(), Type: fmt.Sprintf("%T", r.err)})
	}
	return r.err
}

// DataOr returns the success value if the state is Data, else fallback.
func (r ResultState[T, E]) DataOr(fallback T) T {
	if !r.IsSuccess() {
		return fallback
	}
	return r.value
}

// ErrorOr returns the failure value if the state is Error, else fallback.
func (r ResultState[T, E]) ErrorOr(fallback E) E {
	if !r.IsError() {
		return fallback
	}
	return r.err
}

// String renders the state for logs and test failures.
func (r ResultState[T, E]) String() string {
	switch r.kind {
	case kindData:
		return fmt.Sprintf("Data(%v)", r.value)
	case kindError:
		return fmt.Sprintf("Error(%v)", r.err)
	case kindLoading:
		return "Loading"
	default:
		return "Initial"
	}
}
