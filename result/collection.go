package result

import "iter"

// AllComplete reports whether every state in rs is Data or Error.
// Vacuously true for an empty slice.
func AllComplete[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if !r.IsCompleted() {
			return false
		}
	}
	return true
}

// AllSuccess reports whether every state in rs is Data.
// Vacuously true for an empty slice.
func AllSuccess[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if !r.IsSuccess() {
			return false
		}
	}
	return true
}

// AllError reports whether every state in rs is Error.
// Vacuously true for an empty slice.
func AllError[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if !r.IsError() {
			return false
		}
	}
	return true
}

// AnyError reports whether at least one state in rs is Error.
func AnyError[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if r.IsError() {
			return true
		}
	}
	return false
}

// AnyLoading reports whether at least one state in rs is Loading.
func AnyLoading[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if r.IsLoading() {
			return true
		}
	}
	return false
}

// AnyComplete reports whether at least one state in rs is Data or Error.
func AnyComplete[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if r.IsCompleted() {
			return true
		}
	}
	return false
}

// AnySuccess reports whether at least one state in rs is Data.
func AnySuccess[T, E any](rs []ResultState[T, E]) bool {
	for _, r := range rs {
		if r.IsSuccess() {
			return true
		}
	}
	return false
}

// DataSeq yields the success values of rs in input order, skipping every
// non-Data state. The sequence is lazy and restartable: each range re-scans
// rs from the start.
func DataSeq[T, E any](rs []ResultState[T, E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range rs {
			if !r.IsSuccess() {
				continue
			}
			if !yield(r.value) {
				return
			}
		}
	}
}

// ErrorSeq yields the failure values of rs in input order, skipping every
// non-Error state. Lazy and restartable, like DataSeq.
func ErrorSeq[T, E any](rs []ResultState[T, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, r := range rs {
			if !r.IsError() {
				continue
			}
			if !yield(r.err) {
				return
			}
		}
	}
}

// FirstData returns the success value of the first Data state in rs, in
// input order, and whether one was found.
func FirstData[T, E any](rs []ResultState[T, E]) (T, bool) {
	for _, r := range rs {
		if r.IsSuccess() {
			return r.value, true
		}
	}
	var zero T
	return zero, false
}

// FirstError returns the failure value of the first Error state in rs, in
// input order, and whether one was found.
func FirstError[T, E any](rs []ResultState[T, E]) (E, bool) {
	for _, r := range rs {
		if r.IsError() {
			return r.err, true
		}
	}
	var zero E
	return zero, false
}
