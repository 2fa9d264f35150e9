// Package result provides a four-state value type for asynchronous operations.
//
// A ResultState models the lifecycle of one async operation as a closed sum of
// four variants:
//
//	Initial  : the operation has not started
//	Loading  : the operation is in flight
//	Data     : the operation succeeded, carrying a value of type T
//	Error    : the operation failed, carrying a failure of type E
//
// # Why a sum type?
//
// Go has no native sum types, but it does have generics, a zero value, and
// struct immutability by convention. ResultState leverages these to make the
// invalid states unrepresentable in practice: exactly one variant tag is set
// at construction time, payloads are only reachable through tag-checked
// accessors, and every combinator is total over all four variants.
//
// The variant tag, not the payload, decides the state. A Data holding a nil
// pointer or a zero value is still success; an Error holding a zero E is
// still failure. Never infer the state from the payload.
//
// # What this package is not
//
// ResultState does not run or await anything. It is the synchronous snapshot
// of an operation that something else drives: callers construct instances
// from already-resolved values or errors and swap them into whatever holds
// the current state (see the store package for one such holder). There is no
// retry, no backoff, no stream, only the current known state and pure
// functions over it.
//
// # Combinators
//
// When is the exhaustive-match primitive: four handlers, one per variant,
// exactly one fires. Everything else is derived from the same dispatch:
// partial matches (MaybeWhen, TryWhen, WhenData, ...), transformations
// (Map, MapError, BiMap, FlatMap, Recover, Validate, Filter, Swap, Tap),
// and collection-level aggregation (AllSuccess, AnyLoading, DataSeq,
// Combine2..Combine5, Combine).
//
// Combination collapses many states into one under a strict precedence:
// the first Error wins, then Loading, then Data only when every input is
// Data, and Initial otherwise. Error beats loading beats incompleteness.
package result
