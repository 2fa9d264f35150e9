package result

import "fmt"

// DataNotFoundError is the panic payload of MustData on a non-Data state.
// It names the expected success type and the variant that was actually
// active. It signals a programming error at the call site, not a failed
// operation; operation failures live in the Error variant's payload.
type DataNotFoundError struct {
	State string // active variant: "initial", "loading" or "error"
	Type  string // expected success payload type
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("result: no data of type %s: state is %s", e.Type, e.State)
}

// ErrorNotFoundError is the panic payload of MustError on a non-Error state.
type ErrorNotFoundError struct {
	State string // active variant: "initial", "loading" or "data"
	Type  string // expected failure payload type
}

func (e *ErrorNotFoundError) Error() string {
	return fmt.Sprintf("result: no error of type %s: state is %s", e.Type, e.State)
}
