package result

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equatable lets a payload type define its own value equality. When a payload
// implements it, Equal consults Equals instead of reflect.DeepEqual.
type Equatable interface {
	Equals(other any) bool
}

func payloadEqual(a, b any) bool {
	if eq, ok := a.(Equatable); ok {
		return eq.Equals(b)
	}
	return reflect.DeepEqual(a, b)
}

// Equal reports value equality: the variant tags match and, for Data and
// Error, the payloads are equal. Initial equals Initial and Loading equals
// Loading unconditionally.
func (r ResultState[T, E]) Equal(other ResultState[T, E]) bool {
	if r.kind != other.kind {
		return false
	}
	switch r.kind {
	case kindData:
		return payloadEqual(r.value, other.value)
	case kindError:
		return payloadEqual(r.err, other.err)
	default:
		return true
	}
}

// Hash returns a hash consistent with Equal for payloads whose String/verb
// rendering agrees with their equality: equal states hash equally.
func (r ResultState[T, E]) Hash() uint64 {
	switch r.kind {
	case kindData:
		return xxhash.Sum64String(fmt.Sprintf("data:%v", r.value))
	case kindError:
		return xxhash.Sum64String(fmt.Sprintf("error:%v", r.err))
	case kindLoading:
		return xxhash.Sum64String("loading")
	default:
		return xxhash.Sum64String("initial")
	}
}
