package result

// Tuple2 holds the values of two combined states.
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Tuple3 holds the values of three combined states.
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4 holds the values of four combined states.
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5 holds the values of five combined states.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Combining collapses several states into one under a strict precedence,
// evaluated left to right across the inputs:
//
//  1. any Error   -> Error wrapping the first failure in input order
//  2. any Loading -> Loading
//  3. all Data    -> Data wrapping the values in input order
//  4. otherwise   -> Initial
//
// Error beats loading beats incompleteness. In particular, one Initial next
// to a Data (no Loading, no Error) collapses to Initial, not Data: the
// combined operation has not fully completed.

// tagged erases the value type so heterogeneous combines can collapse tags
// and scan for the first failure in input order.
type tagged[E any] struct {
	kind kind
	err  E
}

func (r ResultState[T, E]) tagged() tagged[E] {
	return tagged[E]{kind: r.kind, err: r.err}
}

// collapse applies the combine precedence to the tags of the inputs. The
// returned failure value is meaningful only when the returned kind is
// kindError.
func collapse[E any](ts ...tagged[E]) (kind, E) {
	var zero E
	anyLoading := false
	allData := true
	for _, t := range ts {
		switch t.kind {
		case kindError:
			return kindError, t.err
		case kindLoading:
			anyLoading = true
			allData = false
		case kindInitial:
			allData = false
		}
	}
	if anyLoading {
		return kindLoading, zero
	}
	if allData {
		return kindData, zero
	}
	return kindInitial, zero
}

// Combine2 combines two states sharing a failure type into one state
// wrapping a Tuple2 of their values.
func Combine2[T1, T2, E any](
	r1 ResultState[T1, E],
	r2 ResultState[T2, E],
) ResultState[Tuple2[T1, T2], E] {
	switch k, e := collapse(r1.tagged(), r2.tagged()); k {
	case kindError:
		return Error[Tuple2[T1, T2]](e)
	case kindLoading:
		return Loading[Tuple2[T1, T2], E]()
	case kindData:
		return Data[Tuple2[T1, T2], E](Tuple2[T1, T2]{V1: r1.value, V2: r2.value})
	default:
		return Initial[Tuple2[T1, T2], E]()
	}
}

// Combine3 combines three states sharing a failure type into one state
// wrapping a Tuple3 of their values.
func Combine3[T1, T2, T3, E any](
	r1 ResultState[T1, E],
	r2 ResultState[T2, E],
	r3 ResultState[T3, E],
) ResultState[Tuple3[T1, T2, T3], E] {
	switch k, e := collapse(r1.tagged(), r2.tagged(), r3.tagged()); k {
	case kindError:
		return Error[Tuple3[T1, T2, T3]](e)
	case kindLoading:
		return Loading[Tuple3[T1, T2, T3], E]()
	case kindData:
		return Data[Tuple3[T1, T2, T3], E](Tuple3[T1, T2, T3]{V1: r1.value, V2: r2.value, V3: r3.value})
	default:
		return Initial[Tuple3[T1, T2, T3], E]()
	}
}

// Combine4 combines four states sharing a failure type into one state
// wrapping a Tuple4 of their values.
func Combine4[T1, T2, T3, T4, E any](
	r1 ResultState[T1, E],
	r2 ResultState[T2, E],
	r3 ResultState[T3, E],
	r4 ResultState[T4, E],
) ResultState[Tuple4[T1, T2, T3, T4], E] {
	switch k, e := collapse(r1.tagged(), r2.tagged(), r3.tagged(), r4.tagged()); k {
	case kindError:
		return Error[Tuple4[T1, T2, T3, T4]](e)
	case kindLoading:
		return Loading[Tuple4[T1, T2, T3, T4], E]()
	case kindData:
		return Data[Tuple4[T1, T2, T3, T4], E](
			Tuple4[T1, T2, T3, T4]{V1: r1.value, V2: r2.value, V3: r3.value, V4: r4.value})
	default:
		return Initial[Tuple4[T1, T2, T3, T4], E]()
	}
}

// Combine5 combines five states sharing a failure type into one state
// wrapping a Tuple5 of their values.
func Combine5[T1, T2, T3, T4, T5, E any](
	r1 ResultState[T1, E],
	r2 ResultState[T2, E],
	r3 ResultState[T3, E],
	r4 ResultState[T4, E],
	r5 ResultState[T5, E],
) ResultState[Tuple5[T1, T2, T3, T4, T5], E] {
	switch k, e := collapse(r1.tagged(), r2.tagged(), r3.tagged(), r4.tagged(), r5.tagged()); k {
	case kindError:
		return Error[Tuple5[T1, T2, T3, T4, T5]](e)
	case kindLoading:
		return Loading[Tuple5[T1, T2, T3, T4, T5], E]()
	case kindData:
		return Data[Tuple5[T1, T2, T3, T4, T5], E](
			Tuple5[T1, T2, T3, T4, T5]{V1: r1.value, V2: r2.value, V3: r3.value, V4: r4.value, V5: r5.value})
	default:
		return Initial[Tuple5[T1, T2, T3, T4, T5], E]()
	}
}

// Combine combines an arbitrary-length homogeneous sequence of states into
// one state wrapping the slice of their values in input order, under the same
// precedence as Combine2..Combine5. Combining zero states yields Data of an
// empty slice, every input being vacuously Data.
func Combine[T, E any](rs ...ResultState[T, E]) ResultState[[]T, E] {
	if e, ok := FirstError(rs); ok {
		return Error[[]T](e)
	}
	if AnyLoading(rs) {
		return Loading[[]T, E]()
	}
	if !AllSuccess(rs) {
		return Initial[[]T, E]()
	}
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		values = append(values, r.value)
	}
	return Data[[]T, E](values)
}
