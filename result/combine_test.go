package result_test

import (
	"testing"

	"github.com/FadyFayezYounan/async-result/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_ErrorBeatsEverything(t *testing.T) {
	combined := result.Combine(
		result.Error[int]("E1"),
		result.Loading[int, string](),
		result.Data[int, string](1),
	)
	assert.Equal(t, "E1", combined.MustError())
}

func TestCombine_FirstErrorInInputOrderWins(t *testing.T) {
	combined := result.Combine(
		result.Loading[int, string](),
		result.Error[int]("E1"),
		result.Error[int]("E2"),
	)
	assert.Equal(t, "E1", combined.MustError())
}

func TestCombine_LoadingBeatsIncompleteness(t *testing.T) {
	combined := result.Combine(
		result.Loading[int, string](),
		result.Data[int, string](1),
		result.Initial[int, string](),
	)
	assert.True(t, combined.IsLoading())
}

func TestCombine_AllDataYieldsDataInOrder(t *testing.T) {
	combined := result.Combine(
		result.Data[int, string](1),
		result.Data[int, string](2),
		result.Data[int, string](3),
	)
	assert.Equal(t, []int{1, 2, 3}, combined.MustData())
}

func TestCombine_InitialBesideDataYieldsInitial(t *testing.T) {
	// no Loading, no Error, not all Data: the combination has not completed
	combined := result.Combine(
		result.Initial[int, string](),
		result.Data[int, string](1),
	)
	assert.True(t, combined.IsInitial())
}

func TestCombine_EmptyYieldsEmptyData(t *testing.T) {
	combined := result.Combine[int, string]()
	require.True(t, combined.IsSuccess())
	assert.Empty(t, combined.MustData())
}

func TestCombine2(t *testing.T) {
	r := result.Combine2(
		result.Data[int, string](1),
		result.Data[string, string]("a"),
	)
	require.True(t, r.IsSuccess())
	pair := r.MustData()
	assert.Equal(t, 1, pair.V1)
	assert.Equal(t, "a", pair.V2)

	assert.Equal(t, "boom", result.Combine2(
		result.Data[int, string](1),
		result.Error[string]("boom"),
	).MustError())

	assert.True(t, result.Combine2(
		result.Loading[int, string](),
		result.Data[string, string]("a"),
	).IsLoading())

	assert.True(t, result.Combine2(
		result.Initial[int, string](),
		result.Data[string, string]("a"),
	).IsInitial())
}

func TestCombine3_PrecedenceAcrossHeterogeneousValues(t *testing.T) {
	r := result.Combine3(
		result.Data[int, string](1),
		result.Data[string, string]("a"),
		result.Data[bool, string](true),
	)
	require.True(t, r.IsSuccess())
	triple := r.MustData()
	assert.Equal(t, 1, triple.V1)
	assert.Equal(t, "a", triple.V2)
	assert.True(t, triple.V3)

	// first failure in input order, not the first input
	assert.Equal(t, "E2", result.Combine3(
		result.Loading[int, string](),
		result.Error[string]("E2"),
		result.Error[bool]("E3"),
	).MustError())
}

func TestCombine4(t *testing.T) {
	r := result.Combine4(
		result.Data[int, string](1),
		result.Data[int, string](2),
		result.Data[int, string](3),
		result.Data[int, string](4),
	)
	require.True(t, r.IsSuccess())
	quad := r.MustData()
	assert.Equal(t, [4]int{1, 2, 3, 4}, [4]int{quad.V1, quad.V2, quad.V3, quad.V4})

	assert.True(t, result.Combine4(
		result.Data[int, string](1),
		result.Data[int, string](2),
		result.Loading[int, string](),
		result.Initial[int, string](),
	).IsLoading())
}

func TestCombine5(t *testing.T) {
	r := result.Combine5(
		result.Data[int, string](1),
		result.Data[int, string](2),
		result.Data[int, string](3),
		result.Data[int, string](4),
		result.Data[int, string](5),
	)
	require.True(t, r.IsSuccess())
	five := r.MustData()
	assert.Equal(t, 15, five.V1+five.V2+five.V3+five.V4+five.V5)

	assert.Equal(t, "only", result.Combine5(
		result.Initial[int, string](),
		result.Loading[int, string](),
		result.Data[int, string](3),
		result.Error[int]("only"),
		result.Data[int, string](5),
	).MustError())
}
