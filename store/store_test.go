package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FadyFayezYounan/async-result/store"
)

func TestStore_StartsInitial(t *testing.T) {
	s := store.New[int, error]()
	assert.True(t, s.State().IsInitial())
}

func TestStore_Transitions(t *testing.T) {
	s := store.New[int, error](store.WithLogger(zap.NewNop()))

	assert.True(t, s.SetLoading().IsLoading())
	assert.True(t, s.State().IsLoading())

	assert.Equal(t, 42, s.SetData(42).MustData())
	assert.Equal(t, 42, s.State().MustData())

	boom := errors.New("boom")
	assert.Equal(t, boom, s.SetError(boom).MustError())
	assert.Equal(t, boom, s.State().MustError())

	assert.True(t, s.Reset().IsInitial())
	assert.True(t, s.State().IsInitial())
}

func TestStore_SubscribeObservesTransitions(t *testing.T) {
	s := store.New[int, error]()

	var changes []store.Change[int, error]
	id, cancel := s.Subscribe(func(c store.Change[int, error]) {
		changes = append(changes, c)
	})
	assert.NotEmpty(t, id)

	s.SetLoading()
	s.SetData(1)

	require.Len(t, changes, 2)
	assert.True(t, changes[0].Old.IsInitial())
	assert.True(t, changes[0].New.IsLoading())
	assert.True(t, changes[1].Old.IsLoading())
	assert.Equal(t, 1, changes[1].New.MustData())
	assert.NotZero(t, changes[0].Span)

	cancel()
	s.SetError(errors.New("late"))
	assert.Len(t, changes, 2, "canceled subscription must not observe further transitions")
}

func TestStore_SubscriptionIdsAreUnique(t *testing.T) {
	s := store.New[int, error]()
	seen := make(map[string]struct{})
	for range 10 {
		id, cancel := s.Subscribe(func(store.Change[int, error]) {})
		_, dup := seen[id]
		assert.False(t, dup, "duplicate subscription id %s", id)
		seen[id] = struct{}{}
		defer cancel()
	}
}

func TestStore_ConcurrentTransitions(t *testing.T) {
	s := store.New[int, error]()
	var observed atomic.Int64
	_, cancel := s.Subscribe(func(store.Change[int, error]) {
		observed.Add(1)
	})
	defer cancel()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetData(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), observed.Load())
	assert.True(t, s.State().IsSuccess())
}

func TestGuard_Success(t *testing.T) {
	s := store.New[string, error]()

	var loadingSeen atomic.Bool
	_, cancel := s.Subscribe(func(c store.Change[string, error]) {
		if c.New.IsLoading() {
			loadingSeen.Store(true)
		}
	})
	defer cancel()

	final := store.Guard(context.Background(), s, func(context.Context) (string, error) {
		return "payload", nil
	})

	assert.Equal(t, "payload", final.MustData())
	assert.Equal(t, "payload", s.State().MustData())
	assert.True(t, loadingSeen.Load(), "Guard must pass through Loading before completing")
}

func TestGuard_Failure(t *testing.T) {
	s := store.New[string, error]()
	boom := errors.New("boom")

	final := store.Guard(context.Background(), s, func(context.Context) (string, error) {
		return "", boom
	})

	assert.Equal(t, boom, final.MustError())
	assert.Equal(t, boom, s.State().MustError())
}

func TestGuard_CanceledContext(t *testing.T) {
	s := store.New[string, error]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	final := store.Guard(ctx, s, func(context.Context) (string, error) {
		ran = true
		return "never", nil
	})

	assert.False(t, ran, "fn must not run under an already-canceled context")
	assert.ErrorIs(t, final.MustError(), context.Canceled)
}

func TestGuardAll_AllSucceed(t *testing.T) {
	final := store.GuardAll(context.Background(), 0,
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (int, error) { return 2, nil },
		func(context.Context) (int, error) { return 3, nil },
	)
	assert.Equal(t, []int{1, 2, 3}, final.MustData())
}

func TestGuardAll_FirstFailureInArgumentOrderWins(t *testing.T) {
	e1 := errors.New("E1")
	e2 := errors.New("E2")

	var release sync.WaitGroup
	release.Add(1)
	final := store.GuardAll(context.Background(), 0,
		func(context.Context) (int, error) {
			release.Wait() // fail after the later slot already failed
			return 0, e1
		},
		func(context.Context) (int, error) {
			defer release.Done()
			return 0, e2
		},
	)
	assert.Equal(t, e1, final.MustError())
}

func TestGuardAll_RespectsLimit(t *testing.T) {
	var running, peak atomic.Int64
	fn := func(context.Context) (int, error) {
		cur := running.Add(1)
		defer running.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		return 0, nil
	}

	final := store.GuardAll(context.Background(), 2, fn, fn, fn, fn, fn, fn)
	assert.True(t, final.IsSuccess())
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestGuardAll_NoFns(t *testing.T) {
	final := store.GuardAll[int](context.Background(), 0)
	require.True(t, final.IsSuccess())
	assert.Empty(t, final.MustData())
}
