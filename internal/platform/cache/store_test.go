package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "roster", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "squad:kbo", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "roster" {
				errCh <- errors.New("unexpected loaded value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, calls.Load())
}

func TestStore_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 28, 18, 30, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "season:kbo", 2026)
	v, ok := store.Get(context.Background(), "season:kbo")
	require.True(t, ok)
	assert.Equal(t, 2026, v)
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	_, ok = store.Get(context.Background(), "season:kbo")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("db down")
	}

	_, err := Load(context.Background(), store, "player:1", failing)
	require.Error(t, err)
	_, err = Load(context.Background(), store, "player:1", failing)
	require.Error(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestLoad_TypeMismatch(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	store.Set(context.Background(), "k", "text")

	_, err := Load(context.Background(), store, "k", func(context.Context) (int, error) { return 1, nil })
	assert.ErrorContains(t, err, "holds string")
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "games:kbo:results", 1)
	store.Set(ctx, "games:kbo:schedule", 2)
	store.Set(ctx, "games:nba:results", 3)

	store.DeletePrefix(ctx, "games:kbo:")

	_, ok := store.Get(ctx, "games:kbo:results")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "games:nba:results")
	assert.True(t, ok)
}

func TestStore_SweepsKeysThatAreNeverReadAgain(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1440; i++ {
		now = now.Add(time.Minute)
		key := fmt.Sprintf("games:kbo:STATUS_FINAL:%d:-:1:20", now.Unix())
		_, err := Load(ctx, store, key, func(context.Context) (int, error) { return i, nil })
		require.NoError(t, err)
	}

	assert.Equal(t, 1, store.Len())
	store.mu.RLock()
	retained := len(store.entries)
	store.mu.RUnlock()
	assert.LessOrEqual(t, retained, 2)
}

func TestStore_NoTTLKeepsEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		store.Set(ctx, fmt.Sprintf("league:%d", i), i)
	}
	assert.Equal(t, 10, store.Len())
}
