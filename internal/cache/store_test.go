package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesValue(t *testing.T) {
	store := NewStore(0)
	var calls int32

	fn := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.Fetch(context.Background(), NewKey("poojas"), fn)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchDistinctKeysDistinctEntries(t *testing.T) {
	store := NewStore(0)
	var calls int32

	fn := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	v1, err := store.Fetch(context.Background(), NewKey("devotees", "ram"), fn)
	require.NoError(t, err)
	v2, err := store.Fetch(context.Background(), NewKey("devotees", "shyam"), fn)
	require.NoError(t, err)

	assert.NotEqual(t, v1, v2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConcurrentFetchesShareOneCall(t *testing.T) {
	store := NewStore(0)
	var calls int32
	release := make(chan struct{})

	fn := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	const workers = 10
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := store.Fetch(context.Background(), NewKey("bookings"), fn)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give every worker a chance to join the flight before releasing it
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestInvalidateTriggersRefetch(t *testing.T) {
	store := NewStore(0)
	var calls int32

	fn := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	v, err := store.Fetch(context.Background(), NewKey("festivals"), fn)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	store.Invalidate(NewKey("festivals"))

	v, err = store.Fetch(context.Background(), NewKey("festivals"), fn)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestInvalidationDuringFlightDiscardsResult(t *testing.T) {
	store := NewStore(0)
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fn := func(ctx context.Context) (any, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			close(started)
			<-release
			return "stale", nil
		}
		return "fresh", nil
	}

	done := make(chan any)
	go func() {
		v, err := store.Fetch(context.Background(), NewKey("campaigns"), fn)
		require.NoError(t, err)
		done <- v
	}()

	<-started
	store.Invalidate(NewKey("campaigns"))
	close(release)

	// The in-flight result was made stale mid-fetch, so the caller must
	// see the refetched value, not the one that raced with the write.
	assert.Equal(t, "fresh", <-done)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	v, err := store.Fetch(context.Background(), NewKey("campaigns"), func(ctx context.Context) (any, error) {
		t.Fatal("should not refetch a fresh entry")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestErrorsPropagateAndAreNotCached(t *testing.T) {
	store := NewStore(0)
	var calls int32
	boom := errors.New("db down")

	fn := func(ctx context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := store.Fetch(context.Background(), NewKey("inventory"), fn)
	assert.ErrorIs(t, err, boom)

	v, err := store.Fetch(context.Background(), NewKey("inventory"), fn)
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestTTLExpiresEntries(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	var calls int32

	fn := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, err := store.Fetch(context.Background(), NewKey("transactions"), fn)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	v, err := store.Fetch(context.Background(), NewKey("transactions"), fn)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestInvalidatePrefixRespectsSegmentBoundaries(t *testing.T) {
	store := NewStore(0)
	var devoteeCalls, registerCalls int32

	devotees := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&devoteeCalls, 1), nil
	}
	register := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&registerCalls, 1), nil
	}

	_, err := store.Fetch(context.Background(), NewKey("devotees", "ram"), devotees)
	require.NoError(t, err)
	_, err = store.Fetch(context.Background(), NewKey("devotees-register"), register)
	require.NoError(t, err)

	store.Invalidate(NewKey("devotees"))

	_, err = store.Fetch(context.Background(), NewKey("devotees", "ram"), devotees)
	require.NoError(t, err)
	_, err = store.Fetch(context.Background(), NewKey("devotees-register"), register)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&devoteeCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&registerCalls))
}

func TestResolveReturnsTypedValue(t *testing.T) {
	store := NewStore(0)

	names, err := Resolve(context.Background(), store, NewKey("poojas"), func(ctx context.Context) ([]string, error) {
		return []string{"Ganesh Pooja", "Archana"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ganesh Pooja", "Archana"}, names)
}

func TestResolveRejectsMistypedCachedValue(t *testing.T) {
	store := NewStore(0)
	key := NewKey("poojas")

	_, err := Resolve(context.Background(), store, key, func(ctx context.Context) ([]string, error) {
		return []string{"Archana"}, nil
	})
	require.NoError(t, err)

	// The same key read as a different type is a caller bug, not an empty list
	_, err = Resolve(context.Background(), store, key, func(ctx context.Context) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[]string")
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	store := NewStore(0)
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = store.Fetch(context.Background(), NewKey("slow"), func(ctx context.Context) (any, error) {
			<-release
			return "late", nil
		})
	}()

	// Second caller joins the flight, then gives up when its context ends.
	time.Sleep(20 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := store.Fetch(ctx, NewKey("slow"), func(ctx context.Context) (any, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
