package schema

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStoreGetOrCompute(t *testing.T) {
	var (
		store SyncStore[int]
		calls int
	)

	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := store.GetOrCompute("answer", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = store.GetOrCompute("answer", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, store.Len())
}

func TestSyncStoreErrorsAreNotCached(t *testing.T) {
	var (
		store   = NewStore[string]()
		failure = errors.New("boom")
	)

	_, err := store.GetOrCompute("key", func() (string, error) { return "", failure })
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 0, store.Len())

	v, err := store.GetOrCompute("key", func() (string, error) { return "value", nil })
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}

func TestSyncStoreConcurrentCompute(t *testing.T) {
	var (
		store   = NewStore[*ClassProperties]()
		calls   int32
		release = make(chan struct{})
		wg      sync.WaitGroup
		results = make([]*ClassProperties, 8)
	)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := store.GetOrCompute("Book", func() (*ClassProperties, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return &ClassProperties{Class: "Book"}, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	close(release)
	wg.Wait()

	for _, v := range results {
		assert.Same(t, results[0], v)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(len(results)))
}
