package schema

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store caches one value per key for its whole lifetime
type Store[V any] interface {
	// GetOrCompute returns the cached value of key, computing it on first use.
	// Concurrent callers of a missing key share one computation; errors are not cached.
	GetOrCompute(key string, compute func() (V, error)) (V, error)
}

// AnnotationCache per-class annotation properties, usually shared process wide
type AnnotationCache = Store[*ClassProperties]

// SyncStore Store backed by sync.Map, the zero value is ready to use
type SyncStore[V any] struct {
	values sync.Map
	group  singleflight.Group
}

// NewStore creates an empty store
func NewStore[V any]() *SyncStore[V] {
	return &SyncStore[V]{}
}

// GetOrCompute implements Store
func (s *SyncStore[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := s.values.Load(key); ok {
		return v.(V), nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if v, ok := s.values.Load(key); ok {
			return v, nil
		}

		v, err := compute()
		if err != nil {
			return nil, err
		}

		actual, _ := s.values.LoadOrStore(key, v)
		return actual, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len number of cached keys
func (s *SyncStore[V]) Len() (n int) {
	s.values.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return
}
