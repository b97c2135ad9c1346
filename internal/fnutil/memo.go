package fnutil

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Memoize wraps a single-argument function with an LRU cache of the given
// size. Errors are not cached; a failed call is retried on the next lookup.
func Memoize[K comparable, V any](size int, fn func(K) (V, error)) (func(K) (V, error), error) {
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return func(key K) (V, error) {
		if v, ok := cache.Get(key); ok {
			return v, nil
		}
		v, err := fn(key)
		if err != nil {
			return v, err
		}
		cache.Add(key, v)
		return v, nil
	}, nil
}

// Once returns a function that computes fn on first call and returns the
// cached result thereafter. Single-assignment, no synchronization: callers
// in concurrent settings need their own locking.
func Once[T any](fn func() T) func() T {
	var (
		done bool
		val  T
	)
	return func() T {
		if !done {
			val = fn()
			done = true
		}
		return val
	}
}
