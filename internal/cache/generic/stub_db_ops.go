package generic

import (
	"context"
	"sync"
)

// StubDatabaseOperations is a configurable in-memory implementation of
// DatabaseOperations for tests. Generics keep it out of reach of the usual
// mock generators, so it is maintained by hand. Thread-safe.
type StubDatabaseOperations[K comparable, V any] struct {
	mu sync.Mutex

	// Behavior overrides. Defaults are no-ops that succeed.
	LoadAllFunc func(ctx context.Context) (map[K]V, error)
	PersistFunc func(ctx context.Context, key K, value V) error
	DeleteFunc  func(ctx context.Context, key K) error

	loadAllCalls int
	persistCalls []persistCall[K, V]
	deleteCalls  []K
}

type persistCall[K comparable, V any] struct {
	key   K
	value V
}

// NewStubDatabaseOperations creates a stub whose operations succeed and
// return empty results until overridden.
func NewStubDatabaseOperations[K comparable, V any]() *StubDatabaseOperations[K, V] {
	return &StubDatabaseOperations[K, V]{
		LoadAllFunc: func(ctx context.Context) (map[K]V, error) {
			return make(map[K]V), nil
		},
		PersistFunc: func(ctx context.Context, key K, value V) error {
			return nil
		},
		DeleteFunc: func(ctx context.Context, key K) error {
			return nil
		},
	}
}

// LoadAll implements DatabaseOperations.LoadAll.
func (s *StubDatabaseOperations[K, V]) LoadAll(ctx context.Context) (map[K]V, error) {
	s.mu.Lock()
	s.loadAllCalls++
	s.mu.Unlock()

	return s.LoadAllFunc(ctx)
}

// Persist implements DatabaseOperations.Persist.
func (s *StubDatabaseOperations[K, V]) Persist(ctx context.Context, key K, value V) error {
	s.mu.Lock()
	s.persistCalls = append(s.persistCalls, persistCall[K, V]{key: key, value: value})
	s.mu.Unlock()

	return s.PersistFunc(ctx, key, value)
}

// Delete implements DatabaseOperations.Delete.
func (s *StubDatabaseOperations[K, V]) Delete(ctx context.Context, key K) error {
	s.mu.Lock()
	s.deleteCalls = append(s.deleteCalls, key)
	s.mu.Unlock()

	return s.DeleteFunc(ctx, key)
}

// LoadAllCalls returns how many times LoadAll ran.
func (s *StubDatabaseOperations[K, V]) LoadAllCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAllCalls
}

// PersistCalls returns how many times Persist ran.
func (s *StubDatabaseOperations[K, V]) PersistCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.persistCalls)
}

// DeleteCalls returns how many times Delete ran.
func (s *StubDatabaseOperations[K, V]) DeleteCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deleteCalls)
}

// LastPersisted returns the key and value of the most recent Persist call.
// The bool is false when Persist has not run.
func (s *StubDatabaseOperations[K, V]) LastPersisted() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.persistCalls) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	last := s.persistCalls[len(s.persistCalls)-1]
	return last.key, last.value, true
}

// LastDeleted returns the key of the most recent Delete call.
// The bool is false when Delete has not run.
func (s *StubDatabaseOperations[K, V]) LastDeleted() (K, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.deleteCalls) == 0 {
		var zero K
		return zero, false
	}
	return s.deleteCalls[len(s.deleteCalls)-1], true
}
