package generic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// TestLoad verifies that Load populates the cache from storage.
func TestLoad(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	stub.LoadAllFunc = func(ctx context.Context) (map[string]string, error) {
		return map[string]string{
			"ops-console-1": "dispatches",
			"ops-console-2": "tasks",
			"ops-console-3": "workers",
		}, nil
	}

	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if count := stub.LoadAllCalls(); count != 1 {
		t.Errorf("Expected LoadAll to be called once, got %d", count)
	}

	if val, ok := cache.Get("ops-console-1"); !ok || val != "dispatches" {
		t.Errorf("Expected ops-console-1=dispatches, got %v, %v", val, ok)
	}
	if val, ok := cache.Get("ops-console-3"); !ok || val != "workers" {
		t.Errorf("Expected ops-console-3=workers, got %v, %v", val, ok)
	}
}

// TestLoadError verifies that Load propagates storage errors.
func TestLoadError(t *testing.T) {
	expectedErr := errors.New("database connection failed")

	stub := NewStubDatabaseOperations[string, string]()
	stub.LoadAllFunc = func(ctx context.Context) (map[string]string, error) {
		return nil, expectedErr
	}

	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Load(context.Background()); !errors.Is(err, expectedErr) {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

// TestGetNotFound verifies that Get reports a miss for unknown keys.
func TestGetNotFound(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val, ok := cache.Get("nonexistent"); ok {
		t.Errorf("Expected Get to return false for nonexistent key, got %v", val)
	}
}

// TestSet verifies that Set makes the value readable immediately and
// eventually reaches storage with the same key and value.
func TestSet(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Set("ops-console-1", "tasks"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Readable before the async persist completes.
	if val, ok := cache.Get("ops-console-1"); !ok || val != "tasks" {
		t.Errorf("Expected ops-console-1=tasks immediately after Set, got %v, %v", val, ok)
	}

	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if count := stub.PersistCalls(); count != 1 {
		t.Errorf("Expected Persist to be called once, got %d", count)
	}
	key, value, ok := stub.LastPersisted()
	if !ok {
		t.Fatal("Expected a persist call to be recorded")
	}
	if key != "ops-console-1" || value != "tasks" {
		t.Errorf("Persisted (%q, %q), want (ops-console-1, tasks)", key, value)
	}
}

// TestSetOverwrites verifies that the newest Set wins for a key.
func TestSetOverwrites(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Set("ops-console-1", "tasks"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cache.Set("ops-console-1", "workers"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	if val, ok := cache.Get("ops-console-1"); !ok || val != "workers" {
		t.Errorf("Expected ops-console-1=workers after overwrite, got %v, %v", val, ok)
	}
}

// TestSetDoesNotBlockOnSlowPersist verifies that Set returns while the
// storage write is still in flight.
func TestSetDoesNotBlockOnSlowPersist(t *testing.T) {
	release := make(chan struct{})

	stub := NewStubDatabaseOperations[string, string]()
	stub.PersistFunc = func(ctx context.Context, key, value string) error {
		<-release
		return nil
	}

	cache := NewGenericCache(context.Background(), stub)

	start := time.Now()
	if err := cache.Set("ops-console-1", "dispatches"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Set() blocked for %v while persist was pending", elapsed)
	}

	close(release)
	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
}

// TestDelete verifies that Delete removes the key and reaches storage.
func TestDelete(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Set("ops-console-1", "tasks"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cache.Delete("ops-console-1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if val, ok := cache.Get("ops-console-1"); ok {
		t.Errorf("Expected key gone after Delete, got %v", val)
	}

	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	key, ok := stub.LastDeleted()
	if !ok || key != "ops-console-1" {
		t.Errorf("Expected delete of ops-console-1 to reach storage, got %q, %v", key, ok)
	}
}

// TestList verifies that List returns every cached value.
func TestList(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	stub.LoadAllFunc = func(ctx context.Context) (map[string]string, error) {
		return map[string]string{
			"a": "dispatches",
			"b": "tasks",
		}, nil
	}

	cache := NewGenericCache(context.Background(), stub)
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	values := cache.List()
	if len(values) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(values))
	}

	seen := map[string]bool{}
	for _, v := range values {
		seen[v] = true
	}
	if !seen["dispatches"] || !seen["tasks"] {
		t.Errorf("List() = %v, missing expected values", values)
	}
}

// TestFlush verifies that Flush waits for in-flight persists.
func TestFlush(t *testing.T) {
	var mu sync.Mutex
	var persisted int

	release := make(chan struct{})

	stub := NewStubDatabaseOperations[string, string]()
	stub.PersistFunc = func(ctx context.Context, key, value string) error {
		<-release
		mu.Lock()
		persisted++
		mu.Unlock()
		return nil
	}

	cache := NewGenericCache(context.Background(), stub)

	for i := 0; i < 3; i++ {
		if err := cache.Set("ops-console-1", "tasks"); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
	}

	close(release)

	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if persisted != 3 {
		t.Errorf("Expected 3 persists completed after Flush, got %d", persisted)
	}
}

// TestPersistError verifies that a failing persist does not disturb the
// in-memory value.
func TestPersistError(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	stub.PersistFunc = func(ctx context.Context, key, value string) error {
		return errors.New("disk full")
	}

	cache := NewGenericCache(context.Background(), stub)

	if err := cache.Set("ops-console-1", "tasks"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if val, ok := cache.Get("ops-console-1"); !ok || val != "tasks" {
		t.Errorf("Expected value retained after persist error, got %v, %v", val, ok)
	}
}

// TestConcurrentAccess exercises the cache from many goroutines at once.
func TestConcurrentAccess(t *testing.T) {
	stub := NewStubDatabaseOperations[string, string]()
	cache := NewGenericCache(context.Background(), stub)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n))
			for j := 0; j < 50; j++ {
				if err := cache.Set(key, "dispatches"); err != nil {
					t.Errorf("Set() failed: %v", err)
					return
				}
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if err := cache.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if got := stub.PersistCalls(); got != 500 {
		t.Errorf("Expected 500 persist calls, got %d", got)
	}
}
