package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore is a process-local key-value store with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem

	stop     chan struct{}
	stopOnce sync.Once
}

type memoryItem struct {
	value      string
	expireTime time.Time // zero means no expiry
}

func (i *memoryItem) expired(now time.Time) bool {
	return !i.expireTime.IsZero() && now.After(i.expireTime)
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(cleanupInterval)

	return store
}

// Set stores a key-value pair. expiration <= 0 keeps the value until deleted.
func (ms *MemoryStore) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: value}
	if expiration > 0 {
		item.expireTime = time.Now().Add(expiration)
	}
	ms.items[key] = item
	return nil
}

// Get retrieves a value by key. Missing and expired keys report false.
func (ms *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || item.expired(time.Now()) {
		return "", false, nil
	}
	return item.value, true, nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.stopOnce.Do(func() { close(ms.stop) })
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.removeExpired(time.Now())
		}
	}
}

func (ms *MemoryStore) removeExpired(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key, item := range ms.items {
		if item.expired(now) {
			delete(ms.items, key)
		}
	}
}
