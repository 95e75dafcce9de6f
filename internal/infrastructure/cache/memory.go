package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryUserCache is the in-process fallback used when Redis is not
// configured or unreachable at startup. Same contract as UserCache.
type MemoryUserCache struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*memoryItem
	ttl   time.Duration
}

type memoryItem struct {
	active     bool
	expireTime time.Time
}

// NewMemoryUserCache creates a new in-memory user cache
func NewMemoryUserCache(ttl time.Duration) *MemoryUserCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	store := &MemoryUserCache{
		items: make(map[uuid.UUID]*memoryItem),
		ttl:   ttl,
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// IsActive reports the cached active flag for the user
func (ms *MemoryUserCache) IsActive(_ context.Context, userID uuid.UUID) (bool, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[userID]
	if !exists {
		return false, false
	}
	if time.Now().After(item.expireTime) {
		return false, false
	}
	return item.active, true
}

// SetActive records the user's active flag
func (ms *MemoryUserCache) SetActive(_ context.Context, userID uuid.UUID, active bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[userID] = &memoryItem{
		active:     active,
		expireTime: time.Now().Add(ms.ttl),
	}
}

// cleanupExpired periodically removes expired items
func (ms *MemoryUserCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
