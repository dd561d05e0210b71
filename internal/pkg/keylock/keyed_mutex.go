package keylock

import (
	"slices"
	"sync"
)

// KeyedMutex serializes units of work that share a key while letting
// unrelated keys proceed independently. Multi-key acquisition sorts and
// deduplicates the keys so every caller takes them in the same order.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*lockEntry),
	}
}

func (km *KeyedMutex) Acquire(keys ...string) {
	for _, key := range normalizeKeys(keys) {
		km.acquire(key)
	}
}

// Release must be called exactly once with the same keys passed to Acquire.
func (km *KeyedMutex) Release(keys ...string) {
	normalized := normalizeKeys(keys)

	for i := len(normalized) - 1; i >= 0; i-- {
		km.release(normalized[i])
	}
}

func (km *KeyedMutex) acquire(key string) {
	km.mu.Lock()

	entry, ok := km.entries[key]
	if !ok {
		entry = &lockEntry{}
		km.entries[key] = entry
	}
	entry.refs++

	km.mu.Unlock()

	entry.mu.Lock()
}

func (km *KeyedMutex) release(key string) {
	km.mu.Lock()

	entry, ok := km.entries[key]
	if !ok {
		km.mu.Unlock()
		return
	}

	entry.refs--
	if entry.refs == 0 {
		delete(km.entries, key)
	}

	km.mu.Unlock()

	entry.mu.Unlock()
}

func normalizeKeys(keys []string) []string {
	normalized := slices.Clone(keys)
	slices.Sort(normalized)
	return slices.Compact(normalized)
}
