package storage

import "sync"

// MemoryStore keeps namespaces in a map. Used in tests and as the
// fallback when no durable backend is configured.
type MemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{namespaces: make(map[string][]byte)}
}

func (store *MemoryStore) Load(namespace string) ([]byte, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	payload, found := store.namespaces[namespace]
	if !found {
		return nil, false, nil
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	return copied, true, nil
}

func (store *MemoryStore) Save(namespace string, payload []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	copied := make([]byte, len(payload))
	copy(copied, payload)
	store.namespaces[namespace] = copied
	return nil
}
