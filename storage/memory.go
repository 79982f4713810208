// storage/memory.go
package storage

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
)

// MemoryStore keeps records in a process-local map. Used for tests and for
// running the service without a database (STORAGE_BACKEND=memory).
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string, out interface{}) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("⚠️ [STORE] Corrupt record at %s: %v", key, err)
		return false
	}
	return true
}

func (m *MemoryStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("⚠️ [STORE] Failed to serialize record for %s: %v", key, err)
		return
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

func (m *MemoryStore) Remove(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

func (m *MemoryStore) Keys(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}
