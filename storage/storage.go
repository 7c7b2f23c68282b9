package storage

import (
	"sync"

	"github.com/quasilyte/gdata"
)

// Store is a local key-value backend. *gdata.Manager satisfies it.
// LoadItem returns nil data for a key that was never saved.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open opens the platform data store for appName (a per-user data directory
// on desktop, localStorage in a browser).
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Memory is an in-process Store. It is used when the platform store is
// unavailable so the game still runs, just without keeping anything.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
