package session

import (
	"context"
	"sync"
)

// MemoryStore keeps slots for the life of the process. Slots hold the
// encoded form so loads go through the same decode path as Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, id string) (Identity, bool, error) {
	if id == "" {
		return Identity{}, false, ErrEmptyID
	}

	m.mu.RLock()
	data, ok := m.slots[id]
	m.mu.RUnlock()
	if !ok {
		return Identity{}, false, nil
	}

	ident, err := decode(data)
	if err != nil {
		return Identity{}, false, err
	}
	return ident, true, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, ident Identity) error {
	if id == "" {
		return ErrEmptyID
	}
	data, err := encode(ident)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[id] = data
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, id)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
