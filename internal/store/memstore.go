package store

import (
	"sync"

	"squink-splash/internal/arena"
)

type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*arena.Instance
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: map[string]*arena.Instance{},
	}
}

func (m *MemoryStore) GetGame(code string) (*arena.Instance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	in, ok := m.games[code]
	return in, ok
}

func (m *MemoryStore) SaveGame(in *arena.Instance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[in.Code] = in
}
