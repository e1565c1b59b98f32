// Package highscore implements game.HighScoreStore backends.
package highscore

import "sync"

// MemoryStore keeps the best score for the life of the process.
type MemoryStore struct {
	mu   sync.Mutex
	best int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *MemoryStore) SetIfGreater(score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score <= m.best {
		return false, nil
	}
	m.best = score
	return true, nil
}
