package mocks

import "sync"

// MockMediaStore запоминает удаленные пути вместо работы с диском
type MockMediaStore struct {
	mu      sync.Mutex
	cleared []string
}

func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

func (m *MockMediaStore) Clear(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = append(m.cleared, path)
}

func (m *MockMediaStore) Cleared() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.cleared...)
}
