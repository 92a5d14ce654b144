package docstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/aalmasoud/unilife/internal/common"
)

// MemStore is a map-backed Store for tests and offline runs.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]map[string]any

	// FailWith, when set, makes every call fail. Lets tests exercise the
	// persistence error paths.
	FailWith error

	// SetCalls counts Set invocations, including failed ones.
	SetCalls int
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]map[string]any)}
}

func (m *MemStore) docKey(collection, key string) string {
	return collection + "/" + key
}

func (m *MemStore) Get(ctx context.Context, collection, key string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, m.FailWith)
	}
	doc, ok := m.docs[m.docKey(collection, key)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyFields(doc), nil
}

func (m *MemStore) Set(ctx context.Context, collection, key string, fields map[string]any, merge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls++
	if m.FailWith != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, m.FailWith)
	}

	k := m.docKey(collection, key)
	if !merge || m.docs[k] == nil {
		m.docs[k] = copyFields(fields)
		return nil
	}
	for name, value := range fields {
		m.docs[k][name] = value
	}
	return nil
}
