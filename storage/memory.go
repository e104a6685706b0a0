package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// Memory is a Storage that keeps blocks in a map.
//
// It is safe for concurrent use.
type Memory struct {
	lock   sync.RWMutex
	values map[string][]byte
}

var _ Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
	}
}

// Len returns the number of stored blocks.
func (m *Memory) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.values)
}

func (m *Memory) Has(ctx context.Context, key string) (bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *Memory) Put(ctx context.Context, key string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val := make([]byte, len(content))
	copy(val, content)

	m.lock.Lock()
	defer m.lock.Unlock()
	m.values[key] = val
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	content, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	val := make([]byte, len(content))
	copy(val, content)
	return val, nil
}

// GetStream returns a reader over the block content.
//
// Stored blocks are never modified so the reader does not copy.
func (m *Memory) GetStream(ctx context.Context, key string) (io.ReadCloser, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	content, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
