package store

import (
	"context"
	"sync"
	"time"
)

// MemoryKV is an in-process KV backend with the same expiry semantics as
// Redis, used by unit tests and local development without a Redis instance.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]memoryEntry
	lists  map[string][][]byte
	now    func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]memoryEntry),
		lists:  make(map[string][][]byte),
		now:    time.Now,
	}
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = m.entry(value, ttl)
	return nil
}

func (m *MemoryKV) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.values[key]; ok && !m.expired(e) {
		return false, nil
	}
	m.values[key] = m.entry(value, ttl)
	return true, nil
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.values[key]
	if !ok || m.expired(e) {
		delete(m.values, key)
		return nil, ErrKeyMissing
	}
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return data, nil
}

func (m *MemoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryKV) RPush(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data := make([]byte, len(value))
	copy(data, value)
	m.lists[key] = append(m.lists[key], data)
	return nil
}

func (m *MemoryKV) LRange(_ context.Context, key string) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.lists[key]
	out := make([][]byte, len(src))
	for i, v := range src {
		data := make([]byte, len(v))
		copy(data, v)
		out[i] = data
	}
	return out, nil
}

// SetClock lets tests drive expiry.
func (m *MemoryKV) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryKV) entry(value []byte, ttl time.Duration) memoryEntry {
	data := make([]byte, len(value))
	copy(data, value)
	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	return e
}

func (m *MemoryKV) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && m.now().After(e.expiresAt)
}
