// Package memento provides durable key/value stores implementing
// wordmark.Memento. Values are stored as JSON.
package memento

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chapar-rest/wordmark"
)

var (
	// ErrClosed is returned by stores used after Close.
	ErrClosed = errors.New("memento: store is closed")
	// ErrUnknownBackend is returned by Open for unsupported backends.
	ErrUnknownBackend = errors.New("memento: unknown backend")
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	_ wordmark.Memento = (*Memory)(nil)
	_ wordmark.Memento = (*File)(nil)
	_ wordmark.Memento = (*SQLite)(nil)
)

// Store is a Memento that holds resources.
type Store interface {
	wordmark.Memento
	Close() error
}

// Open opens the store for backend at path. The memory backend ignores path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Memory keeps values in memory. It is the store used by tests and by hosts
// that do not need persistence.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get implements [wordmark.Memento].
func (m *Memory) Get(key string, dst any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Update implements [wordmark.Memento].
func (m *Memory) Update(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
	m.writes++
	return nil
}

// Writes returns the number of successful updates.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Close() error {
	return nil
}
