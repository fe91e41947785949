package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSnapshot is returned by [Adapter.Load] when no snapshot has been
// persisted yet. The store treats it as "start empty", not as a failure.
var ErrNoSnapshot = errors.New("no session snapshot")

// Adapter persists the store's serialized snapshot. Implementations must be
// safe for concurrent use; the store serializes its own writes but tests and
// tooling may not.
type Adapter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// MemoryAdapter holds the snapshot in process memory. Useful for tests and
// for callers that explicitly do not want cross-restart persistence.
type MemoryAdapter struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Load(_ context.Context) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.data == nil {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out, nil
}

func (a *MemoryAdapter) Save(_ context.Context, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = make([]byte, len(data))
	copy(a.data, data)
	return nil
}

func (a *MemoryAdapter) Clear(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = nil
	return nil
}

// FileAdapter persists the snapshot to a single file. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn snapshot.
type FileAdapter struct {
	path string
	mu   sync.Mutex
}

// NewFileAdapter creates a file adapter rooted at path. The parent directory
// is created on first save.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Load(_ context.Context) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read session snapshot: %w", err)
	}
	return data, nil
}

func (a *FileAdapter) Save(_ context.Context, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session snapshot: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod session snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session snapshot: %w", err)
	}

	if err := os.Rename(tmpName, a.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session snapshot: %w", err)
	}
	return nil
}

func (a *FileAdapter) Clear(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.Remove(a.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session snapshot: %w", err)
	}
	return nil
}
