package extend

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
)

// memFS is an in-memory FileSystem that records reads and dependencies.
type memFS struct {
	mu    sync.Mutex
	files map[string]string
	reads []string
	deps  []string
}

func newMemFS(files map[string]string) *memFS {
	return &memFS{files: files}
}

func (m *memFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, path)
	src, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return []byte(src), nil
}

func (m *memFS) AddDependency(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deps = append(m.deps, path)
}
