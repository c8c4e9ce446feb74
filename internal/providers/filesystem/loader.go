package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrOutsideRoot is returned when a read escapes the configured root.
	ErrOutsideRoot = errors.New("path outside allowed root")
	// ErrNotText is returned for files that are not text.
	ErrNotText = errors.New("file is not text")
)

// Reader is the file-system surface the transform needs.
type Reader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	AddDependency(path string)
}

// Loader reads component files from the local disk. Binary files are
// refused and non UTF-8 text is decoded to UTF-8. It is stateless and safe for concurrent use.
type Loader struct {
	root string
}

// NewLoader creates a loader. When root is not empty, reads are confined
// to it.
func NewLoader(root string) *Loader {
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	return &Loader{root: filepath.Clean(root)}
}

// ReadFile reads path after checking it against the root.
func (l *Loader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := l.validate(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !IsText(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return DecodeUTF8(data), nil
}

// AddDependency is a no-op: the disk has no invalidation hook. The
// transform records dependencies per call.
func (l *Loader) AddDependency(string) {}

// Root returns the confinement root, or "." when unconfined.
func (l *Loader) Root() string {
	return l.root
}

func (l *Loader) validate(path string) error {
	if l.root == "" || l.root == "." {
		return nil
	}
	rel, err := filepath.Rel(l.root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	return nil
}
