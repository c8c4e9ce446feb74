package extend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/sfc"
)

// DefaultMaxDepth bounds the number of ancestors followed from one file.
const DefaultMaxDepth = 32

// FileSystem is the I/O collaborator of the resolver.
type FileSystem interface {
	// ReadFile returns the raw source of the component at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// AddDependency registers path as a build dependency of the file being
	// transformed. It is advisory only.
	AddDependency(path string)
}

// File identifies the component being resolved.
type File struct {
	// Path is the absolute path of the component. Relative extends
	// targets are resolved against its directory.
	Path string
	FS   FileSystem
}

// Options configures a Resolver.
type Options struct {
	MaxDepth int
	// Parse applies to sources read from disk. Sources produced by a
	// merge are always parsed unpadded.
	Parse sfc.ParseOptions
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Result is a resolved component.
type Result struct {
	// Source is a complete component. When the input extended a base, its
	// template carries the extendable marker.
	Source string
	// Chain lists the ancestors read, nearest first.
	Chain []string
}

// Resolver follows extends chains and merges each level into its base.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver.
func NewResolver(opts Options) *Resolver {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Resolver{opts: opts}
}

// chainState is scoped to one Resolve call.
type chainState struct {
	seen  map[string]bool
	chain []string
}

// Resolve resolves source, the content of file, against its whole base
// chain. Ancestors are read one at a time, each only after the previous
// one has been received.
func (r *Resolver) Resolve(ctx context.Context, source string, file File) (*Result, error) {
	st := &chainState{seen: make(map[string]bool)}
	if file.Path != "" {
		st.seen[filepath.Clean(file.Path)] = true
	}

	out, err := r.resolve(ctx, source, file, st, 0)
	if err != nil {
		return nil, err
	}
	return &Result{Source: out, Chain: st.chain}, nil
}

func (r *Resolver) resolve(ctx context.Context, source string, file File, st *chainState, depth int) (string, error) {
	desc, err := sfc.Parse(source, r.opts.Parse)
	if err != nil {
		return "", ancestorErr(depth, file.Path, err)
	}

	base, ok := desc.Extends()
	if !ok {
		return source, nil
	}
	if depth >= r.opts.MaxDepth {
		return "", fmt.Errorf("%w: %s exceeds %d levels", ErrMaxDepth, file.Path, r.opts.MaxDepth)
	}

	basePath := BasePath(file.Path, base)
	if st.seen[basePath] {
		return "", fmt.Errorf("%w: %s extends %s again", ErrCircularExtends, file.Path, basePath)
	}
	st.seen[basePath] = true
	st.chain = append(st.chain, basePath)

	file.FS.AddDependency(basePath)
	data, err := file.FS.ReadFile(ctx, basePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s (extended by %s): %w", ErrMissingBase, basePath, file.Path, err)
	}

	resolved, err := r.resolve(ctx, string(data), File{Path: basePath, FS: file.FS}, st, depth+1)
	if err != nil {
		return "", err
	}

	baseDesc, err := sfc.Parse(resolved, sfc.ParseOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMalformedAncestor, basePath, err)
	}

	merged, err := Merge(desc, baseDesc)
	if err != nil {
		return "", ancestorErr(depth, file.Path, err)
	}
	return merged, nil
}

// BasePath resolves an extends target against the directory of the file
// declaring it.
func BasePath(from, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(from), target)
}

func ancestorErr(depth int, path string, err error) error {
	if depth == 0 {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrMalformedAncestor, path, err)
}
