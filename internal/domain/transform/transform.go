package transform

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/extend"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/markup"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/sfc"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/monitoring"
)

// scriptPadding is the line filler PadLine puts in front of a script.
var scriptPadding = regexp.MustCompile(`^(//\n)+`)

// Input is one component handed over by the build pipeline.
type Input struct {
	// Filename is the absolute path of the component.
	Filename string
	Source   string
	// Map is an upstream source map, passed through untouched.
	Map []byte
}

// Output is the transformed component.
type Output struct {
	Code string
	Map  []byte
	// Dependencies lists every ancestor file registered while resolving,
	// sorted.
	Dependencies []string
	// Chain lists the ancestors, nearest first.
	Chain []string
}

// Transformer runs the full transform for one file at a time. It holds
// no per-call state and is safe for concurrent use.
type Transformer struct {
	resolver *extend.Resolver
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// New creates a Transformer. metrics may be nil.
func New(resolver *extend.Resolver, logger *logging.Logger, metrics *monitoring.Metrics) *Transformer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Transformer{
		resolver: resolver,
		logger:   logger.Named("transform"),
		metrics:  metrics,
	}
}

// Transform resolves the extends chain of in and returns the final
// component source. Errors are logged and returned; no partial output is
// ever produced.
func (t *Transformer) Transform(ctx context.Context, in Input, fs extend.FileSystem) (*Output, error) {
	start := time.Now()
	log := t.logger.ForFile(in.Filename)
	deps := &recorder{FileSystem: fs, seen: make(map[string]struct{})}

	out, err := t.run(ctx, in, deps)
	if err != nil {
		kind := extend.Kind(err)
		t.metrics.RecordTransform(kind, time.Since(start), 0)
		log.Error("transform failed",
			zap.String("kind", kind),
			zap.Strings("dependencies", deps.list()),
			zap.Error(err),
		)
		return nil, err
	}

	t.metrics.RecordTransform("", time.Since(start), len(out.Chain))
	log.Debug("transform complete",
		zap.Strings("chain", out.Chain),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

func (t *Transformer) run(ctx context.Context, in Input, fs *recorder) (*Output, error) {
	res, err := t.resolver.Resolve(ctx, in.Source, extend.File{Path: in.Filename, FS: fs})
	if err != nil {
		return nil, err
	}

	code, err := Finalize(res.Source)
	if err != nil {
		return nil, err
	}

	return &Output{
		Code:         code,
		Map:          in.Map,
		Dependencies: fs.list(),
		Chain:        res.Chain,
	}, nil
}

// Finalize turns a resolved component into compiler input. A component
// whose template is not marked extendable is returned unchanged.
// Otherwise every remaining extension point becomes a plain template tag,
// line padding is removed from the script, and the marker is dropped.
func Finalize(source string) (string, error) {
	d, err := sfc.Parse(source, sfc.ParseOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: reparse resolved component: %w", extend.ErrMalformedAncestor, err)
	}
	if !d.Extendable() {
		return source, nil
	}

	if d.Script != nil {
		d.Script.Content = scriptPadding.ReplaceAllString(d.Script.Content, "")
	}

	root, err := markup.Parse(d.Template.Content)
	if err != nil {
		return "", err
	}
	for _, point := range markup.FindByTag(root, extend.TagExtensionPoint) {
		extend.Neutralize(point)
	}

	body, err := markup.Render(root)
	if err != nil {
		return "", err
	}
	return sfc.Component(nil, body, d), nil
}

// recorder forwards to the pipeline's file system and remembers every
// dependency registered during one call.
type recorder struct {
	extend.FileSystem

	mu   sync.Mutex
	seen map[string]struct{}
}

func (r *recorder) AddDependency(path string) {
	r.mu.Lock()
	r.seen[path] = struct{}{}
	r.mu.Unlock()
	r.FileSystem.AddDependency(path)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.seen))
	for p := range r.seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
