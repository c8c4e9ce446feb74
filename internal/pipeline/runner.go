package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/extend"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/transform"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sfc-extends/internal/providers/filesystem"
	"github.com/GriffinCanCode/sfc-extends/internal/shared/id"
	"github.com/GriffinCanCode/sfc-extends/internal/shared/utils"
)

// Runner transforms every component of a target with a pool of workers.
// Files are independent: one failure does not stop the others.
type Runner struct {
	transformer *transform.Transformer
	fs          filesystem.Reader
	logger      *logging.Logger
	hasher      *utils.Hasher
	workers     int
}

// NewRunner creates a runner. workers <= 0 uses GOMAXPROCS.
func NewRunner(t *transform.Transformer, fs filesystem.Reader, logger *logging.Logger, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		transformer: t,
		fs:          fs,
		logger:      logger.Named("pipeline"),
		hasher:      utils.DefaultHasher(),
		workers:     workers,
	}
}

// Run discovers and transforms the files of target. Outputs are written
// under target.Out mirroring their path below target.Root; with no Out
// nothing is written.
func (r *Runner) Run(ctx context.Context, target Target) (*Report, error) {
	start := time.Now()
	pattern := target.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	root, err := filepath.Abs(target.Root)
	if err != nil {
		return nil, err
	}
	exclude := target.Exclude
	if dir, ok := outputDir(root, target.Out); ok {
		// Outputs from an earlier build must not be read back as inputs.
		exclude = append(slices.Clip(exclude), dir)
	}
	files, err := Discover(ctx, root, pattern, exclude)
	if err != nil {
		return nil, err
	}
	buildID := id.NewBuildID()
	log := &logging.Logger{Logger: r.logger.With(zap.Stringer("build_id", buildID))}
	log.Info("starting build",
		zap.String("root", root),
		zap.String("pattern", pattern),
		zap.Int("files", len(files)),
		zap.Int("workers", r.workers),
	)

	results := make([]FileResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runFile(ctx, root, target.Out, files[i])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	report := &Report{BuildID: buildID.String(), Root: root, Pattern: pattern, Files: results}
	for _, res := range results {
		if res.Error != "" {
			report.Failed++
		} else {
			report.Succeeded++
		}
		if res.Unchanged {
			report.Unchanged++
		}
	}
	report.DurationMs = millis(time.Since(start))

	log.Info("build finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("unchanged", report.Unchanged),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}

func (r *Runner) runFile(ctx context.Context, root, outDir, path string) FileResult {
	start := time.Now()
	res := FileResult{Path: path}
	fail := func(err error) FileResult {
		res.Output = ""
		res.Error = err.Error()
		res.Kind = extend.Kind(err)
		res.DurationMs = millis(time.Since(start))
		return res
	}

	src, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return fail(fmt.Errorf("read component: %w", err))
	}

	out, err := r.transformer.Transform(ctx, transform.Input{Filename: path, Source: string(src)}, r.fs)
	if err != nil {
		return fail(err)
	}
	res.Chain = out.Chain
	res.Dependencies = out.Dependencies
	res.Hash = r.hasher.HashString(out.Code)

	if outDir != "" {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fail(err)
		}
		dest := filepath.Join(outDir, rel)
		res.Output = dest
		// Unchanged outputs are not rewritten so file watchers stay quiet.
		if prev, err := os.ReadFile(dest); err == nil && r.hasher.Hash(prev) == res.Hash {
			res.Unchanged = true
			res.DurationMs = millis(time.Since(start))
			return res
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fail(fmt.Errorf("create output directory: %w", err))
		}
		if err := os.WriteFile(dest, []byte(out.Code), 0o644); err != nil {
			return fail(fmt.Errorf("write output: %w", err))
		}
	}

	res.DurationMs = millis(time.Since(start))
	return res
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// outputDir returns out as an exclude pattern relative to root when out
// lies strictly below root.
func outputDir(root, out string) (string, bool) {
	if out == "" {
		return "", false
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return globEscaper.Replace(filepath.ToSlash(rel)), true
}

var globEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
)
