package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvas2svg/pkg/cache"
	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/observability"
)

// Runner encapsulates conversion with artifact caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different documents.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If cache is nil, a NullCache is used
// (caching disabled). If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Render converts doc in every requested format. Formats already in the
// cache are served from it; the rest are rendered from a single scene and
// stored. Cache failures are logged and otherwise ignored.
func (r *Runner) Render(ctx context.Context, doc canvas.Document, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, len(doc.Nodes), len(doc.Edges))

	result, err := r.render(ctx, doc, opts)
	primitives := 0
	if result != nil {
		result.Stats.Duration = time.Since(start)
		primitives = result.Stats.Primitives
	}
	observability.Render().OnRenderComplete(ctx, opts.Formats, primitives, time.Since(start), err)
	return result, err
}

func (r *Runner) render(ctx context.Context, doc canvas.Document, opts Options) (*Result, error) {
	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Skipped:   doc.Undrawn(),
		Stats: Stats{
			NodeCount: len(doc.Nodes),
			EdgeCount: len(doc.Edges),
		},
	}

	docHash, err := documentHash(doc)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, format)
			result.Artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		result.CacheHit = true
		r.Logger.Debug("served from cache", "formats", opts.Formats)
		return result, nil
	}

	sc, err := BuildScene(doc, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.Primitives = len(sc.Primitives)
	result.Stats.Width = sc.Width()
	result.Stats.Height = sc.Height()

	r.Logger.Debug("built scene",
		"primitives", len(sc.Primitives),
		"width", sc.Width(),
		"height", sc.Height(),
		"dx", sc.Transform.DX,
		"dy", sc.Transform.DY)

	rendered, err := RenderScene(sc, missing, opts.Scale)
	if err != nil {
		return nil, err
	}

	for format, data := range rendered {
		result.Artifacts[format] = data
		key := cache.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func documentHash(doc canvas.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	return cache.Hash(data), nil
}
