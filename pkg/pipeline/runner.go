package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxkit/pkg/box"
	"github.com/matzehuels/boxkit/pkg/cache"
	"github.com/matzehuels/boxkit/pkg/doc"
	"github.com/matzehuels/boxkit/pkg/figure"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete build → encode pipeline for a document,
// consulting the cache keyed on the document's content hash and the
// rendering options.
func (r *Runner) Execute(ctx context.Context, d *doc.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	hash, err := doc.Hash(d)
	if err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}

	result := &Result{DocHash: hash}
	key := cache.RenderKey(hash, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.Output = data
			result.Height, result.Width = measure(opts.Format, data)
			result.CacheInfo.RenderHit = true
			r.Logger.Debug("render cache hit", "doc", d.Name, "hash", hash[:12])
			return result, nil
		}
	}

	b, err := r.build(d, opts, result)
	if err != nil {
		return nil, err
	}
	if err := r.encode(ctx, d.Name, b, key, opts, result); err != nil {
		return nil, err
	}

	r.Logger.Info("rendered document",
		"doc", d.Name,
		"height", result.Height,
		"width", result.Width,
		"build", result.Stats.BuildTime,
		"render", result.Stats.RenderTime)

	return result, nil
}

// ExecuteFigure runs the pipeline for a built-in figure at the given depth.
func (r *Runner) ExecuteFigure(ctx context.Context, name string, depth int, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}
	key := cache.FigureKey(name, depth, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.Output = data
			result.Height, result.Width = measure(opts.Format, data)
			result.CacheInfo.RenderHit = true
			return result, nil
		}
	}

	buildStart := time.Now()
	b, err := figure.Render(name, depth)
	if err != nil {
		return nil, err
	}
	if opts.Framed {
		b = box.Framed(b)
	}
	result.Stats.BuildTime = time.Since(buildStart)

	if err := r.encodeFigure(ctx, name, b, key, opts, result); err != nil {
		return nil, err
	}

	r.Logger.Info("rendered figure",
		"figure", name,
		"depth", depth,
		"height", result.Height,
		"width", result.Width)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) build(d *doc.Document, opts Options, result *Result) (box.Box, error) {
	buildStart := time.Now()
	b, err := doc.Build(d)
	if err != nil {
		return box.Box{}, err
	}
	if opts.Framed {
		b = box.Framed(b)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	return b, nil
}

func (r *Runner) encode(ctx context.Context, name string, b box.Box, key string, opts Options, result *Result) error {
	renderStart := time.Now()
	out, err := Encode(name, b, opts.Format)
	if err != nil {
		return err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Output = out
	result.Height = b.Height()
	result.Width = b.Width()

	_ = r.Cache.Set(ctx, key, out, cache.TTLRender)
	return nil
}

func (r *Runner) encodeFigure(ctx context.Context, name string, b box.Box, key string, opts Options, result *Result) error {
	renderStart := time.Now()
	out, err := Encode(name, b, opts.Format)
	if err != nil {
		return err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Output = out
	result.Height = b.Height()
	result.Width = b.Width()

	_ = r.Cache.Set(ctx, key, out, cache.TTLFigure)
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// measure recovers the dimensions of a cached render. The JSON envelope
// carries them; text output is scanned.
func measure(format string, data []byte) (height, width int) {
	switch format {
	case FormatJSON:
		var env jsonRender
		if json.Unmarshal(data, &env) == nil {
			return env.Height, env.Width
		}
	case FormatText:
		s := strings.TrimSuffix(string(data), "\n")
		if s == "" {
			return 0, 0
		}
		lines := strings.Split(s, "\n")
		return len(lines), utf8.RuneCountInString(lines[0])
	}
	return 0, 0
}
