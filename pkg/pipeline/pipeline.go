// Package pipeline provides the core rendering pipeline: load a layout
// document, build its box, and encode the result in an output format.
//
// By centralizing this logic the CLI and the HTTP server share one code
// path, including the caching of rendered output.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Format: pipeline.FormatText}
//	result, err := runner.Execute(ctx, document, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxkit/pkg/cache"
	"github.com/matzehuels/boxkit/pkg/errors"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatText

// Options configures a pipeline run. The struct supports JSON serialization
// for API requests.
type Options struct {
	// Format selects the output encoding: text or json.
	Format string `json:"format,omitempty"`

	// Framed wraps the built box in an ASCII border before encoding.
	Framed bool `json:"framed,omitempty"`

	// Refresh bypasses the cache and overwrites the stored entry.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Output is the encoded render in the requested format.
	Output []byte

	// DocHash is the content hash of the document.
	DocHash string

	// Height and Width are the dimensions of the built box.
	Height int
	Width  int

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether the output came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache usage for a pipeline run.
type CacheInfo struct {
	RenderHit bool // Whether the output came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults.
// The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderKeyOpts returns the cache key options for this run.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format: o.Format,
		Framed: o.Framed,
	}
}
