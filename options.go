package tagbridge

import (
	"io"
	"log/slog"

	"github.com/deluan/tagbridge/tagfile"
)

// ReadStyle is an alias to tagfile.ReadStyle: the accuracy/cost trade-off
// passed through to the tag library when computing audio properties.
type ReadStyle = tagfile.ReadStyle

// Re-export the read styles.
const (
	ReadStyleFast     = tagfile.ReadStyleFast
	ReadStyleAverage  = tagfile.ReadStyleAverage
	ReadStyleAccurate = tagfile.ReadStyleAccurate
)

// Option configures a Registry or an individual open.
//
// Options use the functional options pattern:
//
//	reg := tagbridge.NewRegistry(opener,
//	    tagbridge.WithReadStyle(tagbridge.ReadStyleAccurate),
//	    tagbridge.WithLogger(logger),
//	)
//
// Options passed to Open or OpenStream override the registry defaults for
// that single open.
type Option func(*options)

// options holds resolved configuration.
type options struct {
	style    tagfile.ReadStyle
	logger   *slog.Logger
	readOnly bool
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		style:  tagfile.ReadStyleAverage,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithReadStyle sets how much of the audio stream the tag library scans
// when computing technical properties.
//
// Higher accuracy costs more I/O and CPU; lower accuracy may under-report
// duration and bitrate precision for variable-bitrate containers. The
// default is ReadStyleAverage.
func WithReadStyle(style ReadStyle) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithLogger attaches a structured logger to the registry. The registry
// logs at debug level only: opens, closes, and failed persistence. By
// default logging is discarded.
//
// WithLogger is a registry-level option; it has no effect when passed to an
// individual open.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReadOnly opens the handle for reading only. Every write operation on
// a read-only handle fails with an UnsupportedWriteError before touching
// the tag library, so the backing file can never be modified through it.
//
// Passed to NewRegistry, it makes read-only the default for every open.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WriteOption configures the behavior of write operations. Values combine
// with the bitwise OR operator.
type WriteOption uint8

const (
	// Clear requests that existing entries not present in the written
	// rows be removed, instead of merged with.
	Clear WriteOption = 1 << iota
)
