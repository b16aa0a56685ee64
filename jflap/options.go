package jflap

import (
	"io"
	"log/slog"
)

type options struct {
	validate bool
	logger   *slog.Logger
}

// Option configures Decode and ReadFile.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithSchemaValidation Validate the document against the bundled JFLAP schema before decoding it.
func WithSchemaValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// WithLogger Log transitions dropped during import at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
