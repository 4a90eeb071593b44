package geometry

import (
	"github.com/rs/zerolog"

	"github.com/glacmap/outlines/pkg/constants"
	"github.com/glacmap/outlines/pkg/logging"
)

// options holds the knobs shared by the Validate and JoinRGI pipelines.
type options struct {
	overlapOK  bool
	multiOK    bool
	workdir    string
	rgiVersion string
	logger     *zerolog.Logger
}

// Option configures a pipeline operation.
type Option func(*options)

// defaultOptions returns the default pipeline options.
func defaultOptions() *options {
	return &options{
		workdir:    ".",
		rgiVersion: constants.DefaultRGIVersion,
		logger:     logging.Default(),
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithOverlapOK permits overlapping outlines during validation instead of
// failing the overlap check.
func WithOverlapOK() Option {
	return func(o *options) {
		o.overlapOK = true
	}
}

// WithMultiOK permits multi-part outlines during validation instead of
// failing the multi-part check.
func WithMultiOK() Option {
	return func(o *options) {
		o.multiOK = true
	}
}

// WithWorkdir sets the directory under which the errors/ and cleaned/
// output locations are created. Defaults to the current directory.
func WithWorkdir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.workdir = dir
		}
	}
}

// WithRGIVersion selects the reference inventory version for JoinRGI.
func WithRGIVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.rgiVersion = version
		}
	}
}

// WithLogger sets the logger progress events are reported to. Defaults to
// the package logger; pass logging.NewNopLogger() to run silently.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
