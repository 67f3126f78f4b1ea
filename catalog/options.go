// SPDX-License-Identifier: MIT

package catalog

import (
	"log/slog"

	"github.com/katalvlaran/lvtype/internal/logging"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultLooseMatching selects datatype.Descriptor.Equal for Check.
	DefaultLooseMatching = false

	// DefaultMaxOpenConns keeps one connection so ":memory:" databases are
	// shared by every query of the catalog.
	DefaultMaxOpenConns = 1
)

const panicNilLogger = "catalog: WithLogger: logger must be non-nil"

// Option configures a Catalog. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*options)

type options struct {
	logger *slog.Logger
	loose  bool
}

func defaultOptions() options {
	return options{
		logger: logging.Discard(),
		loose:  DefaultLooseMatching,
	}
}

// WithLogger routes catalog diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithLooseMatching makes Check use datatype.Descriptor.Matches, so a length
// absent on either side is not compared.
func WithLooseMatching() Option {
	return func(o *options) { o.loose = true }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
