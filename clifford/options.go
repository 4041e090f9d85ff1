// SPDX-License-Identifier: MIT

// Package clifford: functional configuration for diagnostics and batch work.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves a list of options.
//
// Notes:
//   - The library never logs unless a logger is supplied; the default is zap.NewNop().
//   - Options only affect diagnostics and scheduling, never algebraic results.
package clifford

import (
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers lets ValidateAll use runtime.GOMAXPROCS(0) goroutines.
const DefaultWorkers = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger      = "clifford: WithLogger: logger must be non-nil"
	panicWorkersInvalid = "clifford: WithWorkers: workers must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger  *zap.Logger // diagnostics sink; zap.NewNop() by default
	workers int         // ValidateAll concurrency; 0 ⇒ GOMAXPROCS
}

// WithLogger routes diagnostics (IsValid violations, Paulify mismatches,
// ValidateAll failures) to l. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers bounds the number of goroutines ValidateAll runs at once.
// Zero selects runtime.GOMAXPROCS(0). Panics if k < 0.
func WithWorkers(k int) Option {
	if k < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:  zap.NewNop(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// effectiveWorkers resolves the zero default.
func (o Options) effectiveWorkers() int {
	if o.workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.workers
}
