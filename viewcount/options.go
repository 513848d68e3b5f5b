// SPDX-License-Identifier: MIT

package viewcount

import "runtime"

// ---------- Defaults ----------

const (
	// DefaultAreaScaling leaves simplified counts in coarse-cell units.
	DefaultAreaScaling = false
)

// DefaultWorkers returns the pool size used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Panic messages ----------

const (
	panicWorkersInvalid  = "viewcount: WithWorkers: n must be ≥ 1"
	panicProgressInvalid = "viewcount: WithProgress: fn must not be nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers pass
// ...Option and the package resolves them via gatherOptions.
type Options struct {
	workers     int
	progress    func(done, total int)
	areaScaling bool
}

// WithWorkers bounds the number of concurrent sweeps.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithProgress installs a callback invoked after each viewpoint finishes.
// Calls never overlap; fn must return quickly.
// Panics if fn is nil.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic(panicProgressInvalid)
	}
	return func(o *Options) { o.progress = fn }
}

// WithAreaScaling makes Simplified multiply each broadcast count by k², so the
// result approximates fine-grid cells instead of coarse cells.
func WithAreaScaling() Option {
	return func(o *Options) { o.areaScaling = true }
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:     DefaultWorkers(),
		areaScaling: DefaultAreaScaling,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
