// SPDX-License-Identifier: MIT

// Package bayesnet: functional configuration for Network.
// Defaults are constants (single source of truth); WithX constructors panic
// only on nonsensical values (programmer error).

package bayesnet

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultWorkers is the number of goroutines computing messages during Step.
// 1 means the compute phase runs on the calling goroutine.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "bayesnet: WithWorkers: n must be >= 1"
	panicLoggerNil      = "bayesnet: WithLogger: logger must not be nil"
)

// Option configures a Network before creation.
type Option func(*options)

// options holds the effective configuration after applying Option setters.
type options struct {
	workers    int                  // DefaultWorkers
	logger     *slog.Logger         // discard handler by default
	registerer prometheus.Registerer // nil ⇒ metrics are kept but not registered
}

func defaultOptions() options {
	return options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers bounds the number of goroutines used by the compute phase of
// Step. Every node's outgoing messages depend only on that node's own state,
// so nodes are computed independently; the commit phase is always serial.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the structured logger used for construction and step
// diagnostics (Debug level). Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithRegisterer registers the network's metrics with reg. Registering two
// networks on the same registerer panics on the duplicate collector, as
// prometheus does.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}
