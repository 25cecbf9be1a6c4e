// SPDX-License-Identifier: MIT

package bayesnet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "loopybayes"
	metricsSubsystem = "bayesnet"

	kindPi     = "pi"
	kindLambda = "lambda"
)

// metrics groups the collectors updated by a Network. They are always
// allocated; they are only exported when a registerer was supplied.
type metrics struct {
	steps        prometheus.Counter
	messages     *prometheus.CounterVec
	stepDuration prometheus.Histogram
	nodes        prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg) // nil registerer ⇒ unregistered collectors

	return &metrics{
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "steps_total",
			Help:      "Total number of synchronous propagation sweeps.",
		}),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "messages_total",
			Help:      "Total number of messages committed, by kind.",
		}, []string{"kind"}),
		stepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "step_duration_seconds",
			Help:      "Duration of one propagation sweep in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		nodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "nodes",
			Help:      "Number of nodes in the network.",
		}),
	}
}
