// Package metrics provides a Prometheus implementation of types.Metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counts cache events as Prometheus counters.
type Prometheus struct {
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Evictions prometheus.Counter
	Loads     prometheus.Counter
}

// NewPrometheus registers the cache counters on reg under namespace.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Total number of lookups that found their key",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Total number of lookups that did not find their key",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Total number of entries evicted to respect capacity",
		}),
		Loads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Total number of read-through loader invocations",
		}),
	}
}

func (p *Prometheus) Hit()      { p.Hits.Inc() }
func (p *Prometheus) Miss()     { p.Misses.Inc() }
func (p *Prometheus) Eviction() { p.Evictions.Inc() }
func (p *Prometheus) Load()     { p.Loads.Inc() }
