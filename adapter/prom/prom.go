// Package promadapter counts dispatched entries with Prometheus. Wrap decorates a
// single receive callback; it does not fan out.
package promadapter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/logprovider"
	textadapter "github.com/trickstertwo/logprovider/adapter/text"
)

// Collectors holds the metric vectors. Register them once via MustRegister.
type Collectors struct {
	Entries      *prometheus.CounterVec
	Errors       *prometheus.CounterVec
	Stacks       *prometheus.CounterVec
	WriteSeconds *prometheus.HistogramVec
	WriteErrors  *prometheus.CounterVec
}

// NewCollectors builds unregistered collectors under namespace.
func NewCollectors(namespace string) *Collectors {
	return &Collectors{
		Entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "log_entries_total",
				Help:      "Number of log entries dispatched",
			},
			[]string{"type"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "log_entries_with_error_total",
				Help:      "Number of log entries carrying an error",
			},
			[]string{"type"},
		),
		Stacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "log_entries_with_stack_total",
				Help:      "Number of log entries carrying a captured stack",
			},
			[]string{"type"},
		),
		WriteSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "log_write_duration_seconds",
				Help:      "Time spent writing one entry",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"type"},
		),
		WriteErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "log_write_errors_total",
				Help:      "Number of failed entry writes",
			},
			[]string{"type"},
		),
	}
}

func (c *Collectors) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(c.Entries, c.Errors, c.Stacks, c.WriteSeconds, c.WriteErrors)
}

// Wrap counts every entry and then calls next on the same goroutine.
// A panic in next propagates after the entry was counted.
func (c *Collectors) Wrap(next logprovider.ReceiveFunc) logprovider.ReceiveFunc {
	return func(e logprovider.Entry) {
		t := e.EntryType().String()
		c.Entries.WithLabelValues(t).Inc()
		if e.HasError() {
			c.Errors.WithLabelValues(t).Inc()
		}
		if e.HasStackTrace() {
			c.Stacks.WithLabelValues(t).Inc()
		}
		next(e)
	}
}

// Written implements textadapter.MetricsCollector.
func (c *Collectors) Written(t logprovider.EntryType, dur time.Duration, _ int, err error) {
	c.WriteSeconds.WithLabelValues(t.String()).Observe(dur.Seconds())
	if err != nil {
		c.WriteErrors.WithLabelValues(t.String()).Inc()
	}
}

var _ textadapter.MetricsCollector = (*Collectors)(nil)
