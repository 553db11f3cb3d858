package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formhandler/pkg/event"
)

// EventCounter counts dispatched events by name.
type EventCounter struct {
	total *prometheus.CounterVec
}

// NewEventCounter registers "<namespace>_events_total{event}" on reg.
// A counter already registered under the same name is reused.
func NewEventCounter(reg prometheus.Registerer, namespace string) (*EventCounter, error) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Number of dispatched lifecycle events.",
	}, []string{"event"})

	if err := reg.Register(total); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		total = existing
	}
	return &EventCounter{total: total}, nil
}

// Inc increments the counter for name.
func (c *EventCounter) Inc(name string) {
	c.total.WithLabelValues(name).Inc()
}

// Collector exposes the underlying vector, mostly for tests.
func (c *EventCounter) Collector() *prometheus.CounterVec {
	return c.total
}

// Subscribe adds a counting listener to d for every name and returns a func removing them.
// Labels are initialised so that series exist before the first event.
func Subscribe[E any](d *event.Dispatcher[E], c *EventCounter, names ...string) (unsubscribe func()) {
	removers := make([]func(), 0, len(names))
	for _, name := range names {
		c.total.WithLabelValues(name)
		removers = append(removers, d.AddListener(name, func(context.Context, E) error {
			c.Inc(name)
			return nil
		}))
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
