// Package metrics exposes prometheus counters for the editor. A nil
// *Collector is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scalekit"

// Collector groups the editor metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	commands            *prometheus.CounterVec
	checkpoints         prometheus.Counter
	undos               prometheus.Counter
	redos               prometheus.Counter
	depth               *prometheus.GaugeVec
	saves               prometheus.Counter
	persistenceFailures prometheus.Counter
	saveDuration        prometheus.Histogram
}

// New registers every metric on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands dispatched to the history manager, by type.",
		}, []string{"type"}),
		checkpoints: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkpoints_total",
			Help:      "Undo checkpoints committed at a debounce boundary.",
		}),
		undos: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undo_total",
			Help:      "Undo steps applied.",
		}),
		redos: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redo_total",
			Help:      "Redo steps applied.",
		}),
		depth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_depth",
			Help:      "Entries currently held in the past and future stacks.",
		}, []string{"stack"}),
		saves: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Snapshots written by the persistence gateway.",
		}),
		persistenceFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Snapshot saves that returned an error.",
		}),
		saveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "save_duration_seconds",
			Help:      "Time spent writing a snapshot.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}

// Registry returns the registry holding the editor metrics.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Command counts a dispatched command.
func (c *Collector) Command(commandType string) {
	if c == nil {
		return
	}
	c.commands.WithLabelValues(commandType).Inc()
}

// Checkpoint counts a committed undo checkpoint.
func (c *Collector) Checkpoint() {
	if c == nil {
		return
	}
	c.checkpoints.Inc()
}

func (c *Collector) Undo() {
	if c == nil {
		return
	}
	c.undos.Inc()
}

func (c *Collector) Redo() {
	if c == nil {
		return
	}
	c.redos.Inc()
}

// Depth records the current size of both history stacks.
func (c *Collector) Depth(past, future int) {
	if c == nil {
		return
	}
	c.depth.WithLabelValues("past").Set(float64(past))
	c.depth.WithLabelValues("future").Set(float64(future))
}

// Save records the outcome and duration of a snapshot write.
func (c *Collector) Save(elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	c.saveDuration.Observe(elapsed.Seconds())
	if err != nil {
		c.persistenceFailures.Inc()
		return
	}
	c.saves.Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
