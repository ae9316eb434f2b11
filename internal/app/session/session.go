// Package session wires the editor services together: configuration,
// logging, metrics, the persistence gateway and the history manager.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/scalekit/internal/config"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/history"
	"github.com/alexisbeaulieu97/scalekit/internal/logger"
	"github.com/alexisbeaulieu97/scalekit/internal/metrics"
	"github.com/alexisbeaulieu97/scalekit/internal/persistence"
)

// Options configures Open.
type Options struct {
	// ConfigPath overrides the default config location.
	ConfigPath string
	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config
	// LogWriter receives log output. Defaults to stderr.
	LogWriter io.Writer
	Verbose   bool
	Navigator history.Navigator
	Scheduler history.Scheduler
	Reducer   history.Applier
}

// Session holds the long-lived services of one editor run.
type Session struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Collector
	Gateway persistence.Gateway
	History *history.Manager
}

// Open loads configuration and restores the stored document.
func Open(ctx context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        opts.LogWriter,
		Component:     "scalekit",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	gw, err := persistence.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	snapshot := persistence.LoadOrEmpty(ctx, gw, log.Component("persistence"))
	log.WithFields(map[string]any{
		"driver":   cfg.Storage.Driver,
		"path":     cfg.Storage.Path,
		"palettes": len(snapshot.Context.Palettes),
	}).Debug("state restored")

	manager := history.New(snapshot, history.Options{
		Debounce:  cfg.History.Debounce,
		Limit:     cfg.History.Limit,
		Scheduler: opts.Scheduler,
		Gateway:   gw,
		Navigator: opts.Navigator,
		Logger:    log,
		Metrics:   collector,
		Reducer:   opts.Reducer,
	})

	return &Session{
		Config:  cfg,
		Logger:  log,
		Metrics: collector,
		Gateway: gw,
		History: manager,
	}, nil
}

// Dispatch forwards cmd to the history manager.
func (s *Session) Dispatch(cmd document.Command) bool {
	return s.History.Dispatch(cmd)
}

// ServeMetrics exposes the metrics endpoint until ctx ends. It returns
// immediately when metrics are disabled.
func (s *Session) ServeMetrics(ctx context.Context) {
	if s.Metrics == nil {
		return
	}
	addr := s.Config.Metrics.Addr
	go func() {
		if err := s.Metrics.Serve(ctx, addr); err != nil {
			s.Logger.Error(err, "metrics endpoint stopped")
		}
	}()
	s.Logger.WithFields(map[string]any{"addr": addr}).Info("serving metrics")
}

// Close flushes pending edits, waits for the final save and releases the
// gateway.
func (s *Session) Close(ctx context.Context) error {
	return errors.Join(s.History.Close(ctx), s.Gateway.Close())
}
