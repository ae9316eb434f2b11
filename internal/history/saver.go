package history

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/scalekit/internal/logger"
	"github.com/alexisbeaulieu97/scalekit/internal/metrics"
	"github.com/alexisbeaulieu97/scalekit/internal/persistence"
)

// saver writes snapshots on its own goroutine. Only the most recent request
// is kept, so a slow gateway never queues stale state.
type saver struct {
	gw      persistence.Gateway
	log     *logger.Logger
	metrics *metrics.Collector

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending *persistence.Snapshot
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func newSaver(gw persistence.Gateway, log *logger.Logger, m *metrics.Collector) *saver {
	ctx, cancel := context.WithCancel(context.Background())
	s := &saver{
		gw:      gw,
		log:     log,
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *saver) request(snapshot persistence.Snapshot) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = &snapshot
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *saver) run() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.flush()
		case <-s.stop:
			s.flush()
			return
		}
	}
}

func (s *saver) flush() {
	s.mu.Lock()
	snapshot := s.pending
	s.pending = nil
	s.mu.Unlock()
	if snapshot == nil {
		return
	}

	start := time.Now()
	err := s.gw.Save(s.ctx, *snapshot)
	s.metrics.Save(time.Since(start), err)
	if err != nil {
		s.log.Error(err, "failed to save state")
		return
	}
	s.log.Debug("state saved")
}

// close writes the last pending snapshot and stops the goroutine. If ctx
// ends first the in-flight save is cancelled.
func (s *saver) close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	select {
	case <-s.done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-s.done
		return ctx.Err()
	}
}
