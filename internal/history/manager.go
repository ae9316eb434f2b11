// Package history owns the live document. It groups bursts of edits into a
// single undo checkpoint, keeps the undo and redo stacks, and hands every
// settled state to the persistence gateway.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/logger"
	"github.com/alexisbeaulieu97/scalekit/internal/metrics"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
	"github.com/alexisbeaulieu97/scalekit/internal/persistence"
)

// Defaults applied when Options leave a field zero.
const (
	DefaultDebounce = 200 * time.Millisecond
	DefaultLimit    = 25
)

// State is the debounce state of the manager.
type State int

const (
	// Idle means no edit window is open.
	Idle State = iota
	// Debouncing means edits are being grouped into one checkpoint.
	Debouncing
)

func (s State) String() string {
	if s == Debouncing {
		return "debouncing"
	}
	return "idle"
}

// Applier applies a command to a document.
type Applier interface {
	Apply(doc model.Document, cmd document.Command) document.Result
}

// Options configures a Manager.
type Options struct {
	Debounce  time.Duration
	Limit     int
	Scheduler Scheduler
	Gateway   persistence.Gateway
	Navigator Navigator
	Logger    *logger.Logger
	Metrics   *metrics.Collector
	Reducer   Applier
}

// Manager serializes every write to the document. Dispatch, Undo, Redo and
// the debounce timer all take the same lock.
type Manager struct {
	debounce  time.Duration
	limit     int
	scheduler Scheduler
	navigator Navigator
	reducer   Applier
	log       *logger.Logger
	metrics   *metrics.Collector
	saver     *saver

	mu         sync.Mutex
	present    model.Document
	past       []model.Document
	future     []model.Document
	checkpoint model.Document
	state      State
	cancel     CancelFunc
	generation uint64

	closeOnce sync.Once
	closeErr  error
}

// New restores a manager from snapshot.
func New(snapshot persistence.Snapshot, opts Options) *Manager {
	m := &Manager{
		debounce:  opts.Debounce,
		limit:     opts.Limit,
		scheduler: opts.Scheduler,
		navigator: opts.Navigator,
		reducer:   opts.Reducer,
		log:       opts.Logger.Component("history"),
		metrics:   opts.Metrics,
		present:   snapshot.Context.Palettes,
		past:      snapshot.Context.Past,
		future:    snapshot.Context.Future,
	}
	if m.debounce <= 0 {
		m.debounce = DefaultDebounce
	}
	if m.limit <= 0 {
		m.limit = DefaultLimit
	}
	if m.scheduler == nil {
		m.scheduler = TimerScheduler
	}
	if m.reducer == nil {
		m.reducer = document.NewReducer()
	}
	if m.present == nil {
		m.present = model.Document{}
	}
	m.past = trim(m.past, m.limit)
	if opts.Gateway != nil {
		m.saver = newSaver(opts.Gateway, opts.Logger.Component("saver"), opts.Metrics)
	}
	m.metrics.Depth(len(m.past), len(m.future))
	return m
}

// Dispatch applies cmd and reports whether the document changed.
// Immediate commands settle any open edit window and skip the undo stack.
// Other edits open (or extend) a debounce window; the state before the
// window becomes one undo checkpoint once the window closes.
func (m *Manager) Dispatch(cmd document.Command) bool {
	m.metrics.Command(string(cmd.Type()))

	switch cmd.(type) {
	case document.Undo:
		return m.Undo()
	case document.Redo:
		return m.Redo()
	}

	m.mu.Lock()
	if document.Immediate(cmd) {
		m.settleLocked()
	}
	res := m.reducer.Apply(m.present, cmd)
	if !res.Changed {
		// A no-op inside an open window still counts as activity.
		if m.state == Debouncing {
			m.rescheduleLocked()
		}
		m.mu.Unlock()
		return false
	}

	if document.Immediate(cmd) {
		m.present = res.Document
		m.requestSaveLocked()
	} else {
		if m.state == Idle {
			m.checkpoint = m.present
			m.state = Debouncing
		}
		m.present = res.Document
		m.rescheduleLocked()
	}
	m.mu.Unlock()

	if res.Navigate != "" && m.navigator != nil {
		m.navigator.Navigate(res.Navigate)
	}
	return true
}

// Undo restores the previous checkpoint. An open edit window is settled first.
func (m *Manager) Undo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settleLocked()
	if len(m.past) == 0 {
		return false
	}
	last := len(m.past) - 1
	m.future = append([]model.Document{m.present}, m.future...)
	m.present = m.past[last]
	m.past = m.past[:last:last]

	m.metrics.Undo()
	m.metrics.Depth(len(m.past), len(m.future))
	m.requestSaveLocked()
	return true
}

// Redo reapplies the most recently undone state.
func (m *Manager) Redo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settleLocked()
	if len(m.future) == 0 {
		return false
	}
	m.past = trim(append(m.past, m.present), m.limit)
	m.present = m.future[0]
	m.future = m.future[1:]

	m.metrics.Redo()
	m.metrics.Depth(len(m.past), len(m.future))
	m.requestSaveLocked()
	return true
}

// Flush closes any open edit window now instead of waiting for the timer.
func (m *Manager) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settleLocked()
}

// Close flushes pending edits and waits for the final save.
func (m *Manager) Close(ctx context.Context) error {
	m.closeOnce.Do(func() {
		m.Flush()
		if m.saver != nil {
			m.closeErr = m.saver.close(ctx)
		}
	})
	return m.closeErr
}

// Current returns the live document. Callers must treat it as read-only.
func (m *Manager) Current() model.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Past returns a copy of the undo stack, oldest first.
func (m *Manager) Past() []model.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Document(nil), m.past...)
}

// Future returns a copy of the redo stack, next redo first.
func (m *Manager) Future() []model.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Document(nil), m.future...)
}

// Snapshot returns the persistable state.
func (m *Manager) Snapshot() persistence.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() persistence.Snapshot {
	return persistence.Snapshot{Context: persistence.Context{
		Palettes: m.present,
		Past:     append([]model.Document(nil), m.past...),
		Future:   append([]model.Document(nil), m.future...),
	}}
}

func (m *Manager) rescheduleLocked() {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	gen := m.generation
	m.cancel = m.scheduler.ScheduleOnce(m.debounce, func() { m.fire(gen) })
}

func (m *Manager) fire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		return
	}
	m.settleLocked()
}

// settleLocked commits the open window, if any, as one checkpoint.
func (m *Manager) settleLocked() {
	if m.state != Debouncing {
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.generation++

	m.past = trim(append(m.past, m.checkpoint), m.limit)
	m.future = nil
	m.checkpoint = nil
	m.state = Idle

	m.metrics.Checkpoint()
	m.metrics.Depth(len(m.past), len(m.future))
	m.log.WithFields(map[string]any{"past": len(m.past)}).Debug("checkpoint committed")
	m.requestSaveLocked()
}

func (m *Manager) requestSaveLocked() {
	if m.saver == nil {
		return
	}
	m.saver.request(m.snapshotLocked())
}

// trim keeps the newest limit entries.
func trim(stack []model.Document, limit int) []model.Document {
	if len(stack) <= limit {
		return stack
	}
	return append([]model.Document(nil), stack[len(stack)-limit:]...)
}
