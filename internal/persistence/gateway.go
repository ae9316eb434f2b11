// Package persistence stores and restores the editor state: the current
// document plus its undo and redo stacks.
package persistence

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/scalekit/internal/logger"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

// Storage drivers accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists every supported storage driver.
var Drivers = []string{DriverFile, DriverSQLite, DriverMemory}

// Context holds the persisted editor state.
type Context struct {
	Palettes model.Document   `json:"palettes" validate:"dive"`
	Past     []model.Document `json:"past" validate:"dive,dive"`
	Future   []model.Document `json:"future" validate:"dive,dive"`
}

// Snapshot is the on-disk shape: {"context": {"palettes", "past", "future"}}.
type Snapshot struct {
	Context Context `json:"context"`
}

// Empty returns a snapshot with an empty document and no history.
func Empty() Snapshot {
	return Snapshot{Context: Context{Palettes: model.Document{}}}
}

// Gateway loads and saves snapshots. Load returns (nil, nil) when nothing has
// been stored yet.
type Gateway interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
	Close() error
}

// LoadOrEmpty restores the stored snapshot. Curves out of step with their
// scales are repaired first; unreadable or otherwise invalid state is
// discarded with a warning and an empty snapshot is returned instead.
func LoadOrEmpty(ctx context.Context, gw Gateway, log *logger.Logger) Snapshot {
	snapshot, err := gw.Load(ctx)
	if err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("discarding unreadable state")
		return Empty()
	}
	if snapshot == nil {
		log.Debug("no stored state, starting empty")
		return Empty()
	}
	repaired, fixed := Repair(*snapshot)
	if fixed > 0 {
		log.WithFields(map[string]any{"curves": fixed}).Warn("repaired curve lengths")
	}
	snapshot = &repaired
	if err := Validate(*snapshot); err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("discarding invalid state")
		return Empty()
	}
	if snapshot.Context.Palettes == nil {
		snapshot.Context.Palettes = model.Document{}
	}
	return *snapshot
}

// Open builds the gateway for driver. The path is ignored by the memory driver.
func Open(driver, path string) (Gateway, error) {
	switch driver {
	case DriverFile, "":
		gw, err := NewFileGateway(path)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case DriverSQLite:
		gw, err := NewSQLiteGateway(path)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case DriverMemory:
		return NewMemoryGateway(), nil
	default:
		return nil, scaleerrors.NewValidationError("storage.driver", fmt.Sprintf("unknown storage driver %q", driver), nil)
	}
}
