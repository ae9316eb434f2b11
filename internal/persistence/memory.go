package persistence

import (
	"context"
	"encoding/json"
	"sync"

	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

// MemoryGateway keeps the last saved snapshot in process. It round-trips
// through JSON so callers never share maps with the stored copy.
type MemoryGateway struct {
	mu    sync.Mutex
	data  []byte
	saves int
	err   error
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Load returns the stored snapshot, or (nil, nil) before the first save.
func (g *MemoryGateway) Load(_ context.Context) (*Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.data == nil {
		return nil, nil
	}
	var snapshot Snapshot
	if err := json.Unmarshal(g.data, &snapshot); err != nil {
		return nil, scaleerrors.NewParseError("memory", 0, err)
	}
	return &snapshot, nil
}

// Save stores the snapshot, or returns the error configured with FailWith.
func (g *MemoryGateway) Save(_ context.Context, snapshot Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return scaleerrors.NewPersistenceError("save", "memory", g.err)
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return scaleerrors.NewPersistenceError("save", "memory", err)
	}
	g.data = data
	g.saves++
	return nil
}

// FailWith makes every following Save return err. Pass nil to recover.
func (g *MemoryGateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// Saves reports how many snapshots were stored successfully.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

func (g *MemoryGateway) Close() error { return nil }
