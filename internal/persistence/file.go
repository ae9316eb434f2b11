package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

const fileBackend = "file"

// FileGateway persists snapshots as a JSON document on disk.
type FileGateway struct {
	path string
	mu   sync.RWMutex
}

// NewFileGateway creates a FileGateway, creating the parent directory if needed.
func NewFileGateway(path string) (*FileGateway, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, scaleerrors.NewPersistenceError("open", fileBackend, fmt.Errorf("failed to create state directory: %w", err))
	}
	return &FileGateway{path: path}, nil
}

// Path returns the state file location.
func (g *FileGateway) Path() string { return g.path }

// Load reads the snapshot from disk. A missing file yields (nil, nil).
func (g *FileGateway) Load(_ context.Context) (*Snapshot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, scaleerrors.NewPersistenceError("load", fileBackend, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, scaleerrors.NewParseError(g.path, lineOf(data, err), err)
	}
	return &snapshot, nil
}

// Save writes the snapshot to disk atomically.
func (g *FileGateway) Save(ctx context.Context, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return scaleerrors.NewPersistenceError("save", fileBackend, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return scaleerrors.NewPersistenceError("save", fileBackend, fmt.Errorf("failed to marshal state: %w", err))
	}

	tmpPath := g.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return scaleerrors.NewPersistenceError("save", fileBackend, fmt.Errorf("failed to write temporary file: %w", err))
	}
	if err := os.Rename(tmpPath, g.path); err != nil {
		_ = os.Remove(tmpPath)
		return scaleerrors.NewPersistenceError("save", fileBackend, fmt.Errorf("failed to rename temporary file: %w", err))
	}
	return nil
}

// Close is a no-op; every Save leaves a complete file behind.
func (g *FileGateway) Close() error { return nil }

// lineOf maps a JSON syntax error offset to a 1-based line number.
func lineOf(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := min(int(syntaxErr.Offset), len(data))
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
