package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

const sqliteBackend = "sqlite"

// Buckets written by SQLiteGateway, one row each in the state table.
const (
	bucketPalettes = "palettes"
	bucketPast     = "past"
	bucketFuture   = "future"
)

var sqliteBuckets = []string{bucketPalettes, bucketPast, bucketFuture}

// SQLiteGateway stores each part of the snapshot as a JSON blob in a single
// SQLite table.
type SQLiteGateway struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewSQLiteGateway opens (or creates) the database at path.
func NewSQLiteGateway(path string) (*SQLiteGateway, error) {
	if path == "" {
		path = "scalekit.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, scaleerrors.NewPersistenceError("open", sqliteBackend, fmt.Errorf("create dirs: %w", err))
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, scaleerrors.NewPersistenceError("open", sqliteBackend, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, scaleerrors.NewPersistenceError("open", sqliteBackend, fmt.Errorf("create state table: %w", err))
	}
	return &SQLiteGateway{db: db, path: path}, nil
}

// Path returns the configured database path.
func (g *SQLiteGateway) Path() string { return g.path }

// Load reads every bucket back into a snapshot. An empty table yields (nil, nil).
func (g *SQLiteGateway) Load(ctx context.Context) (*Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, err := g.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return nil, scaleerrors.NewPersistenceError("load", sqliteBackend, fmt.Errorf("select state: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var snapshot Snapshot
	found := false
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, scaleerrors.NewPersistenceError("load", sqliteBackend, fmt.Errorf("scan: %w", err))
		}
		var target any
		switch bucket {
		case bucketPalettes:
			target = &snapshot.Context.Palettes
		case bucketPast:
			target = &snapshot.Context.Past
		case bucketFuture:
			target = &snapshot.Context.Future
		default:
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return nil, scaleerrors.NewParseError(g.path+"#"+bucket, 0, err)
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, scaleerrors.NewPersistenceError("load", sqliteBackend, err)
	}
	if !found {
		return nil, nil
	}
	return &snapshot, nil
}

// Save upserts every bucket in one transaction.
func (g *SQLiteGateway) Save(ctx context.Context, snapshot Snapshot) (retErr error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return scaleerrors.NewPersistenceError("save", sqliteBackend, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, bucket := range sqliteBuckets {
		var data []byte
		switch bucket {
		case bucketPalettes:
			data, err = json.Marshal(snapshot.Context.Palettes)
		case bucketPast:
			data, err = json.Marshal(snapshot.Context.Past)
		case bucketFuture:
			data, err = json.Marshal(snapshot.Context.Future)
		}
		if err != nil {
			return scaleerrors.NewPersistenceError("save", sqliteBackend, fmt.Errorf("encode %s: %w", bucket, err))
		}
		if _, err = tx.ExecContext(ctx, `INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, bucket, data); err != nil {
			return scaleerrors.NewPersistenceError("save", sqliteBackend, fmt.Errorf("upsert %s: %w", bucket, err))
		}
	}
	if err := tx.Commit(); err != nil {
		return scaleerrors.NewPersistenceError("save", sqliteBackend, err)
	}
	return nil
}

// Close releases the database handle.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
