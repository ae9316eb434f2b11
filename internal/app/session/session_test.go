package session

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/config"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/history"
)

func testConfig(driver, path string) *config.Config {
	cfg := config.Default()
	cfg.Storage = config.StorageConfig{Driver: driver, Path: path}
	cfg.Log.Human = false
	return &cfg
}

func TestSessionPersistsAcrossRuns(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "state")
			ctx := context.Background()

			var paths []string
			first, err := Open(ctx, Options{
				Config:    testConfig(driver, path),
				LogWriter: &bytes.Buffer{},
				Navigator: history.NavigatorFunc(func(p string) { paths = append(paths, p) }),
			})
			require.NoError(t, err)
			require.Empty(t, first.History.Current())

			require.True(t, first.Dispatch(document.CreatePalette{Name: "Brand"}))
			require.Len(t, paths, 1)
			paletteID := paths[0][1:]
			require.True(t, first.Dispatch(document.ChangePaletteName{PaletteID: paletteID, Name: "Brand 2"}))
			require.NoError(t, first.Close(ctx))

			second, err := Open(ctx, Options{Config: testConfig(driver, path), LogWriter: &bytes.Buffer{}})
			require.NoError(t, err)
			t.Cleanup(func() { _ = second.Close(ctx) })

			require.Equal(t, "Brand 2", second.History.Current()[paletteID].Name)
			require.Len(t, second.History.Past(), 1)

			require.True(t, second.Dispatch(document.Undo{}))
			require.Equal(t, "Brand", second.History.Current()[paletteID].Name)
		})
	}
}

func TestSessionVerboseLogsDebug(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	s, err := Open(context.Background(), Options{
		Config:    testConfig("memory", ""),
		LogWriter: &logs,
		Verbose:   true,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close(context.Background()))
	require.Contains(t, logs.String(), "state restored")
}

func TestSessionLogLinesCarryOneComponent(t *testing.T) {
	t.Parallel()

	cfg := testConfig("memory", "")
	var logs bytes.Buffer
	s, err := Open(context.Background(), Options{Config: cfg, LogWriter: &logs, Verbose: true})
	require.NoError(t, err)

	s.Dispatch(document.CreatePalette{Name: "Brand"})
	require.NoError(t, s.Close(context.Background()))

	components := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		require.Equal(t, 1, strings.Count(line, `"component"`), line)
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		components[entry["component"].(string)] = true
	}
	require.True(t, components["scalekit"])
	require.True(t, components["persistence"])
	require.True(t, components["saver"])
}

func TestSessionMetrics(t *testing.T) {
	t.Parallel()

	cfg := testConfig("memory", "")
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = "127.0.0.1:0"
	cfg.History.Debounce = time.Millisecond

	s, err := Open(context.Background(), Options{Config: cfg, LogWriter: &bytes.Buffer{}})
	require.NoError(t, err)
	require.NotNil(t, s.Metrics)

	ctx, cancel := context.WithCancel(context.Background())
	s.ServeMetrics(ctx)
	cancel()

	s.Dispatch(document.CreatePalette{})
	require.NoError(t, s.Close(context.Background()))
}

func TestSessionRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Options{Config: testConfig("postgres", ""), LogWriter: &bytes.Buffer{}})
	require.Error(t, err)
}
