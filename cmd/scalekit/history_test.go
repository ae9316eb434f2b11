package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndoRedoEmpty(t *testing.T) {
	setupHome(t)

	require.Contains(t, mustExecute(t, "undo"), "Nothing to undo.")
	require.Contains(t, mustExecute(t, "redo"), "Nothing to redo.")
	require.Contains(t, mustExecute(t, "undo", "--dry-run"), "Nothing to undo.")
}

func TestUndoRedoAcrossRuns(t *testing.T) {
	setupHome(t)
	mustExecute(t, "palette", "create", "Brand")
	mustExecute(t, "palette", "rename", "Brand", "Core")

	preview := mustExecute(t, "undo", "--dry-run")
	require.Contains(t, preview, "--- current")
	require.Contains(t, preview, "+++ after undo")
	require.Contains(t, preview, `-    "name": "Core",`)
	require.Contains(t, preview, `+    "name": "Brand",`)
	require.Equal(t, "Core", listPalettes(t).Palettes[0].Name)

	stdout := mustExecute(t, "undo")
	require.Contains(t, stdout, "Applied undo")
	require.Contains(t, stdout, "0 more available")
	require.Equal(t, "Brand", listPalettes(t).Palettes[0].Name)

	preview = mustExecute(t, "redo", "--dry-run")
	require.Contains(t, preview, "+++ after redo")

	stdout = mustExecute(t, "redo")
	require.Contains(t, stdout, "Applied redo")
	require.Equal(t, "Core", listPalettes(t).Palettes[0].Name)
	require.Contains(t, mustExecute(t, "redo"), "Nothing to redo.")
}
