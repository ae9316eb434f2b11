package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/config"
)

func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	return home
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()

	stdout, stderr, err := executeCommand(args...)
	require.NoError(t, err, "stderr: %s", stderr)
	return stdout
}

func listPalettes(t *testing.T) listJSONPayload {
	t.Helper()

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "palette", "list", "--json")), &payload))
	return payload
}

func TestVersionCommand(t *testing.T) {
	stdout := mustExecute(t, "version")
	require.Contains(t, stdout, "scalekit dev")
	require.Contains(t, stdout, "commit: none")
}

func TestEditRequiresTerminal(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("edit")
	require.Error(t, err)
	require.ErrorIs(t, err, errNotTerminal)
	require.Contains(t, err.Error(), "Failed to start the editor")
	require.Contains(t, err.Error(), "Suggestion:")

	_, _, err = executeCommand()
	require.ErrorIs(t, err, errNotTerminal)
}

func TestMissingExplicitConfig(t *testing.T) {
	home := setupHome(t)

	_, _, err := executeCommand("palette", "list", "--config", home+"/missing.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening palette state")
}
