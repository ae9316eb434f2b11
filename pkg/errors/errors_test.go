package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("state.json", 0, stdErrors.New("unexpected end of JSON input"))
	require.Equal(t, "parse error: state.json: unexpected end of JSON input", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("history.limit", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "history.limit", validationErr.Field)
	require.Contains(t, validationErr.Error(), "must be at least 1")
}

func TestPersistenceErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewPersistenceError("save", "sqlite", underlying)

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.Equal(t, "save", persistenceErr.Op)
	require.Equal(t, "sqlite", persistenceErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "persistence error [sqlite] save: disk full", err.Error())
}
