package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/scalekit/internal/app/session"
	"github.com/alexisbeaulieu97/scalekit/internal/history"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

const closeTimeout = 5 * time.Second

// openSession loads config and state for a one-shot command. Logs go to the
// command's stderr.
func openSession(cmd *cobra.Command, flags *rootFlags, operation string) (*session.Session, error) {
	return openSessionWith(cmd, flags, operation, cmd.ErrOrStderr(), nil)
}

func openSessionWith(cmd *cobra.Command, flags *rootFlags, operation string, logs io.Writer, nav history.Navigator) (*session.Session, error) {
	sess, err := session.Open(cmd.Context(), session.Options{
		ConfigPath: flags.configPath,
		LogWriter:  logs,
		Verbose:    flags.verbose,
		Navigator:  nav,
	})
	if err != nil {
		return nil, newCommandError(operation, "opening palette state", err, "Check your config file and storage path, then try again.")
	}
	return sess, nil
}

// closeSession commits pending edits and waits for the final save.
func closeSession(cmd *cobra.Command, sess *session.Session, operation string) error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := sess.Close(ctx); err != nil {
		return newCommandError(operation, "saving palette state", err, "Check storage permissions and free disk space.")
	}
	return nil
}

// resolvePalette finds a palette by id, then by exact name, then by
// case-insensitive name.
func resolvePalette(doc model.Document, ref string) (model.Palette, error) {
	if p, ok := doc[ref]; ok {
		return p, nil
	}

	matches := matchPalettes(doc, func(p model.Palette) bool { return p.Name == ref })
	if len(matches) == 0 {
		matches = matchPalettes(doc, func(p model.Palette) bool { return strings.EqualFold(p.Name, ref) })
	}

	switch len(matches) {
	case 0:
		return model.Palette{}, fmt.Errorf("%w: %q", errPaletteNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, p := range matches {
			ids[i] = p.ID
		}
		return model.Palette{}, fmt.Errorf("%w: %q matches %s", errAmbiguousPalette, ref, strings.Join(ids, ", "))
	}
}

func matchPalettes(doc model.Document, keep func(model.Palette) bool) []model.Palette {
	var out []model.Palette
	for _, id := range doc.IDs() {
		if keep(doc[id]) {
			out = append(out, doc[id])
		}
	}
	return out
}

// newPaletteID returns the id present in after but not in before.
func newPaletteID(before, after model.Document) string {
	for _, id := range after.IDs() {
		if _, ok := before[id]; !ok {
			return id
		}
	}
	return ""
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
