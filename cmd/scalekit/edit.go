package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scalekit/internal/config"
	"github.com/alexisbeaulieu97/scalekit/internal/tui"
)

const editorLogFile = "scalekit.log"

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [palette]",
		Short: "Open the interactive palette editor",
		Long: `Open the interactive palette editor on the given palette id or name.
Without an argument the editor opens on the first palette.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return runEdit(cmd, flags, ref)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags, ref string) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start the editor", "stdin and stdout must be a terminal", errNotTerminal,
			"Run scalekit from an interactive terminal, or use 'scalekit palette show' for plain output.")
	}

	logs, closeLogs := editorLogWriter()
	defer closeLogs()

	router := tui.NewRouter()
	sess, err := openSessionWith(cmd, flags, "start the editor", logs, router)
	if err != nil {
		return err
	}

	paletteID := ""
	if ref != "" {
		p, err := resolvePalette(sess.History.Current(), ref)
		if err != nil {
			_ = closeSession(cmd, sess, "start the editor")
			return newCommandError("start the editor", "resolving palette", err, "Run 'scalekit palette list' to see available palettes.")
		}
		paletteID = p.ID
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sess.ServeMetrics(ctx)

	program := tea.NewProgram(
		tui.NewModel(sess.History, router, paletteID),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, runErr := program.Run()
	closeErr := closeSession(cmd, sess, "close the editor")
	if runErr != nil {
		return newCommandError("run the editor", "terminal session ended unexpectedly", runErr, "Re-run with --verbose and check "+editorLogFile+".")
	}
	return closeErr
}

// editorLogWriter sends logs to a file in the scalekit home while the editor
// owns the terminal. Logs are discarded when the file cannot be opened.
func editorLogWriter() (io.Writer, func()) {
	dir, err := config.Dir()
	if err != nil {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	file, err := os.OpenFile(filepath.Join(dir, editorLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return file, func() { _ = file.Close() }
}
