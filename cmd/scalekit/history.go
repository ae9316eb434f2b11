package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scalekit/internal/app/session"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
	"github.com/alexisbeaulieu97/scalekit/pkg/diff"
)

type historyOptions struct {
	dryRun bool
}

type historyStep struct {
	name     string
	command  document.Command
	label    string
	empty    string
	target   func(*session.Session) (model.Document, bool)
	remained func(*session.Session) int
}

var (
	undoStep = historyStep{
		name:    "undo",
		command: document.Undo{},
		label:   "after undo",
		empty:   "Nothing to undo.",
		target: func(s *session.Session) (model.Document, bool) {
			past := s.History.Past()
			if len(past) == 0 {
				return nil, false
			}
			return past[len(past)-1], true
		},
		remained: func(s *session.Session) int { return len(s.History.Past()) },
	}
	redoStep = historyStep{
		name:    "redo",
		command: document.Redo{},
		label:   "after redo",
		empty:   "Nothing to redo.",
		target: func(s *session.Session) (model.Document, bool) {
			future := s.History.Future()
			if len(future) == 0 {
				return nil, false
			}
			return future[0], true
		},
		remained: func(s *session.Session) int { return len(s.History.Future()) },
	}
)

func newUndoCmd(flags *rootFlags) *cobra.Command {
	return newHistoryCmd(flags, undoStep, "Revert the last committed change")
}

func newRedoCmd(flags *rootFlags) *cobra.Command {
	return newHistoryCmd(flags, redoStep, "Re-apply the last undone change")
}

func newHistoryCmd(flags *rootFlags, step historyStep, short string) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   step.name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryStep(cmd, flags, step, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the change as a diff without applying it")

	return cmd
}

func runHistoryStep(cmd *cobra.Command, flags *rootFlags, step historyStep, opts *historyOptions) error {
	sess, err := openSession(cmd, flags, step.name)
	if err != nil {
		return err
	}

	current := sess.History.Current()
	target, ok := step.target(sess)
	if !ok {
		if err := closeSession(cmd, sess, step.name); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), step.empty)
		return nil
	}

	if opts.dryRun {
		if err := closeSession(cmd, sess, step.name); err != nil {
			return err
		}
		return renderDocumentDiff(cmd.OutOrStdout(), current, target, step.label)
	}

	sess.Dispatch(step.command)
	remaining := step.remained(sess)
	if err := closeSession(cmd, sess, step.name); err != nil {
		return err
	}

	before, after, err := encodeDocuments(current, target)
	if err != nil {
		return newCommandError(step.name, "summarizing change", err, "The change was applied; run 'scalekit palette list' to inspect it.")
	}
	inserted, deleted := diff.Changed(before, after)
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s (+%d -%d lines, %d more available)\n", step.name, inserted, deleted, remaining)
	return nil
}

func renderDocumentDiff(w io.Writer, current, target model.Document, label string) error {
	before, after, err := encodeDocuments(current, target)
	if err != nil {
		return err
	}
	out := diff.Unified(before, after, "current", label)
	if out == "" {
		fmt.Fprintln(w, "No differences.")
		return nil
	}
	_, err = io.WriteString(w, out)
	return err
}

func encodeDocuments(a, b model.Document) (string, string, error) {
	before, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode current document: %w", err)
	}
	after, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode target document: %w", err)
	}
	return string(before) + "\n", string(after) + "\n", nil
}
