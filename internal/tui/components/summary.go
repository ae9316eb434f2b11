package components

import (
	"fmt"
	"strings"
)

// SummaryData describes the history state shown under the editor.
type SummaryData struct {
	State   string
	Past    int
	Future  int
	Message string
}

// Summary renders the status line.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	parts := []string{
		fmt.Sprintf("history: %s", s.data.State),
		fmt.Sprintf("undo %d", s.data.Past),
		fmt.Sprintf("redo %d", s.data.Future),
	}
	if msg := strings.TrimSpace(s.data.Message); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " · ")
}
