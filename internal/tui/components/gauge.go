package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

// Gauge renders a channel value as a bar scaled to the channel's range.
type Gauge struct {
	bar     progress.Model
	channel color.Channel
}

// NewGauge creates a gauge for ch.
func NewGauge(ch color.Channel) Gauge {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Gauge{bar: bar, channel: ch}
}

// View renders the bar for value. The label shows the value the user edits;
// effective is what the scale actually renders when a curve is involved.
func (g Gauge) View(value, effective float64) string {
	ratio := math.Max(0, math.Min(1, effective/g.channel.Max()))
	label := fmt.Sprintf("%-10s %6.1f", g.channel, value)
	if value != effective {
		label = fmt.Sprintf("%s (%.1f)", label, effective)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(label), " ", g.bar.ViewAs(ratio))
}
