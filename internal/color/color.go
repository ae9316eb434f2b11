// Package color holds the HSL color value used throughout palettes together
// with the per-channel arithmetic the curve engine relies on.
package color

import (
	"fmt"
	"math"
	"strings"
)

// Channel names one component of an HSL color.
type Channel string

const (
	Hue        Channel = "hue"
	Saturation Channel = "saturation"
	Lightness  Channel = "lightness"
)

// Channels lists every channel in canonical order.
var Channels = []Channel{Hue, Saturation, Lightness}

// ParseChannel resolves a channel name, accepting the single-letter aliases h, s and l.
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hue", "h":
		return Hue, nil
	case "saturation", "s":
		return Saturation, nil
	case "lightness", "l":
		return Lightness, nil
	default:
		return "", fmt.Errorf("unknown channel %q", name)
	}
}

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	return c == Hue || c == Saturation || c == Lightness
}

// Max returns the upper bound of the channel's absolute range.
func (c Channel) Max() float64 {
	if c == Hue {
		return 360
	}
	return 100
}

func (c Channel) String() string {
	return string(c)
}

// Color is an HSL triple. Hue is in degrees [0,360]; saturation and lightness
// are percentages [0,100]. When a curve drives a channel the stored value for
// that channel is an offset rather than an absolute value.
type Color struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Get returns the value stored for ch.
func (c Color) Get(ch Channel) float64 {
	switch ch {
	case Hue:
		return c.Hue
	case Saturation:
		return c.Saturation
	case Lightness:
		return c.Lightness
	default:
		return 0
	}
}

// With returns a copy of c with ch set to v.
func (c Color) With(ch Channel, v float64) Color {
	switch ch {
	case Hue:
		c.Hue = v
	case Saturation:
		c.Saturation = v
	case Lightness:
		c.Lightness = v
	}
	return c
}

// Add returns a copy of c with delta added to ch.
func (c Color) Add(ch Channel, delta float64) Color {
	return c.With(ch, c.Get(ch)+delta)
}

// Darken lowers lightness by amount, never going below zero.
func (c Color) Darken(amount float64) Color {
	c.Lightness = math.Max(0, c.Lightness-amount)
	return c
}

// Clamped limits every channel to its absolute range.
func (c Color) Clamped() Color {
	for _, ch := range Channels {
		c = c.With(ch, clamp(c.Get(ch), 0, ch.Max()))
	}
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.Hue, c.Saturation, c.Lightness)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Round rounds v to one decimal place.
func Round(v float64) float64 {
	return math.Round(v*10) / 10
}
