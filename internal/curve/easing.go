package curve

import (
	"math"
	"sort"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

// EasingFunc maps t in [0,1] to a progress value, nominally in [0,1].
type EasingFunc func(t float64) float64

var easings = map[string]EasingFunc{
	"linear": func(t float64) float64 { return t },

	"easeInQuad":    func(t float64) float64 { return t * t },
	"easeOutQuad":   func(t float64) float64 { return t * (2 - t) },
	"easeInOutQuad": inOut(func(t float64) float64 { return t * t }),

	"easeInCubic":    func(t float64) float64 { return t * t * t },
	"easeOutCubic":   func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	"easeInOutCubic": inOut(func(t float64) float64 { return t * t * t }),

	"easeInSine":    func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	"easeOutSine":   func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
	"easeInOutSine": func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 },

	"easeInExpo":    easeInExpo,
	"easeOutExpo":   func(t float64) float64 { return 1 - easeInExpo(1-t) },
	"easeInOutExpo": inOut(easeInExpo),

	"easeInCirc":    func(t float64) float64 { return 1 - math.Sqrt(1-t*t) },
	"easeOutCirc":   func(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) },
	"easeInOutCirc": inOut(func(t float64) float64 { return 1 - math.Sqrt(1-t*t) }),
}

func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// inOut mirrors an ease-in function around t = 0.5.
func inOut(in EasingFunc) EasingFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return in(2*t) / 2
		}
		return 1 - in(2*(1-t))/2
	}
}

// Easing looks up an easing function by name.
func Easing(name string) (EasingFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames lists the registered easing functions.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEasing keeps the first and last values and rewrites every interior
// value as the eased interpolation between them, rounded to one decimal.
// Fewer than two values are returned unchanged.
func ApplyEasing(values []float64, fn EasingFunc) []float64 {
	n := len(values)
	if n < 2 || fn == nil {
		return values
	}
	start, end := values[0], values[n-1]
	out := make([]float64, n)
	out[0], out[n-1] = start, end
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = color.Round(start + (end-start)*fn(t))
	}
	return out
}
