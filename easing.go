package slideview

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is the name of the easing curve used for camera transitions: a cubic ease-out, which starts fast and settles slowly
// so that large camera moves don't end abruptly.
const DefaultEasing = "out-cubic"

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    nil, // Evaluated in float64 by Ease()
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-expo":     ease.OutExpo,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
}

// EasingByName returns the easing function registered under the given name, and whether it exists.
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns the names of all registered easing curves, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Ease maps a linear progress value (0 to 1) through the easing function given. Progress is clamped to [0, 1], and the endpoints
// map exactly to 0 and 1 regardless of the curve's floating-point behavior. A nil function uses the default ease-out cubic, which
// is evaluated in float64; gween's curves work in float32.
func Ease(fn ease.TweenFunc, progress float64) float64 {

	if progress <= 0 {
		return 0
	} else if progress >= 1 {
		return 1
	}

	if fn == nil {
		return outCubic(progress)
	}

	return float64(fn(float32(progress), 0, 1, 1))

}

func outCubic(progress float64) float64 {
	inv := 1 - progress
	return 1 - inv*inv*inv
}
