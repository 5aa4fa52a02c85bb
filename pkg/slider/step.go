package slider

import (
	"math"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// Resolution is the number of discrete stops the track exposes.
const Resolution = 100

// ComputeStep derives the distance between neighbouring stops. Integer and
// untyped fields round up to whole units. Undetermined or zero-width bounds
// yield 0, which marks the control as a fixed display.
func ComputeStep(bounds model.Bounds, fieldType model.FieldType) float64 {
	if !bounds.Known() {
		return 0
	}
	raw := bounds.Span() / Resolution
	if raw <= 0 || math.IsNaN(raw) {
		return 0
	}
	if fieldType.SteppedAsInteger() {
		return math.Ceil(raw)
	}
	return raw
}

// Snap clamps v into bounds and moves it onto the nearest stop counted from
// the lower bound. The upper bound is always reachable even when the span is
// not a multiple of step. The result never leaves bounds.
func Snap(v float64, bounds model.Bounds, step float64) float64 {
	if !bounds.Known() {
		return v
	}
	v = bounds.Clamp(v)
	if step <= 0 || v == bounds.Hi() {
		return v
	}
	lo := bounds.Lo()
	snapped := lo + math.Round((v-lo)/step)*step
	return bounds.Clamp(tidy(snapped, step))
}

// tidy drops float noise left by step arithmetic (0.30000000000000004) by
// rounding six decimal places below the step's magnitude. Values too large
// to scale exactly, such as millisecond timestamps, are returned unchanged.
func tidy(v, step float64) float64 {
	digits := 6 - int(math.Floor(math.Log10(step)))
	if digits <= 0 {
		return v
	}
	scale := math.Pow10(digits)
	if math.Abs(v)*scale >= 1<<53 {
		return v
	}
	return math.Round(v*scale) / scale
}
