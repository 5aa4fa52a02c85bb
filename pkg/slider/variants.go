package slider

import (
	"math"

	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

// Slider is the single-value control.
type Slider = Controller[model.SliderValue]

// RangeSlider is the dual-handle control.
type RangeSlider = Controller[model.Range]

// NewSlider wires a single-value control to its bounds and committed cell.
func NewSlider(bounds store.Source[model.Bounds], value store.Cell[model.SliderValue], options ...Option) *Slider {
	return newController(bounds, value, scalarShape, options)
}

// NewRangeSlider wires a dual-handle control to its bounds and committed cell.
// Ranges are arrays, so the draft is always a copy of what callers pass in.
func NewRangeSlider(bounds store.Source[model.Bounds], value store.Cell[model.Range], options ...Option) *RangeSlider {
	return newController(bounds, value, rangeShape, options)
}

var scalarShape = shape[model.SliderValue]{
	handles: 1,
	at: func(v model.SliderValue, _ int) model.SliderValue {
		return v
	},
	with: func(_ model.SliderValue, _ int, f float64) model.SliderValue {
		return model.Value(f)
	},
	normalize: func(v model.SliderValue, bounds model.Bounds) model.SliderValue {
		return clampValue(v, bounds)
	},
}

var rangeShape = shape[model.Range]{
	handles: 2,
	at: func(r model.Range, i int) model.SliderValue {
		return r[i]
	},
	// A handle stops at the other handle instead of crossing it.
	with: func(r model.Range, i int, f float64) model.Range {
		switch i {
		case 0:
			if hi, ok := r[1].Float(); ok {
				f = math.Min(f, hi)
			}
		case 1:
			if lo, ok := r[0].Float(); ok {
				f = math.Max(f, lo)
			}
		}
		r[i] = model.Value(f)
		return r
	},
	normalize: func(r model.Range, bounds model.Bounds) model.Range {
		r[0] = clampValue(r[0], bounds)
		r[1] = clampValue(r[1], bounds)
		return r.Ordered()
	},
}

func clampValue(v model.SliderValue, bounds model.Bounds) model.SliderValue {
	f, ok := v.Float()
	if !ok {
		return v
	}
	return model.Value(bounds.Clamp(f))
}
