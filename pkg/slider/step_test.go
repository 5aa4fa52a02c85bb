package slider

import (
	"math"
	"testing"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

func TestComputeStep(t *testing.T) {
	cases := []struct {
		name      string
		bounds    model.Bounds
		fieldType model.FieldType
		want      float64
	}{
		{"integer thousand", model.NewBounds(0, 1000), model.FieldTypeInteger, 10},
		{"unset behaves like integer", model.NewBounds(0, 1000), model.FieldTypeUnset, 10},
		{"float unit interval", model.NewBounds(0, 1), model.FieldTypeFloat, 0.01},
		{"integer rounds small spans up", model.NewBounds(0, 50), model.FieldTypeInteger, 1},
		{"date-time is unrounded", model.NewBounds(0, 250), model.FieldTypeDateTime, 2.5},
		{"degenerate span", model.NewBounds(7, 7), model.FieldTypeInteger, 0},
		{"degenerate float span", model.NewBounds(0.5, 0.5), model.FieldTypeFloat, 0},
		{"undetermined bounds", model.UnknownBounds(), model.FieldTypeFloat, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeStep(tc.bounds, tc.fieldType); got != tc.want {
				t.Fatalf("ComputeStep(%v, %q) = %v, want %v", tc.bounds, tc.fieldType, got, tc.want)
			}
		})
	}
}

func TestComputeStep_NonNegativeAndIntegral(t *testing.T) {
	types := []model.FieldType{
		model.FieldTypeUnset, model.FieldTypeInteger, model.FieldTypeFloat,
		model.FieldTypeDateTime, model.FieldTypeOther,
	}
	spans := [][2]float64{{0, 0}, {0, 1}, {-5, 5}, {0, 99}, {1e3, 1e9}, {-0.25, 0.75}, {0, 1e-6}}

	for _, fieldType := range types {
		for _, span := range spans {
			step := ComputeStep(model.NewBounds(span[0], span[1]), fieldType)
			if step < 0 {
				t.Fatalf("negative step %v for %v (%q)", step, span, fieldType)
			}
			if fieldType.SteppedAsInteger() && step != math.Trunc(step) {
				t.Fatalf("non-integral step %v for integer field %v", step, span)
			}
		}
	}
}

func TestSnap(t *testing.T) {
	unit := model.NewBounds(0, 1)
	stamps := model.NewBounds(1700000000123, 1700000000323)
	cases := []struct {
		name   string
		value  float64
		bounds model.Bounds
		step   float64
		want   float64
	}{
		{"rounds to nearest stop", 0.123, unit, 0.01, 0.12},
		{"clamps above", 2, unit, 0.01, 1},
		{"clamps below", -1, unit, 0.01, 0},
		{"drops float noise", 0.1 + 0.2, unit, 0.01, 0.3},
		{"upper bound off the grid stays reachable", 6.6, model.NewBounds(0, 6.6), 1, 6.6},
		{"grid anchored at lower bound", 3.4, model.NewBounds(0.5, 10), 1, 3.5},
		{"zero step only clamps", 0.123, unit, 0, 0.123},
		{"timestamp lower bound is a stop", 1700000000123, stamps, 2, 1700000000123},
		{"timestamp rounds half up", 1700000000124, stamps, 2, 1700000000125},
		{"timestamp nearest stop", 1700000000126.9, stamps, 2, 1700000000127},
		{"timestamp clamps below", 1699999999999, stamps, 2, 1700000000123},
		{"timestamp upper bound", 1700000000323, stamps, 2, 1700000000323},
		{"day span in milliseconds", 1700000000000 + 1000000, model.NewBounds(1700000000000, 1700086400000), 864000, 1700000864000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Snap(tc.value, tc.bounds, tc.step); got != tc.want {
				t.Fatalf("Snap(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestSnap_StaysOnGridInsideBounds(t *testing.T) {
	bounds := model.NewBounds(1700000000123, 1700000000323)
	step := ComputeStep(bounds, model.FieldTypeDateTime)
	if step != 2 {
		t.Fatalf("step: got %v", step)
	}
	for offset := -10.0; offset <= 210; offset += 0.5 {
		got := Snap(bounds.Lo()+offset, bounds, step)
		if got < bounds.Lo() || got > bounds.Hi() {
			t.Fatalf("Snap(lo%+v) = %v escapes bounds", offset, got)
		}
		if got != bounds.Hi() && math.Mod(got-bounds.Lo(), step) != 0 {
			t.Fatalf("Snap(lo%+v) = %v is off the grid", offset, got)
		}
	}
}
