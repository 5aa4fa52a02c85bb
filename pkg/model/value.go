package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// SliderValue is an optional number. The zero value is unset, which is
// distinct from a set value of 0.
type SliderValue struct {
	value float64
	set   bool
}

// Value wraps f as a set SliderValue.
func Value(f float64) SliderValue {
	return SliderValue{value: f, set: true}
}

// Unset returns an unset SliderValue.
func Unset() SliderValue {
	return SliderValue{}
}

// FromPtr converts a nullable float pointer, as decoded from config files.
func FromPtr(f *float64) SliderValue {
	if f == nil {
		return Unset()
	}
	return Value(*f)
}

// Float returns the wrapped number and whether it is set.
func (v SliderValue) Float() (float64, bool) {
	return v.value, v.set
}

// IsSet reports whether v holds a number.
func (v SliderValue) IsSet() bool {
	return v.set
}

// Or returns the wrapped number or fallback when unset.
func (v SliderValue) Or(fallback float64) float64 {
	if !v.set {
		return fallback
	}
	return v.value
}

// Ptr returns a pointer copy of the value, nil when unset.
func (v SliderValue) Ptr() *float64 {
	if !v.set {
		return nil
	}
	out := v.value
	return &out
}

func (v SliderValue) String() string {
	if !v.set {
		return "null"
	}
	return strconv.FormatFloat(v.value, 'g', -1, 64)
}

// MarshalJSON encodes unset values as null.
func (v SliderValue) MarshalJSON() ([]byte, error) {
	if !v.set || math.IsNaN(v.value) || math.IsInf(v.value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON accepts a number or null.
func (v *SliderValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Unset()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}

// Range is a lower/upper selection pair. Arrays copy on assignment, so a
// Range handed to another owner never aliases the caller's storage.
type Range [2]SliderValue

// NewRange builds a fully set range.
func NewRange(lo, hi float64) Range {
	return Range{Value(lo), Value(hi)}
}

// Lo returns the lower entry.
func (r Range) Lo() SliderValue { return r[0] }

// Hi returns the upper entry.
func (r Range) Hi() SliderValue { return r[1] }

// Ordered returns r with its ends swapped when both are set and inverted.
func (r Range) Ordered() Range {
	lo, okLo := r[0].Float()
	hi, okHi := r[1].Float()
	if okLo && okHi && lo > hi {
		return Range{r[1], r[0]}
	}
	return r
}

// Bounds is the inclusive domain a field's values range over. Both ends are
// unset while the domain is undetermined.
type Bounds [2]SliderValue

// NewBounds builds determined bounds.
func NewBounds(lo, hi float64) Bounds {
	return Bounds{Value(lo), Value(hi)}
}

// UnknownBounds returns undetermined bounds.
func UnknownBounds() Bounds {
	return Bounds{}
}

// Known reports whether every end is determined.
func (b Bounds) Known() bool {
	return b[0].set && b[1].set
}

// Lo returns the lower end, 0 when undetermined.
func (b Bounds) Lo() float64 { return b[0].value }

// Hi returns the upper end, 0 when undetermined.
func (b Bounds) Hi() float64 { return b[1].value }

// Span returns hi - lo, 0 when undetermined.
func (b Bounds) Span() float64 {
	if !b.Known() {
		return 0
	}
	return b[1].value - b[0].value
}

// Range returns the full selection covering b.
func (b Bounds) Range() Range {
	return Range{b[0], b[1]}
}

// Clamp limits f to the bounds. Undetermined bounds leave f untouched.
func (b Bounds) Clamp(f float64) float64 {
	if !b.Known() {
		return f
	}
	return math.Min(math.Max(f, b[0].value), b[1].value)
}

// Contains reports whether f lies inside determined bounds.
func (b Bounds) Contains(f float64) bool {
	return b.Known() && f >= b[0].value && f <= b[1].value
}

// Validate checks the bounds invariant. Fully undetermined bounds are valid.
func (b Bounds) Validate() error {
	if b[0].set != b[1].set {
		return ErrPartialBounds
	}
	if b.Known() && b[0].value > b[1].value {
		return ErrInvertedBounds
	}
	return nil
}
