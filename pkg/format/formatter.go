package format

import (
	"strings"
	"time"

	"github.com/ledkarlsson/fiftyone/components/timezones"
	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// Formatter renders slider values for one field at one set of bounds.
// Formatters are immutable; build a new one when the bounds change.
type Formatter struct {
	fieldType   model.FieldType
	loc         *time.Location
	bounds      model.Bounds
	titleLayout string
	valueLayout string
	precision   Precision
}

// New resolves timeZone (UTC when empty or unknown) and builds a formatter
// for fieldType at bounds.
func New(fieldType model.FieldType, timeZone string, bounds model.Bounds) Formatter {
	return NewInLocation(fieldType, timezones.ResolveOr(timeZone, "UTC"), bounds)
}

// NewInLocation builds a formatter rendering date-times in loc.
func NewInLocation(fieldType model.FieldType, loc *time.Location, bounds model.Bounds) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	f := Formatter{fieldType: fieldType, loc: loc, bounds: bounds}
	if fieldType == model.FieldTypeDateTime {
		f.titleLayout, f.valueLayout, f.precision = dateTimeLayouts(loc, bounds.Lo(), bounds.Hi())
	}
	return f
}

// HasTitle reports whether a shared date label is hoisted above the slider
// instead of repeating it in every value label.
func (f Formatter) HasTitle() bool {
	return f.titleLayout != ""
}

// Title renders the shared label for the lower bound, or "" when there is none.
func (f Formatter) Title() string {
	if !f.HasTitle() || !f.bounds.Known() {
		return ""
	}
	label := toTime(f.bounds.Lo(), f.loc).Format(f.titleLayout)
	return strings.ReplaceAll(label, "/", "-")
}

// Precision reports the date-time precision in use.
func (f Formatter) Precision() Precision {
	return f.precision
}

// Format renders v.
func (f Formatter) Format(v float64) string {
	switch f.fieldType {
	case model.FieldTypeDateTime:
		label := compact(toTime(v, f.loc).Format(f.valueLayout))
		if f.precision.fractionalDigits() == 3 {
			return label + "ms"
		}
		return label
	case model.FieldTypeInteger:
		return Abbreviate(v, 0)
	default:
		return Abbreviate(v, 2)
	}
}

// FormatValue renders an optional value; unset values render as "".
func (f Formatter) FormatValue(v model.SliderValue) string {
	raw, ok := v.Float()
	if !ok {
		return ""
	}
	return f.Format(raw)
}
