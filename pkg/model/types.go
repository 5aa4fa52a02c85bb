package model

import (
	"errors"
	"fmt"
	"strings"
)

// FieldType tags how a field's values are stepped and formatted.
type FieldType string

const (
	// FieldTypeUnset is treated like an integer for stepping and like a float
	// for formatting.
	FieldTypeUnset    FieldType = ""
	FieldTypeInteger  FieldType = "int"
	FieldTypeFloat    FieldType = "float"
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeOther    FieldType = "other"
)

var (
	// ErrUnknownFieldType is returned by ParseFieldType for unrecognised tags.
	ErrUnknownFieldType = errors.New("model: unknown field type")
	// ErrInvertedBounds signals bounds whose lower end exceeds the upper end.
	ErrInvertedBounds = errors.New("model: bounds are inverted")
	// ErrPartialBounds signals bounds with exactly one end determined.
	ErrPartialBounds = errors.New("model: bounds are partially determined")
)

// ParseFieldType maps config and schema spellings onto a FieldType.
func ParseFieldType(raw string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return FieldTypeUnset, nil
	case "int", "integer", "long":
		return FieldTypeInteger, nil
	case "float", "number", "double", "decimal":
		return FieldTypeFloat, nil
	case "datetime", "date-time", "date", "timestamp":
		return FieldTypeDateTime, nil
	case "other":
		return FieldTypeOther, nil
	default:
		return FieldTypeUnset, fmt.Errorf("%w: %q", ErrUnknownFieldType, raw)
	}
}

// SteppedAsInteger reports whether slider steps are rounded up to whole units.
func (t FieldType) SteppedAsInteger() bool {
	return t == FieldTypeUnset || t == FieldTypeInteger
}

// Field describes a filterable field as seen by the host sidebar.
type Field struct {
	Path   string    `json:"path"`
	Name   string    `json:"name,omitempty"`
	Type   FieldType `json:"type,omitempty"`
	Widget string    `json:"widget,omitempty"`
	Color  string    `json:"color,omitempty"`
	// Scalar marks fields filtered by a single value instead of a pair.
	Scalar bool `json:"scalar,omitempty"`
}

// Label returns the display name, falling back to the path.
func (f Field) Label() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return f.Path
}
