package store

import "errors"

var (
	// ErrUnknownField is returned when a path has no registered field.
	ErrUnknownField = errors.New("store: unknown field")
	// ErrDuplicateField is returned when a path is registered twice.
	ErrDuplicateField = errors.New("store: duplicate field")
	// ErrFieldPathRequired is returned for fields without a path.
	ErrFieldPathRequired = errors.New("store: field path is required")
	// ErrUnsupportedFormat is returned for config files with an unknown extension.
	ErrUnsupportedFormat = errors.New("store: unsupported config format")
)
