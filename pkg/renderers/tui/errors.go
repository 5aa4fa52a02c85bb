package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoControls is returned when nothing is visible to edit.
	ErrNoControls = errors.New("tui: no visible controls")
)
