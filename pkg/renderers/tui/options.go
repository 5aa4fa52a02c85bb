package tui

import (
	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/pkg/renderers/text"
)

// Theme captures optional prefixes the renderer applies to informational
// messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPreview replaces the text renderer used to preview drafts.
func WithPreview(preview *text.Renderer) Option {
	return func(r *Renderer) {
		if preview != nil {
			r.preview = preview
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger routes session diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
