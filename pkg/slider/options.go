package slider

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/internal/logging"
	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// DefaultColor is used when no accent colour is configured.
const DefaultColor = "#ff6d04"

type config struct {
	color        string
	fieldType    model.FieldType
	persistValue bool
	showBounds   bool
	timeZone     func() string
	location     *time.Location
	name         string
	batch        func(func())
	logger       logrus.FieldLogger
}

func newConfig(options []Option) config {
	cfg := config{
		color:        DefaultColor,
		persistValue: true,
		showBounds:   true,
		batch:        func(fn func()) { fn() },
		logger:       logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Option configures sliders and the named wrapper.
type Option func(*config)

// WithColor sets the accent colour handed to renderers.
func WithColor(color string) Option {
	return func(c *config) {
		if trimmed := strings.TrimSpace(color); trimmed != "" {
			c.color = trimmed
		}
	}
}

// WithFieldType selects stepping and formatting rules.
func WithFieldType(fieldType model.FieldType) Option {
	return func(c *config) {
		c.fieldType = fieldType
	}
}

// WithPersistValue keeps value labels visible while idle. Defaults to true;
// when false labels only show while the pointer is down.
func WithPersistValue(persist bool) Option {
	return func(c *config) {
		c.persistValue = persist
	}
}

// WithShowBounds renders the formatted bounds at both ends of the track.
// Defaults to true.
func WithShowBounds(show bool) Option {
	return func(c *config) {
		c.showBounds = show
	}
}

// WithTimeZone fixes the zone date-time labels render in.
func WithTimeZone(name string) Option {
	return func(c *config) {
		c.timeZone = func() string { return name }
	}
}

// WithTimeZoneSource reads the zone on every render, for hosts where the
// zone can change at runtime.
func WithTimeZoneSource(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.timeZone = fn
		}
	}
}

// WithLocation renders date-times in loc, taking precedence over zone names.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		c.location = loc
	}
}

// WithName sets the header shown above a named range control.
func WithName(name string) Option {
	return func(c *config) {
		c.name = strings.TrimSpace(name)
	}
}

// WithBatch wraps multi-cell writes in batch, typically (*store.Store).Batch,
// so the store's other subscribers see them together too. The cells the
// control writes are always published together.
func WithBatch(batch func(func())) Option {
	return func(c *config) {
		if batch != nil {
			c.batch = batch
		}
	}
}

// WithLogger routes controller diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
