// Package fiftyone assembles range filter controls for a sidebar: it resolves
// a widget for every field in a store, wires the matching slider controller,
// and hands the controls to a named renderer.
package fiftyone

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/internal/logging"
	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/live"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/text"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/tui"
	"github.com/ledkarlsson/fiftyone/pkg/slider"
	"github.com/ledkarlsson/fiftyone/pkg/store"
	"github.com/ledkarlsson/fiftyone/pkg/widgets"
)

const defaultRendererName = "text"

// ErrUnknownWidget is returned when a field resolves to a widget the sidebar
// cannot build.
var ErrUnknownWidget = errors.New("fiftyone: unknown widget")

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Control aliases render.Control.
type Control = render.Control

// Option customises a Sidebar.
type Option func(*Sidebar)

// WithLogger routes sidebar and controller diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Sidebar) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry replaces the default renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Sidebar) {
		s.renderers = registry
	}
}

// WithWidgets replaces the default widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(s *Sidebar) {
		s.widgets = registry
	}
}

// WithSliderOptions appends options to every controller the sidebar builds.
func WithSliderOptions(options ...slider.Option) Option {
	return func(s *Sidebar) {
		s.sliderOptions = append(s.sliderOptions, options...)
	}
}

// WithDefaultRenderer overrides the renderer used when Render receives an
// empty name.
func WithDefaultRenderer(name string) Option {
	return func(s *Sidebar) {
		s.defaultRenderer = name
	}
}

// Sidebar owns one control per store field.
type Sidebar struct {
	store           *store.Store
	logger          logrus.FieldLogger
	widgets         *widgets.Registry
	renderers       *render.Registry
	sliderOptions   []slider.Option
	defaultRenderer string

	controls []*render.Control
	byPath   map[string]*render.Control
}

// DefaultRegistry returns a renderer registry holding the text, tui and live
// renderers with their default settings. The interactive renderers attach to
// stdin and stdout when first requested.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustAdd(text.New())
	registry.MustRegister("tui", func() (render.Renderer, error) {
		return tui.New(), nil
	})
	registry.MustRegister("live", func() (render.Renderer, error) {
		return live.New(), nil
	})
	return registry
}

// New builds the controls for every field in st.
func New(st *store.Store, options ...Option) (*Sidebar, error) {
	if st == nil {
		return nil, errors.New("fiftyone: store is required")
	}
	s := newSidebar(options)
	if err := s.build(st); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Open loads a YAML, TOML or JSON sidebar config and builds its controls.
func Open(path string, options ...Option) (*Sidebar, error) {
	s := newSidebar(options)
	st, err := store.Load(path, store.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("fiftyone: %w", err)
	}
	if err := s.build(st); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func newSidebar(options []Option) *Sidebar {
	s := &Sidebar{
		logger:          logging.Discard(),
		defaultRenderer: defaultRendererName,
		byPath:          make(map[string]*render.Control),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.widgets == nil {
		s.widgets = widgets.NewRegistry()
	}
	if s.renderers == nil {
		s.renderers = DefaultRegistry()
	}
	return s
}

func (s *Sidebar) build(st *store.Store) error {
	s.store = st
	for _, field := range s.widgets.Assign(st.Fields()) {
		options := append([]slider.Option{slider.WithLogger(s.logger)}, s.sliderOptions...)

		var control *render.Control
		switch field.Widget {
		case widgets.WidgetSlider:
			c, err := slider.NewSliderFromStore(st, field.Path, options...)
			if err != nil {
				return fmt.Errorf("fiftyone: %w", err)
			}
			control = render.NewSliderControl(field, c)
		case widgets.WidgetRange:
			c, err := slider.NewRangeFromStore(st, field.Path, options...)
			if err != nil {
				return fmt.Errorf("fiftyone: %w", err)
			}
			control = render.NewRangeControl(field, c)
		case widgets.WidgetNamedRange:
			n, err := slider.NewNamedFromStore(st, field.Path, options...)
			if err != nil {
				return fmt.Errorf("fiftyone: %w", err)
			}
			control = render.NewNamedControl(field, n)
		default:
			return fmt.Errorf("%w: %q for field %q", ErrUnknownWidget, field.Widget, field.Path)
		}

		s.controls = append(s.controls, control)
		s.byPath[field.Path] = control
		s.logger.WithFields(logrus.Fields{
			"field":  field.Path,
			"widget": field.Widget,
		}).Debug("fiftyone: control built")
	}
	return nil
}

// Store returns the store the controls are wired to.
func (s *Sidebar) Store() *store.Store {
	if s == nil {
		return nil
	}
	return s.store
}

// Controls returns the controls in field registration order.
func (s *Sidebar) Controls() []*render.Control {
	if s == nil {
		return nil
	}
	return append([]*render.Control(nil), s.controls...)
}

// Control returns the control built for path.
func (s *Sidebar) Control(path string) (*render.Control, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.byPath[path]
	return c, ok
}

// Renderers lists the registered renderer names.
func (s *Sidebar) Renderers() []string {
	if s == nil {
		return nil
	}
	return s.renderers.List()
}

// Render hands every control to the named renderer. An empty name selects
// the default renderer.
func (s *Sidebar) Render(ctx context.Context, name string, opts RenderOptions) ([]byte, error) {
	if s == nil {
		return nil, errors.New("fiftyone: sidebar is nil")
	}
	if ctx == nil {
		return nil, errors.New("fiftyone: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		name = s.defaultRenderer
	}
	renderer, err := s.renderers.Get(name)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, s.controls, opts)
	if err != nil {
		return nil, fmt.Errorf("fiftyone: render %s: %w", name, err)
	}
	return out, nil
}

// Close unsubscribes every control from the store.
func (s *Sidebar) Close() {
	if s == nil {
		return
	}
	for _, c := range s.controls {
		c.Close()
	}
	s.controls = nil
	s.byPath = make(map[string]*render.Control)
}
