package slider

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

// IsDefaultRange reports whether every entry of r equals the matching bound,
// i.e. the selection has not been narrowed.
func IsDefaultRange(r model.Range, bounds model.Bounds) bool {
	for i := range bounds {
		if r[i] != bounds[i] {
			return false
		}
	}
	return true
}

// Visibility lists which parts of a named control render. Every flag is
// derived from the committed state; none of it is stored.
type Visibility struct {
	Hidden   bool
	Divider  bool
	Checkbox bool
	Reset    bool
}

// NamedView is the render snapshot of a named control.
type NamedView struct {
	Visibility
	Name        string
	Color       string
	Slider      View
	NoneCount   int
	IncludeNone bool
}

// Named composes a range slider with a missing-values checkbox and a reset
// action.
type Named struct {
	bounds      store.Source[model.Bounds]
	value       store.Cell[model.Range]
	noneCount   store.Source[int]
	includeNone store.Cell[bool]

	slider *RangeSlider
	cfg    config
	logger logrus.FieldLogger
}

// NewNamed builds the composite control. The inner range slider never shows
// its bounds labels.
func NewNamed(
	bounds store.Source[model.Bounds],
	value store.Cell[model.Range],
	noneCount store.Source[int],
	includeNone store.Cell[bool],
	options ...Option,
) *Named {
	if bounds == nil {
		bounds = store.NewCell(model.UnknownBounds())
	}
	if value == nil {
		value = store.NewCell(model.Range{})
	}
	if noneCount == nil {
		noneCount = store.NewCell(0)
	}
	if includeNone == nil {
		includeNone = store.NewCell(true)
	}
	cfg := newConfig(options)
	sliderOptions := append(append([]Option{}, options...), WithShowBounds(false))
	return &Named{
		bounds:      bounds,
		value:       value,
		noneCount:   noneCount,
		includeNone: includeNone,
		slider:      NewRangeSlider(bounds, value, sliderOptions...),
		cfg:         cfg,
		logger:      cfg.logger.WithField("component", "named-range"),
	}
}

// NewNamedFromStore wires a named control to a registered field.
func NewNamedFromStore(s *store.Store, path string, options ...Option) (*Named, error) {
	state, ok := s.Field(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownField, path)
	}
	defaults := append(storeOptions(s, state.Field()), WithName(state.Field().Label()), WithBatch(s.Batch))
	return NewNamed(state.Bounds(), state.Range(), state.NoneCount(), state.IncludeNone(),
		append(defaults, options...)...), nil
}

// NewSliderFromStore wires a single-value control to a registered field.
func NewSliderFromStore(s *store.Store, path string, options ...Option) (*Slider, error) {
	state, ok := s.Field(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownField, path)
	}
	return NewSlider(state.Bounds(), state.Scalar(), append(storeOptions(s, state.Field()), options...)...), nil
}

// NewRangeFromStore wires a bare dual-handle control to a registered field.
func NewRangeFromStore(s *store.Store, path string, options ...Option) (*RangeSlider, error) {
	state, ok := s.Field(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownField, path)
	}
	return NewRangeSlider(state.Bounds(), state.Range(), append(storeOptions(s, state.Field()), options...)...), nil
}

func storeOptions(s *store.Store, field model.Field) []Option {
	return []Option{
		WithFieldType(field.Type),
		WithColor(field.Color),
		WithTimeZoneSource(s.TimeZone),
	}
}

// Slider returns the inner range slider.
func (n *Named) Slider() *RangeSlider {
	return n.slider
}

// Name returns the header text, possibly empty.
func (n *Named) Name() string {
	return n.cfg.name
}

// Close releases the inner slider's subscription.
func (n *Named) Close() {
	if n == nil {
		return
	}
	n.slider.Close()
}

// IsDefault reports whether the committed range spans the full bounds.
func (n *Named) IsDefault() bool {
	return IsDefaultRange(n.value.Get(), n.bounds.Get())
}

// Visibility derives which parts render from the committed state.
func (n *Named) Visibility() Visibility {
	bounds := n.bounds.Get()
	if !bounds.Known() {
		return Visibility{Hidden: true}
	}
	hasNone := n.noneCount.Get() > 0
	isDefault := IsDefaultRange(n.value.Get(), bounds)
	checkbox := hasNone && isDefault
	return Visibility{
		Divider:  checkbox || !isDefault,
		Checkbox: checkbox,
		Reset:    !isDefault || !n.includeNone.Get(),
	}
}

// IncludeNone reports whether missing-value records are included.
func (n *Named) IncludeNone() bool {
	return n.includeNone.Get()
}

// SetIncludeNone drives the missing-values checkbox.
func (n *Named) SetIncludeNone(include bool) {
	n.includeNone.Set(include)
}

// ToggleIncludeNone flips the checkbox when it is visible and reports whether
// it did.
func (n *Named) ToggleIncludeNone() bool {
	if !n.Visibility().Checkbox {
		return false
	}
	n.includeNone.Set(!n.includeNone.Get())
	return true
}

// Reset restores the full range and includes missing values in one atomic
// write. Controls with undetermined bounds are left untouched.
func (n *Named) Reset() bool {
	bounds := n.bounds.Get()
	if !bounds.Known() {
		return false
	}
	n.cfg.batch(func() {
		store.BatchCells(func() {
			n.value.Set(bounds.Range())
			n.includeNone.Set(true)
		}, n.value, n.includeNone)
	})
	n.logger.WithField("bounds", bounds).Debug("named-range: reset")
	return true
}

// View snapshots the named control for rendering.
func (n *Named) View() NamedView {
	vis := n.Visibility()
	if vis.Hidden {
		return NamedView{Visibility: vis}
	}
	return NamedView{
		Visibility:  vis,
		Name:        n.cfg.name,
		Color:       n.cfg.color,
		Slider:      n.slider.View(),
		NoneCount:   n.noneCount.Get(),
		IncludeNone: n.includeNone.Get(),
	}
}
