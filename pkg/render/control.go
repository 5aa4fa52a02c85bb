package render

import (
	"github.com/ledkarlsson/fiftyone/pkg/format"
	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/slider"
	"github.com/ledkarlsson/fiftyone/pkg/widgets"
)

// handles is the part of a slider controller that does not depend on its
// value layout. Both slider.Slider and slider.RangeSlider satisfy it.
type handles interface {
	Hidden() bool
	Handles() int
	Step() float64
	Draggable() bool
	State() slider.State
	Formatter() format.Formatter
	PointerDown()
	PointerUp()
	Nudge(i, steps int) bool
	MoveHandle(i int, v float64) bool
	CommitDraft() bool
	Reconcile()
	View() slider.View
	Close()
}

// Control is one resolved filter control as renderers see it: a slider of
// some shape plus, for named ranges, the wrapper's checkbox and reset.
type Control struct {
	field     model.Field
	widget    string
	ctl       handles
	named     *slider.Named
	committed func() any
}

// NewSliderControl wraps a single-value slider.
func NewSliderControl(field model.Field, s *slider.Slider) *Control {
	return &Control{
		field:     field,
		widget:    widgets.WidgetSlider,
		ctl:       s,
		committed: func() any { return s.Committed() },
	}
}

// NewRangeControl wraps a bare range slider.
func NewRangeControl(field model.Field, s *slider.RangeSlider) *Control {
	return &Control{
		field:     field,
		widget:    widgets.WidgetRange,
		ctl:       s,
		committed: func() any { return s.Committed() },
	}
}

// NewNamedControl wraps a named range.
func NewNamedControl(field model.Field, n *slider.Named) *Control {
	return &Control{
		field:     field,
		widget:    widgets.WidgetNamedRange,
		ctl:       n.Slider(),
		named:     n,
		committed: func() any { return n.Slider().Committed() },
	}
}

// Field returns the descriptor the control was built for.
func (c *Control) Field() model.Field { return c.field }

// Widget returns the resolved widget name.
func (c *Control) Widget() string { return c.widget }

// Label returns the display name.
func (c *Control) Label() string {
	if c.named != nil && c.named.Name() != "" {
		return c.named.Name()
	}
	return c.field.Label()
}

// Named returns the named wrapper, or nil for bare sliders.
func (c *Control) Named() *slider.Named { return c.named }

// Hidden reports whether the control renders nothing.
func (c *Control) Hidden() bool { return c.ctl.Hidden() }

// Handles reports the number of handles.
func (c *Control) Handles() int { return c.ctl.Handles() }

// Step returns the distance between stops.
func (c *Control) Step() float64 { return c.ctl.Step() }

// Draggable reports whether handles can move.
func (c *Control) Draggable() bool { return c.ctl.Draggable() }

// State returns the slider's interaction state.
func (c *Control) State() slider.State { return c.ctl.State() }

// Formatter returns the label formatter for the current bounds.
func (c *Control) Formatter() format.Formatter { return c.ctl.Formatter() }

// PointerDown marks the control as grabbed.
func (c *Control) PointerDown() { c.ctl.PointerDown() }

// PointerUp releases the control without committing.
func (c *Control) PointerUp() { c.ctl.PointerUp() }

// Nudge moves handle i by steps stops.
func (c *Control) Nudge(i, steps int) bool { return c.ctl.Nudge(i, steps) }

// MoveHandle places handle i at the stop nearest v.
func (c *Control) MoveHandle(i int, v float64) bool { return c.ctl.MoveHandle(i, v) }

// Commit writes the draft to the committed state.
func (c *Control) Commit() bool { return c.ctl.CommitDraft() }

// Revert drops the draft in favour of the committed value.
func (c *Control) Revert() { c.ctl.Reconcile() }

// View returns the slider snapshot.
func (c *Control) View() slider.View { return c.ctl.View() }

// Visibility reports which named-range affordances render. Bare sliders only
// ever report Hidden.
func (c *Control) Visibility() slider.Visibility {
	if c.named != nil {
		return c.named.Visibility()
	}
	return slider.Visibility{Hidden: c.ctl.Hidden()}
}

// ToggleIncludeNone flips the missing-values checkbox when it is shown.
func (c *Control) ToggleIncludeNone() bool {
	if c.named == nil {
		return false
	}
	return c.named.ToggleIncludeNone()
}

// Reset restores a named range to its defaults when the reset action is shown.
func (c *Control) Reset() bool {
	if c.named == nil || !c.named.Visibility().Reset {
		return false
	}
	return c.named.Reset()
}

// Committed returns the committed value: a model.SliderValue for single-value
// sliders and a model.Range otherwise.
func (c *Control) Committed() any { return c.committed() }

// Close releases the control's subscriptions.
func (c *Control) Close() {
	if c == nil {
		return
	}
	if c.named != nil {
		c.named.Close()
		return
	}
	c.ctl.Close()
}
