package slider

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/components/timezones"
	"github.com/ledkarlsson/fiftyone/pkg/format"
	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

// State is the interaction state of a controller.
type State int

const (
	// StateSynced: the draft mirrors the committed value.
	StateSynced State = iota
	// StateDragging: the user is moving a handle; only the draft changes.
	StateDragging
	// StateCommitting: the draft was written to the committed cell and the
	// echo has not been observed yet.
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateSynced:
		return "synced"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// shape adapts the controller to a value layout: one handle for scalar
// sliders, two for range sliders.
type shape[V comparable] struct {
	handles   int
	at        func(V, int) model.SliderValue
	with      func(V, int, float64) V
	normalize func(V, model.Bounds) V
}

// Controller reconciles a local draft with a committed cell and exposes the
// transitions a front end drives: pointer down/up, drag ticks, commit and
// external updates. All methods are meant to be called from a single event
// loop.
type Controller[V comparable] struct {
	bounds store.Source[model.Bounds]
	value  store.Cell[V]
	shape  shape[V]
	cfg    config
	logger logrus.FieldLogger

	buffer   Buffer[V]
	state    State
	clicking bool
	cancel   func()
}

func newController[V comparable](bounds store.Source[model.Bounds], value store.Cell[V], sh shape[V], options []Option) *Controller[V] {
	cfg := newConfig(options)
	if bounds == nil {
		bounds = store.NewCell(model.UnknownBounds())
	}
	if value == nil {
		var zero V
		value = store.NewCell(zero)
	}
	c := &Controller[V]{
		bounds: bounds,
		value:  value,
		shape:  sh,
		cfg:    cfg,
		logger: cfg.logger.WithField("component", "slider"),
	}
	c.Reconcile()
	c.cancel = value.Subscribe(c.OnExternalUpdate)
	return c
}

// Close stops listening to the committed cell.
func (c *Controller[V]) Close() {
	if c == nil || c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
}

// Bounds returns the current domain.
func (c *Controller[V]) Bounds() model.Bounds {
	return c.bounds.Get()
}

// Hidden reports whether the control renders nothing because its bounds are
// undetermined.
func (c *Controller[V]) Hidden() bool {
	return !c.Bounds().Known()
}

// Step returns the distance between stops; 0 for fixed displays.
func (c *Controller[V]) Step() float64 {
	return ComputeStep(c.Bounds(), c.cfg.fieldType)
}

// Draggable reports whether handles can move. Zero-width or undetermined
// bounds make the control a fixed display.
func (c *Controller[V]) Draggable() bool {
	return c.Step() > 0
}

// FieldType returns the configured field type.
func (c *Controller[V]) FieldType() model.FieldType {
	return c.cfg.fieldType
}

// Color returns the accent colour.
func (c *Controller[V]) Color() string {
	return c.cfg.color
}

// State returns the interaction state.
func (c *Controller[V]) State() State {
	return c.state
}

// Draft returns the local value the handles are drawn at.
func (c *Controller[V]) Draft() V {
	return c.buffer.Draft()
}

// Committed returns the externally owned value.
func (c *Controller[V]) Committed() V {
	return c.value.Get()
}

// Clicking reports whether the pointer is held down on the control.
func (c *Controller[V]) Clicking() bool {
	return c.clicking
}

// LabelsVisible applies the display policy for value labels.
func (c *Controller[V]) LabelsVisible() bool {
	return c.cfg.persistValue || c.clicking
}

// Formatter builds the label formatter for the current bounds.
func (c *Controller[V]) Formatter() format.Formatter {
	return format.NewInLocation(c.cfg.fieldType, c.location(), c.Bounds())
}

// Handles reports the number of handles on the track.
func (c *Controller[V]) Handles() int {
	return c.shape.handles
}

// HandleValue returns the draft entry for handle i.
func (c *Controller[V]) HandleValue(i int) model.SliderValue {
	if i < 0 || i >= c.shape.handles {
		return model.Unset()
	}
	return c.shape.at(c.buffer.Draft(), i)
}

// PointerDown marks the pointer as held.
func (c *Controller[V]) PointerDown() {
	c.clicking = true
}

// PointerUp releases the pointer without committing.
func (c *Controller[V]) PointerUp() {
	c.clicking = false
}

// OnDrag records a candidate value in the draft. The committed cell is not
// touched. Drags on fixed displays are ignored.
func (c *Controller[V]) OnDrag(v V) bool {
	if !c.Draggable() {
		c.logger.Debug("slider: drag ignored on fixed display")
		return false
	}
	c.buffer.Set(c.shape.normalize(v, c.Bounds()))
	c.state = StateDragging
	return true
}

// Nudge moves handle i by steps stops from its draft position and records the
// result as a drag tick. Unset handles start from their end of the track.
func (c *Controller[V]) Nudge(i, steps int) bool {
	if !c.Draggable() || i < 0 || i >= c.shape.handles {
		return false
	}
	bounds := c.Bounds()
	start := bounds.Lo()
	if i == c.shape.handles-1 && c.shape.handles > 1 {
		start = bounds.Hi()
	}
	current := c.shape.at(c.buffer.Draft(), i).Or(start)
	return c.MoveHandle(i, current+float64(steps)*c.Step())
}

// MoveHandle places handle i at the stop nearest v as a drag tick. A range
// handle stops at the other handle instead of crossing it.
func (c *Controller[V]) MoveHandle(i int, v float64) bool {
	if !c.Draggable() || i < 0 || i >= c.shape.handles {
		return false
	}
	next := Snap(v, c.Bounds(), c.Step())
	return c.OnDrag(c.shape.with(c.buffer.Draft(), i, next))
}

// OnCommit writes v to the committed cell and releases the pointer. The
// controller returns to StateSynced once the cell echoes the value, which for
// synchronous stores happens before OnCommit returns.
func (c *Controller[V]) OnCommit(v V) bool {
	c.clicking = false
	if !c.Draggable() {
		c.logger.Debug("slider: commit ignored on fixed display")
		return false
	}
	v = c.shape.normalize(v, c.Bounds())
	c.buffer.Set(v)
	c.state = StateCommitting
	c.value.Set(v)
	if c.state == StateCommitting && c.value.Get() == v {
		c.state = StateSynced
	}
	c.logger.WithField("value", v).Debug("slider: committed")
	return true
}

// CommitDraft commits the current draft, for drivers that drag with discrete
// ticks and commit on a separate gesture.
func (c *Controller[V]) CommitDraft() bool {
	return c.OnCommit(c.buffer.Draft())
}

// OnExternalUpdate reconciles the draft with a committed value observed from
// the store. Re-running it with equal contents is a no-op.
func (c *Controller[V]) OnExternalUpdate(committed V) {
	changed := c.buffer.Reconcile(committed)
	if changed {
		c.logger.WithField("value", committed).Debug("slider: draft reconciled")
	}
	// A draft equal to the committed value has nothing left to commit.
	if changed || c.state == StateCommitting || c.buffer.Draft() == committed {
		c.state = StateSynced
	}
}

// Reconcile pulls the committed value and reconciles against it.
func (c *Controller[V]) Reconcile() {
	c.OnExternalUpdate(c.value.Get())
}

func (c *Controller[V]) location() *time.Location {
	if c.cfg.location != nil {
		return c.cfg.location
	}
	name := ""
	if c.cfg.timeZone != nil {
		name = c.cfg.timeZone()
	}
	return timezones.ResolveOr(name, "UTC")
}
