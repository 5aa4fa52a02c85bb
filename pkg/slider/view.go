package slider

import "github.com/ledkarlsson/fiftyone/pkg/model"

// Handle is one positioned handle with its label.
type Handle struct {
	Value model.SliderValue
	Label string
}

// View is everything a front end needs to draw a slider.
type View struct {
	// Hidden controls render nothing at all.
	Hidden bool
	// Title is the shared date label hoisted above date-time tracks.
	Title     string
	Color     string
	Min, Max  float64
	Step      float64
	Draggable bool
	// MinLabel and MaxLabel are empty when bounds are not shown.
	MinLabel   string
	MaxLabel   string
	Handles    []Handle
	ShowLabels bool
	State      State
}

// View snapshots the controller for rendering.
func (c *Controller[V]) View() View {
	bounds := c.Bounds()
	if !bounds.Known() {
		return View{Hidden: true}
	}

	f := c.Formatter()
	v := View{
		Title:      f.Title(),
		Color:      c.cfg.color,
		Min:        bounds.Lo(),
		Max:        bounds.Hi(),
		Step:       c.Step(),
		Draggable:  c.Draggable(),
		ShowLabels: c.LabelsVisible(),
		State:      c.state,
	}
	if c.cfg.showBounds {
		v.MinLabel = f.Format(bounds.Lo())
		v.MaxLabel = f.Format(bounds.Hi())
	}
	v.Handles = make([]Handle, c.shape.handles)
	for i := range v.Handles {
		value := c.HandleValue(i)
		v.Handles[i] = Handle{Value: value, Label: f.FormatValue(value)}
	}
	return v
}
