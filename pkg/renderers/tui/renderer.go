package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/internal/logging"
	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/text"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

const doneOption = "Done"

// Renderer implements render.Renderer as a prompt-driven editing session.
// Every typed value is a drag tick previewed on the track; confirming it
// commits, declining reverts to the committed value.
type Renderer struct {
	driver  PromptDriver
	preview *text.Renderer
	theme   Theme
	logger  logrus.FieldLogger
}

// New constructs a TUI renderer with defaults (survey driver on stdio, text
// preview).
func New(options ...Option) *Renderer {
	r := &Renderer{
		preview: text.New(),
		logger:  logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render runs the session until the user picks Done and returns the JSON
// summary of the committed state.
func (r *Renderer) Render(ctx context.Context, controls []*render.Control, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	var visible []*render.Control
	for _, c := range controls {
		if c != nil && !c.Hidden() {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return nil, ErrNoControls
	}

	last := 0
	for {
		options := make([]string, 0, len(visible)+1)
		for _, c := range visible {
			options = append(options, menuLabel(c))
		}
		options = append(options, doneOption)

		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Choose a filter",
			Options:      options,
			DefaultIndex: last,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(visible) {
			break
		}
		last = idx
		if err := r.editControl(ctx, visible[idx], opts); err != nil {
			return nil, err
		}
	}
	return render.EncodeJSON(controls)
}

type action struct {
	label string
	run   func() error
}

func (r *Renderer) editControl(ctx context.Context, c *render.Control, opts render.RenderOptions) error {
	for {
		actions := r.actionsFor(ctx, c, opts)
		labels := make([]string, len(actions))
		for i, a := range actions {
			labels[i] = a.label
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message: c.Label(),
			Options: labels,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) || actions[idx].run == nil {
			return nil
		}
		if err := actions[idx].run(); err != nil {
			return err
		}
	}
}

func (r *Renderer) actionsFor(ctx context.Context, c *render.Control, opts render.RenderOptions) []action {
	var actions []action
	if c.Draggable() {
		if c.Handles() == 1 {
			actions = append(actions, action{"Set value", func() error { return r.setHandle(ctx, c, 0, opts) }})
		} else {
			actions = append(actions,
				action{"Set lower", func() error { return r.setHandle(ctx, c, 0, opts) }},
				action{"Set upper", func() error { return r.setHandle(ctx, c, 1, opts) }},
			)
		}
	}
	vis := c.Visibility()
	if vis.Checkbox {
		label := "Include missing values"
		if c.Named().IncludeNone() {
			label = "Exclude missing values"
		}
		actions = append(actions, action{label, func() error {
			c.ToggleIncludeNone()
			return nil
		}})
	}
	if vis.Reset {
		actions = append(actions, action{"Reset", func() error {
			c.Reset()
			r.logger.WithField("path", c.Field().Path).Debug("tui: reset")
			return nil
		}})
	}
	return append(actions, action{label: "Back"})
}

func (r *Renderer) setHandle(ctx context.Context, c *render.Control, i int, opts render.RenderOptions) error {
	view := c.View()
	f := c.Formatter()
	current := view.Handles[i].Value

	raw, err := r.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("%s (%s to %s)", c.Label(), flatten(f.Format(view.Min)), flatten(f.Format(view.Max))),
		Default: rawValue(c.Field().Type, current),
		Help:    "Numbers, or RFC 3339 timestamps for date-time fields. Values snap to the nearest step.",
		Suggestions: []string{
			rawValue(c.Field().Type, model.Value(view.Min)),
			rawValue(c.Field().Type, model.Value(view.Max)),
		},
		Validator: func(s string) error {
			_, err := parseInput(s)
			return err
		},
	})
	if err != nil {
		return err
	}
	v, err := parseInput(raw)
	if err != nil {
		return r.driver.Info(ctx, r.theme.ErrorPrefix+err.Error())
	}

	c.PointerDown()
	defer c.PointerUp()
	c.MoveHandle(i, v)
	if err := r.driver.Info(ctx, r.theme.InfoPrefix+r.preview.Block(c, opts, true)); err != nil {
		return err
	}

	apply, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Apply?", Default: true})
	if err != nil {
		return err
	}
	if !apply {
		c.Revert()
		return nil
	}
	c.Commit()
	r.logger.WithFields(logrus.Fields{
		"path":  c.Field().Path,
		"value": c.Committed(),
	}).Debug("tui: committed")
	return nil
}

func menuLabel(c *render.Control) string {
	summary := render.Summarize(c)
	label := c.Label()
	if len(summary.Labels) > 0 {
		label += ": " + flatten(strings.Join(summary.Labels, " to "))
	}
	if summary.IncludeNone != nil && !*summary.IncludeNone {
		label += " (missing excluded)"
	}
	return label
}

func parseInput(raw string) (float64, error) {
	v, err := store.ParseValue(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	f, ok := v.Float()
	if !ok {
		return 0, errors.New("tui: a value is required")
	}
	return f, nil
}

func rawValue(fieldType model.FieldType, v model.SliderValue) string {
	f, ok := v.Float()
	if !ok {
		return ""
	}
	if fieldType == model.FieldTypeDateTime {
		return time.UnixMilli(int64(f)).UTC().Format(time.RFC3339Nano)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func flatten(label string) string {
	return strings.ReplaceAll(label, "\n", " ")
}

var _ render.Renderer = (*Renderer)(nil)
