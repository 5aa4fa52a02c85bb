// Package widgets picks the control a sidebar draws for each field.
package widgets

import (
	"slices"
	"strings"
	"sync"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

const (
	// WidgetSlider filters by a single value.
	WidgetSlider = "slider"
	// WidgetRange is a bare dual-handle slider with bounds labels.
	WidgetRange = "range"
	// WidgetNamedRange wraps a range slider with a name header, a
	// missing-values checkbox and a reset action.
	WidgetNamedRange = "named-range"
)

// Matcher reports whether a widget can draw field.
type Matcher func(field model.Field) bool

// ScalarFields matches single-value fields.
func ScalarFields(field model.Field) bool { return field.Scalar }

// RangeFields matches fields filtered by a [lo, hi] selection.
func RangeFields(field model.Field) bool { return !field.Scalar }

// OfType matches range fields of the given value types.
func OfType(types ...model.FieldType) Matcher {
	return func(field model.Field) bool {
		return !field.Scalar && slices.Contains(types, field.Type)
	}
}

type rule struct {
	widget   string
	priority int
	match    Matcher
}

// Registry maps fields to widget names. A field's own Widget hint always
// wins; otherwise the highest-priority matching rule decides, earlier
// registrations first on ties.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry returns a registry where scalar fields get a slider and
// every other field a named range.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(WidgetSlider, 90, ScalarFields)
	r.Register(WidgetNamedRange, 10, RangeFields)
	return r
}

// Register adds a rule. Blank widget names and nil matchers are ignored.
func (r *Registry) Register(widget string, priority int, match Matcher) {
	widget = normalize(widget)
	if r == nil || widget == "" || match == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Keep rules ordered by priority so Resolve can stop at the first match.
	at := len(r.rules)
	for i, existing := range r.rules {
		if priority > existing.priority {
			at = i
			break
		}
	}
	r.rules = slices.Insert(r.rules, at, rule{widget: widget, priority: priority, match: match})
}

// Widgets lists the distinct widget names the rules can produce.
func (r *Registry) Widgets() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule.widget)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Resolve returns the widget for field.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if hint := normalize(field.Widget); hint != "" {
		return hint, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.rules {
		if rule.match(field) {
			return rule.widget, true
		}
	}
	return "", false
}

// Assign returns a copy of fields with each resolved widget filled in.
func (r *Registry) Assign(fields []model.Field) []model.Field {
	out := slices.Clone(fields)
	for i := range out {
		if widget, ok := r.Resolve(out[i]); ok {
			out[i].Widget = widget
		}
	}
	return out
}

func normalize(widget string) string {
	return strings.ToLower(strings.TrimSpace(widget))
}
