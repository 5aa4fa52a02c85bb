package render

import (
	"encoding/json"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// Summary is the JSON shape of one control's committed state.
type Summary struct {
	Path        string          `json:"path"`
	Name        string          `json:"name,omitempty"`
	Widget      string          `json:"widget"`
	Type        model.FieldType `json:"type,omitempty"`
	Hidden      bool            `json:"hidden,omitempty"`
	Bounds      model.Bounds    `json:"bounds"`
	Value       any             `json:"value"`
	Labels      []string        `json:"labels,omitempty"`
	NoneCount   *int            `json:"noneCount,omitempty"`
	IncludeNone *bool           `json:"includeNone,omitempty"`
	IsDefault   *bool           `json:"isDefault,omitempty"`
}

// Summarize captures the committed state of c.
func Summarize(c *Control) Summary {
	view := c.View()
	out := Summary{
		Path:   c.field.Path,
		Name:   c.Label(),
		Widget: c.widget,
		Type:   c.field.Type,
		Hidden: view.Hidden,
		Value:  c.Committed(),
	}
	if !view.Hidden {
		out.Bounds = model.NewBounds(view.Min, view.Max)
		f := c.Formatter()
		switch v := out.Value.(type) {
		case model.SliderValue:
			out.Labels = []string{f.FormatValue(v)}
		case model.Range:
			out.Labels = []string{f.FormatValue(v[0]), f.FormatValue(v[1])}
		}
	}
	if n := c.named; n != nil && !view.Hidden {
		count := n.View().NoneCount
		include := n.IncludeNone()
		isDefault := n.IsDefault()
		out.NoneCount = &count
		out.IncludeNone = &include
		out.IsDefault = &isDefault
	}
	return out
}

// EncodeJSON renders the summaries of controls as an indented JSON array.
func EncodeJSON(controls []*Control) ([]byte, error) {
	summaries := make([]Summary, 0, len(controls))
	for _, c := range controls {
		if c == nil {
			continue
		}
		summaries = append(summaries, Summarize(c))
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
