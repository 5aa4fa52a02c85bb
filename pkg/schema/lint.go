package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ledkarlsson/fiftyone/components/timezones"
)

var (
	componentKeys = []string{"timeZone"}
	propertyKeys  = []string{"bounds", "color", "includeNone", "name", "noneCount", "skip", "value", "widget"}
)

// Violation is one unsupported or malformed filter hint.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// Lint checks every component schema in the document for filter hints the
// loader would ignore or reject. Violations are ordered by location.
func Lint(ctx context.Context, data []byte) ([]Violation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Violation
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		path := []string{"components", name}
		out = append(out, lintHints(path, ref.Value.Extensions, componentKeys)...)
		out = append(out, lintProperties(path, ref.Value)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == out[j].Location {
			return out[i].Message < out[j].Message
		}
		return out[i].Location < out[j].Location
	})
	return out, nil
}

func lintProperties(path []string, schema *openapi3.Schema) []Violation {
	var out []Violation
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		next := appendPath(path, "properties."+name)
		out = append(out, lintHints(next, ref.Value.Extensions, propertyKeys)...)
		if len(ref.Value.Properties) > 0 {
			out = append(out, lintProperties(next, ref.Value)...)
		}
	}
	return out
}

func lintHints(path []string, extensions map[string]any, allowed []string) []Violation {
	raw, ok := extensions[ExtensionKey]
	if !ok {
		return nil
	}
	hints := extension(extensions)
	if hints == nil {
		return []Violation{{
			Location: formatLocation(path),
			Message:  fmt.Sprintf("%s must be an object, found %T", ExtensionKey, raw),
		}}
	}

	var out []Violation
	for key, value := range hints {
		location := formatLocation(appendPath(path, key))
		if !contains(allowed, key) {
			out = append(out, Violation{
				Location: location,
				Message:  fmt.Sprintf("unsupported hint %q (supported: %s)", key, strings.Join(allowed, ", ")),
			})
			continue
		}
		if msg := checkHint(key, value); msg != "" {
			out = append(out, Violation{Location: location, Message: msg})
		}
	}
	return out
}

func checkHint(key string, value any) string {
	switch key {
	case "name", "widget", "color":
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%q must be a string (got %T)", key, value)
		}
	case "timeZone":
		name, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%q must be a string (got %T)", key, value)
		}
		if _, err := timezones.Resolve(name); err != nil {
			return fmt.Sprintf("unknown time zone %q", name)
		}
	case "includeNone", "skip":
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%q must be a boolean (got %T)", key, value)
		}
	case "noneCount":
		if n, ok := value.(float64); !ok || n < 0 {
			return fmt.Sprintf("%q must be a non-negative number (got %v)", key, value)
		}
	case "bounds":
		pair, ok := value.([]any)
		if !ok || len(pair) != 2 {
			return fmt.Sprintf("%q must be a two-entry array", key)
		}
		for _, entry := range pair {
			if !scalarHint(entry) {
				return fmt.Sprintf("%q entries must be numbers, timestamps or null (got %T)", key, entry)
			}
		}
	case "value":
		if pair, ok := value.([]any); ok {
			if len(pair) != 2 {
				return fmt.Sprintf("%q must be a single entry or a two-entry array", key)
			}
			for _, entry := range pair {
				if !scalarHint(entry) {
					return fmt.Sprintf("%q entries must be numbers, timestamps or null (got %T)", key, entry)
				}
			}
		} else if !scalarHint(value) {
			return fmt.Sprintf("%q must be a number, timestamp or null (got %T)", key, value)
		}
	}
	return ""
}

func scalarHint(v any) bool {
	switch v.(type) {
	case nil, float64, string:
		return true
	}
	return false
}

func contains(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
