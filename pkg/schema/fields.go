package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

// ExtensionKey is the vendor extension carrying filter hints on component
// schemas and their properties.
const ExtensionKey = "x-rangefilter"

// ErrComponentNotFound is returned when the document lacks the requested
// component schema.
var ErrComponentNotFound = errors.New("schema: component not found")

// Fields derives one field config per leaf property of component. Nested
// objects are flattened into dotted paths and properties are visited in name
// order.
func Fields(ctx context.Context, data []byte, component string) ([]store.FieldConfig, error) {
	cfg, err := Config(ctx, data, component)
	if err != nil {
		return nil, err
	}
	return cfg.Fields, nil
}

// Config is Fields plus the component-level time zone hint.
func Config(ctx context.Context, data []byte, component string) (store.Config, error) {
	if err := ctx.Err(); err != nil {
		return store.Config{}, err
	}
	if len(data) == 0 {
		return store.Config{}, ErrEmptyDocument
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return store.Config{}, fmt.Errorf("schema: load document: %w", err)
	}

	root, err := lookupComponent(doc, component)
	if err != nil {
		return store.Config{}, err
	}

	cfg := store.Config{TimeZone: stringFrom(extension(root.Extensions)["timeZone"])}
	collect(&cfg.Fields, "", root)
	return cfg, nil
}

// Load reads src and derives the config for component.
func Load(ctx context.Context, src Source, component string) (store.Config, error) {
	data, err := src.ReadAll(ctx)
	if err != nil {
		return store.Config{}, err
	}
	cfg, err := Config(ctx, data, component)
	if err != nil {
		return store.Config{}, fmt.Errorf("%s: %w", src, err)
	}
	return cfg, nil
}

func lookupComponent(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	name = strings.TrimSpace(name)
	if doc.Components == nil || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return ref.Value, nil
}

func collect(out *[]store.FieldConfig, prefix string, schema *openapi3.Schema) {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		ext := extension(prop.Extensions)
		if skip, _ := ext["skip"].(bool); skip {
			continue
		}
		if schemaType(prop) == openapi3.TypeObject && len(prop.Properties) > 0 {
			collect(out, path, prop)
			continue
		}
		*out = append(*out, fieldConfig(path, prop, ext))
	}
}

func fieldConfig(path string, prop *openapi3.Schema, ext map[string]any) store.FieldConfig {
	cfg := store.FieldConfig{
		Path:      path,
		Name:      firstNonEmpty(stringFrom(ext["name"]), prop.Title),
		Type:      string(fieldType(prop)),
		Widget:    stringFrom(ext["widget"]),
		Color:     stringFrom(ext["color"]),
		NoneCount: intFrom(ext["noneCount"]),
	}
	if prop.Min != nil && prop.Max != nil {
		cfg.Bounds = []any{*prop.Min, *prop.Max}
	}
	if bounds, ok := ext["bounds"].([]any); ok && len(bounds) == 2 {
		cfg.Bounds = bounds
	}
	if value, ok := ext["value"]; ok {
		cfg.Value = value
	}
	if include, ok := ext["includeNone"].(bool); ok {
		cfg.IncludeNone = &include
	}
	return cfg
}

func fieldType(prop *openapi3.Schema) model.FieldType {
	switch schemaType(prop) {
	case openapi3.TypeInteger:
		return model.FieldTypeInteger
	case openapi3.TypeNumber:
		return model.FieldTypeFloat
	case openapi3.TypeString:
		switch strings.ToLower(prop.Format) {
		case "date-time", "date":
			return model.FieldTypeDateTime
		}
	}
	return model.FieldTypeOther
}

// schemaType returns the first non-null type; 3.1 documents may list several.
func schemaType(prop *openapi3.Schema) string {
	if prop.Type == nil {
		return ""
	}
	for _, t := range prop.Type.Slice() {
		if t != openapi3.TypeNull {
			return t
		}
	}
	return ""
}

func extension(ext map[string]any) map[string]any {
	raw, ok := ext[ExtensionKey]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return v
	case json.RawMessage:
		var out map[string]any
		if err := json.Unmarshal(v, &out); err == nil {
			return out
		}
	}
	return nil
}

func stringFrom(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func intFrom(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n > 0 && !math.IsInf(n, 0) {
			return int(n)
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
