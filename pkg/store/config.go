package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Config is the on-disk description of a sidebar's fields and their state.
type Config struct {
	TimeZone string        `yaml:"timeZone,omitempty" toml:"timeZone,omitempty" json:"timeZone,omitempty"`
	Fields   []FieldConfig `yaml:"fields" toml:"fields" json:"fields"`
}

// FieldConfig describes one field. Bounds and Value entries are numbers,
// RFC 3339 timestamps or null; Value is a pair for range fields and a single
// entry for single-value fields.
type FieldConfig struct {
	Path        string `yaml:"path" toml:"path" json:"path"`
	Name        string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Type        string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Widget      string `yaml:"widget,omitempty" toml:"widget,omitempty" json:"widget,omitempty"`
	Color       string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Bounds      []any  `yaml:"bounds,omitempty" toml:"bounds,omitempty" json:"bounds,omitempty"`
	Value       any    `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	NoneCount   int    `yaml:"noneCount,omitempty" toml:"noneCount,omitempty" json:"noneCount,omitempty"`
	IncludeNone *bool  `yaml:"includeNone,omitempty" toml:"includeNone,omitempty" json:"includeNone,omitempty"`
}

// Load reads a YAML, TOML or JSON config file and builds a store from it.
func Load(path string, options ...Option) (*Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return FromConfig(cfg, options...)
}

// Decode parses a config in the given format.
func Decode(r io.Reader, format Format) (Config, error) {
	var cfg Config
	if r == nil {
		return cfg, fmt.Errorf("store: missing reader")
	}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&cfg)
		if err == io.EOF {
			err = nil
		}
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&cfg)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return cfg, fmt.Errorf("store: decode %s: %w", format, err)
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg Config, format Format) error {
	if w == nil {
		return fmt.Errorf("store: missing writer")
	}
	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(cfg)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", format, err)
	}
	return nil
}

// FromConfig builds a store holding every configured field. Options apply
// after the config's own settings, so callers can override the time zone.
func FromConfig(cfg Config, options ...Option) (*Store, error) {
	opts := append([]Option{WithTimeZone(cfg.TimeZone)}, options...)
	s := New(opts...)
	for i, field := range cfg.Fields {
		spec, err := field.Spec()
		if err != nil {
			return nil, fmt.Errorf("store: fields[%d]: %w", i, err)
		}
		if _, err := s.Add(spec); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Spec converts the raw config entry into a FieldSpec. Missing selections
// default to the full bounds and missing values are included by default.
func (c FieldConfig) Spec() (FieldSpec, error) {
	fieldType, err := model.ParseFieldType(c.Type)
	if err != nil {
		return FieldSpec{}, err
	}

	spec := FieldSpec{
		Field: model.Field{
			Path:   strings.TrimSpace(c.Path),
			Name:   cleanName(c.Name),
			Type:   fieldType,
			Widget: strings.TrimSpace(c.Widget),
			Color:  strings.TrimSpace(c.Color),
		},
		NoneCount:   c.NoneCount,
		IncludeNone: true,
	}
	if c.IncludeNone != nil {
		spec.IncludeNone = *c.IncludeNone
	}
	if spec.NoneCount < 0 {
		spec.NoneCount = 0
	}

	switch len(c.Bounds) {
	case 0:
		spec.Bounds = model.UnknownBounds()
	case 2:
		for i, raw := range c.Bounds {
			if spec.Bounds[i], err = toSliderValue(raw); err != nil {
				return FieldSpec{}, fmt.Errorf("bounds[%d]: %w", i, err)
			}
		}
	default:
		return FieldSpec{}, fmt.Errorf("bounds: expected 2 entries, got %d", len(c.Bounds))
	}

	switch value := c.Value.(type) {
	case nil:
		spec.Range = spec.Bounds.Range()
		if spec.Field.Widget == "slider" {
			spec.Field.Scalar = true
			spec.Scalar = spec.Bounds[0]
		}
	case []any:
		if len(value) != 2 {
			return FieldSpec{}, fmt.Errorf("value: expected 2 entries, got %d", len(value))
		}
		for i, raw := range value {
			if spec.Range[i], err = toSliderValue(raw); err != nil {
				return FieldSpec{}, fmt.Errorf("value[%d]: %w", i, err)
			}
		}
	default:
		scalar, err := toSliderValue(value)
		if err != nil {
			return FieldSpec{}, fmt.Errorf("value: %w", err)
		}
		spec.Field.Scalar = true
		spec.Scalar = scalar
		spec.Range = spec.Bounds.Range()
	}
	return spec, nil
}

// ConfigFromSpec renders a spec back into its config form. Values are
// emitted as plain numbers.
func ConfigFromSpec(spec FieldSpec) FieldConfig {
	cfg := FieldConfig{
		Path:      spec.Field.Path,
		Name:      spec.Field.Name,
		Type:      string(spec.Field.Type),
		Widget:    spec.Field.Widget,
		Color:     spec.Field.Color,
		NoneCount: spec.NoneCount,
	}
	if spec.Bounds.Known() {
		cfg.Bounds = []any{spec.Bounds.Lo(), spec.Bounds.Hi()}
	}
	if !spec.IncludeNone {
		include := false
		cfg.IncludeNone = &include
	}
	return cfg
}

func toSliderValue(raw any) (model.SliderValue, error) {
	switch v := raw.(type) {
	case nil:
		return model.Unset(), nil
	case int:
		return model.Value(float64(v)), nil
	case int64:
		return model.Value(float64(v)), nil
	case uint64:
		return model.Value(float64(v)), nil
	case float64:
		return model.Value(v), nil
	case float32:
		return model.Value(float64(v)), nil
	case time.Time:
		return model.Value(timestampMillis(v)), nil
	case string:
		return parseSliderValue(v)
	default:
		return model.Unset(), fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}

// ParseValue parses a number or an RFC 3339 timestamp (date-only values are
// accepted) into a millisecond-based SliderValue. Empty input is unset.
func ParseValue(raw string) (model.SliderValue, error) {
	return parseSliderValue(raw)
}

func parseSliderValue(raw string) (model.SliderValue, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return model.Unset(), nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return model.Value(f), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return model.Value(timestampMillis(ts)), nil
		}
	}
	return model.Unset(), fmt.Errorf("cannot parse %q as a number or timestamp", raw)
}

func timestampMillis(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// cleanName strips markup from display names, which may come from schema
// descriptions or hand-edited files.
func cleanName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(trimmed)))
}
