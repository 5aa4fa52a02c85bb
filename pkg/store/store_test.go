package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

func TestLoad_YAML(t *testing.T) {
	s, err := Load("testdata/sidebar.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var paths []string
	for _, field := range s.Fields() {
		paths = append(paths, field.Path)
	}
	wantPaths := []string{"uniqueness", "metadata.width", "created_at", "confidence", "pending"}
	if diff := cmp.Diff(wantPaths, paths); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	if got := s.TimeZone(); got != "UTC" {
		t.Fatalf("time zone: got %q", got)
	}

	if got := s.ValueOf("uniqueness"); got != model.NewRange(0, 1) {
		t.Fatalf("missing value should default to bounds, got %v", got)
	}
	if !s.IncludeNoneOf("uniqueness") || s.NoneCountOf("uniqueness") != 5 {
		t.Fatalf("unexpected none state for uniqueness")
	}

	width, ok := s.Field("metadata.width")
	if !ok {
		t.Fatalf("expected metadata.width")
	}
	if got := width.Field().Name; got != "Width & more" {
		t.Fatalf("expected markup stripped from name, got %q", got)
	}
	if width.Field().Type != model.FieldTypeInteger {
		t.Fatalf("unexpected type %q", width.Field().Type)
	}
	if s.IncludeNoneOf("metadata.width") {
		t.Fatalf("expected includeNone=false")
	}
	if got := s.ValueOf("metadata.width"); got != model.NewRange(100, 900) {
		t.Fatalf("unexpected width value %v", got)
	}

	lo := float64(time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC).UnixMilli())
	if got := s.BoundsOf("created_at"); got != model.NewBounds(lo, lo+2*60*60*1000) {
		t.Fatalf("unexpected created_at bounds %v", got)
	}

	confidence, _ := s.Field("confidence")
	if !confidence.Field().Scalar {
		t.Fatalf("expected scalar field")
	}
	if got := s.ScalarOf("confidence"); got != model.Value(0.5) {
		t.Fatalf("unexpected scalar %v", got)
	}

	if s.BoundsOf("pending").Known() {
		t.Fatalf("expected undetermined bounds for pending")
	}
}

func TestDecode_TOMLAndJSON(t *testing.T) {
	tomlDoc := `
timeZone = "Europe/Paris"

[[fields]]
path = "score"
type = "number"
bounds = [0, 10]
value = [2, 8]
noneCount = 3
includeNone = false
`
	jsonDoc := `{"timeZone":"Europe/Paris","fields":[{"path":"score","type":"number","bounds":[0,10],"value":[2,8],"noneCount":3,"includeNone":false}]}`

	for name, tc := range map[string]struct {
		doc    string
		format Format
	}{
		"toml": {tomlDoc, FormatTOML},
		"json": {jsonDoc, FormatJSON},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tc.doc), tc.format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			s, err := FromConfig(cfg)
			if err != nil {
				t.Fatalf("from config: %v", err)
			}
			if s.TimeZone() != "Europe/Paris" {
				t.Fatalf("unexpected zone %q", s.TimeZone())
			}
			if s.FieldType("score") != model.FieldTypeFloat {
				t.Fatalf("unexpected type %q", s.FieldType("score"))
			}
			if got := s.ValueOf("score"); got != model.NewRange(2, 8) {
				t.Fatalf("unexpected value %v", got)
			}
			if s.IncludeNoneOf("score") || s.NoneCountOf("score") != 3 {
				t.Fatalf("unexpected none state")
			}
		})
	}
}

func TestFromConfig_OptionsOverrideTimeZone(t *testing.T) {
	s, err := FromConfig(Config{TimeZone: "Europe/Paris"}, WithTimeZone("Asia/Tokyo"))
	if err != nil {
		t.Fatalf("from config: %v", err)
	}
	if s.TimeZone() != "Asia/Tokyo" {
		t.Fatalf("expected override, got %q", s.TimeZone())
	}
}

func TestFieldConfig_SpecErrors(t *testing.T) {
	cases := map[string]FieldConfig{
		"bad type":        {Path: "a", Type: "blob"},
		"short bounds":    {Path: "a", Bounds: []any{1}},
		"bad bound value": {Path: "a", Bounds: []any{"soon", 2}},
		"short value":     {Path: "a", Bounds: []any{0, 1}, Value: []any{0}},
	}
	for name, cfg := range cases {
		if _, err := cfg.Spec(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	_, err := FromConfig(Config{Fields: []FieldConfig{{Path: "a", Bounds: []any{5, 1}}}})
	if !errors.Is(err, model.ErrInvertedBounds) {
		t.Fatalf("expected inverted bounds error, got %v", err)
	}

	_, err = FromConfig(Config{Fields: []FieldConfig{{Path: "a"}, {Path: "a"}}})
	if !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if _, err := FormatFromPath("sidebar.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}

func TestStore_UnknownFields(t *testing.T) {
	s := New()
	if s.BoundsOf("missing").Known() {
		t.Fatalf("unknown field must have undetermined bounds")
	}
	if !s.IncludeNoneOf("missing") {
		t.Fatalf("unknown field includes none by default")
	}
	if err := s.SetValue("missing", model.NewRange(0, 1)); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := s.SetIncludeNone("missing", false); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestCell_NotifiesOnContentChangeOnly(t *testing.T) {
	c := NewCell(model.NewRange(0, 10))
	var seen []model.Range
	cancel := c.Subscribe(func(r model.Range) { seen = append(seen, r) })

	c.Set(model.NewRange(0, 10))
	c.Set(model.Range{model.Value(0), model.Value(10)})
	c.Set(model.NewRange(2, 10))
	cancel()
	c.Set(model.NewRange(3, 10))

	want := []model.Range{model.NewRange(2, 10)}
	if diff := cmp.Diff(want, seen, cmp.AllowUnexported(model.SliderValue{})); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
	if c.Get() != model.NewRange(3, 10) {
		t.Fatalf("expected latest value to be stored")
	}
}

func TestStore_BatchPublishesTogether(t *testing.T) {
	s := New()
	state, err := s.Add(FieldSpec{
		Field:       model.Field{Path: "score"},
		Bounds:      model.NewBounds(0, 10),
		Range:       model.NewRange(2, 8),
		IncludeNone: false,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var observed []bool
	state.Range().Subscribe(func(model.Range) {
		observed = append(observed, state.IncludeNone().Get())
	})
	includeCalls := 0
	state.IncludeNone().Subscribe(func(bool) { includeCalls++ })

	s.Batch(func() {
		_ = s.SetValue("score", s.BoundsOf("score").Range())
		_ = s.SetIncludeNone("score", true)
		if len(observed) != 0 {
			t.Fatalf("notifications must wait for the batch to end")
		}
	})

	if diff := cmp.Diff([]bool{true}, observed); diff != "" {
		t.Fatalf("range subscriber should see the completed batch (-want +got):\n%s", diff)
	}
	if includeCalls != 1 {
		t.Fatalf("expected one include notification, got %d", includeCalls)
	}
}

func TestStore_SetBoundsValidates(t *testing.T) {
	s := New()
	if _, err := s.Add(FieldSpec{Field: model.Field{Path: "score"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetBounds("score", model.Bounds{model.Value(1), model.Unset()}); !errors.Is(err, model.ErrPartialBounds) {
		t.Fatalf("expected partial bounds error, got %v", err)
	}
	if err := s.SetBounds("score", model.NewBounds(1, 2)); err != nil {
		t.Fatalf("set bounds: %v", err)
	}
	if s.BoundsOf("score") != model.NewBounds(1, 2) {
		t.Fatalf("bounds not stored")
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("2026-10-16")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := float64(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC).UnixMilli())
	if got, _ := v.Float(); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
	if v, err := ParseValue(" "); err != nil || v.IsSet() {
		t.Fatalf("blank input should be unset")
	}
	if _, err := ParseValue("tomorrow"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEncode_DecodesToSameSpecs(t *testing.T) {
	include := false
	cfg := Config{
		TimeZone: "Europe/Stockholm",
		Fields: []FieldConfig{
			{Path: "width", Type: "int", Bounds: []any{0.0, 1000.0}, Value: []any{100.0, 900.0}, IncludeNone: &include},
			{Path: "confidence", Type: "float", Widget: "slider", Bounds: []any{0.0, 1.0}, Value: 0.5},
		},
	}

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		var buf strings.Builder
		if err := Encode(&buf, cfg, format); err != nil {
			t.Fatalf("%s: encode: %v", format, err)
		}
		decoded, err := Decode(strings.NewReader(buf.String()), format)
		if err != nil {
			t.Fatalf("%s: decode: %v\n%s", format, err, buf.String())
		}
		if decoded.TimeZone != cfg.TimeZone || len(decoded.Fields) != len(cfg.Fields) {
			t.Fatalf("%s: decoded %+v", format, decoded)
		}
		for i := range cfg.Fields {
			want, err := cfg.Fields[i].Spec()
			if err != nil {
				t.Fatalf("%s: spec: %v", format, err)
			}
			got, err := decoded.Fields[i].Spec()
			if err != nil {
				t.Fatalf("%s: decoded spec: %v", format, err)
			}
			if got != want {
				t.Fatalf("%s: fields[%d]: got %+v want %+v", format, i, got, want)
			}
		}
	}

	if err := Encode(&strings.Builder{}, cfg, Format("ini")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestBatchCells_SpansHubs(t *testing.T) {
	s := New()
	state, err := s.Add(FieldSpec{
		Field:  model.Field{Path: "score"},
		Bounds: model.NewBounds(0, 10),
		Range:  model.NewRange(2, 8),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	flag := NewCell(false)
	count := NewCell(0)

	var observed [][2]any
	record := func() {
		observed = append(observed, [2]any{flag.Get(), count.Get()})
	}
	defer state.Range().Subscribe(func(model.Range) { record() })()
	defer flag.Subscribe(func(bool) { record() })()

	BatchCells(func() {
		state.Range().Set(model.NewRange(0, 10))
		flag.Set(true)
		if len(observed) != 0 {
			t.Fatalf("notifications must wait for the batch to end")
		}
		count.Set(7)
	}, state.Range(), flag, count, flag, "not a cell")

	want := [][2]any{{true, 7}, {true, 7}}
	if diff := cmp.Diff(want, observed); diff != "" {
		t.Fatalf("subscribers should see every write (-want +got):\n%s", diff)
	}

	ran := false
	BatchCells(func() { ran = true })
	if !ran {
		t.Fatalf("expected fn to run without cells")
	}
}
