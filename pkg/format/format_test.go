package format

import (
	"strings"
	"testing"
	"time"

	"github.com/ledkarlsson/fiftyone/pkg/model"
)

func TestAbbreviate(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{12, 0, "12"},
		{999, 0, "999"},
		{1200, 0, "1k"},
		{1500, 0, "2k"},
		{999999, 0, "1m"},
		{2500000, 2, "2.50m"},
		{-2500000, 2, "-2.50m"},
		{1234, 2, "1.23k"},
		{0.5, 2, "0.50"},
		{-0.001, 2, "0.00"},
		{3e9, 0, "3b"},
		{4.2e12, 2, "4.20t"},
		{1e15, 0, "1,000t"},
	}

	for _, tc := range cases {
		if got := Abbreviate(tc.value, tc.decimals); got != tc.want {
			t.Errorf("Abbreviate(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestFormatter_Numeric(t *testing.T) {
	bounds := model.NewBounds(0, 5000)

	intFmt := New(model.FieldTypeInteger, "", bounds)
	if intFmt.HasTitle() {
		t.Fatalf("numeric formatter must not have a title")
	}
	if got := intFmt.Format(1200); got != "1k" {
		t.Fatalf("int format: got %q", got)
	}

	floatFmt := New(model.FieldTypeFloat, "", bounds)
	if got := floatFmt.Format(1200); got != "1.20k" {
		t.Fatalf("float format: got %q", got)
	}

	unsetFmt := New(model.FieldTypeUnset, "", bounds)
	if got := unsetFmt.Format(3); got != "3.00" {
		t.Fatalf("unset format: got %q", got)
	}

	if got := intFmt.FormatValue(model.Unset()); got != "" {
		t.Fatalf("unset value should render empty, got %q", got)
	}
}

func TestFormatter_DateTimePrecision(t *testing.T) {
	base := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	ms := func(d time.Duration) float64 { return float64(base.Add(d).UnixMilli()) }

	cases := []struct {
		name      string
		lo, hi    float64
		precision Precision
		title     string
		loLabel   string
		hiLabel   string
	}{
		{
			name:      "multi-day span shows dates only",
			lo:        ms(0),
			hi:        ms(72 * time.Hour),
			precision: PrecisionDay,
			loLabel:   "2026-10-16",
			hiLabel:   "2026-10-19",
		},
		{
			name:      "same-day span hoists the date",
			lo:        ms(0),
			hi:        ms(2 * time.Hour),
			precision: PrecisionMinute,
			title:     "2026-10-16",
			loLabel:   "10:00",
			hiLabel:   "12:00",
		},
		{
			name:      "span crossing midnight breaks date and time",
			lo:        ms(13 * time.Hour),
			hi:        ms(15 * time.Hour),
			precision: PrecisionMinute,
			loLabel:   "2026-10-16\n23:00",
			hiLabel:   "2026-10-17\n01:00",
		},
		{
			name:      "seconds",
			lo:        ms(5 * time.Second),
			hi:        ms(35 * time.Second),
			precision: PrecisionSecond,
			title:     "2026-10-16",
			loLabel:   "10:00:05",
			hiLabel:   "10:00:35",
		},
		{
			name:      "milliseconds",
			lo:        ms(250 * time.Millisecond),
			hi:        ms(750 * time.Millisecond),
			precision: PrecisionMillisecond,
			title:     "2026-10-16",
			loLabel:   "10:00:00.250ms",
			hiLabel:   "10:00:00.750ms",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInLocation(model.FieldTypeDateTime, time.UTC, model.NewBounds(tc.lo, tc.hi))
			if f.Precision() != tc.precision {
				t.Fatalf("precision: got %v want %v", f.Precision(), tc.precision)
			}
			if f.HasTitle() != (tc.title != "") {
				t.Fatalf("hasTitle: got %v", f.HasTitle())
			}
			if got := f.Title(); got != tc.title {
				t.Fatalf("title: got %q want %q", got, tc.title)
			}
			if got := f.Format(tc.lo); got != tc.loLabel {
				t.Fatalf("lo label: got %q want %q", got, tc.loLabel)
			}
			if got := f.Format(tc.hi); got != tc.hiLabel {
				t.Fatalf("hi label: got %q want %q", got, tc.hiLabel)
			}
		})
	}
}

func TestFormatter_DateTimeEndsNeverCollide(t *testing.T) {
	base := float64(time.Date(2024, time.February, 28, 23, 59, 58, 0, time.UTC).UnixMilli())
	spans := []float64{1, 999, 1000, 59999, 60000, 3599999, 86399999, 86400000, 400 * 86400000}

	for _, span := range spans {
		f := NewInLocation(model.FieldTypeDateTime, time.UTC, model.NewBounds(base, base+span))
		lo, hi := f.Format(base), f.Format(base+span)
		if lo == hi {
			t.Fatalf("span %v: labels collide at %q (precision %v)", span, lo, f.Precision())
		}
	}
}

func TestFormatter_DateTimeUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	lo := float64(time.Date(2026, time.October, 16, 23, 0, 0, 0, time.UTC).UnixMilli())
	f := NewInLocation(model.FieldTypeDateTime, loc, model.NewBounds(lo, lo+float64(time.Hour/time.Millisecond)))

	if got := f.Title(); got != "2026-10-17" {
		t.Fatalf("expected title in local date, got %q", got)
	}
	if got := f.Format(lo); got != "01:00" {
		t.Fatalf("expected local time, got %q", got)
	}
	if strings.Contains(f.Format(lo), "/") {
		t.Fatalf("slashes must be rewritten")
	}
}
