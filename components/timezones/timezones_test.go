package timezones

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixedClock(ts string) func() time.Time {
	return func() time.Time {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			panic(err)
		}
		return t
	}
}

func TestParseZones(t *testing.T) {
	zones, err := ParseZones(strings.NewReader(`
# Comment
Europe/Paris   # trailing note
America/New_York
Europe/Paris

UTC
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"America/New_York", "Europe/Paris", "UTC"}, zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseZones(strings.NewReader("Europe/Paris\nNew York\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
	if _, err := ParseZones(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestDefaultZones(t *testing.T) {
	zones, err := DefaultZones()
	if err != nil {
		t.Fatalf("default zones: %v", err)
	}
	if len(zones) < 100 || !slices.IsSorted(zones) {
		t.Fatalf("expected a sorted list of at least 100 zones, got %d", len(zones))
	}
	for _, want := range []string{"America/New_York", "Europe/Stockholm", "UTC"} {
		if !slices.Contains(zones, want) {
			t.Fatalf("expected %q in default list", want)
		}
	}
	for _, name := range zones {
		if _, err := Resolve(name); err != nil {
			t.Fatalf("embedded zone does not resolve: %v", err)
		}
	}
}

func TestRank(t *testing.T) {
	names := []string{"America/New_York", "Europe/London", "Europe/Stockholm", "Pacific/Auckland", "UTC"}

	cases := []struct {
		query string
		want  []string
	}{
		{"utc", []string{"UTC"}},
		{"europe/", []string{"Europe/London", "Europe/Stockholm"}},
		{"york", []string{"America/New_York"}},
		{"new york", []string{"America/New_York"}},
		{"lon", []string{"Europe/London"}},
		// "ck" only appears inside city names.
		{"ck", []string{"Europe/Stockholm", "Pacific/Auckland"}},
		{"o", []string{"America/New_York", "Europe/London", "Europe/Stockholm"}},
		{"n", []string{"America/New_York", "Europe/London", "Pacific/Auckland"}},
		{"mars", nil},
	}
	for _, tc := range cases {
		got := rank(names, tc.query)
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("rank(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}

	if got := rank(names, "  "); len(got) != len(names) {
		t.Fatalf("expected empty query to keep every name, got %v", got)
	}
}

func TestCatalogDescribe(t *testing.T) {
	winter, err := NewCatalog(WithClock(fixedClock("2026-01-15T12:00:00Z")))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	summer, err := NewCatalog(WithClock(fixedClock("2026-07-01T12:00:00Z")))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cases := []struct {
		catalog *Catalog
		name    string
		want    string
	}{
		{winter, "Europe/Stockholm", "Europe/Stockholm (CET, UTC+01:00)"},
		{summer, "Europe/Stockholm", "Europe/Stockholm (CEST, UTC+02:00)"},
		{winter, "America/New_York", "America/New_York (EST, UTC-05:00)"},
		{summer, "Asia/Kolkata", "Asia/Kolkata (IST, UTC+05:30)"},
		{summer, "", "UTC (UTC, UTC+00:00)"},
	}
	for _, tc := range cases {
		zone, err := tc.catalog.Describe(tc.name)
		if err != nil {
			t.Fatalf("describe %q: %v", tc.name, err)
		}
		if got := zone.String(); got != tc.want {
			t.Fatalf("describe %q: got %q want %q", tc.name, got, tc.want)
		}
	}

	if _, err := winter.Describe("Not/AZone"); !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("expected ErrUnknownZone, got %v", err)
	}
}

func TestCatalogSearch(t *testing.T) {
	c, err := NewCatalog(
		WithZones([]string{"Europe/Rome", "Not/AZone", "Europe/Paris", "Europe/Rome"}),
		WithLimit(2),
		WithClock(fixedClock("2026-01-15T12:00:00Z")),
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"Europe/Paris", "Europe/Rome", "Not/AZone"}, c.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	got := c.Search("", 0)
	if len(got) != 2 || got[0].Name != "Europe/Paris" || got[1].Name != "Europe/Rome" {
		t.Fatalf("unexpected default listing: %v", got)
	}
	if got := c.Search("", 5); len(got) != 2 {
		t.Fatalf("expected unresolvable zone to be skipped, got %v", got)
	}
	if got := c.Search("rome", 0); len(got) != 1 || got[0].Abbreviation != "CET" {
		t.Fatalf("unexpected search result: %v", got)
	}
	if got := c.Search("", -1); got != nil {
		t.Fatalf("expected nothing for a negative limit, got %v", got)
	}

	var nilCatalog *Catalog
	if nilCatalog.Search("rome", 1) != nil || nilCatalog.Names() != nil {
		t.Fatalf("expected nil catalog to be empty")
	}
}

func TestResolve(t *testing.T) {
	loc, err := Resolve("")
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v (err=%v)", loc, err)
	}
	if _, err := Resolve("Not/AZone"); !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("expected ErrUnknownZone, got %v", err)
	}
	if got := ResolveOr("Not/AZone", "Europe/Stockholm"); got.String() != "Europe/Stockholm" {
		t.Fatalf("expected fallback zone, got %v", got)
	}
	if got := ResolveOr("Not/AZone", "also-bad"); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", got)
	}
}
