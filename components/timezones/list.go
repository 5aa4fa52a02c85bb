package timezones

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

//go:embed data/iana_timezones.txt
var embeddedZones string

var embeddedList = sync.OnceValues(func() ([]string, error) {
	return ParseZones(strings.NewReader(embeddedZones))
})

// DefaultZones returns a copy of the embedded zone list, sorted and
// deduplicated.
func DefaultZones() ([]string, error) {
	zones, err := embeddedList()
	if err != nil {
		return nil, err
	}
	return slices.Clone(zones), nil
}

// ParseZones reads zone names one per line. Anything after a '#' is a
// comment; blank lines are skipped.
func ParseZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}
	var zones []string
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text, _, _ := strings.Cut(scanner.Text(), "#")
		name := strings.TrimSpace(text)
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("timezones: line %d: %q is not a zone name", line, name)
		}
		zones = append(zones, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: scan: %w", err)
	}
	return normalizeZones(zones), nil
}

func normalizeZones(zones []string) []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		if z = strings.TrimSpace(z); z != "" {
			out = append(out, z)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
