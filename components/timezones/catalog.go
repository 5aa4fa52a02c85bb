package timezones

import (
	"fmt"
	"time"
)

const defaultLimit = 20

// Zone is a catalog entry as it reads at one instant.
type Zone struct {
	Name         string
	Abbreviation string
	Offset       time.Duration
}

// UTCOffset formats the offset as UTC+hh:mm.
func (z Zone) UTCOffset() string {
	sign := '+'
	offset := z.Offset
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / time.Hour
	minutes := (offset % time.Hour) / time.Minute
	return fmt.Sprintf("UTC%c%02d:%02d", sign, hours, minutes)
}

func (z Zone) String() string {
	return fmt.Sprintf("%s (%s, %s)", z.Name, z.Abbreviation, z.UTCOffset())
}

// Option customises a Catalog.
type Option func(*Catalog)

// WithZones replaces the embedded zone list.
func WithZones(zones []string) Option {
	return func(c *Catalog) {
		c.names = normalizeZones(zones)
	}
}

// WithLimit sets how many zones Search returns when called with limit 0.
func WithLimit(limit int) Option {
	return func(c *Catalog) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithClock fixes the instant used to read abbreviations and offsets.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// Catalog lists the zones offered for --tz and describes them at the
// current instant.
type Catalog struct {
	names []string
	limit int
	now   func() time.Time
}

// NewCatalog builds a catalog over the embedded list unless WithZones is
// given.
func NewCatalog(options ...Option) (*Catalog, error) {
	c := &Catalog{limit: defaultLimit, now: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if c.names == nil {
		names, err := DefaultZones()
		if err != nil {
			return nil, err
		}
		c.names = names
	}
	return c, nil
}

// Names returns the catalog's zone names, sorted.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Describe reads name's abbreviation and offset at the catalog clock.
func (c *Catalog) Describe(name string) (Zone, error) {
	loc, err := Resolve(name)
	if err != nil {
		return Zone{}, err
	}
	now := time.Now
	if c != nil {
		now = c.now
	}
	abbr, seconds := now().In(loc).Zone()
	return Zone{
		Name:         loc.String(),
		Abbreviation: abbr,
		Offset:       time.Duration(seconds) * time.Second,
	}, nil
}

// Search ranks the catalog against query and describes the best matches.
// An empty query lists the catalog from the top. Names that no longer
// resolve are skipped. A negative limit returns nothing.
func (c *Catalog) Search(query string, limit int) []Zone {
	if c == nil || limit < 0 {
		return nil
	}
	if limit == 0 {
		limit = c.limit
	}
	var out []Zone
	for _, name := range rank(c.names, query) {
		if len(out) == limit {
			break
		}
		zone, err := c.Describe(name)
		if err != nil {
			continue
		}
		out = append(out, zone)
	}
	return out
}
