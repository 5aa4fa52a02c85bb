package timezones

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// ErrUnknownZone is returned when a zone name cannot be loaded.
var ErrUnknownZone = errors.New("timezones: unknown zone")

var locations = &locationCache{entries: make(map[string]*time.Location)}

type locationCache struct {
	mu      sync.RWMutex
	entries map[string]*time.Location
}

// Resolve loads the named location, caching successful lookups. An empty
// name resolves to UTC.
func Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utc") {
		return time.UTC, nil
	}

	locations.mu.RLock()
	loc, ok := locations.entries[name]
	locations.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}

	locations.mu.Lock()
	locations.entries[name] = loc
	locations.mu.Unlock()
	return loc, nil
}

// ResolveOr resolves name, falling back to fallback and finally to UTC. It
// never fails.
func ResolveOr(name, fallback string) *time.Location {
	if loc, err := Resolve(name); err == nil {
		return loc
	}
	if loc, err := Resolve(fallback); err == nil {
		return loc
	}
	return time.UTC
}
