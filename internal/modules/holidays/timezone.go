package holidays

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

var (
	locationsMu sync.RWMutex
	locations   = map[string]*time.Location{}
)

// ResolveTimezone loads an IANA timezone. Loaded locations are cached; the
// embedded tz database is used when the host has none.
func ResolveTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	locationsMu.RLock()
	loc, ok := locations[name]
	locationsMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}

	locationsMu.Lock()
	locations[name] = loc
	locationsMu.Unlock()
	return loc, nil
}

// MustResolveTimezone is like ResolveTimezone but panics on error. It is meant
// for static jurisdiction data.
func MustResolveTimezone(name string) *time.Location {
	loc, err := ResolveTimezone(name)
	if err != nil {
		panic(err)
	}
	return loc
}
