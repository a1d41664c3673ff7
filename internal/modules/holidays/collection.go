package holidays

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// Collection is the set of holidays of one jurisdiction for one year, ordered
// by date. Holidays on the same date keep their insertion order.
type Collection struct {
	jurisdiction string
	year         int
	locale       string
	location     *time.Location
	resolver     *TranslationResolver

	holidays []Holiday
	keys     map[string]struct{}
}

func newCollection(jurisdiction string, year int, locale string, loc *time.Location, resolver *TranslationResolver) *Collection {
	if loc == nil {
		loc = time.UTC
	}
	return &Collection{
		jurisdiction: jurisdiction,
		year:         year,
		locale:       locale,
		location:     loc,
		resolver:     resolver,
		keys:         make(map[string]struct{}),
	}
}

// add inserts h after every holiday on or before its date.
func (c *Collection) add(h Holiday) error {
	if _, exists := c.keys[h.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHolidayKey, h.Key)
	}
	if h.Year() != c.year {
		return fmt.Errorf("%w: %s falls outside %d", ErrInvalidDate, h, c.year)
	}

	i := sort.Search(len(c.holidays), func(i int) bool {
		return c.holidays[i].Date.After(h.Date)
	})
	c.holidays = slices.Insert(c.holidays, i, h)
	c.keys[h.Key] = struct{}{}
	return nil
}

// remove deletes the holiday with key, reporting whether it was present.
func (c *Collection) remove(key string) bool {
	if _, exists := c.keys[key]; !exists {
		return false
	}
	delete(c.keys, key)
	c.holidays = slices.DeleteFunc(c.holidays, func(h Holiday) bool {
		return h.Key == key
	})
	return true
}

// Jurisdiction returns the code of the provider that computed the collection.
func (c *Collection) Jurisdiction() string { return c.jurisdiction }

// Year returns the computed year.
func (c *Collection) Year() int { return c.year }

// Locale returns the default locale names resolve to.
func (c *Collection) Locale() string { return c.locale }

// Location returns the timezone holiday dates are anchored to.
func (c *Collection) Location() *time.Location { return c.location }

// Len returns the number of holidays.
func (c *Collection) Len() int { return len(c.holidays) }

// Get returns the holiday with key.
func (c *Collection) Get(key string) (Holiday, bool) {
	if _, exists := c.keys[key]; !exists {
		return Holiday{}, false
	}
	for _, h := range c.holidays {
		if h.Key == key {
			return h, true
		}
	}
	return Holiday{}, false
}

// Has reports whether a holiday with key exists.
func (c *Collection) Has(key string) bool {
	_, exists := c.keys[key]
	return exists
}

// Keys returns the holiday keys in date order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.holidays))
	for i, h := range c.holidays {
		keys[i] = h.Key
	}
	return keys
}

// All returns every holiday in date order.
func (c *Collection) All() []Holiday {
	return slices.Clone(c.holidays)
}

// ByType returns the holidays of any of the given types.
func (c *Collection) ByType(types ...HolidayType) []Holiday {
	var result []Holiday
	for _, h := range c.holidays {
		if slices.Contains(types, h.Type) {
			result = append(result, h)
		}
	}
	return result
}

// On returns the holidays falling on the calendar date of t, read in the
// collection's timezone.
func (c *Collection) On(t time.Time) []Holiday {
	day := startOfDay(t, c.location)
	var result []Holiday
	for _, h := range c.holidays {
		if h.Date.Equal(day) {
			result = append(result, h)
		}
	}
	return result
}

// IsHoliday reports whether any holiday falls on the calendar date of t.
func (c *Collection) IsHoliday(t time.Time) bool {
	day := startOfDay(t, c.location)
	i := sort.Search(len(c.holidays), func(i int) bool {
		return !c.holidays[i].Date.Before(day)
	})
	return i < len(c.holidays) && c.holidays[i].Date.Equal(day)
}

// Between returns the holidays from start to end, both dates inclusive.
func (c *Collection) Between(start, end time.Time) ([]Holiday, error) {
	from := startOfDay(start, c.location)
	to := startOfDay(end, c.location)
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	var result []Holiday
	for _, h := range c.holidays {
		if h.Date.Before(from) {
			continue
		}
		if h.Date.After(to) {
			break
		}
		result = append(result, h)
	}
	return result, nil
}

// Name resolves the display name of the holiday with key. An empty locale
// means the collection's locale.
func (c *Collection) Name(key, locale string) (string, error) {
	h, ok := c.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrHolidayNotFound, key)
	}
	return c.NameOf(h, locale)
}

// NameOf resolves the display name of h.
func (c *Collection) NameOf(h Holiday, locale string) (string, error) {
	if locale == "" {
		locale = c.locale
	}
	return c.resolver.Name(h, locale)
}

// DisplayName is NameOf degraded to the holiday key when no name exists.
func (c *Collection) DisplayName(h Holiday, locale string) string {
	name, err := c.NameOf(h, locale)
	if err != nil {
		return h.Key
	}
	return name
}

// HolidayRecord is the serializable form of a Holiday.
type HolidayRecord struct {
	Key          string       `json:"key" msgpack:"key"`
	Date         string       `json:"date" msgpack:"date"`
	Type         string       `json:"type" msgpack:"type"`
	Translations Translations `json:"translations,omitempty" msgpack:"translations,omitempty"`
}

// Snapshot is the serializable form of a Collection.
type Snapshot struct {
	Jurisdiction string          `json:"jurisdiction" msgpack:"jurisdiction"`
	Year         int             `json:"year" msgpack:"year"`
	Locale       string          `json:"locale" msgpack:"locale"`
	Timezone     string          `json:"timezone" msgpack:"timezone"`
	Holidays     []HolidayRecord `json:"holidays" msgpack:"holidays"`
}

// Snapshot captures the collection for caching or publishing.
func (c *Collection) Snapshot() Snapshot {
	records := make([]HolidayRecord, len(c.holidays))
	for i, h := range c.holidays {
		records[i] = HolidayRecord{
			Key:          h.Key,
			Date:         h.Date.Format(time.DateOnly),
			Type:         h.Type.String(),
			Translations: h.Translations,
		}
	}
	return Snapshot{
		Jurisdiction: c.jurisdiction,
		Year:         c.year,
		Locale:       c.locale,
		Timezone:     c.location.String(),
		Holidays:     records,
	}
}
