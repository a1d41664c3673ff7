package holidays

import (
	"fmt"
	"maps"
	"strings"
	"time"
)

// CalendarType represents the calendar system used for Easter calculation
type CalendarType int

const (
	// Gregorian calendar (Western/Catholic)
	Gregorian CalendarType = iota
	// Julian calendar (Orthodox)
	Julian
)

func (c CalendarType) String() string {
	if c == Julian {
		return "julian"
	}
	return "gregorian"
}

// HolidayType classifies a holiday.
type HolidayType int

const (
	// TypeOfficial is a public holiday established by law.
	TypeOfficial HolidayType = iota
	// TypeObservance is commemorated but not a day off.
	TypeObservance
	// TypeSeason marks seasonal dates such as solstices.
	TypeSeason
	// TypeBank is a day off for banks and most businesses.
	TypeBank
	// TypeOther is anything not covered above, e.g. regional customs.
	TypeOther
)

var holidayTypeNames = [...]string{"official", "observance", "season", "bank", "other"}

// HolidayTypes lists every HolidayType in declaration order.
var HolidayTypes = []HolidayType{TypeOfficial, TypeObservance, TypeSeason, TypeBank, TypeOther}

func (t HolidayType) String() string {
	if t < 0 || int(t) >= len(holidayTypeNames) {
		return fmt.Sprintf("HolidayType(%d)", int(t))
	}
	return holidayTypeNames[t]
}

// ParseHolidayType parses the lower case name of a HolidayType.
func ParseHolidayType(val string) (HolidayType, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for i, name := range holidayTypeNames {
		if name == lc {
			return HolidayType(i), nil
		}
	}
	return 0, fmt.Errorf("invalid holiday type: %q", val)
}

func (t HolidayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *HolidayType) UnmarshalText(text []byte) error {
	parsed, err := ParseHolidayType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Translations maps a locale code (e.g. "de_CH") to a display name.
type Translations map[string]string

// SubstitutePrefix is prepended to the key of the holiday a substitute stands in for.
const SubstitutePrefix = "substitute:"

// Holiday is a named, dated and typed calendar event for a single year.
// Date is always midnight in the computing provider's timezone.
type Holiday struct {
	Key          string
	Date         time.Time
	Type         HolidayType
	Translations Translations
}

// NewHoliday creates a holiday with its date normalized to midnight in loc.
func NewHoliday(key string, date time.Time, holidayType HolidayType, translations Translations, loc *time.Location) Holiday {
	if loc == nil {
		loc = date.Location()
	}
	local := date.In(loc)
	return Holiday{
		Key:          key,
		Date:         time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
		Type:         holidayType,
		Translations: maps.Clone(translations),
	}
}

// Year returns the calendar year of the holiday.
func (h Holiday) Year() int {
	return h.Date.Year()
}

// IsSubstitute reports whether h was derived by the substitution engine.
func (h Holiday) IsSubstitute() bool {
	return strings.HasPrefix(h.Key, SubstitutePrefix)
}

// BaseKey returns the key of the original holiday for substitutes, and the key itself otherwise.
func (h Holiday) BaseKey() string {
	return strings.TrimPrefix(h.Key, SubstitutePrefix)
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s %s (%s)", h.Key, h.Date.Format(time.DateOnly), h.Type)
}

// sameDay compares calendar dates, ignoring the time of day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns midnight of t's calendar date in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// addDays moves t by n calendar days, keeping it at midnight.
func addDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}
