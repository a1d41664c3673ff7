package holidays

import (
	"fmt"
	"time"
)

// Period assigns a type (and optionally names) to a range of years [Since, Until).
// A zero bound is open.
type Period struct {
	Since        int
	Until        int
	Type         HolidayType
	Translations Translations
}

func (p Period) covers(year int) bool {
	return inYearRange(year, p.Since, p.Until)
}

// Rule declares a holiday of a jurisdiction.
type Rule struct {
	Key          string
	Date         DateSpec
	Type         HolidayType
	Translations Translations

	// Since is the establishment year, Until the abolition year. Zero means unbounded.
	Since int
	Until int

	// Periods, when set, restrict the rule to the years they cover and
	// override Type (and Translations) per range.
	Periods []Period

	// Replaces names an inherited holiday this rule stands in for.
	Replaces string

	// Substitute enables weekend substitution for this holiday.
	Substitute *SubstitutionPolicy
}

func inYearRange(year, since, until int) bool {
	if since != 0 && year < since {
		return false
	}
	if until != 0 && year >= until {
		return false
	}
	return true
}

// Validate checks the rule's static configuration.
func (r Rule) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidRule)
	}
	if r.Date == nil {
		return fmt.Errorf("%w: %s has no date", ErrInvalidRule, r.Key)
	}
	if r.Since != 0 && r.Until != 0 && r.Until <= r.Since {
		return fmt.Errorf("%w: %s abolished (%d) before it was established (%d)", ErrInvalidRule, r.Key, r.Until, r.Since)
	}
	if !validHolidayType(r.Type) {
		return fmt.Errorf("%w: %s has type %s", ErrInvalidRule, r.Key, r.Type)
	}
	for _, p := range r.Periods {
		if p.Since != 0 && p.Until != 0 && p.Until <= p.Since {
			return fmt.Errorf("%w: %s has empty period [%d, %d)", ErrInvalidRule, r.Key, p.Since, p.Until)
		}
		if !validHolidayType(p.Type) {
			return fmt.Errorf("%w: %s period has type %s", ErrInvalidRule, r.Key, p.Type)
		}
	}
	if r.Substitute != nil {
		if err := r.Substitute.Validate(); err != nil {
			return fmt.Errorf("%s: %w", r.Key, err)
		}
	}
	return nil
}

func validHolidayType(t HolidayType) bool {
	return t >= TypeOfficial && t <= TypeOther
}

// AppliesIn reports whether the rule is in effect in year.
func (r Rule) AppliesIn(year int) bool {
	_, ok := r.period(year)
	return ok
}

// period resolves the type and translations in effect for year.
func (r Rule) period(year int) (Period, bool) {
	if !inYearRange(year, r.Since, r.Until) {
		return Period{}, false
	}
	if len(r.Periods) == 0 {
		return Period{Since: r.Since, Until: r.Until, Type: r.Type, Translations: r.Translations}, true
	}
	for _, p := range r.Periods {
		if p.covers(year) {
			if p.Translations == nil {
				p.Translations = r.Translations
			}
			return p, true
		}
	}
	return Period{}, false
}

// Evaluate produces the rule's holiday for year. The boolean is false when the
// rule is not in effect that year, which is not an error.
func (r Rule) Evaluate(year int, loc *time.Location) (Holiday, bool, error) {
	if loc == nil {
		loc = time.UTC
	}
	p, ok := r.period(year)
	if !ok {
		return Holiday{}, false, nil
	}
	if r.Date == nil {
		return Holiday{}, false, fmt.Errorf("%w: %s has no date", ErrInvalidRule, r.Key)
	}

	date, err := r.Date.Resolve(year, loc)
	if err != nil {
		return Holiday{}, false, err
	}
	if date.Year() != year {
		return Holiday{}, false, fmt.Errorf("%w: %s resolves to %s outside %d", ErrInvalidDate, r.Date, date.Format(time.DateOnly), year)
	}

	return NewHoliday(r.Key, date, p.Type, p.Translations, loc), true, nil
}
