package holidays

import (
	"fmt"
	"slices"
	"time"
)

// DefaultSubstitutionBound is the maximum number of days searched for a substitute.
const DefaultSubstitutionBound = 14

// SubstitutionPolicy configures how a holiday on a non-working day is moved.
// The zero value means Saturday and Sunday, forward by one day, within 14 days.
type SubstitutionPolicy struct {
	NonWorking []time.Weekday
	// Step is the search direction and stride in days (+1 forward, -1 backward).
	Step    int
	MaxDays int
	// EffectiveFrom disables substitution for holidays before this date.
	EffectiveFrom time.Time
	// Type and Translations override the values copied from the original holiday.
	Type         *HolidayType
	Translations Translations
}

// WeekendSubstitution is the default Saturday/Sunday, next working day policy.
func WeekendSubstitution() *SubstitutionPolicy {
	return &SubstitutionPolicy{}
}

// SundaySubstitution only treats Sunday as non-working.
func SundaySubstitution() *SubstitutionPolicy {
	return &SubstitutionPolicy{NonWorking: []time.Weekday{time.Sunday}}
}

// Validate checks the policy configuration.
func (p SubstitutionPolicy) Validate() error {
	if p.MaxDays < 0 {
		return fmt.Errorf("%w: negative substitution bound %d", ErrInvalidRule, p.MaxDays)
	}
	if len(p.NonWorking) >= 7 {
		return fmt.Errorf("%w: every weekday is non-working", ErrInvalidRule)
	}
	if p.Type != nil && !validHolidayType(*p.Type) {
		return fmt.Errorf("%w: substitute type %s", ErrInvalidRule, *p.Type)
	}
	return nil
}

func (p SubstitutionPolicy) nonWorking() []time.Weekday {
	if len(p.NonWorking) == 0 {
		return []time.Weekday{time.Saturday, time.Sunday}
	}
	return p.NonWorking
}

func (p SubstitutionPolicy) step() int {
	if p.Step == 0 {
		return 1
	}
	return p.Step
}

func (p SubstitutionPolicy) bound() int {
	if p.MaxDays == 0 {
		return DefaultSubstitutionBound
	}
	return p.MaxDays
}

// IsNonWorking reports whether t falls on one of the policy's non-working weekdays.
func (p SubstitutionPolicy) IsNonWorking(t time.Time) bool {
	return slices.Contains(p.nonWorking(), t.Weekday())
}

// Substitute derives the substitute for h, if h falls on a non-working day.
// taken reports dates that already carry a holiday; they are skipped like
// non-working days. The boolean is false when no substitute is needed.
func Substitute(h Holiday, policy SubstitutionPolicy, taken func(time.Time) bool) (Holiday, bool, error) {
	if !policy.IsNonWorking(h.Date) {
		return Holiday{}, false, nil
	}
	if !policy.EffectiveFrom.IsZero() && h.Date.Before(startOfDay(policy.EffectiveFrom, h.Date.Location())) {
		return Holiday{}, false, nil
	}

	step := policy.step()
	bound := policy.bound()
	for i := 1; i*abs(step) <= bound; i++ {
		candidate := addDays(h.Date, i*step)
		if policy.IsNonWorking(candidate) {
			continue
		}
		if taken != nil && taken(candidate) {
			continue
		}

		holidayType := h.Type
		if policy.Type != nil {
			holidayType = *policy.Type
		}
		translations := h.Translations
		if policy.Translations != nil {
			translations = policy.Translations
		}
		return NewHoliday(SubstitutePrefix+h.Key, candidate, holidayType, translations, h.Date.Location()), true, nil
	}

	return Holiday{}, false, fmt.Errorf("%w: no working day within %d days of %s", ErrSubstitutionBoundExceeded, bound, h)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
