package holidays

import (
	"fmt"
	"strings"
	"time"
)

// CalculateEaster calculates Easter Sunday for a given year and calendar type,
// at midnight in loc (UTC when loc is nil).
func CalculateEaster(year int, calendarType CalendarType, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if calendarType == Julian {
		return calculateJulianEaster(year, loc)
	}
	return calculateGregorianEaster(year, loc)
}

// calculateGregorianEaster uses the anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func calculateGregorianEaster(year int, loc *time.Location) time.Time {
	// Golden Number (position in 19-year Metonic cycle)
	a := year % 19

	// Century
	b := year / 100
	c := year % 100

	// Corrections
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// calculateJulianEaster computes Easter with the Julian computus and returns
// it as a Gregorian date.
func calculateJulianEaster(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year % 4
	c := year % 7

	// d is the epact, e finds the following Sunday
	d := (19*a + 15) % 30
	e := (2*b + 4*c + 6*d + 6) % 7

	// March 22 + d + e in the Julian calendar
	day := 22 + d + e
	month := time.March
	if day > 31 {
		day -= 31
		month = time.April
	}

	return time.Date(year, month, day+julianOffset(year), 0, 0, 0, 0, loc)
}

// julianOffset is the number of days the Julian calendar trails the Gregorian
// one for dates between March and December of year.
func julianOffset(year int) int {
	return year/100 - year/400 - 2
}

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FixedDate returns month/day of year at midnight in loc.
func FixedDate(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("%w: %s %d does not exist in %d", ErrInvalidDate, month, day, year)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// NthWeekday finds the nth occurrence of a weekday in a given month/year.
// n: 1 = first, 2 = second, etc. Negative values count from the end of the
// month, -1 being the last occurrence.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) (time.Time, error) {
	if n == 0 || n > 5 || n < -5 {
		return time.Time{}, fmt.Errorf("%w: ordinal %d", ErrInvalidRule, n)
	}
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidRule, month)
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return time.Time{}, fmt.Errorf("%w: weekday %d", ErrInvalidRule, weekday)
	}

	last := DaysInMonth(year, month)
	var day int
	if n > 0 {
		// Find the first occurrence of the weekday, then add (n-1) weeks
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
		daysToAdd := (int(weekday) - int(first) + 7) % 7
		day = 1 + daysToAdd + (n-1)*7
	} else {
		// Find the last occurrence of the weekday, then subtract weeks
		lastWeekday := time.Date(year, month, last, 0, 0, 0, 0, time.UTC).Weekday()
		daysToSubtract := (int(lastWeekday) - int(weekday) + 7) % 7
		day = last - daysToSubtract + (n+1)*7
	}
	if day < 1 || day > last {
		return time.Time{}, fmt.Errorf("%w: no %s #%d in %s %d", ErrInvalidDate, weekday, n, month, year)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// DateSpec is an abstract date that resolves to a concrete date once a year
// is known.
type DateSpec interface {
	Resolve(year int, loc *time.Location) (time.Time, error)
	String() string
}

type fixedDate struct {
	month time.Month
	day   int
}

// On is a fixed month and day.
func On(month time.Month, day int) DateSpec {
	return fixedDate{month: month, day: day}
}

func (f fixedDate) Resolve(year int, loc *time.Location) (time.Time, error) {
	return FixedDate(year, f.month, f.day, loc)
}

func (f fixedDate) String() string {
	return fmt.Sprintf("%s %02d", f.month, f.day)
}

type easterOffset struct {
	days     int
	calendar CalendarType
}

// Easter is a number of days before (negative) or after Easter Sunday.
func Easter(days int) DateSpec {
	return easterOffset{days: days, calendar: Gregorian}
}

// OrthodoxEaster is like Easter but relative to the Julian computus.
func OrthodoxEaster(days int) DateSpec {
	return easterOffset{days: days, calendar: Julian}
}

func (e easterOffset) Resolve(year int, loc *time.Location) (time.Time, error) {
	return addDays(CalculateEaster(year, e.calendar, loc), e.days), nil
}

func (e easterOffset) String() string {
	return fmt.Sprintf("easter(%s)%+d", e.calendar, e.days)
}

type nthWeekday struct {
	n       int
	weekday time.Weekday
	month   time.Month
	days    int
}

// NthWeekdayOf is the nth weekday of month, e.g. NthWeekdayOf(2, time.Monday, time.October).
func NthWeekdayOf(n int, weekday time.Weekday, month time.Month) DateSpec {
	return nthWeekday{n: n, weekday: weekday, month: month}
}

// LastWeekdayOf is the last weekday of month.
func LastWeekdayOf(weekday time.Weekday, month time.Month) DateSpec {
	return nthWeekday{n: -1, weekday: weekday, month: month}
}

// AfterNthWeekday anchors on the nth weekday of month and then moves by days,
// e.g. the Monday after the third Sunday of September.
func AfterNthWeekday(n int, weekday time.Weekday, month time.Month, days int) DateSpec {
	return nthWeekday{n: n, weekday: weekday, month: month, days: days}
}

func (w nthWeekday) Resolve(year int, loc *time.Location) (time.Time, error) {
	date, err := NthWeekday(year, w.month, w.weekday, w.n, loc)
	if err != nil {
		return time.Time{}, err
	}
	return addDays(date, w.days), nil
}

func (w nthWeekday) String() string {
	s := fmt.Sprintf("%s #%d of %s", w.weekday, w.n, w.month)
	if w.days != 0 {
		s += fmt.Sprintf("%+d", w.days)
	}
	return s
}

// DateFunc computes a date for year in loc.
type DateFunc func(year int, loc *time.Location) (time.Time, error)

type customDate struct {
	name string
	fn   DateFunc
}

// Custom wraps a date function for rules whose dates follow no regular pattern.
func Custom(name string, fn DateFunc) DateSpec {
	return customDate{name: name, fn: fn}
}

func (c customDate) Resolve(year int, loc *time.Location) (time.Time, error) {
	if c.fn == nil {
		return time.Time{}, fmt.Errorf("%w: custom date %q has no function", ErrInvalidRule, c.name)
	}
	date, err := c.fn(year, loc)
	if err != nil {
		return time.Time{}, err
	}
	return startOfDay(date, loc), nil
}

func (c customDate) String() string {
	return "custom(" + c.name + ")"
}

type yearRangeDate struct {
	since int
	until int
	spec  DateSpec
}

// Before limits spec to the years before year. It is meant for ByYear.
func Before(year int, spec DateSpec) DateSpec {
	return yearRangeDate{until: year, spec: spec}
}

// InYear limits spec to a single year. It is meant for ByYear.
func InYear(year int, spec DateSpec) DateSpec {
	return yearRangeDate{since: year, until: year + 1, spec: spec}
}

func (r yearRangeDate) Resolve(year int, loc *time.Location) (time.Time, error) {
	if !inYearRange(year, r.since, r.until) {
		return time.Time{}, fmt.Errorf("%w: %s does not apply in %d", ErrInvalidDate, r, year)
	}
	return r.spec.Resolve(year, loc)
}

func (r yearRangeDate) String() string {
	return fmt.Sprintf("%s [%d, %d)", r.spec, r.since, r.until)
}

type byYear []DateSpec

// ByYear resolves with the first spec that applies to the year, for holidays
// whose date changed over time. Specs not built with Before or InYear apply
// to every year.
func ByYear(specs ...DateSpec) DateSpec {
	return byYear(specs)
}

func (b byYear) Resolve(year int, loc *time.Location) (time.Time, error) {
	for _, spec := range b {
		if r, ok := spec.(yearRangeDate); ok && !inYearRange(year, r.since, r.until) {
			continue
		}
		return spec.Resolve(year, loc)
	}
	return time.Time{}, fmt.Errorf("%w: no date for %d", ErrInvalidDate, year)
}

func (b byYear) String() string {
	parts := make([]string, len(b))
	for i, spec := range b {
		parts[i] = spec.String()
	}
	return "byYear(" + strings.Join(parts, ", ") + ")"
}
