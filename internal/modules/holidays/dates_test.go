package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculateEaster_Gregorian(t *testing.T) {
	tests := []struct {
		year     int
		expected time.Time
	}{
		{1977, date(1977, 4, 10)},
		{1997, date(1997, 3, 30)},
		{2024, date(2024, 3, 31)},
		{2025, date(2025, 4, 20)},
		{2026, date(2026, 4, 5)},
		{2027, date(2027, 3, 28)},
		{2028, date(2028, 4, 16)},
		{2029, date(2029, 4, 1)},
		{2030, date(2030, 4, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Format(time.DateOnly), func(t *testing.T) {
			result := CalculateEaster(tt.year, Gregorian, time.UTC)
			assert.True(t, result.Equal(tt.expected), "CalculateEaster(%d, Gregorian) = %v, want %v", tt.year, result, tt.expected)
			assert.Equal(t, time.Sunday, result.Weekday())
		})
	}
}

func TestCalculateEaster_Julian(t *testing.T) {
	tests := []struct {
		year     int
		expected time.Time
	}{
		{1997, date(1997, 4, 27)},
		{2021, date(2021, 5, 2)},
		{2024, date(2024, 5, 5)},  // Orthodox Easter 2024
		{2025, date(2025, 4, 20)}, // Same as Gregorian in 2025
		{2026, date(2026, 4, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Format(time.DateOnly), func(t *testing.T) {
			result := CalculateEaster(tt.year, Julian, time.UTC)
			assert.True(t, result.Equal(tt.expected), "CalculateEaster(%d, Julian) = %v, want %v", tt.year, result, tt.expected)
			assert.Equal(t, time.Sunday, result.Weekday())
		})
	}
}

func TestCalculateEaster_Location(t *testing.T) {
	zurich := MustResolveTimezone("Europe/Zurich")

	result := CalculateEaster(1997, Gregorian, zurich)
	assert.Equal(t, zurich, result.Location())
	assert.Equal(t, 0, result.Hour())

	assert.Equal(t, time.UTC, CalculateEaster(1997, Gregorian, nil).Location())
}

func TestEasterOffsets(t *testing.T) {
	tests := []struct {
		name     string
		spec     DateSpec
		year     int
		expected time.Time
	}{
		{"good friday", Easter(-2), 1997, date(1997, 3, 28)},
		{"easter monday", Easter(1), 1997, date(1997, 3, 31)},
		{"ascension", Easter(39), 1997, date(1997, 5, 8)},
		{"pentecost monday", Easter(50), 1997, date(1997, 5, 19)},
		{"corpus christi", Easter(60), 1997, date(1997, 5, 29)},
		{"pentecost monday 1977", Easter(50), 1977, date(1977, 5, 30)},
		{"orthodox good friday", OrthodoxEaster(-2), 2024, date(2024, 5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.spec.Resolve(tt.year, time.UTC)
			require.NoError(t, err)
			assert.True(t, result.Equal(tt.expected), "%s = %v, want %v", tt.spec, result, tt.expected)
		})
	}
}

func TestFixedDate(t *testing.T) {
	result, err := FixedDate(2024, time.February, 29, time.UTC)
	require.NoError(t, err)
	assert.True(t, result.Equal(date(2024, 2, 29)))

	_, err = FixedDate(2023, time.February, 29, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = FixedDate(2023, time.April, 31, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = FixedDate(2023, 13, 1, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = On(time.February, 29).Resolve(2023, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 31, DaysInMonth(2023, time.December))
}

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name     string
		month    time.Month
		weekday  time.Weekday
		n        int
		year     int
		expected time.Time
	}{
		{"second Monday of October 2022", time.October, time.Monday, 2, 2022, date(2022, 10, 10)},
		{"third Monday of September 2024", time.September, time.Monday, 3, 2024, date(2024, 9, 16)},
		{"first Monday of February 2023", time.February, time.Monday, 1, 2023, date(2023, 2, 6)},
		{"last Monday of May 2024", time.May, time.Monday, -1, 2024, date(2024, 5, 27)},
		{"second to last Monday of May 2024", time.May, time.Monday, -2, 2024, date(2024, 5, 20)},
		{"fifth Friday of March 2024", time.March, time.Friday, 5, 2024, date(2024, 3, 29)},
		{"third Sunday of September 2023", time.September, time.Sunday, 3, 2023, date(2023, 9, 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NthWeekday(tt.year, tt.month, tt.weekday, tt.n, time.UTC)
			require.NoError(t, err)
			assert.True(t, result.Equal(tt.expected), "got %v, want %v", result, tt.expected)
			assert.Equal(t, tt.weekday, result.Weekday())
		})
	}
}

func TestNthWeekday_Errors(t *testing.T) {
	for _, n := range []int{0, 6, -6, 42} {
		_, err := NthWeekday(2024, time.May, time.Monday, n, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidRule, "ordinal %d", n)
	}

	// February 2023 has only four Mondays
	_, err := NthWeekday(2023, time.February, time.Monday, 5, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NthWeekday(2023, time.February, time.Weekday(9), 1, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestDateSpecs(t *testing.T) {
	tests := []struct {
		name     string
		spec     DateSpec
		year     int
		expected time.Time
	}{
		{"fixed", On(time.August, 1), 1994, date(1994, 8, 1)},
		{"nth weekday", NthWeekdayOf(2, time.Monday, time.October), 2022, date(2022, 10, 10)},
		{"last weekday", LastWeekdayOf(time.Monday, time.October), 2023, date(2023, 10, 30)},
		{"monday after third sunday of september", AfterNthWeekday(3, time.Sunday, time.September, 1), 2023, date(2023, 9, 18)},
		{"custom", Custom("fixed", func(year int, loc *time.Location) (time.Time, error) {
			return time.Date(year, time.July, 24, 15, 30, 0, 0, loc), nil
		}), 2020, date(2020, 7, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.spec.Resolve(tt.year, time.UTC)
			require.NoError(t, err)
			assert.True(t, result.Equal(tt.expected), "%s = %v, want %v", tt.spec, result, tt.expected)
			assert.NotEmpty(t, tt.spec.String())
		})
	}

	_, err := Custom("broken", nil).Resolve(2020, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestByYear(t *testing.T) {
	spec := ByYear(
		Before(2000, On(time.October, 10)),
		InYear(2020, On(time.July, 24)),
		NthWeekdayOf(2, time.Monday, time.October),
	)

	tests := []struct {
		year     int
		expected time.Time
	}{
		{1999, date(1999, 10, 10)},
		{2000, date(2000, 10, 9)},
		{2020, date(2020, 7, 24)},
		{2021, date(2021, 10, 11)},
	}

	for _, tt := range tests {
		result, err := spec.Resolve(tt.year, time.UTC)
		require.NoError(t, err)
		assert.True(t, result.Equal(tt.expected), "%d: got %v, want %v", tt.year, result, tt.expected)
	}

	_, err := ByYear(Before(2000, On(time.May, 1))).Resolve(2000, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = InYear(2020, On(time.May, 1)).Resolve(2021, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, spec.String(), "byYear(")
}
