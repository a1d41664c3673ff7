package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(t *testing.T, holidays ...Holiday) *Collection {
	t.Helper()
	col := newCollection("TC", 2024, "en", time.UTC, NewTranslationResolver())
	for _, h := range holidays {
		require.NoError(t, col.add(h))
	}
	return col
}

func TestCollection_StableOrder(t *testing.T) {
	col := newTestCollection(t,
		NewHoliday("christmasDay", date(2024, 12, 25), TypeOfficial, nil, time.UTC),
		NewHoliday("newYearsDay", date(2024, 1, 1), TypeOfficial, nil, time.UTC),
		NewHoliday("summerSolstice", date(2024, 6, 20), TypeSeason, nil, time.UTC),
		NewHoliday("worldDay", date(2024, 1, 1), TypeObservance, nil, time.UTC),
		NewHoliday("christmasEve", date(2024, 12, 24), TypeObservance, nil, time.UTC),
	)

	assert.Equal(t, []string{"newYearsDay", "worldDay", "summerSolstice", "christmasEve", "christmasDay"}, col.Keys())
	assert.Equal(t, 5, col.Len())
}

func TestCollection_Add(t *testing.T) {
	col := newTestCollection(t, NewHoliday("newYearsDay", date(2024, 1, 1), TypeOfficial, nil, time.UTC))

	err := col.add(NewHoliday("newYearsDay", date(2024, 1, 2), TypeOfficial, nil, time.UTC))
	assert.ErrorIs(t, err, ErrDuplicateHolidayKey)

	err = col.add(NewHoliday("nextYear", date(2025, 1, 1), TypeOfficial, nil, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.True(t, col.remove("newYearsDay"))
	assert.False(t, col.remove("newYearsDay"))
	assert.Zero(t, col.Len())
}

func TestCollection_Queries(t *testing.T) {
	col := newTestCollection(t,
		NewHoliday("newYearsDay", date(2024, 1, 1), TypeOfficial, nil, time.UTC),
		NewHoliday("valentinesDay", date(2024, 2, 14), TypeObservance, nil, time.UTC),
		NewHoliday("bankHoliday", date(2024, 5, 6), TypeBank, nil, time.UTC),
		NewHoliday("christmasDay", date(2024, 12, 25), TypeOfficial, nil, time.UTC),
	)

	h, ok := col.Get("valentinesDay")
	require.True(t, ok)
	assert.Equal(t, TypeObservance, h.Type)
	_, ok = col.Get("missing")
	assert.False(t, ok)

	assert.True(t, col.Has("bankHoliday"))
	assert.Len(t, col.ByType(TypeOfficial), 2)
	assert.Len(t, col.ByType(TypeOfficial, TypeBank), 3)
	assert.Empty(t, col.ByType(TypeSeason))

	assert.True(t, col.IsHoliday(time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)))
	assert.False(t, col.IsHoliday(date(2024, 12, 26)))
	assert.Len(t, col.On(date(2024, 2, 14)), 1)
	assert.Empty(t, col.On(date(2024, 2, 15)))

	all := col.All()
	all[0].Key = "mutated"
	assert.Equal(t, "newYearsDay", col.Keys()[0])
}

func TestCollection_OnUsesCollectionTimezone(t *testing.T) {
	tokyo := MustResolveTimezone("Asia/Tokyo")
	col := newCollection("JP", 2024, "ja", tokyo, NewTranslationResolver())
	require.NoError(t, col.add(NewHoliday("newYearsDay", time.Date(2024, 1, 1, 0, 0, 0, 0, tokyo), TypeOfficial, nil, tokyo)))

	// 2023-12-31 20:00 UTC is already New Year's Day in Tokyo
	assert.True(t, col.IsHoliday(time.Date(2023, 12, 31, 20, 0, 0, 0, time.UTC)))
	assert.False(t, col.IsHoliday(time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)))
}

func TestCollection_Between(t *testing.T) {
	col := newTestCollection(t,
		NewHoliday("newYearsDay", date(2024, 1, 1), TypeOfficial, nil, time.UTC),
		NewHoliday("easterMonday", date(2024, 4, 1), TypeOfficial, nil, time.UTC),
		NewHoliday("ascensionDay", date(2024, 5, 9), TypeOfficial, nil, time.UTC),
		NewHoliday("christmasDay", date(2024, 12, 25), TypeOfficial, nil, time.UTC),
	)

	result, err := col.Between(date(2024, 4, 1), date(2024, 5, 9))
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "easterMonday", result[0].Key)
	assert.Equal(t, "ascensionDay", result[1].Key)

	result, err = col.Between(date(2024, 1, 2), date(2024, 3, 31))
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = col.Between(date(2024, 12, 25), date(2024, 12, 25))
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = col.Between(date(2024, 5, 9), date(2024, 4, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCollection_Name(t *testing.T) {
	col := newTestCollection(t,
		NewHoliday("festival", date(2024, 7, 1), TypeOther, Translations{"en": "Festival", "de": "Fest"}, time.UTC),
		NewHoliday("unnamed", date(2024, 7, 2), TypeOther, nil, time.UTC),
	)

	name, err := col.Name("festival", "")
	require.NoError(t, err)
	assert.Equal(t, "Festival", name)

	name, err = col.Name("festival", "de_AT")
	require.NoError(t, err)
	assert.Equal(t, "Fest", name)

	_, err = col.Name("missing", "en")
	assert.ErrorIs(t, err, ErrHolidayNotFound)

	_, err = col.Name("unnamed", "en")
	assert.ErrorIs(t, err, ErrMissingTranslation)

	h, _ := col.Get("unnamed")
	assert.Equal(t, "unnamed", col.DisplayName(h, "en"))
}

func TestCollection_Snapshot(t *testing.T) {
	col := newTestCollection(t,
		NewHoliday("newYearsDay", date(2024, 1, 1), TypeOfficial, Translations{"en": "New Year’s Day"}, time.UTC),
	)

	s := col.Snapshot()
	assert.Equal(t, "TC", s.Jurisdiction)
	assert.Equal(t, 2024, s.Year)
	assert.Equal(t, "en", s.Locale)
	assert.Equal(t, "UTC", s.Timezone)
	require.Len(t, s.Holidays, 1)
	assert.Equal(t, HolidayRecord{
		Key:          "newYearsDay",
		Date:         "2024-01-01",
		Type:         "official",
		Translations: Translations{"en": "New Year’s Day"},
	}, s.Holidays[0])
}
