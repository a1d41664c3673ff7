package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func ireland() *holidays.Provider {
	return &holidays.Provider{
		Code:     "IE",
		Name:     "Ireland",
		Timezone: "Europe/Dublin",
		Rules: []holidays.Rule{
			since(1974, substituted(holidays.WeekendSubstitution(), newYearsDay())),
			since(2023, named(holidays.Translations{"en": "St. Brigid’s Day", "ga": "Lá Fhéile Bríde"},
				official("stBrigidsDay", holidays.Custom("first Monday of February or February 1 when a Friday", stBrigidsDay)))),
			since(1903, substituted(holidays.WeekendSubstitution(), named(holidays.Translations{
				"en": "St. Patrick’s Day",
				"ga": "Lá Fhéile Pádraig",
			}, official("stPatricksDay", holidays.On(time.March, 17))))),
			typed(holidays.TypeObservance, goodFriday()),
			typed(holidays.TypeObservance, easter()),
			easterMonday(),
			since(1994, official("mayDay", holidays.NthWeekdayOf(1, time.Monday, time.May))),
			withUntil(1974, pentecostMonday()),
			since(1974, official("juneHoliday", holidays.NthWeekdayOf(1, time.Monday, time.June))),
			official("augustHoliday", holidays.NthWeekdayOf(1, time.Monday, time.August)),
			since(1977, official("octoberHoliday", holidays.LastWeekdayOf(time.Monday, time.October))),
			substituted(holidays.WeekendSubstitution(), christmasDay()),
			substituted(holidays.WeekendSubstitution(), stStephensDay()),
		},
		Translations: map[string]holidays.Translations{
			"mayDay":         {"en": "May Day", "ga": "Lá Bealtaine"},
			"juneHoliday":    {"en": "June Holiday", "ga": "Lá Saoire i mí an Mheithimh"},
			"augustHoliday":  {"en": "August Holiday", "ga": "Lá Saoire i mí Lúnasa"},
			"octoberHoliday": {"en": "October Holiday", "ga": "Lá Saoire i mí Dheireadh Fómhair"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_the_Republic_of_Ireland"},
	}
}

func stBrigidsDay(year int, loc *time.Location) (time.Time, error) {
	first := time.Date(year, time.February, 1, 0, 0, 0, 0, loc)
	if first.Weekday() == time.Friday {
		return first, nil
	}
	return holidays.NthWeekday(year, time.February, time.Monday, 1, loc)
}
