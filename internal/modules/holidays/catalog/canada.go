package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func canada() *holidays.Provider {
	return &holidays.Provider{
		Code:     "CA",
		Name:     "Canada",
		Timezone: "America/Toronto",
		Rules: []holidays.Rule{
			newYearsDay(),
			goodFriday(),
			since(1845, official("victoriaDay", holidays.Custom("Monday preceding May 25", mondayBeforeMay25))),
			canadaDay(),
			since(1894, official("labourDay", holidays.NthWeekdayOf(1, time.Monday, time.September))),
			since(1957, official("thanksgivingDay", holidays.NthWeekdayOf(2, time.Monday, time.October))),
			since(1931, observance("remembranceDay", holidays.On(time.November, 11))),
			christmasDay(),
			secondChristmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"newYearsDay":        {"en": "New Year’s Day", "fr": "Jour de l’An"},
			"victoriaDay":        {"en": "Victoria Day", "fr": "Fête de la Reine"},
			"labourDay":          {"en": "Labour Day", "fr": "Fête du travail"},
			"thanksgivingDay":    {"en": "Thanksgiving", "fr": "Action de grâce"},
			"remembranceDay":     {"en": "Remembrance Day", "fr": "Jour du souvenir"},
			"secondChristmasDay": {"en": "Boxing Day", "fr": "Lendemain de Noël"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Canada"},
	}
}

// canadaDay moves to July 2 when July 1 is a Sunday. It was called Dominion
// Day until 1982.
func canadaDay() holidays.Rule {
	r := official("canadaDay", holidays.On(time.July, 1))
	r.Substitute = holidays.SundaySubstitution()
	r.Periods = []holidays.Period{
		{Since: 1879, Until: 1983, Type: holidays.TypeOfficial, Translations: holidays.Translations{
			"en": "Dominion Day",
			"fr": "Fête du Dominion",
		}},
		{Since: 1983, Type: holidays.TypeOfficial, Translations: holidays.Translations{
			"en": "Canada Day",
			"fr": "Fête du Canada",
		}},
	}
	return r
}

func mondayBeforeMay25(year int, loc *time.Location) (time.Time, error) {
	may24 := time.Date(year, time.May, 24, 0, 0, 0, 0, loc)
	offset := (int(may24.Weekday()) - int(time.Monday) + 7) % 7
	return may24.AddDate(0, 0, -offset), nil
}

func ontario(ca *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "CA-ON",
		Name:   "Ontario",
		Parent: ca,
		Rules: []holidays.Rule{
			since(2008, named(holidays.Translations{"en": "Family Day", "fr": "Jour de la famille"},
				official("familyDay", holidays.NthWeekdayOf(3, time.Monday, time.February)))),
			named(holidays.Translations{"en": "Civic Holiday", "fr": "Premier lundi d’août"},
				observance("civicHoliday", holidays.NthWeekdayOf(1, time.Monday, time.August))),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Canada#Ontario"},
	}
}

// quebec replaces Victoria Day with National Patriots' Day and has no Boxing
// Day.
func quebec(ca *holidays.Provider) *holidays.Provider {
	patriots := since(2003, named(holidays.Translations{
		"en": "National Patriots’ Day",
		"fr": "Journée nationale des patriotes",
	}, official("nationalPatriotsDay", holidays.Custom("Monday preceding May 25", mondayBeforeMay25))))
	patriots.Replaces = "victoriaDay"

	return &holidays.Provider{
		Code:   "CA-QC",
		Name:   "Quebec",
		Parent: ca,
		Rules: []holidays.Rule{
			patriots,
			since(1925, named(holidays.Translations{
				"en": "Saint-Jean-Baptiste Day",
				"fr": "Fête nationale du Québec",
			}, official("saintJeanBaptisteDay", holidays.On(time.June, 24)))),
		},
		Removes: []string{"secondChristmasDay"},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Canada#Quebec"},
	}
}
