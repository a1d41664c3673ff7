package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func ukraine() *holidays.Provider {
	return &holidays.Provider{
		Code:     "UA",
		Name:     "Ukraine",
		Timezone: "Europe/Kyiv",
		Rules: []holidays.Rule{
			newYearsDay(),
			// Christmas moved from the Julian to the Gregorian date in 2023
			official("christmasDay", holidays.ByYear(
				holidays.Before(2024, holidays.On(time.January, 7)),
				holidays.On(time.December, 25),
			)),
			internationalWomensDay(),
			orthodoxEaster(),
			orthodoxPentecost(),
			internationalWorkersDay(),
			since(1945, official("victoryDay", holidays.ByYear(
				holidays.Before(2023, holidays.On(time.May, 9)),
				holidays.On(time.May, 8),
			))),
			since(1996, official("constitutionDay", holidays.On(time.June, 28))),
			since(1991, official("independenceDay", holidays.On(time.August, 24))),
			since(2015, official("defenderOfUkraineDay", holidays.ByYear(
				holidays.Before(2023, holidays.On(time.October, 14)),
				holidays.On(time.October, 1),
			))),
			withUntil(2024, since(2017, official("catholicChristmasDay", holidays.On(time.December, 25)))),
		},
		Translations: map[string]holidays.Translations{
			"christmasDay":         {"uk": "Різдво", "en": "Christmas Day"},
			"pentecost":            {"uk": "Трійця", "en": "Trinity Sunday"},
			"victoryDay":           {"uk": "День перемоги", "en": "Victory Day"},
			"constitutionDay":      {"uk": "День Конституції", "en": "Constitution Day"},
			"independenceDay":      {"uk": "День Незалежності", "en": "Independence Day"},
			"defenderOfUkraineDay": {"uk": "День захисників і захисниць України", "en": "Defenders of Ukraine Day"},
			"catholicChristmasDay": {"uk": "Католицьке Різдво", "en": "Catholic Christmas Day"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Ukraine"},
	}
}
