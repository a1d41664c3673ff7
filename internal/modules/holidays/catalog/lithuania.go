package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

const (
	lithuanianStatehoodYear               = 1253
	lithuanianStateRestorationYear        = 1918
	lithuanianIndependenceRestorationYear = 1990
)

func lithuania() *holidays.Provider {
	return &holidays.Provider{
		Code:     "LT",
		Name:     "Lithuania",
		Timezone: "Europe/Vilnius",
		Rules: []holidays.Rule{
			newYearsDay(),
			since(lithuanianStateRestorationYear, named(holidays.Translations{
				"lt": "Lietuvos valstybės atkūrimo diena",
				"en": "Day of Restoration of the State of Lithuania",
			}, official("restorationOfTheStateOfLithuaniaDay", holidays.On(time.February, 16)))),
			since(lithuanianIndependenceRestorationYear, named(holidays.Translations{
				"lt": "Lietuvos nepriklausomybės atkūrimo diena",
				"en": "Day of Restoration of Independence of Lithuania",
			}, official("restorationOfIndependenceOfLithuaniaDay", holidays.On(time.March, 11)))),
			easter(),
			easterMonday(),
			internationalWorkersDay(),
			named(holidays.Translations{
				"lt": "Rasos ir Joninių diena",
				"en": "St. John’s Day",
			}, official("stJohnsDay", holidays.On(time.June, 24))),
			since(lithuanianStatehoodYear, named(holidays.Translations{
				"lt": "Valstybės diena",
				"en": "Statehood Day",
			}, official("statehoodDay", holidays.On(time.July, 6)))),
			assumptionOfMary(),
			allSaintsDay(),
			since(2020, named(holidays.Translations{
				"lt": "Mirusiųjų atminimo diena",
				"en": "All Souls’ Day",
			}, official("allSoulsDay", holidays.On(time.November, 2)))),
			typed(holidays.TypeOfficial, christmasEve()),
			christmasDay(),
			secondChristmasDay(),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Lithuania"},
	}
}
