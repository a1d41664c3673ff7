package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func norway() *holidays.Provider {
	return &holidays.Provider{
		Code:     "NO",
		Name:     "Norway",
		Timezone: "Europe/Oslo",
		Rules: []holidays.Rule{
			newYearsDay(),
			maundyThursday(),
			goodFriday(),
			easter(),
			easterMonday(),
			since(1947, internationalWorkersDay()),
			since(1836, named(holidays.Translations{
				"nb": "grunnlovsdagen",
				"nn": "grunnlovsdagen",
				"en": "Constitution Day",
			}, official("constitutionDay", holidays.On(time.May, 17)))),
			ascensionDay(),
			pentecost(),
			pentecostMonday(),
			christmasDay(),
			secondChristmasDay(),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Norway"},
	}
}
