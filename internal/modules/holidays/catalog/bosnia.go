package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func bosnia() *holidays.Provider {
	return &holidays.Provider{
		Code:     "BA",
		Name:     "Bosnia",
		Timezone: "Europe/Sarajevo",
		Rules: []holidays.Rule{
			newYearsDay(),
			official("dayAfterNewYearsDay", holidays.On(time.January, 2)),
			named(holidays.Translations{"bs": "Pravoslavni Božić", "en": "Orthodox Christmas Day"},
				official("orthodoxChristmasDay", holidays.On(time.January, 7))),
			since(1992, official("independenceDay", holidays.On(time.March, 1))),
			easter(),
			named(holidays.Translations{"bs": "Pravoslavni Uskrs", "en": "Orthodox Easter"},
				official("orthodoxEaster", holidays.OrthodoxEaster(0))),
			internationalWorkersDay(),
			official("secondLabourDay", holidays.On(time.May, 2)),
			since(1943, official("statehoodDay", holidays.On(time.November, 25))),
			christmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"dayAfterNewYearsDay": {"bs": "Nova godina - drugi dan", "en": "Day after New Year’s Day"},
			"independenceDay":     {"bs": "Dan nezavisnosti", "en": "Independence Day"},
			"secondLabourDay":     {"bs": "Praznik rada - drugi dan", "en": "Second Labour Day"},
			"statehoodDay":        {"bs": "Dan državnosti", "en": "Statehood Day"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Bosnia_and_Herzegovina"},
	}
}
