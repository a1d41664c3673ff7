package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func romania() *holidays.Provider {
	return &holidays.Provider{
		Code:     "RO",
		Name:     "Romania",
		Timezone: "Europe/Bucharest",
		Rules: []holidays.Rule{
			newYearsDay(),
			official("dayAfterNewYearsDay", holidays.On(time.January, 2)),
			since(2024, epiphany()),
			since(2024, official("stJohnsDay", holidays.On(time.January, 7))),
			since(2017, official("unitedPrincipalitiesDay", holidays.On(time.January, 24))),
			since(2018, orthodoxGoodFriday()),
			orthodoxEaster(),
			orthodoxEasterMonday(),
			internationalWorkersDay(),
			since(2017, official("childrensDay", holidays.On(time.June, 1))),
			orthodoxPentecost(),
			since(2008, orthodoxPentecostMonday()),
			since(2009, assumptionOfMary()),
			since(2012, official("stAndrewsDay", holidays.On(time.November, 30))),
			since(1990, official("nationalDay", holidays.On(time.December, 1))),
			christmasDay(),
			secondChristmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"dayAfterNewYearsDay":     {"ro": "A doua zi după Anul Nou", "en": "Day after New Year’s Day"},
			"epiphany":                {"ro": "Boboteaza"},
			"stJohnsDay":              {"ro": "Sfântul Ion", "en": "St. John’s Day"},
			"unitedPrincipalitiesDay": {"ro": "Ziua Unirii Principatelor Române", "en": "Union Day"},
			"goodFriday":              {"ro": "Vinerea Mare"},
			"childrensDay":            {"ro": "Ziua Copilului", "en": "Children’s Day"},
			"stAndrewsDay":            {"ro": "Sfântul Andrei", "en": "St. Andrew’s Day"},
			"nationalDay":             {"ro": "Ziua Națională", "en": "National Day"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Romania"},
	}
}
