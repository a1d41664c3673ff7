package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func france() *holidays.Provider {
	return &holidays.Provider{
		Code:     "FR",
		Name:     "France",
		Timezone: "Europe/Paris",
		Rules: []holidays.Rule{
			newYearsDay(),
			easterMonday(),
			internationalWorkersDay(),
			since(1945, official("victoryInEuropeDay", holidays.On(time.May, 8))),
			ascensionDay(),
			pentecostMonday(),
			since(1790, official("bastilleDay", holidays.On(time.July, 14))),
			assumptionOfMary(),
			allSaintsDay(),
			since(1919, official("armisticeDay", holidays.On(time.November, 11))),
			christmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"victoryInEuropeDay": {"fr": "Victoire 1945", "en": "Victory in Europe Day"},
			"bastilleDay":        {"fr": "Fête nationale", "en": "Bastille Day"},
			"armisticeDay":       {"fr": "Armistice 1918", "en": "Armistice Day"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_France"},
	}
}

// hautRhin is part of Alsace-Moselle, which kept two holidays of the German
// local law.
func hautRhin(fr *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "FR-68",
		Name:   "HautRhin",
		Parent: fr,
		Rules: []holidays.Rule{
			goodFriday(),
			stStephensDay(),
		},
	}
}
