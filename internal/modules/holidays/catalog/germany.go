package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func germany() *holidays.Provider {
	return &holidays.Provider{
		Code:     "DE",
		Name:     "Germany",
		Timezone: "Europe/Berlin",
		Rules: []holidays.Rule{
			newYearsDay(),
			goodFriday(),
			easterMonday(),
			internationalWorkersDay(),
			ascensionDay(),
			pentecostMonday(),
			since(1990, official("germanUnityDay", holidays.On(time.October, 3))),
			// 500th anniversary of the Reformation, observed nationwide once
			reformationDay500(),
			christmasDay(),
			secondChristmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"germanUnityDay": {
				"de": "Tag der Deutschen Einheit",
				"en": "German Unity Day",
				"fr": "Jour de l’unité allemande",
			},
			"worldChildrensDay": {
				"en": "World Children’s Day",
			},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Germany"},
	}
}

func reformationDay500() holidays.Rule {
	r := reformationDay()
	r.Since = 2017
	r.Until = 2018
	return r
}

// statewideReformationDay is held every year since 1517 and stands in for the
// nationwide 2017 holiday.
func statewideReformationDay() holidays.Rule {
	r := since(1517, reformationDay())
	r.Replaces = "reformationDay"
	return r
}

func thuringia(de *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "DE-TH",
		Name:   "Thuringia",
		Parent: de,
		Rules: []holidays.Rule{
			statewideReformationDay(),
			since(2019, named(holidays.Translations{"de": "Weltkindertag"},
				official("worldChildrensDay", holidays.On(time.September, 20)))),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Thuringia"},
	}
}

func saarland(de *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "DE-SL",
		Name:   "Saarland",
		Parent: de,
		Rules: []holidays.Rule{
			corpusChristi(),
			typed(holidays.TypeOther, assumptionOfMary()),
			allSaintsDay(),
		},
	}
}

func mecklenburgWesternPomerania(de *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "DE-MV",
		Name:   "MecklenburgWesternPomerania",
		Parent: de,
		Rules: []holidays.Rule{
			since(2023, internationalWomensDay()),
			statewideReformationDay(),
		},
	}
}

func rhinelandPalatinate(de *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "DE-RP",
		Name:   "RhinelandPalatinate",
		Parent: de,
		Rules: []holidays.Rule{
			corpusChristi(),
			allSaintsDay(),
		},
	}
}
