package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func switzerland() *holidays.Provider {
	return &holidays.Provider{
		Code:     "CH",
		Name:     "Switzerland",
		Timezone: "Europe/Zurich",
		Rules: []holidays.Rule{
			newYearsDay(),
			ascensionDay(),
			swissNationalDay(),
			christmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"berchtoldsTag": {
				"de": "Berchtoldstag",
				"fr": "Jour de la Saint-Berthold",
				"en": "Berchtoldstag",
			},
			"bettagsMontag": {
				"fr": "Jeûne fédéral",
				"de": "Eidgenössischer Dank-, Buss- und Bettag",
				"it": "Festa federale di ringraziamento, pentimento e preghiera",
				"en": "Federal Day of Thanksgiving, Repentance and Prayer",
			},
			"stStephensDay": {
				"de": "Stephanstag",
				"fr": "Saint-Étienne",
				"it": "Santo Stefano",
				"rm": "Son Steffan",
			},
		},
		Sources: []string{
			"https://en.wikipedia.org/wiki/Public_holidays_in_Switzerland",
			"https://fr.wikipedia.org/wiki/Jours_f%C3%A9ri%C3%A9s_en_Suisse",
			"https://it.wikipedia.org/wiki/Festivit%C3%A0_in_Svizzera",
		},
	}
}

// swissNationalDay was first held in 1891 and yearly from 1899. It became an
// official holiday after the 1993 popular vote.
func swissNationalDay() holidays.Rule {
	return holidays.Rule{
		Key:  "swissNationalDay",
		Date: holidays.On(time.August, 1),
		Translations: holidays.Translations{
			"en": "National Day",
			"fr": "Jour de la fête nationale",
			"de": "Bundesfeiertag",
			"it": "Giorno festivo federale",
			"rm": "Fiasta naziunala",
		},
		Periods: []holidays.Period{
			{Since: 1891, Until: 1892, Type: holidays.TypeObservance},
			{Since: 1899, Until: 1994, Type: holidays.TypeObservance},
			{Since: 1994, Type: holidays.TypeOfficial},
		},
	}
}

func berchtoldsTag() holidays.Rule { return other("berchtoldsTag", holidays.On(time.January, 2)) }

// bettagsMontag is the Monday after the Federal Day of Thanksgiving, held on
// the third Sunday of September since 1832.
func bettagsMontag() holidays.Rule {
	return since(1832, other("bettagsMontag", holidays.AfterNthWeekday(3, time.Sunday, time.September, 1)))
}

// naefelserFahrt commemorates the battle of Näfels (1388) on the first
// Thursday of April, a week later when that is Maundy Thursday.
func naefelserFahrt() holidays.Rule {
	r := other("naefelserFahrt", holidays.Custom("first Thursday of April", func(year int, loc *time.Location) (time.Time, error) {
		date, err := holidays.NthWeekday(year, time.April, time.Thursday, 1, loc)
		if err != nil {
			return time.Time{}, err
		}
		if date.Equal(holidays.CalculateEaster(year, holidays.Gregorian, loc).AddDate(0, 0, -3)) {
			date = date.AddDate(0, 0, 7)
		}
		return date, nil
	}))
	r.Since = 1389
	r.Translations = holidays.Translations{"de": "Näfelser Fahrt", "en": "Näfels Ride"}
	return r
}

func glarus(ch *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "CH-GL",
		Name:   "Glarus",
		Parent: ch,
		Rules: []holidays.Rule{
			berchtoldsTag(),
			naefelserFahrt(),
			typed(holidays.TypeOther, goodFriday()),
			typed(holidays.TypeOther, easterMonday()),
			typed(holidays.TypeOther, pentecostMonday()),
			typed(holidays.TypeOther, allSaintsDay()),
			typed(holidays.TypeOther, stStephensDay()),
		},
		Sources: []string{"https://de.wikipedia.org/wiki/Feiertage_in_der_Schweiz"},
	}
}

func stGallen(ch *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "CH-SG",
		Name:   "StGallen",
		Parent: ch,
		Rules: []holidays.Rule{
			typed(holidays.TypeOther, goodFriday()),
			typed(holidays.TypeOther, easterMonday()),
			typed(holidays.TypeOther, pentecostMonday()),
			typed(holidays.TypeOther, allSaintsDay()),
			typed(holidays.TypeOther, stStephensDay()),
		},
	}
}

func vaud(ch *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "CH-VD",
		Name:   "Vaud",
		Parent: ch,
		Rules: []holidays.Rule{
			berchtoldsTag(),
			typed(holidays.TypeOther, goodFriday()),
			typed(holidays.TypeOther, easterMonday()),
			typed(holidays.TypeOther, pentecostMonday()),
			bettagsMontag(),
		},
	}
}
