package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func spain() *holidays.Provider {
	return &holidays.Provider{
		Code:     "ES",
		Name:     "Spain",
		Timezone: "Europe/Madrid",
		Rules: []holidays.Rule{
			newYearsDay(),
			epiphany(),
			typed(holidays.TypeOther, maundyThursday()),
			goodFriday(),
			typed(holidays.TypeOther, easterMonday()),
			internationalWorkersDay(),
			assumptionOfMary(),
			since(1981, named(holidays.Translations{
				"es": "Fiesta Nacional de España",
				"ca": "Festa Nacional d’Espanya",
				"en": "National Day",
			}, official("nationalDay", holidays.On(time.October, 12)))),
			allSaintsDay(),
			since(1978, named(holidays.Translations{
				"es": "Día de la Constitución",
				"ca": "Dia de la Constitució",
				"en": "Constitution Day",
			}, official("constitutionDay", holidays.On(time.December, 6)))),
			immaculateConception(),
			christmasDay(),
		},
		Translations: map[string]holidays.Translations{
			"immaculateConception": {"es": "Día de la Inmaculada Concepción", "en": "Immaculate Conception"},
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Spain"},
	}
}

func andalusia(es *holidays.Provider) *holidays.Provider {
	return &holidays.Provider{
		Code:   "ES-AN",
		Name:   "Andalusia",
		Parent: es,
		Rules: []holidays.Rule{
			since(1980, named(holidays.Translations{"es": "Día de Andalucía", "en": "Day of Andalucía"},
				official("andalusiaDay", holidays.On(time.February, 28)))),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/D%C3%ADa_de_Andaluc%C3%ADa"},
	}
}
