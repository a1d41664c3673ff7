package catalog

import (
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func official(key string, date holidays.DateSpec) holidays.Rule {
	return holidays.Rule{Key: key, Date: date, Type: holidays.TypeOfficial}
}

func observance(key string, date holidays.DateSpec) holidays.Rule {
	return holidays.Rule{Key: key, Date: date, Type: holidays.TypeObservance}
}

func other(key string, date holidays.DateSpec) holidays.Rule {
	return holidays.Rule{Key: key, Date: date, Type: holidays.TypeOther}
}

// since sets the establishment year of r.
func since(year int, r holidays.Rule) holidays.Rule {
	r.Since = year
	return r
}

// named sets the rule's own translations.
func named(translations holidays.Translations, r holidays.Rule) holidays.Rule {
	r.Translations = translations
	return r
}

// substituted enables substitution of r under policy.
func substituted(policy *holidays.SubstitutionPolicy, r holidays.Rule) holidays.Rule {
	r.Substitute = policy
	return r
}

// typed overrides the type of r.
func typed(t holidays.HolidayType, r holidays.Rule) holidays.Rule {
	r.Type = t
	return r
}

// Common holidays

func newYearsDay() holidays.Rule { return official("newYearsDay", holidays.On(time.January, 1)) }

func internationalWorkersDay() holidays.Rule {
	return official("internationalWorkersDay", holidays.On(time.May, 1))
}

func internationalWomensDay() holidays.Rule {
	return official("internationalWomensDay", holidays.On(time.March, 8))
}

// Christian holidays

func epiphany() holidays.Rule { return official("epiphany", holidays.On(time.January, 6)) }

func maundyThursday() holidays.Rule { return official("maundyThursday", holidays.Easter(-3)) }

func goodFriday() holidays.Rule { return official("goodFriday", holidays.Easter(-2)) }

func easter() holidays.Rule { return official("easter", holidays.Easter(0)) }

func easterMonday() holidays.Rule { return official("easterMonday", holidays.Easter(1)) }

func ascensionDay() holidays.Rule { return official("ascensionDay", holidays.Easter(39)) }

func pentecost() holidays.Rule { return official("pentecost", holidays.Easter(49)) }

func pentecostMonday() holidays.Rule { return official("pentecostMonday", holidays.Easter(50)) }

func corpusChristi() holidays.Rule { return official("corpusChristi", holidays.Easter(60)) }

func assumptionOfMary() holidays.Rule { return official("assumptionOfMary", holidays.On(time.August, 15)) }

func reformationDay() holidays.Rule { return official("reformationDay", holidays.On(time.October, 31)) }

func allSaintsDay() holidays.Rule { return official("allSaintsDay", holidays.On(time.November, 1)) }

func immaculateConception() holidays.Rule {
	return official("immaculateConception", holidays.On(time.December, 8))
}

func christmasEve() holidays.Rule { return observance("christmasEve", holidays.On(time.December, 24)) }

func christmasDay() holidays.Rule { return official("christmasDay", holidays.On(time.December, 25)) }

func secondChristmasDay() holidays.Rule {
	return official("secondChristmasDay", holidays.On(time.December, 26))
}

func stStephensDay() holidays.Rule { return official("stStephensDay", holidays.On(time.December, 26)) }

// Orthodox holidays

func orthodoxGoodFriday() holidays.Rule { return official("goodFriday", holidays.OrthodoxEaster(-2)) }

func orthodoxEaster() holidays.Rule { return official("easter", holidays.OrthodoxEaster(0)) }

func orthodoxEasterMonday() holidays.Rule { return official("easterMonday", holidays.OrthodoxEaster(1)) }

func orthodoxPentecost() holidays.Rule { return official("pentecost", holidays.OrthodoxEaster(49)) }

func orthodoxPentecostMonday() holidays.Rule {
	return official("pentecostMonday", holidays.OrthodoxEaster(50))
}
