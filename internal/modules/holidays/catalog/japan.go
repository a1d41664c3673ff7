package catalog

import (
	"fmt"
	"time"

	"github.com/aristath/holidays/internal/modules/holidays"
)

// japaneseSubstitution moves a holiday on a Sunday to the next day that is
// not a holiday, as provided by the 1973 amendment of the holiday law.
var japaneseSubstitution = holidays.SubstitutionPolicy{
	NonWorking:    []time.Weekday{time.Sunday},
	EffectiveFrom: time.Date(1973, time.April, 12, 0, 0, 0, 0, time.UTC),
}

func japanese(key string, since int, date holidays.DateSpec, ja, en string) holidays.Rule {
	policy := japaneseSubstitution
	return holidays.Rule{
		Key:          key,
		Date:         date,
		Type:         holidays.TypeOfficial,
		Since:        since,
		Translations: holidays.Translations{"ja": ja, "en": en},
		Substitute:   &policy,
	}
}

func japan() *holidays.Provider {
	return &holidays.Provider{
		Code:     "JP",
		Name:     "Japan",
		Timezone: "Asia/Tokyo",
		Rules: []holidays.Rule{
			japanese("newYearsDay", 1948, holidays.On(time.January, 1), "元日", "New Year’s Day"),
			japanese("comingOfAgeDay", 1948, holidays.ByYear(
				holidays.Before(2000, holidays.On(time.January, 15)),
				holidays.NthWeekdayOf(2, time.Monday, time.January),
			), "成人の日", "Coming of Age Day"),
			japanese("nationalFoundationDay", 1967, holidays.On(time.February, 11), "建国記念の日", "National Foundation Day"),
			emperorsBirthday(),
			withUntil(2151, japanese("vernalEquinoxDay", 1948,
				holidays.Custom("vernal equinox", vernalEquinox), "春分の日", "Vernal Equinox Day")),
			japanese("greeneryDay", 1989, holidays.ByYear(
				holidays.Before(2007, holidays.On(time.April, 29)),
				holidays.On(time.May, 4),
			), "みどりの日", "Greenery Day"),
			japanese("showaDay", 2007, holidays.On(time.April, 29), "昭和の日", "Shōwa Day"),
			japanese("constitutionMemorialDay", 1948, holidays.On(time.May, 3), "憲法記念日", "Constitution Memorial Day"),
			japanese("childrensDay", 1948, holidays.On(time.May, 5), "こどもの日", "Children’s Day"),
			japanese("marineDay", 1996, holidays.ByYear(
				holidays.Before(2003, holidays.On(time.July, 20)),
				holidays.InYear(2020, holidays.On(time.July, 23)),
				holidays.InYear(2021, holidays.On(time.July, 22)),
				holidays.NthWeekdayOf(3, time.Monday, time.July),
			), "海の日", "Marine Day"),
			japanese("mountainDay", 2016, holidays.ByYear(
				holidays.InYear(2020, holidays.On(time.August, 10)),
				holidays.InYear(2021, holidays.On(time.August, 8)),
				holidays.On(time.August, 11),
			), "山の日", "Mountain Day"),
			japanese("respectForTheAgedDay", 1966, holidays.ByYear(
				holidays.Before(2003, holidays.On(time.September, 15)),
				holidays.NthWeekdayOf(3, time.Monday, time.September),
			), "敬老の日", "Respect for the Aged Day"),
			withUntil(2151, japanese("autumnalEquinoxDay", 1948,
				holidays.Custom("autumnal equinox", autumnalEquinox), "秋分の日", "Autumnal Equinox Day")),
			sportsDay(),
			japanese("cultureDay", 1948, holidays.On(time.November, 3), "文化の日", "Culture Day"),
			japanese("laborThanksgivingDay", 1948, holidays.On(time.November, 23), "勤労感謝の日", "Labor Thanksgiving Day"),
		},
		Sources: []string{"https://en.wikipedia.org/wiki/Public_holidays_in_Japan"},
	}
}

// emperorsBirthday follows the reigning emperor. There was none in 2019, the
// year of the abdication.
func emperorsBirthday() holidays.Rule {
	r := japanese("emperorsBirthday", 1949, holidays.ByYear(
		holidays.Before(1989, holidays.On(time.April, 29)),
		holidays.Before(2019, holidays.On(time.December, 23)),
		holidays.On(time.February, 23),
	), "天皇誕生日", "Emperor’s Birthday")
	r.Periods = []holidays.Period{
		{Since: 1949, Until: 2019, Type: holidays.TypeOfficial},
		{Since: 2020, Type: holidays.TypeOfficial},
	}
	return r
}

// sportsDay was held on October 10 until 1999 and moved to the second Monday
// of October; it was renamed in 2020 and moved for the Tokyo Olympics.
func sportsDay() holidays.Rule {
	r := japanese("sportsDay", 1996, holidays.ByYear(
		holidays.Before(2000, holidays.On(time.October, 10)),
		holidays.InYear(2020, holidays.On(time.July, 24)),
		holidays.InYear(2021, holidays.On(time.July, 23)),
		holidays.NthWeekdayOf(2, time.Monday, time.October),
	), "体育の日", "Health And Sports Day")
	r.Periods = []holidays.Period{
		{Since: 1996, Until: 2020, Type: holidays.TypeOfficial},
		{Since: 2020, Type: holidays.TypeOfficial, Translations: holidays.Translations{"ja": "スポーツの日", "en": "Sports Day"}},
	}
	return r
}

func withUntil(year int, r holidays.Rule) holidays.Rule {
	r.Until = year
	return r
}

// Equinox constants for 1900-1979, 1980-2099 and 2100-2150.
var (
	vernalEquinoxConstants   = [3]float64{20.8357, 20.8431, 21.8510}
	autumnalEquinoxConstants = [3]float64{23.2588, 23.2488, 24.2488}
)

func vernalEquinox(year int, loc *time.Location) (time.Time, error) {
	return equinox(year, time.March, vernalEquinoxConstants, loc)
}

func autumnalEquinox(year int, loc *time.Location) (time.Time, error) {
	return equinox(year, time.September, autumnalEquinoxConstants, loc)
}

func equinox(year int, month time.Month, constants [3]float64, loc *time.Location) (time.Time, error) {
	var c float64
	leapBase := 1980
	switch {
	case year < 1900 || year > 2150:
		return time.Time{}, fmt.Errorf("%w: equinox outside 1900-2150 (%d)", holidays.ErrInvalidDate, year)
	case year < 1980:
		c = constants[0]
		leapBase = 1983
	case year < 2100:
		c = constants[1]
	default:
		c = constants[2]
	}
	day := int(c+0.242194*float64(year-1980)) - (year-leapBase)/4
	return holidays.FixedDate(year, month, day, loc)
}
