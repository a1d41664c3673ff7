package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/holidays/internal/modules/holidays"
)

func compute(t *testing.T, jurisdiction string, year int, locale string) *holidays.Collection {
	t.Helper()
	p, err := MustRegistry().Lookup(jurisdiction)
	require.NoError(t, err)
	col, err := holidays.ComputeHolidays(p, year, locale)
	require.NoError(t, err)
	return col
}

func assertHoliday(t *testing.T, col *holidays.Collection, key string, year int, month time.Month, day int) holidays.Holiday {
	t.Helper()
	h, ok := col.Get(key)
	require.True(t, ok, "%s missing in %s %d", key, col.Jurisdiction(), col.Year())
	expected := time.Date(year, month, day, 0, 0, 0, 0, col.Location())
	assert.True(t, h.Date.Equal(expected), "%s: got %s, want %s", key, h.Date.Format(time.DateOnly), expected.Format(time.DateOnly))
	return h
}

func assertName(t *testing.T, col *holidays.Collection, key, locale, expected string) {
	t.Helper()
	name, err := col.Name(key, locale)
	require.NoError(t, err)
	assert.Equal(t, expected, name)
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	assert.Len(t, r.List(), len(Providers()))

	tests := []struct {
		id   string
		code string
	}{
		{"Germany/Thuringia", "DE-TH"},
		{"Switzerland/StGallen", "CH-SG"},
		{"switzerland/glarus", "CH-GL"},
		{"France/HautRhin", "FR-68"},
		{"Spain/Andalusia", "ES-AN"},
		{"ie", "IE"},
		{"Japan", "JP"},
	}

	for _, tt := range tests {
		p, err := r.Lookup(tt.id)
		require.NoError(t, err, tt.id)
		assert.Equal(t, tt.code, p.Code)
	}
}

func TestTimezones(t *testing.T) {
	r := MustRegistry()

	tests := map[string]string{
		"Switzerland/Glarus":          "Europe/Zurich",
		"Spain":                       "Europe/Madrid",
		"Spain/Andalusia":             "Europe/Madrid",
		"Romania":                     "Europe/Bucharest",
		"France/HautRhin":             "Europe/Paris",
		"Germany/RhinelandPalatinate": "Europe/Berlin",
		"Japan":                       "Asia/Tokyo",
	}

	for id, tz := range tests {
		p, err := r.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, tz, p.TimezoneName(), id)
	}
}

func TestSwissNationalDay(t *testing.T) {
	col := compute(t, "CH", 1993, "de_CH")
	h := assertHoliday(t, col, "swissNationalDay", 1993, time.August, 1)
	assert.Equal(t, holidays.TypeObservance, h.Type)

	col = compute(t, "CH", 1994, "de_CH")
	h = assertHoliday(t, col, "swissNationalDay", 1994, time.August, 1)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "swissNationalDay", "de_CH", "Bundesfeiertag")
	assertName(t, col, "swissNationalDay", "rm_CH", "Fiasta naziunala")

	h = assertHoliday(t, compute(t, "CH", 1891, "en"), "swissNationalDay", 1891, time.August, 1)
	assert.Equal(t, holidays.TypeObservance, h.Type)

	assert.False(t, compute(t, "CH", 1890, "en").Has("swissNationalDay"))
	assert.False(t, compute(t, "CH", 1895, "en").Has("swissNationalDay"))
}

func TestThuringia(t *testing.T) {
	assert.False(t, compute(t, "DE-TH", 1516, "de_DE").Has("reformationDay"))

	col := compute(t, "DE-TH", 1517, "de_DE")
	assertHoliday(t, col, "reformationDay", 1517, time.October, 31)
	assertName(t, col, "reformationDay", "", "Reformationstag")

	assert.False(t, compute(t, "DE-TH", 2018, "de_DE").Has("worldChildrensDay"))

	col = compute(t, "DE-TH", 2019, "de_DE")
	h := assertHoliday(t, col, "worldChildrensDay", 2019, time.September, 20)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "worldChildrensDay", "de_DE", "Weltkindertag")
	// only a German name on the holiday itself, the rest falls back to English
	assertName(t, col, "worldChildrensDay", "fr_FR", "World Children’s Day")
}

func TestGermany_ReformationDay500(t *testing.T) {
	assert.False(t, compute(t, "DE", 2016, "de_DE").Has("reformationDay"))
	assertHoliday(t, compute(t, "DE", 2017, "de_DE"), "reformationDay", 2017, time.October, 31)
	assert.False(t, compute(t, "DE", 2018, "de_DE").Has("reformationDay"))

	assertHoliday(t, compute(t, "DE-MV", 2018, "de_DE"), "reformationDay", 2018, time.October, 31)
	assertHoliday(t, compute(t, "DE-MV", 2024, "de_DE"), "internationalWomensDay", 2024, time.March, 8)
	assertHoliday(t, compute(t, "DE-MV", 2024, "de_DE"), "germanUnityDay", 2024, time.October, 3)
}

func TestSaarland(t *testing.T) {
	col := compute(t, "DE-SL", 2021, "de_DE")

	official := keys(col.ByType(holidays.TypeOfficial))
	assert.ElementsMatch(t, []string{
		"newYearsDay", "goodFriday", "easterMonday", "internationalWorkersDay", "ascensionDay",
		"corpusChristi", "pentecostMonday", "germanUnityDay", "christmasDay", "secondChristmasDay",
		"allSaintsDay",
	}, official)
	assert.Equal(t, []string{"assumptionOfMary"}, keys(col.ByType(holidays.TypeOther)))
}

func TestJapan_SportsDay(t *testing.T) {
	assert.False(t, compute(t, "JP", 1995, "ja_JP").Has("sportsDay"))

	assertHoliday(t, compute(t, "JP", 1997, "ja_JP"), "sportsDay", 1997, time.October, 10)

	col := compute(t, "JP", 1999, "ja_JP")
	assertHoliday(t, col, "sportsDay", 1999, time.October, 10)
	assertHoliday(t, col, "substitute:sportsDay", 1999, time.October, 11)

	col = compute(t, "JP", 2019, "ja_JP")
	assertHoliday(t, col, "sportsDay", 2019, time.October, 14)
	assertName(t, col, "sportsDay", "ja_JP", "体育の日")

	col = compute(t, "JP", 2020, "ja_JP")
	assertHoliday(t, col, "sportsDay", 2020, time.July, 24)
	assertHoliday(t, col, "marineDay", 2020, time.July, 23)
	assertHoliday(t, col, "mountainDay", 2020, time.August, 10)
	assertName(t, col, "sportsDay", "ja_JP", "スポーツの日")

	col = compute(t, "JP", 2021, "ja_JP")
	assertHoliday(t, col, "sportsDay", 2021, time.July, 23)
	assertHoliday(t, col, "marineDay", 2021, time.July, 22)
	assertHoliday(t, col, "mountainDay", 2021, time.August, 8)
	assertHoliday(t, col, "substitute:mountainDay", 2021, time.August, 9)

	assertHoliday(t, compute(t, "JP", 2022, "ja_JP"), "sportsDay", 2022, time.October, 10)
}

func TestJapan_History(t *testing.T) {
	col := compute(t, "JP", 1988, "ja_JP")
	assertHoliday(t, col, "emperorsBirthday", 1988, time.April, 29)
	assert.False(t, col.Has("greeneryDay"))

	col = compute(t, "JP", 2019, "ja_JP")
	assert.False(t, col.Has("emperorsBirthday"))

	col = compute(t, "JP", 2024, "ja_JP")
	assertHoliday(t, col, "emperorsBirthday", 2024, time.February, 23)
	assertHoliday(t, col, "showaDay", 2024, time.April, 29)
	assertHoliday(t, col, "greeneryDay", 2024, time.May, 4)
	assertHoliday(t, col, "vernalEquinoxDay", 2024, time.March, 20)
	assertHoliday(t, col, "autumnalEquinoxDay", 2024, time.September, 22)
	assertHoliday(t, col, "comingOfAgeDay", 2024, time.January, 8)

	// 2008-05-04 is a Sunday; May 5 is Children's Day, so the substitute is May 6
	col = compute(t, "JP", 2008, "ja_JP")
	assertHoliday(t, col, "substitute:greeneryDay", 2008, time.May, 6)

	// substitute holidays started on 1973-04-12
	col = compute(t, "JP", 1973, "ja_JP")
	assertHoliday(t, col, "substitute:emperorsBirthday", 1973, time.April, 30)
	assert.False(t, col.Has("substitute:newYearsDay"))
}

func TestIreland_StPatricksDay(t *testing.T) {
	assert.False(t, compute(t, "IE", 1902, "en_IE").Has("stPatricksDay"))

	col := compute(t, "IE", 2023, "en_IE")
	h := assertHoliday(t, col, "stPatricksDay", 2023, time.March, 17)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assert.False(t, col.Has("substitute:stPatricksDay"))
	assertName(t, col, "stPatricksDay", "en_IE", "St. Patrick’s Day")
	assertName(t, col, "stPatricksDay", "ga_IE", "Lá Fhéile Pádraig")

	col = compute(t, "IE", 2019, "en_IE")
	assertHoliday(t, col, "substitute:stPatricksDay", 2019, time.March, 18)

	col = compute(t, "IE", 2018, "en_IE")
	assertHoliday(t, col, "substitute:stPatricksDay", 2018, time.March, 19)
}

func TestIreland_ChristmasSubstitutes(t *testing.T) {
	col := compute(t, "IE", 2021, "en_IE")
	assertHoliday(t, col, "substitute:christmasDay", 2021, time.December, 27)
	assertHoliday(t, col, "substitute:stStephensDay", 2021, time.December, 28)

	col = compute(t, "IE", 2022, "en_IE")
	assertHoliday(t, col, "substitute:christmasDay", 2022, time.December, 27)
	assert.False(t, col.Has("substitute:stStephensDay"))
}

func TestLithuania(t *testing.T) {
	col := compute(t, "LT", 2024, "lt_LT")

	official := keys(col.ByType(holidays.TypeOfficial))
	for _, key := range []string{
		"newYearsDay", "restorationOfTheStateOfLithuaniaDay", "restorationOfIndependenceOfLithuaniaDay",
		"easter", "easterMonday", "internationalWorkersDay", "stJohnsDay", "statehoodDay",
		"assumptionOfMary", "allSaintsDay", "christmasEve", "christmasDay", "secondChristmasDay",
	} {
		assert.Contains(t, official, key)
	}

	col = compute(t, "LT", 1917, "lt_LT")
	assert.False(t, col.Has("restorationOfTheStateOfLithuaniaDay"))
	assert.False(t, col.Has("restorationOfIndependenceOfLithuaniaDay"))
	assert.True(t, col.Has("statehoodDay"))
}

func TestNorway_MaundyThursday(t *testing.T) {
	col := compute(t, "NO", 2024, "nb_NO")
	h := assertHoliday(t, col, "maundyThursday", 2024, time.March, 28)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "maundyThursday", "nb_NO", "skjærtorsdag")
}

func TestBosnia_StatehoodDay(t *testing.T) {
	assert.False(t, compute(t, "BA", 1942, "bs_BA").Has("statehoodDay"))

	col := compute(t, "BA", 1943, "bs_BA")
	h := assertHoliday(t, col, "statehoodDay", 1943, time.November, 25)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "statehoodDay", "", "Dan državnosti")

	col = compute(t, "BA", 2024, "bs_BA")
	assertHoliday(t, col, "easter", 2024, time.March, 31)
	assertHoliday(t, col, "orthodoxEaster", 2024, time.May, 5)
}

func TestCanada(t *testing.T) {
	col := compute(t, "CA", 1997, "en_CA")
	h := assertHoliday(t, col, "newYearsDay", 1997, time.January, 1)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "newYearsDay", "en_CA", "New Year’s Day")
	assertName(t, col, "newYearsDay", "fr_CA", "Jour de l’An")
	assertName(t, col, "canadaDay", "en_CA", "Canada Day")
	assertName(t, compute(t, "CA", 1980, "en_CA"), "canadaDay", "", "Dominion Day")

	// 2018-07-01 is a Sunday
	assertHoliday(t, compute(t, "CA", 2018, "en_CA"), "substitute:canadaDay", 2018, time.July, 2)
}

func TestQuebec(t *testing.T) {
	col := compute(t, "CA-QC", 2024, "fr_CA")

	assert.False(t, col.Has("victoriaDay"))
	assert.False(t, col.Has("secondChristmasDay"))
	assertHoliday(t, col, "nationalPatriotsDay", 2024, time.May, 20)
	assertName(t, col, "saintJeanBaptisteDay", "", "Fête nationale du Québec")

	col = compute(t, "CA", 2024, "en_CA")
	assertHoliday(t, col, "victoriaDay", 2024, time.May, 20)
}

func TestUkraine_ChristmasDay(t *testing.T) {
	col := compute(t, "UA", 2020, "uk_UA")
	h := assertHoliday(t, col, "christmasDay", 2020, time.January, 7)
	assert.Equal(t, holidays.TypeOfficial, h.Type)
	assertName(t, col, "christmasDay", "uk_UA", "Різдво")

	assertHoliday(t, compute(t, "UA", 2024, "uk_UA"), "christmasDay", 2024, time.December, 25)
	assertHoliday(t, compute(t, "UA", 2024, "uk_UA"), "easter", 2024, time.May, 5)
}

func TestStGallen_PentecostMonday(t *testing.T) {
	col := compute(t, "Switzerland/StGallen", 1977, "de_CH")
	h := assertHoliday(t, col, "pentecostMonday", 1977, time.May, 30)
	assert.Equal(t, holidays.TypeOther, h.Type)
	assertName(t, col, "pentecostMonday", "de_CH", "Pfingstmontag")
}

func TestVaud_BettagsMontag(t *testing.T) {
	col := compute(t, "CH-VD", 2023, "fr_CH")
	assertHoliday(t, col, "bettagsMontag", 2023, time.September, 18)
	assertName(t, col, "bettagsMontag", "", "Jeûne fédéral")

	assert.False(t, compute(t, "CH-VD", 1831, "fr_CH").Has("bettagsMontag"))
}

func TestGlarus_NaefelserFahrt(t *testing.T) {
	// 2024-04-04 is the first Thursday of April
	assertHoliday(t, compute(t, "CH-GL", 2024, "de_CH"), "naefelserFahrt", 2024, time.April, 4)
	// 2015-04-02 is Maundy Thursday, so the ride moves a week later
	assertHoliday(t, compute(t, "CH-GL", 2015, "de_CH"), "naefelserFahrt", 2015, time.April, 9)
	assertHoliday(t, compute(t, "CH-GL", 2024, "de_CH"), "berchtoldsTag", 2024, time.January, 2)
}

func TestRomania_OrthodoxEaster(t *testing.T) {
	col := compute(t, "RO", 2024, "ro")
	assertHoliday(t, col, "easter", 2024, time.May, 5)
	assertHoliday(t, col, "easterMonday", 2024, time.May, 6)
	assertHoliday(t, col, "goodFriday", 2024, time.May, 3)
	assertHoliday(t, col, "pentecost", 2024, time.June, 23)
	assertName(t, col, "easter", "", "Paștele")
}

func TestAndalusia(t *testing.T) {
	col := compute(t, "ES-AN", 2024, "es_ES")
	assertHoliday(t, col, "andalusiaDay", 2024, time.February, 28)
	assertHoliday(t, col, "nationalDay", 2024, time.October, 12)
	assertName(t, col, "andalusiaDay", "", "Día de Andalucía")
}

func TestHautRhin(t *testing.T) {
	col := compute(t, "FR-68", 2024, "fr_FR")
	assertHoliday(t, col, "goodFriday", 2024, time.March, 29)
	assertHoliday(t, col, "stStephensDay", 2024, time.December, 26)
	assertName(t, col, "bastilleDay", "", "Fête nationale")
	assert.False(t, compute(t, "FR", 2024, "fr_FR").Has("goodFriday"))
}

// Every jurisdiction computes without error over a long range of years, and
// every holiday has at least an English name.
func TestAllJurisdictions(t *testing.T) {
	r := MustRegistry()
	for _, p := range r.List() {
		for year := 1900; year <= 2100; year++ {
			col, err := holidays.ComputeHolidays(p, year, "en")
			require.NoError(t, err, "%s %d", p.Code, year)
			for _, h := range col.All() {
				assert.Equal(t, year, h.Year())
				_, err := col.NameOf(h, "en")
				assert.NoError(t, err, "%s %d %s", p.Code, year, h.Key)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	first := MustRegistry()
	second := MustRegistry()
	for _, p := range first.List() {
		other, err := second.Lookup(p.Code)
		require.NoError(t, err)
		for year := 1990; year <= 2030; year++ {
			a, err := holidays.ComputeHolidays(p, year, "en")
			require.NoError(t, err)
			b, err := holidays.ComputeHolidays(other, year, "en")
			require.NoError(t, err)
			assert.Equal(t, a.Snapshot(), b.Snapshot(), "%s %d", p.Code, year)
		}
	}
}

// A subdivision keeps every holiday of its parent except those it replaces or
// removes.
func TestCompositionMonotonicity(t *testing.T) {
	r := MustRegistry()
	for _, p := range r.List() {
		if p.Parent == nil {
			continue
		}

		excluded := make(map[string]bool)
		for _, key := range p.Removes {
			excluded[key] = true
		}
		for _, rule := range p.Rules {
			if rule.Replaces != "" {
				excluded[rule.Replaces] = true
			}
		}

		for year := 1990; year <= 2030; year++ {
			parent, err := holidays.ComputeHolidays(p.Parent, year, "en")
			require.NoError(t, err)
			child, err := holidays.ComputeHolidays(p, year, "en")
			require.NoError(t, err)

			for _, h := range parent.All() {
				if h.IsSubstitute() || excluded[h.Key] {
					continue
				}
				got, ok := child.Get(h.Key)
				if assert.True(t, ok, "%s %d: %s missing", p.Code, year, h.Key) {
					assert.True(t, got.Date.Equal(h.Date), "%s %d: %s", p.Code, year, h.Key)
				}
			}
		}
	}
}

func keys(hs []holidays.Holiday) []string {
	result := make([]string, len(hs))
	for i, h := range hs {
		result[i] = h.Key
	}
	return result
}
