// Package catalog holds the holiday rules of the supported jurisdictions.
// It contains data only; evaluation lives in package holidays.
package catalog

import (
	"github.com/aristath/holidays/internal/modules/holidays"
)

// Version identifies the rule set. Persisted snapshots are keyed by it, so it
// must change whenever a rule does.
const Version = "2024.3"

// Providers returns fresh providers for every jurisdiction, parents before
// their subdivisions.
func Providers() []*holidays.Provider {
	ch := switzerland()
	de := germany()
	ca := canada()
	es := spain()
	fr := france()

	return []*holidays.Provider{
		ch, glarus(ch), stGallen(ch), vaud(ch),
		de, thuringia(de), saarland(de), mecklenburgWesternPomerania(de), rhinelandPalatinate(de),
		japan(),
		ireland(),
		lithuania(),
		norway(),
		bosnia(),
		ca, ontario(ca), quebec(ca),
		ukraine(),
		es, andalusia(es),
		fr, hautRhin(fr),
		romania(),
	}
}

// NewRegistry registers every jurisdiction of the catalog.
func NewRegistry() (*holidays.Registry, error) {
	r := holidays.NewRegistry()
	for _, p := range Providers() {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry() *holidays.Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}
