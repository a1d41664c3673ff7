package holidays

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// maxChainDepth bounds parent traversal for providers that were never registered.
const maxChainDepth = 16

// Provider is the holiday rule set of a jurisdiction. A subdivision sets
// Parent and inherits every parent rule; it may add rules, replace inherited
// holidays (Rule.Replaces) or suppress them (Removes).
type Provider struct {
	// Code identifies the jurisdiction, e.g. "DE" or "DE-TH".
	Code string
	// Name is the English name; subdivisions are addressed as "Germany/Thuringia".
	Name string
	// Timezone is an IANA zone name. Subdivisions inherit it when empty.
	Timezone string
	Parent   *Provider

	Rules   []Rule
	Removes []string

	// Translations holds names shared by this jurisdiction's holidays, by key.
	Translations map[string]Translations

	// Sources lists references for the rules (legislation, articles).
	Sources []string
}

// Path returns the composite name, e.g. "Germany/Thuringia".
func (p *Provider) Path() string {
	chain, err := p.chain()
	if err != nil {
		return p.Name
	}
	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = c.Name
	}
	return strings.Join(names, "/")
}

// TimezoneName returns the effective IANA timezone name.
func (p *Provider) TimezoneName() string {
	for c, depth := p, 0; c != nil && depth < maxChainDepth; c, depth = c.Parent, depth+1 {
		if c.Timezone != "" {
			return c.Timezone
		}
	}
	return "UTC"
}

// Location resolves the effective timezone.
func (p *Provider) Location() (*time.Location, error) {
	return ResolveTimezone(p.TimezoneName())
}

// chain lists the providers from the root jurisdiction down to p.
func (p *Provider) chain() ([]*Provider, error) {
	var chain []*Provider
	for c := p; c != nil; c = c.Parent {
		if len(chain) >= maxChainDepth || slices.Contains(chain, c) {
			return nil, fmt.Errorf("%w: %s", ErrCyclicJurisdiction, p.Code)
		}
		chain = append(chain, c)
	}
	slices.Reverse(chain)
	return chain, nil
}

// Validate checks the provider's own rules.
func (p *Provider) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: provider without code", ErrInvalidRule)
	}
	seen := make(map[string]struct{}, len(p.Rules))
	for _, r := range p.Rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.Code, err)
		}
		if _, dup := seen[r.Key]; dup {
			return fmt.Errorf("%s: %w: %s", p.Code, ErrDuplicateHolidayKey, r.Key)
		}
		seen[r.Key] = struct{}{}
	}
	return nil
}

// Resolver returns the translation resolver over this jurisdiction's tables,
// the provider's own table first.
func (p *Provider) Resolver() *TranslationResolver {
	var tables []map[string]Translations
	for c, depth := p, 0; c != nil && depth < maxChainDepth; c, depth = c.Parent, depth+1 {
		if len(c.Translations) > 0 {
			tables = append(tables, c.Translations)
		}
	}
	return NewTranslationResolver(tables...)
}

type pendingSubstitution struct {
	provider string
	key      string
	policy   SubstitutionPolicy
}

// ComputeHolidays evaluates the rules of p and its ancestors for year. Parent
// rules run first; substitutes are derived once every holiday of the year is
// known, in the order their rules were declared.
func ComputeHolidays(p *Provider, year int, locale string) (*Collection, error) {
	if p == nil {
		return nil, ErrUnknownJurisdiction
	}
	normalized, err := NormalizeLocale(locale)
	if err != nil {
		return nil, err
	}
	chain, err := p.chain()
	if err != nil {
		return nil, err
	}
	loc, err := p.Location()
	if err != nil {
		return nil, err
	}

	col := newCollection(p.Code, year, normalized, loc, p.Resolver())
	var pending []pendingSubstitution
	dropPending := func(key string) {
		pending = slices.DeleteFunc(pending, func(s pendingSubstitution) bool {
			return s.key == key
		})
	}

	for _, provider := range chain {
		for _, key := range provider.Removes {
			col.remove(key)
			dropPending(key)
		}

		for _, rule := range provider.Rules {
			h, ok, err := rule.Evaluate(year, loc)
			if err != nil {
				return nil, &RuleError{Jurisdiction: provider.Code, Key: rule.Key, Year: year, Err: err}
			}
			if !ok {
				continue
			}
			if rule.Replaces != "" {
				col.remove(rule.Replaces)
				dropPending(rule.Replaces)
			}
			if err := col.add(h); err != nil {
				return nil, &RuleError{Jurisdiction: provider.Code, Key: rule.Key, Year: year, Err: err}
			}
			if rule.Substitute != nil {
				pending = append(pending, pendingSubstitution{provider: provider.Code, key: rule.Key, policy: *rule.Substitute})
			}
		}
	}

	for _, s := range pending {
		h, ok := col.Get(s.key)
		if !ok {
			continue
		}
		sub, ok, err := Substitute(h, s.policy, col.IsHoliday)
		if err != nil {
			return nil, &RuleError{Jurisdiction: s.provider, Key: s.key, Year: year, Err: err}
		}
		if !ok || sub.Year() != year {
			continue
		}
		if err := col.add(sub); err != nil {
			return nil, &RuleError{Jurisdiction: s.provider, Key: sub.Key, Year: year, Err: err}
		}
	}

	return col, nil
}

// Restore rebuilds a collection computed earlier for p from its snapshot.
func Restore(p *Provider, s Snapshot) (*Collection, error) {
	if p == nil {
		return nil, ErrUnknownJurisdiction
	}
	if s.Jurisdiction != p.Code {
		return nil, fmt.Errorf("snapshot of %s cannot be restored for %s", s.Jurisdiction, p.Code)
	}
	locale, err := NormalizeLocale(s.Locale)
	if err != nil {
		return nil, err
	}
	loc, err := ResolveTimezone(s.Timezone)
	if err != nil {
		return nil, err
	}

	col := newCollection(p.Code, s.Year, locale, loc, p.Resolver())
	for _, r := range s.Holidays {
		date, err := time.ParseInLocation(time.DateOnly, r.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDate, r.Key, err)
		}
		holidayType, err := ParseHolidayType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Key, err)
		}
		if err := col.add(NewHoliday(r.Key, date, holidayType, r.Translations, loc)); err != nil {
			return nil, err
		}
	}
	return col, nil
}
