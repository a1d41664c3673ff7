package holidays

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// nextWorkingDayLimit bounds the search for the next working day.
const nextWorkingDayLimit = 366

// SnapshotStore persists computed collections between restarts.
type SnapshotStore interface {
	GetIfFresh(key string) (*Snapshot, error)
	Put(key string, snapshot Snapshot, ttl time.Duration) error
}

// HolidayService computes holidays for registered jurisdictions and caches
// the results by jurisdiction, year and locale.
type HolidayService struct {
	registry       *Registry
	store          SnapshotStore
	storeTTL       time.Duration
	defaultLocale  string
	catalogVersion string

	cacheMu sync.RWMutex
	cache   map[string]*Collection

	log zerolog.Logger
}

// Option configures a HolidayService.
type Option func(*HolidayService)

// WithStore enables the persistent snapshot cache.
func WithStore(store SnapshotStore, ttl time.Duration) Option {
	return func(s *HolidayService) {
		s.store = store
		s.storeTTL = ttl
	}
}

// WithDefaultLocale sets the locale used when a request names none.
func WithDefaultLocale(locale string) Option {
	return func(s *HolidayService) {
		s.defaultLocale = locale
	}
}

// WithCatalogVersion namespaces persisted snapshots, so a changed catalog
// never serves snapshots computed from older rules.
func WithCatalogVersion(version string) Option {
	return func(s *HolidayService) {
		s.catalogVersion = version
	}
}

// NewHolidayService creates a new holiday service
func NewHolidayService(registry *Registry, log zerolog.Logger, opts ...Option) *HolidayService {
	s := &HolidayService{
		registry:      registry,
		defaultLocale: DefaultLocale,
		cache:         make(map[string]*Collection),
		log:           log.With().Str("service", "holidays").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the jurisdiction registry.
func (s *HolidayService) Registry() *Registry {
	return s.registry
}

// DefaultLocale returns the locale used when a request names none.
func (s *HolidayService) DefaultLocale() string {
	return s.defaultLocale
}

// Jurisdictions lists the registered providers ordered by code.
func (s *HolidayService) Jurisdictions() []*Provider {
	return s.registry.List()
}

// CacheKey identifies a computation in the persistent store.
func (s *HolidayService) CacheKey(code string, year int, locale string) string {
	return fmt.Sprintf("%s|%s|%d|%s", s.catalogVersion, code, year, locale)
}

// ComputeHolidays returns the holidays of jurisdiction for year. An empty
// locale selects the service default.
func (s *HolidayService) ComputeHolidays(jurisdiction string, year int, locale string) (*Collection, error) {
	p, err := s.registry.Lookup(jurisdiction)
	if err != nil {
		return nil, err
	}
	if locale == "" {
		locale = s.defaultLocale
	}
	locale, err = NormalizeLocale(locale)
	if err != nil {
		return nil, err
	}

	key := s.CacheKey(p.Code, year, locale)

	s.cacheMu.RLock()
	col, ok := s.cache[key]
	s.cacheMu.RUnlock()
	if ok {
		return col, nil
	}

	col = s.loadSnapshot(p, key)
	if col == nil {
		col, err = ComputeHolidays(p, year, locale)
		if err != nil {
			return nil, err
		}
		s.saveSnapshot(key, col)
	}

	s.cacheMu.Lock()
	s.cache[key] = col
	s.cacheMu.Unlock()

	return col, nil
}

func (s *HolidayService) loadSnapshot(p *Provider, key string) *Collection {
	if s.store == nil {
		return nil
	}
	snapshot, err := s.store.GetIfFresh(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to read holiday snapshot")
		return nil
	}
	if snapshot == nil {
		return nil
	}
	col, err := Restore(p, *snapshot)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable holiday snapshot")
		return nil
	}
	s.log.Debug().Str("key", key).Msg("Restored holidays from snapshot")
	return col
}

func (s *HolidayService) saveSnapshot(key string, col *Collection) {
	if s.store == nil {
		return
	}
	if err := s.store.Put(key, col.Snapshot(), s.storeTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to persist holiday snapshot")
	}
}

// IsHoliday reports whether t is a holiday of any type in jurisdiction. The
// calendar date of t is read in the jurisdiction's timezone.
func (s *HolidayService) IsHoliday(jurisdiction string, t time.Time) (bool, error) {
	holidays, err := s.HolidaysFor(jurisdiction, t)
	if err != nil {
		return false, err
	}
	return len(holidays) > 0, nil
}

// HolidaysFor returns the holidays of jurisdiction on the calendar date of t.
func (s *HolidayService) HolidaysFor(jurisdiction string, t time.Time) ([]Holiday, error) {
	p, err := s.registry.Lookup(jurisdiction)
	if err != nil {
		return nil, err
	}
	loc, err := p.Location()
	if err != nil {
		return nil, err
	}
	local := t.In(loc)
	col, err := s.ComputeHolidays(p.Code, local.Year(), "")
	if err != nil {
		return nil, err
	}
	return col.On(local), nil
}

// JurisdictionHolidays groups the holidays of one jurisdiction.
type JurisdictionHolidays struct {
	Jurisdiction string
	Holidays     []Holiday
}

// HolidaysOn returns, for every jurisdiction with a holiday on the calendar
// date of t, the holidays falling on it.
func (s *HolidayService) HolidaysOn(t time.Time) ([]JurisdictionHolidays, error) {
	var result []JurisdictionHolidays
	for _, p := range s.registry.List() {
		holidays, err := s.HolidaysFor(p.Code, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Code, err)
		}
		if len(holidays) > 0 {
			result = append(result, JurisdictionHolidays{Jurisdiction: p.Code, Holidays: holidays})
		}
	}
	return result, nil
}

// NextWorkingDay returns the first day after t that is neither a weekend nor
// an official or bank holiday in jurisdiction.
func (s *HolidayService) NextWorkingDay(jurisdiction string, t time.Time) (time.Time, error) {
	p, err := s.registry.Lookup(jurisdiction)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := p.Location()
	if err != nil {
		return time.Time{}, err
	}

	day := startOfDay(t, loc)
	for i := 0; i < nextWorkingDayLimit; i++ {
		day = addDays(day, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		col, err := s.ComputeHolidays(p.Code, day.Year(), "")
		if err != nil {
			return time.Time{}, err
		}
		if !isDayOff(col.On(day)) {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("no working day within %d days of %s", nextWorkingDayLimit, t.Format(time.DateOnly))
}

func isDayOff(holidays []Holiday) bool {
	for _, h := range holidays {
		if h.Type == TypeOfficial || h.Type == TypeBank {
			return true
		}
	}
	return false
}

// Warm computes every registered jurisdiction for the given years in each of
// the locales (the default locale when none are given). It returns the
// number of collections computed and stops at the first context cancellation.
func (s *HolidayService) Warm(ctx context.Context, years []int, locales ...string) (int, error) {
	if len(locales) == 0 {
		locales = []string{s.defaultLocale}
	}

	var errs []error
	count := 0
	for _, p := range s.registry.List() {
		for _, year := range years {
			for _, locale := range locales {
				if err := ctx.Err(); err != nil {
					return count, err
				}
				if _, err := s.ComputeHolidays(p.Code, year, locale); err != nil {
					s.log.Error().Err(err).Str("jurisdiction", p.Code).Int("year", year).Str("locale", locale).Msg("Failed to compute holidays")
					errs = append(errs, err)
					continue
				}
				count++
			}
		}
	}
	return count, errors.Join(errs...)
}

// ClearCache drops every in-memory collection.
func (s *HolidayService) ClearCache() {
	s.cacheMu.Lock()
	s.cache = make(map[string]*Collection)
	s.cacheMu.Unlock()
}
