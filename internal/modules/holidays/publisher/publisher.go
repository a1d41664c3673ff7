package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/holidays/internal/modules/holidays"
)

const contentTypeJSON = "application/json"

// Uploader stores a rendered document under an object key.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// Result describes one uploaded document.
type Result struct {
	Key  string
	Size int
}

// Publisher renders and uploads holiday documents.
type Publisher struct {
	service  *holidays.HolidayService
	uploader Uploader
	prefix   string
	log      zerolog.Logger
}

// New creates a publisher writing below prefix.
func New(service *holidays.HolidayService, uploader Uploader, prefix string, log zerolog.Logger) *Publisher {
	return &Publisher{
		service:  service,
		uploader: uploader,
		prefix:   prefix,
		log:      log.With().Str("component", "publisher").Logger(),
	}
}

// Publish uploads the document of one jurisdiction, year and locale.
func (p *Publisher) Publish(ctx context.Context, jurisdiction string, year int, locale string) (Result, error) {
	provider, err := p.service.Registry().Lookup(jurisdiction)
	if err != nil {
		return Result{}, err
	}
	col, err := p.service.ComputeHolidays(provider.Code, year, locale)
	if err != nil {
		return Result{}, err
	}

	body, err := Render(provider, col).Marshal()
	if err != nil {
		return Result{}, err
	}

	key := ObjectKey(p.prefix, col.Jurisdiction(), col.Year(), col.Locale())
	if err := p.uploader.Upload(ctx, key, body, contentTypeJSON); err != nil {
		return Result{}, err
	}

	p.log.Debug().Str("key", key).Int("bytes", len(body)).Msg("Published holidays")
	return Result{Key: key, Size: len(body)}, nil
}

// PublishAll uploads every registered jurisdiction for the given years and
// locales. It keeps going after a failed document and reports all failures.
func (p *Publisher) PublishAll(ctx context.Context, years []int, locales []string) ([]Result, error) {
	if len(locales) == 0 {
		locales = []string{p.service.DefaultLocale()}
	}

	var results []Result
	var errs []error
	for _, provider := range p.service.Jurisdictions() {
		for _, year := range years {
			for _, locale := range locales {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				result, err := p.Publish(ctx, provider.Code, year, locale)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s/%d/%s: %w", provider.Code, year, locale, err))
					continue
				}
				results = append(results, result)
			}
		}
	}

	p.log.Info().
		Int("published", len(results)).
		Int("failed", len(errs)).
		Msg("Publish run finished")

	return results, errors.Join(errs...)
}
