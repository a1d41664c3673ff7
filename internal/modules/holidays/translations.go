package holidays

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/translations.yaml
var builtinTranslationsYAML []byte

// DefaultLocale is the locale names fall back to when nothing more specific exists.
const DefaultLocale = "en"

type translationCatalog struct {
	DefaultLocale string                  `yaml:"default_locale"`
	Locales       []string                `yaml:"locales"`
	Holidays      map[string]Translations `yaml:"holidays"`
}

// builtinTranslations parses the embedded table once; it is read-only afterwards.
var builtinTranslations = sync.OnceValue(func() *translationCatalog {
	catalog, err := parseTranslationCatalog(builtinTranslationsYAML)
	if err != nil {
		panic(fmt.Sprintf("holidays: embedded translations: %v", err))
	}
	return catalog
})

func parseTranslationCatalog(data []byte) (*translationCatalog, error) {
	var catalog translationCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse translation catalog: %w", err)
	}
	if catalog.DefaultLocale == "" {
		catalog.DefaultLocale = DefaultLocale
	}
	for i, locale := range catalog.Locales {
		normalized, err := formatLocale(locale)
		if err != nil {
			return nil, err
		}
		catalog.Locales[i] = normalized
	}
	slices.Sort(catalog.Locales)
	return &catalog, nil
}

// Locales returns the recognized locale codes.
func Locales() []string {
	return slices.Clone(builtinTranslations().Locales)
}

// NormalizeLocale canonicalizes a locale code ("de-ch" -> "de_CH") and
// checks that it is recognized.
func NormalizeLocale(locale string) (string, error) {
	normalized, err := formatLocale(locale)
	if err != nil {
		return "", err
	}
	if _, ok := slices.BinarySearch(builtinTranslations().Locales, normalized); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return normalized, nil
}

// formatLocale validates a BCP 47 style code and renders it with underscores,
// lower case language, title case script and upper case region.
func formatLocale(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", fmt.Errorf("%w: empty locale", ErrUnknownLocale)
	}
	if _, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownLocale, locale, err)
	}

	parts := strings.FieldsFunc(locale, func(r rune) bool { return r == '_' || r == '-' })
	for i, part := range parts {
		switch {
		case i == 0:
			parts[i] = strings.ToLower(part)
		case len(part) == 4:
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		default:
			parts[i] = strings.ToUpper(part)
		}
	}
	return strings.Join(parts, "_"), nil
}

// localeCandidates lists the locale itself followed by its language-only form.
func localeCandidates(locale string) []string {
	candidates := []string{locale}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return candidates
	}
	base, _ := tag.Base()
	if lang := base.String(); lang != locale && lang != "und" {
		candidates = append(candidates, lang)
	}
	if i := strings.IndexByte(locale, '_'); i > 0 && !slices.Contains(candidates, locale[:i]) {
		candidates = append(candidates, locale[:i])
	}
	return candidates
}

// TranslationResolver resolves holiday names against the holiday's own names,
// the jurisdiction tables (most specific first) and the built-in table.
type TranslationResolver struct {
	tables []map[string]Translations
}

// NewTranslationResolver creates a resolver over jurisdiction tables ordered
// from most to least specific.
func NewTranslationResolver(tables ...map[string]Translations) *TranslationResolver {
	return &TranslationResolver{tables: tables}
}

// Name resolves the display name of h in locale. Resolution tries the exact
// locale, then its language, then the default locale; each step consults the
// holiday's own names before the jurisdiction and built-in tables.
func (r *TranslationResolver) Name(h Holiday, locale string) (string, error) {
	normalized, err := NormalizeLocale(locale)
	if err != nil {
		return "", err
	}

	candidates := localeCandidates(normalized)
	defaultLocale := builtinTranslations().DefaultLocale
	if !slices.Contains(candidates, defaultLocale) {
		candidates = append(candidates, defaultLocale)
	}

	key := h.BaseKey()
	for _, candidate := range candidates {
		if name, ok := r.lookup(h, key, candidate); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrMissingTranslation, h.Key, normalized)
}

func (r *TranslationResolver) lookup(h Holiday, key, locale string) (string, bool) {
	if name, ok := h.Translations[locale]; ok && name != "" {
		return name, true
	}
	if r != nil {
		for _, table := range r.tables {
			if name, ok := table[key][locale]; ok && name != "" {
				return name, true
			}
		}
	}
	if name, ok := builtinTranslations().Holidays[key][locale]; ok && name != "" {
		return name, true
	}
	return "", false
}
