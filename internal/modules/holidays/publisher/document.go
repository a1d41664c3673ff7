// Package publisher renders computed holiday collections as JSON documents and
// uploads them to S3-compatible object storage.
package publisher

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"github.com/aristath/holidays/internal/modules/holidays"
)

// Document is the published form of one jurisdiction, year and locale.
type Document struct {
	Jurisdiction string  `json:"jurisdiction"`
	Name         string  `json:"name"`
	Year         int     `json:"year"`
	Locale       string  `json:"locale"`
	Timezone     string  `json:"timezone"`
	Holidays     []Entry `json:"holidays"`
}

// Entry is a single published holiday.
type Entry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

// Render builds the document for a computed collection. Holidays without a
// name in the collection's locale are listed under their key.
func Render(p *holidays.Provider, col *holidays.Collection) Document {
	all := col.All()
	doc := Document{
		Jurisdiction: col.Jurisdiction(),
		Name:         p.Path(),
		Year:         col.Year(),
		Locale:       col.Locale(),
		Timezone:     col.Location().String(),
		Holidays:     make([]Entry, len(all)),
	}
	for i, h := range all {
		doc.Holidays[i] = Entry{
			Key:  h.Key,
			Name: col.DisplayName(h, ""),
			Date: h.Date.Format("2006-01-02"),
			Type: h.Type.String(),
		}
	}
	return doc
}

// Marshal encodes the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s/%d/%s: %w", d.Jurisdiction, d.Year, d.Locale, err)
	}
	return data, nil
}

// ObjectKey returns <prefix>/<jurisdiction>/<year>/<locale>.json.
func ObjectKey(prefix, jurisdiction string, year int, locale string) string {
	return path.Join(prefix, jurisdiction, strconv.Itoa(year), locale+".json")
}
