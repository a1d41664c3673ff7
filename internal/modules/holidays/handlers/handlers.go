// Package handlers provides HTTP handlers for holiday queries.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"

	"github.com/aristath/holidays/internal/modules/holidays"
)

const (
	dateLayout         = "2006-01-02"
	contentTypeMsgpack = "application/msgpack"
	maxYear            = 9999
)

// errBadRequest marks malformed query or path parameters.
var errBadRequest = errors.New("bad request")

// Handler handles holiday HTTP requests
type Handler struct {
	service *holidays.HolidayService
	log     zerolog.Logger
}

// NewHandler creates a new holidays handler
func NewHandler(service *holidays.HolidayService, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "holidays").Logger(),
	}
}

type envelope struct {
	Data     interface{} `json:"data" msgpack:"data"`
	Metadata metadata    `json:"metadata" msgpack:"metadata"`
}

type metadata struct {
	Timestamp string `json:"timestamp" msgpack:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error" msgpack:"error"`
}

// HolidayDTO is a holiday as returned by the API.
type HolidayDTO struct {
	Key        string `json:"key" msgpack:"key"`
	Name       string `json:"name" msgpack:"name"`
	Date       string `json:"date" msgpack:"date"`
	Type       string `json:"type" msgpack:"type"`
	Substitute bool   `json:"substitute" msgpack:"substitute"`
}

// HolidayListDTO is the holidays of one jurisdiction and year.
type HolidayListDTO struct {
	Jurisdiction string       `json:"jurisdiction" msgpack:"jurisdiction"`
	Year         int          `json:"year" msgpack:"year"`
	Locale       string       `json:"locale" msgpack:"locale"`
	Timezone     string       `json:"timezone" msgpack:"timezone"`
	Holidays     []HolidayDTO `json:"holidays" msgpack:"holidays"`
}

// JurisdictionDTO describes a registered jurisdiction.
type JurisdictionDTO struct {
	Code         string   `json:"code" msgpack:"code"`
	Name         string   `json:"name" msgpack:"name"`
	Path         string   `json:"path" msgpack:"path"`
	Timezone     string   `json:"timezone" msgpack:"timezone"`
	Parent       string   `json:"parent,omitempty" msgpack:"parent,omitempty"`
	Subdivisions []string `json:"subdivisions,omitempty" msgpack:"subdivisions,omitempty"`
	Sources      []string `json:"sources,omitempty" msgpack:"sources,omitempty"`
}

// CheckDTO answers whether a date is a holiday.
type CheckDTO struct {
	Jurisdiction   string       `json:"jurisdiction" msgpack:"jurisdiction"`
	Date           string       `json:"date" msgpack:"date"`
	IsHoliday      bool         `json:"is_holiday" msgpack:"is_holiday"`
	IsWorkingDay   bool         `json:"is_working_day" msgpack:"is_working_day"`
	Holidays       []HolidayDTO `json:"holidays" msgpack:"holidays"`
	NextWorkingDay string       `json:"next_working_day" msgpack:"next_working_day"`
}

// OnDateDTO lists the jurisdictions with holidays on a date.
type OnDateDTO struct {
	Jurisdiction string       `json:"jurisdiction" msgpack:"jurisdiction"`
	Holidays     []HolidayDTO `json:"holidays" msgpack:"holidays"`
}

// HandleListJurisdictions handles GET /api/jurisdictions
func (h *Handler) HandleListJurisdictions(w http.ResponseWriter, r *http.Request) {
	providers := h.service.Jurisdictions()
	result := make([]JurisdictionDTO, 0, len(providers))
	for _, p := range providers {
		result = append(result, toJurisdictionDTO(p, nil))
	}
	h.writeResponse(w, r, http.StatusOK, result)
}

// HandleGetJurisdiction handles GET /api/jurisdictions/{jurisdiction}
func (h *Handler) HandleGetJurisdiction(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Registry().Lookup(jurisdictionParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	children, err := h.service.Registry().Subdivisions(p.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResponse(w, r, http.StatusOK, toJurisdictionDTO(p, children))
}

// HandleGetHolidays handles GET /api/holidays/{jurisdiction}/{year}
// Optional query parameters: locale, type (comma separated).
func (h *Handler) HandleGetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	types, err := parseTypes(r.URL.Query().Get("type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	col, err := h.service.ComputeHolidays(jurisdictionParam(r), year, h.requestLocale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	list := col.All()
	if len(types) > 0 {
		list = col.ByType(types...)
	}
	h.writeResponse(w, r, http.StatusOK, toListDTO(col, list))
}

// HandleGetBetween handles GET /api/holidays/{jurisdiction}/{year}/between?start=&end=
// Both bounds are inclusive and default to the first and last day of the year.
func (h *Handler) HandleGetBetween(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	col, err := h.service.ComputeHolidays(jurisdictionParam(r), year, h.requestLocale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc := col.Location()
	start, err := parseDate(r.URL.Query().Get("start"), time.Date(year, time.January, 1, 0, 0, 0, 0, loc), loc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"), time.Date(year, time.December, 31, 0, 0, 0, 0, loc), loc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if start.Year() != year || end.Year() != year {
		h.writeError(w, r, fmt.Errorf("%w: range must lie within %d", holidays.ErrInvalidDateRange, year))
		return
	}

	list, err := col.Between(start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResponse(w, r, http.StatusOK, toListDTO(col, list))
}

// HandleCheck handles GET /api/holidays/{jurisdiction}/check?date=
// The date defaults to today in the jurisdiction's timezone.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Registry().Lookup(jurisdictionParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	loc, err := p.Location()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"), time.Now().In(loc), loc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	col, err := h.service.ComputeHolidays(p.Code, date.Year(), h.requestLocale(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	next, err := h.service.NextWorkingDay(p.Code, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	on := col.On(date)
	h.writeResponse(w, r, http.StatusOK, CheckDTO{
		Jurisdiction:   p.Code,
		Date:           date.Format(dateLayout),
		IsHoliday:      len(on) > 0,
		IsWorkingDay:   isWorkingDay(date, on),
		Holidays:       toHolidayDTOs(col, on),
		NextWorkingDay: next.Format(dateLayout),
	})
}

// HandleOnDate handles GET /api/holidays/on?date=
// Lists every jurisdiction with a holiday on the date.
func (h *Handler) HandleOnDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"), time.Now().UTC(), time.UTC)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	// noon keeps the calendar date in every jurisdiction's timezone
	noon := date.Add(12 * time.Hour)
	locale := h.requestLocale(r)

	groups, err := h.service.HolidaysOn(noon)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result := make([]OnDateDTO, 0, len(groups))
	for _, g := range groups {
		col, err := h.service.ComputeHolidays(g.Jurisdiction, date.Year(), locale)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		result = append(result, OnDateDTO{
			Jurisdiction: g.Jurisdiction,
			Holidays:     toHolidayDTOs(col, g.Holidays),
		})
	}
	h.writeResponse(w, r, http.StatusOK, result)
}

// requestLocale picks the locale query parameter, then the first supported
// Accept-Language entry. Empty means the service default.
func (h *Handler) requestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return ""
	}
	for _, tag := range tags {
		if locale, err := holidays.NormalizeLocale(tag.String()); err == nil {
			return locale
		}
		if base, confidence := tag.Base(); confidence != language.No {
			if locale, err := holidays.NormalizeLocale(base.String()); err == nil {
				return locale
			}
		}
	}
	return ""
}

// writeResponse wraps data in the response envelope, as msgpack when the
// client accepts it and JSON otherwise.
func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	h.write(w, r, status, envelope{
		Data:     data,
		Metadata: metadata{Timestamp: time.Now().Format(time.RFC3339)},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	} else {
		h.log.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("Rejected request")
	}
	h.write(w, r, status, errorResponse{Error: err.Error()})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	if strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack) {
		data, err := msgpack.Marshal(body)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to encode msgpack response")
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeMsgpack)
		w.WriteHeader(status)
		_, _ = w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, holidays.ErrUnknownJurisdiction):
		return http.StatusNotFound
	case errors.Is(err, holidays.ErrUnknownLocale),
		errors.Is(err, holidays.ErrInvalidDateRange),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// jurisdictionParam returns the path parameter, unescaping composite names
// such as Germany%2FThuringia.
func jurisdictionParam(r *http.Request) string {
	raw := chi.URLParam(r, "jurisdiction")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > maxYear {
		return 0, fmt.Errorf("%w: invalid year %q", errBadRequest, s)
	}
	return year, nil
}

func parseDate(s string, fallback time.Time, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", errBadRequest, s)
	}
	return t, nil
}

func parseTypes(s string) ([]holidays.HolidayType, error) {
	if s == "" {
		return nil, nil
	}
	var types []holidays.HolidayType
	for _, part := range strings.Split(s, ",") {
		t, err := holidays.ParseHolidayType(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		types = append(types, t)
	}
	return types, nil
}

func isWorkingDay(date time.Time, on []holidays.Holiday) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return false
	}
	for _, h := range on {
		if h.Type == holidays.TypeOfficial || h.Type == holidays.TypeBank {
			return false
		}
	}
	return true
}

func toHolidayDTOs(col *holidays.Collection, list []holidays.Holiday) []HolidayDTO {
	result := make([]HolidayDTO, len(list))
	for i, h := range list {
		result[i] = HolidayDTO{
			Key:        h.Key,
			Name:       col.DisplayName(h, ""),
			Date:       h.Date.Format(dateLayout),
			Type:       h.Type.String(),
			Substitute: h.IsSubstitute(),
		}
	}
	return result
}

func toListDTO(col *holidays.Collection, list []holidays.Holiday) HolidayListDTO {
	return HolidayListDTO{
		Jurisdiction: col.Jurisdiction(),
		Year:         col.Year(),
		Locale:       col.Locale(),
		Timezone:     col.Location().String(),
		Holidays:     toHolidayDTOs(col, list),
	}
}

func toJurisdictionDTO(p *holidays.Provider, children []*holidays.Provider) JurisdictionDTO {
	dto := JurisdictionDTO{
		Code:     p.Code,
		Name:     p.Name,
		Path:     p.Path(),
		Timezone: p.TimezoneName(),
		Sources:  p.Sources,
	}
	if p.Parent != nil {
		dto.Parent = p.Parent.Code
	}
	for _, c := range children {
		dto.Subdivisions = append(dto.Subdivisions, c.Code)
	}
	return dto
}
