package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all holiday routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jurisdictions", func(r chi.Router) {
		r.Get("/", h.HandleListJurisdictions)
		r.Get("/{jurisdiction}", h.HandleGetJurisdiction)
	})

	r.Route("/holidays", func(r chi.Router) {
		r.Get("/on", h.HandleOnDate)
		r.Get("/{jurisdiction}/check", h.HandleCheck)
		r.Get("/{jurisdiction}/{year}", h.HandleGetHolidays)
		r.Get("/{jurisdiction}/{year}/between", h.HandleGetBetween)
	})
}
