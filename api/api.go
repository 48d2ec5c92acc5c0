package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/hellman53/book-my-doctor-sub000/assistant"
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/service"
)

type API struct {
	service   *service.Service
	assistant assistant.Client
}

func NewAPI(service *service.Service, assistant assistant.Client) *API {
	return &API{service: service, assistant: assistant}
}

func (a *API) InitRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/doctors", a.searchDoctors)
		r.Get("/doctors/{id}", a.getDoctor)
		r.Get("/doctors/{id}/slots", a.getSlots)
		r.Get("/doctors/{id}/slots/check", a.checkSlot)
		r.Get("/doctors/{id}/settings", a.getSettings)
		r.Put("/doctors/{id}/settings", a.putSettings)
		r.Post("/doctors/{id}/appointments/bulk-cancel", a.bulkCancel)
		r.Post("/doctors/{id}/appointments/complete-past", a.completePast)

		r.Get("/appointments", a.listAppointments)
		r.Get("/appointments/{id}", a.getAppointment)
		r.Post("/appointments", a.bookAppointment)
		r.Post("/appointments/{id}/cancel", a.cancelAppointment)

		r.Get("/patients/{id}/favorites", a.getFavorites)
		r.Put("/patients/{id}/favorites/{doctorId}", a.putFavorite)
		r.Delete("/patients/{id}/favorites/{doctorId}", a.deleteFavorite)
		r.Get("/patients/{id}/recent-searches", a.getRecentSearches)
		r.Post("/patients/{id}/recent-searches", a.postRecentSearch)

		r.Post("/generate", a.generate)
	})
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, err error) {
	var verr service.ValidationError

	switch {
	case errors.As(err, &verr):
		respond(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, data.ErrNotFound):
		respond(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, data.ErrSlotTaken), errors.Is(err, data.ErrNotCancellable):
		respond(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error, try again"})
	}
}
