package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hellman53/book-my-doctor-sub000/service"
)

type favoritesResponse struct {
	Doctors []int `json:"doctors"`
}

func (a *API) getFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := a.service.Prefs.Favorites(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, favoritesResponse{Doctors: ids})
}

func (a *API) putFavorite(w http.ResponseWriter, r *http.Request) {
	doctorID, err := queryID(chi.URLParam(r, "doctorId"))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := a.service.Prefs.AddFavorite(r.Context(), chi.URLParam(r, "id"), doctorID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	doctorID, err := queryID(chi.URLParam(r, "doctorId"))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := a.service.Prefs.RemoveFavorite(r.Context(), chi.URLParam(r, "id"), doctorID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type recentSearchesResponse struct {
	Searches []string `json:"searches"`
}

type addSearchRequest struct {
	Query string `json:"query"`
}

func (a *API) getRecentSearches(w http.ResponseWriter, r *http.Request) {
	searches, err := a.service.Prefs.RecentSearches(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, recentSearchesResponse{Searches: searches})
}

func (a *API) postRecentSearch(w http.ResponseWriter, r *http.Request) {
	var req addSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, service.ValidationError("invalid search payload"))
		return
	}

	if err := a.service.Prefs.AddSearch(r.Context(), chi.URLParam(r, "id"), req.Query); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
