package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hellman53/book-my-doctor-sub000/common"
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/service"
)

func (a *API) searchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var (
		doctors []service.DoctorCard
		err     error
	)
	if query == "" && category == "" {
		doctors, err = a.service.Doctors.GetAll()
	} else {
		doctors, err = a.service.Doctors.Search(query, category)
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, doctors)
}

func (a *API) getDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	doctor, err := a.service.Doctors.GetOne(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, doctor)
}

func (a *API) getSlots(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	date, err := common.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, service.ValidationError(err.Error()))
		return
	}

	modality, err := parseModality(r.URL.Query().Get("modality"))
	if err != nil {
		respondError(w, err)
		return
	}

	slots, err := a.service.Slots.ForDate(id, date, modality)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, slots)
}

type checkSlotResponse struct {
	Booked bool `json:"booked"`
}

// checkSlot answers the occupancy question for a single candidate slot.
func (a *API) checkSlot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	date, err := common.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, service.ValidationError(err.Error()))
		return
	}

	t, err := common.ParseHHMM(r.URL.Query().Get("time"))
	if err != nil {
		respondError(w, service.ValidationError(err.Error()))
		return
	}

	booked, err := a.service.Slots.IsBooked(id, date, t)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, checkSlotResponse{Booked: booked})
}

func (a *API) getSettings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	settings, err := a.service.Schedule.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, settings)
}

func (a *API) putSettings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var settings service.ScheduleSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, service.ValidationError("invalid settings payload"))
		return
	}

	if err := a.service.Schedule.Save(id, settings); err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, settings)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, service.ValidationError("invalid id")
	}

	return id, nil
}

func parseModality(s string) (data.Modality, error) {
	switch s {
	case "virtual":
		return data.ModalityVirtual, nil
	case "in_person", "in-person", "personal":
		return data.ModalityInPerson, nil
	case "general":
		return data.ModalityGeneral, nil
	}

	return "", service.ValidationError("modality must be virtual or in_person")
}
