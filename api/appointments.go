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

// appointmentView adds the string date/time representation to the stored
// record.
type appointmentView struct {
	data.Appointment
	Date common.Date `json:"date"`
	Time common.HHMM `json:"time"`
}

func newAppointmentView(appt data.Appointment) appointmentView {
	return appointmentView{
		Appointment: appt,
		Date:        common.DateFromMilli(appt.Date),
		Time:        common.HHMM(appt.TimeMin),
	}
}

func (a *API) listAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := data.AppointmentFilter{
		PatientID: q.Get("patient"),
		Status:    data.Status(q.Get("status")),
	}
	if q.Get("doctor") != "" {
		id, err := queryID(q.Get("doctor"))
		if err != nil {
			respondError(w, err)
			return
		}
		filter.DoctorID = id
	}
	if q.Get("date") != "" {
		date, err := common.ParseDate(q.Get("date"))
		if err != nil {
			respondError(w, service.ValidationError(err.Error()))
			return
		}
		filter.Date = date.UnixMilli()
	}

	appts, err := a.service.Appointments.List(filter)
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]appointmentView, len(appts))
	for i, appt := range appts {
		views[i] = newAppointmentView(appt)
	}

	respond(w, http.StatusOK, views)
}

func queryID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, service.ValidationError("invalid id")
	}

	return id, nil
}

func (a *API) getAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := a.service.Appointments.GetOne(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, newAppointmentView(appt))
}

func (a *API) bookAppointment(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, service.ValidationError("invalid booking payload"))
		return
	}

	appt, err := a.service.Appointments.Book(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusCreated, newAppointmentView(appt))
}

type cancelRequest struct {
	RefundAmount int `json:"refundAmount"`
}

func (a *API) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, service.ValidationError("invalid cancel payload"))
		return
	}

	appt, err := a.service.Appointments.Cancel(chi.URLParam(r, "id"), req.RefundAmount)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, newAppointmentView(appt))
}

type bulkCancelRequest struct {
	Date         common.Date `json:"date"`
	StartTime    common.HHMM `json:"startTime"`
	EndTime      common.HHMM `json:"endTime"`
	RefundAmount int         `json:"refundAmount"`
}

type bulkCancelResponse struct {
	Cancelled int `json:"cancelled"`
}

func (a *API) bulkCancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req bulkCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, service.ValidationError("invalid bulk-cancel payload"))
		return
	}
	if req.Date.IsZero() {
		respondError(w, service.ValidationError("date is required"))
		return
	}

	count, err := a.service.Appointments.CancelRange(id, req.Date, req.StartTime, req.EndTime, req.RefundAmount)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, bulkCancelResponse{Cancelled: count})
}

type completePastResponse struct {
	Completed int64 `json:"completed"`
}

func (a *API) completePast(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	count, err := a.service.Appointments.CompletePast(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, completePastResponse{Completed: count})
}
