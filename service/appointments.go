package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hellman53/book-my-doctor-sub000/common"
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/video"
)

type appointmentsService struct {
	appts   appointmentsStore
	doctors doctorsStore
	slots   *slotsService
	rooms   video.Provider
}

type BookingRequest struct {
	DoctorID    int           `json:"doctor_id"`
	PatientID   string        `json:"patient_id"`
	PatientName string        `json:"patient_name"`
	Date        common.Date   `json:"date"`
	Time        common.HHMM   `json:"time"`
	Modality    data.Modality `json:"modality"`
	Notes       string        `json:"notes"`
}

func (r BookingRequest) validate() error {
	if r.DoctorID == 0 {
		return validationErrorf("doctor is required")
	}
	if r.PatientID == "" || r.PatientName == "" {
		return validationErrorf("patient id and name are required")
	}
	if r.Date.IsZero() {
		return validationErrorf("date is required")
	}
	switch r.Modality {
	case data.ModalityVirtual, data.ModalityInPerson, data.ModalityGeneral:
	default:
		return validationErrorf("unknown modality %q", r.Modality)
	}
	if r.Date.At(r.Time).Before(data.Now()) {
		return validationErrorf("cannot book a time in the past")
	}

	return nil
}

// Book creates the appointment. The requested time is re-validated against
// the doctor's current template at write time, and the conflict check runs
// inside the insert transaction, so a stale slot list cannot double-book.
func (s *appointmentsService) Book(ctx context.Context, req BookingRequest) (data.Appointment, error) {
	if err := req.validate(); err != nil {
		return data.Appointment{}, err
	}

	doctor, err := s.doctors.GetOne(req.DoctorID)
	if err != nil {
		return data.Appointment{}, err
	}
	if doctor.ID == 0 {
		return data.Appointment{}, data.ErrNotFound
	}

	// General appointments are created manually by the doctor and are not
	// bound to the weekly template; patient bookings must land on a
	// generated candidate slot.
	if req.Modality != data.ModalityGeneral {
		if err := s.checkCandidate(req); err != nil {
			return data.Appointment{}, err
		}
	}

	appt := data.Appointment{
		ID:          uuid.NewString(),
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date.UnixMilli(),
		TimeMin:     req.Time.Get(),
		Type:        req.Modality,
		Status:      data.StatusConfirmed,
		Fee:         doctor.Fee,
		Notes:       req.Notes,
	}

	if req.Modality == data.ModalityVirtual {
		room, err := s.rooms.CreateRoom(ctx, appt.ID)
		if err != nil {
			return data.Appointment{}, fmt.Errorf("provision video room: %w", err)
		}

		appt.RoomID = room.RoomID
		appt.VideoAppID = room.AppID
		appt.VideoServerSecret = room.ServerSecret
	}

	if err := s.appts.Book(&appt); err != nil {
		return data.Appointment{}, err
	}

	log.Info().
		Str("appointment", appt.ID).
		Int("doctor", appt.DoctorID).
		Str("date", req.Date.String()).
		Str("time", req.Time.String()).
		Msg("appointment booked")

	return appt, nil
}

func (s *appointmentsService) checkCandidate(req BookingRequest) error {
	settings, err := s.slots.settings.GetModality(req.DoctorID, req.Modality)
	if err != nil {
		return err
	}
	if !settings.Enabled {
		return validationErrorf("%s appointments are not available for this doctor", req.Modality)
	}

	for _, t := range generate(settings, req.Date) {
		if t == req.Time.Get() {
			return nil
		}
	}

	return validationErrorf("%s is not an available slot on %s", req.Time, req.Date)
}

func (s *appointmentsService) GetOne(id string) (data.Appointment, error) {
	return s.appts.GetOne(id)
}

func (s *appointmentsService) List(f data.AppointmentFilter) ([]data.Appointment, error) {
	return s.appts.List(f)
}

// Cancel marks a single appointment cancelled, recording the refund.
// Cancelling an already-cancelled appointment is a no-op that keeps the
// first cancellation's timestamp and refund amount.
func (s *appointmentsService) Cancel(id string, refundAmount int) (data.Appointment, error) {
	if refundAmount < 0 {
		return data.Appointment{}, validationErrorf("refund amount cannot be negative")
	}

	appt, err := s.appts.GetOne(id)
	if err != nil {
		return data.Appointment{}, err
	}

	switch appt.Status {
	case data.StatusCancelled:
		return appt, nil
	case data.StatusCompleted:
		return data.Appointment{}, data.ErrNotCancellable
	}

	return s.appts.Cancel(id, refundAmount)
}

// CancelRange cancels the doctor's non-cancelled appointments on the date
// whose start time falls within [from, to], both ends inclusive. All matched
// appointments are cancelled in one batch or none are.
func (s *appointmentsService) CancelRange(doctorID int, date common.Date, from, to common.HHMM, refundAmount int) (int, error) {
	if to < from {
		return 0, validationErrorf("range end must not precede range start")
	}
	if refundAmount < 0 {
		return 0, validationErrorf("refund amount cannot be negative")
	}

	active, err := s.appts.ListActive(doctorID, date.UnixMilli())
	if err != nil {
		return 0, err
	}

	matched := appointmentsInRange(active, from.Get(), to.Get())
	ids := make([]string, len(matched))
	for i, appt := range matched {
		ids[i] = appt.ID
	}

	if err := s.appts.CancelBatch(ids, refundAmount); err != nil {
		return 0, err
	}

	log.Info().
		Int("doctor", doctorID).
		Str("date", date.String()).
		Int("cancelled", len(ids)).
		Msg("bulk cancellation applied")

	return len(ids), nil
}

// appointmentsInRange filters to start times within [from, to] inclusive.
func appointmentsInRange(appts []data.Appointment, from, to int) []data.Appointment {
	matched := make([]data.Appointment, 0, len(appts))
	for _, appt := range appts {
		if from <= appt.TimeMin && appt.TimeMin <= to {
			matched = append(matched, appt)
		}
	}

	return matched
}

// CompletePast marks the doctor's confirmed appointments that have already
// started as completed. Nothing transitions to completed implicitly; this
// is the explicit hook for it.
func (s *appointmentsService) CompletePast(doctorID int) (int64, error) {
	return s.appts.CompletePast(doctorID, data.Now().UnixMilli())
}
