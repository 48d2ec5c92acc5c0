package service

import (
	"github.com/hellman53/book-my-doctor-sub000/data"
)

// In-memory stores mirroring the DAO contracts, with optional error
// injection to exercise the fail-closed paths.

type fakeSettingsStore struct {
	byDoctor map[int][]data.ModalitySettings
	err      error
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{byDoctor: make(map[int][]data.ModalitySettings)}
}

func (f *fakeSettingsStore) GetForDoctor(doctorID int) ([]data.ModalitySettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDoctor[doctorID], nil
}

func (f *fakeSettingsStore) GetModality(doctorID int, modality data.Modality) (data.ModalitySettings, error) {
	if f.err != nil {
		return data.ModalitySettings{}, f.err
	}
	for _, m := range f.byDoctor[doctorID] {
		if m.Modality == modality {
			return m, nil
		}
	}
	return data.ModalitySettings{}, nil
}

func (f *fakeSettingsStore) Replace(doctorID int, settings []data.ModalitySettings) error {
	if f.err != nil {
		return f.err
	}
	for i := range settings {
		settings[i].DoctorID = doctorID
	}
	f.byDoctor[doctorID] = settings
	return nil
}

type fakeDoctorsStore struct {
	doctors map[int]data.Doctor
}

func newFakeDoctorsStore(doctors ...data.Doctor) *fakeDoctorsStore {
	f := &fakeDoctorsStore{doctors: make(map[int]data.Doctor)}
	for _, d := range doctors {
		f.doctors[d.ID] = d
	}
	return f
}

func (f *fakeDoctorsStore) GetOne(id int) (data.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorsStore) GetAll() ([]data.Doctor, error) {
	out := make([]data.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctorsStore) Search(query, category string) ([]data.Doctor, error) {
	return f.GetAll()
}

type fakeAppointmentsStore struct {
	appts map[string]*data.Appointment
	err   error
}

func newFakeAppointmentsStore() *fakeAppointmentsStore {
	return &fakeAppointmentsStore{appts: make(map[string]*data.Appointment)}
}

func (f *fakeAppointmentsStore) isActive(a *data.Appointment) bool {
	return a.Status == data.StatusPending || a.Status == data.StatusConfirmed
}

func (f *fakeAppointmentsStore) GetOne(id string) (data.Appointment, error) {
	if f.err != nil {
		return data.Appointment{}, f.err
	}
	if a, ok := f.appts[id]; ok {
		return *a, nil
	}
	return data.Appointment{}, data.ErrNotFound
}

func (f *fakeAppointmentsStore) List(filter data.AppointmentFilter) ([]data.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]data.Appointment, 0)
	for _, a := range f.appts {
		if filter.DoctorID != 0 && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		if filter.Date != 0 && a.Date != filter.Date {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentsStore) BookedTimes(doctorID int, date int64) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	times := make([]int, 0)
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && f.isActive(a) {
			times = append(times, a.TimeMin)
		}
	}
	return times, nil
}

func (f *fakeAppointmentsStore) IsBooked(doctorID int, date int64, timeMin int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && a.TimeMin == timeMin && f.isActive(a) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentsStore) Book(appt *data.Appointment) error {
	if f.err != nil {
		return f.err
	}
	booked, _ := f.IsBooked(appt.DoctorID, appt.Date, appt.TimeMin)
	if booked {
		return data.ErrSlotTaken
	}
	stored := *appt
	f.appts[appt.ID] = &stored
	return nil
}

func (f *fakeAppointmentsStore) Cancel(id string, refundAmount int) (data.Appointment, error) {
	if f.err != nil {
		return data.Appointment{}, f.err
	}
	a, ok := f.appts[id]
	if !ok {
		return data.Appointment{}, data.ErrNotFound
	}
	if f.isActive(a) {
		now := data.Now()
		a.Status = data.StatusCancelled
		a.CancelledAt = &now
		a.RefundAmount = refundAmount
	}
	return *a, nil
}

func (f *fakeAppointmentsStore) ListActive(doctorID int, date int64) ([]data.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]data.Appointment, 0)
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && f.isActive(a) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentsStore) CancelBatch(ids []string, refundAmount int) error {
	if f.err != nil {
		return f.err
	}
	for _, id := range ids {
		if a, ok := f.appts[id]; ok && f.isActive(a) {
			now := data.Now()
			a.Status = data.StatusCancelled
			a.CancelledAt = &now
			a.RefundAmount = refundAmount
		}
	}
	return nil
}

func (f *fakeAppointmentsStore) CompletePast(doctorID int, cutoffMilli int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, a := range f.appts {
		start := a.Date + int64(a.TimeMin)*60_000
		if a.DoctorID == doctorID && a.Status == data.StatusConfirmed && start < cutoffMilli {
			a.Status = data.StatusCompleted
			count++
		}
	}
	return count, nil
}
