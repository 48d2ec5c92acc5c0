package service

import (
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/video"
)

type doctorsStore interface {
	GetOne(id int) (data.Doctor, error)
	GetAll() ([]data.Doctor, error)
	Search(query, category string) ([]data.Doctor, error)
}

type settingsStore interface {
	GetForDoctor(doctorID int) ([]data.ModalitySettings, error)
	GetModality(doctorID int, modality data.Modality) (data.ModalitySettings, error)
	Replace(doctorID int, settings []data.ModalitySettings) error
}

type appointmentsStore interface {
	GetOne(id string) (data.Appointment, error)
	List(f data.AppointmentFilter) ([]data.Appointment, error)
	BookedTimes(doctorID int, date int64) ([]int, error)
	IsBooked(doctorID int, date int64, timeMin int) (bool, error)
	Book(appt *data.Appointment) error
	Cancel(id string, refundAmount int) (data.Appointment, error)
	ListActive(doctorID int, date int64) ([]data.Appointment, error)
	CancelBatch(ids []string, refundAmount int) error
	CompletePast(doctorID int, cutoffMilli int64) (int64, error)
}

type Service struct {
	Doctors      *doctorsService
	Schedule     *scheduleService
	Slots        *slotsService
	Appointments *appointmentsService
	Prefs        *prefsService
}

func NewService(dao *data.DAO, prefs *data.PrefsStore, rooms video.Provider) *Service {
	slots := &slotsService{
		settings: dao.Settings,
		appts:    dao.Appointments,
	}

	return &Service{
		Doctors:  &doctorsService{dao: dao.Doctors},
		Schedule: &scheduleService{settings: dao.Settings},
		Slots:    slots,
		Appointments: &appointmentsService{
			appts:   dao.Appointments,
			doctors: dao.Doctors,
			slots:   slots,
			rooms:   rooms,
		},
		Prefs: &prefsService{store: prefs},
	}
}
