package data

import (
	"gorm.io/gorm"
)

// activeStatuses are the statuses that occupy a slot.
var activeStatuses = []Status{StatusPending, StatusConfirmed}

type appointmentsDAO struct {
	db *gorm.DB
}

func newAppointmentsDAO(db *gorm.DB) *appointmentsDAO {
	return &appointmentsDAO{db}
}

func (d *appointmentsDAO) GetOne(id string) (Appointment, error) {
	appt := Appointment{}
	err := d.db.Find(&appt, "id = ?", id).Error
	if err != nil {
		return appt, err
	}
	if appt.ID == "" {
		return appt, ErrNotFound
	}

	return appt, nil
}

type AppointmentFilter struct {
	DoctorID  int
	PatientID string
	Date      int64
	Status    Status
}

func (d *appointmentsDAO) List(f AppointmentFilter) ([]Appointment, error) {
	appts := make([]Appointment, 0)

	tx := d.db.Order("date, time_min")
	if f.DoctorID != 0 {
		tx = tx.Where("doctor_id = ?", f.DoctorID)
	}
	if f.PatientID != "" {
		tx = tx.Where("patient_id = ?", f.PatientID)
	}
	if f.Date != 0 {
		tx = tx.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}

	err := tx.Find(&appts).Error
	return appts, err
}

// BookedTimes returns the start times (minutes from midnight) occupied by
// non-cancelled appointments for the doctor on the given date.
func (d *appointmentsDAO) BookedTimes(doctorID int, date int64) ([]int, error) {
	times := make([]int, 0)
	err := d.db.Model(&Appointment{}).
		Where("doctor_id = ? AND date = ? AND status IN ?", doctorID, date, activeStatuses).
		Order("time_min").
		Pluck("time_min", &times).Error

	return times, err
}

// IsBooked reports whether a non-cancelled appointment exists for the exact
// (doctor, date, time) tuple. Errors propagate: a failed check never reads
// as "available".
func (d *appointmentsDAO) IsBooked(doctorID int, date int64, timeMin int) (bool, error) {
	var count int64
	err := d.db.Model(&Appointment{}).
		Where("doctor_id = ? AND date = ? AND time_min = ? AND status IN ?",
			doctorID, date, timeMin, activeStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Book inserts the appointment iff no conflicting non-cancelled appointment
// exists for the same doctor/date/time. The conflict check and the insert
// run in one transaction so two concurrent bookings cannot both pass.
func (d *appointmentsDAO) Book(appt *Appointment) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Appointment{}).
			Where("doctor_id = ? AND date = ? AND time_min = ? AND status IN ?",
				appt.DoctorID, appt.Date, appt.TimeMin, activeStatuses).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}

		return tx.Create(appt).Error
	})
}

// Cancel marks the appointment cancelled and records the refund. The update
// is guarded on an active status, so a repeated cancel matches no rows and
// the first cancellation's stamps survive.
func (d *appointmentsDAO) Cancel(id string, refundAmount int) (Appointment, error) {
	res := d.db.Model(&Appointment{}).
		Where("id = ? AND status IN ?", id, activeStatuses).
		Updates(map[string]any{
			"status":        StatusCancelled,
			"cancelled_at":  Now(),
			"refund_amount": refundAmount,
		})
	if res.Error != nil {
		return Appointment{}, res.Error
	}

	return d.GetOne(id)
}

// ListActive returns the doctor's pending and confirmed appointments on the
// given date.
func (d *appointmentsDAO) ListActive(doctorID int, date int64) ([]Appointment, error) {
	appts := make([]Appointment, 0)
	err := d.db.
		Where("doctor_id = ? AND date = ? AND status IN ?", doctorID, date, activeStatuses).
		Order("time_min").
		Find(&appts).Error

	return appts, err
}

// CancelBatch cancels all given appointments in one transaction; either all
// of them are cancelled or none.
func (d *appointmentsDAO) CancelBatch(ids []string, refundAmount int) error {
	if len(ids) == 0 {
		return nil
	}

	return d.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Appointment{}).
			Where("id IN ? AND status IN ?", ids, activeStatuses).
			Updates(map[string]any{
				"status":        StatusCancelled,
				"cancelled_at":  Now(),
				"refund_amount": refundAmount,
			}).Error
	})
}

// CompletePast marks the doctor's confirmed appointments whose start time is
// before the cutoff as completed and returns how many were updated.
func (d *appointmentsDAO) CompletePast(doctorID int, cutoffMilli int64) (int64, error) {
	res := d.db.Model(&Appointment{}).
		Where("doctor_id = ? AND status = ? AND date + time_min * 60000 < ?",
			doctorID, StatusConfirmed, cutoffMilli).
		Update("status", StatusCompleted)

	return res.RowsAffected, res.Error
}
