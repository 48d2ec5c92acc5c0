package data

import (
	"gorm.io/gorm"
)

type scheduleSettingsDAO struct {
	db *gorm.DB
}

func newScheduleSettingsDAO(db *gorm.DB) *scheduleSettingsDAO {
	return &scheduleSettingsDAO{db}
}

func (d *scheduleSettingsDAO) GetForDoctor(doctorID int) ([]ModalitySettings, error) {
	settings := make([]ModalitySettings, 0, 2)
	err := d.db.
		Preload("Windows").
		Find(&settings, "doctor_id = ?", doctorID).Error

	return settings, err
}

func (d *scheduleSettingsDAO) GetModality(doctorID int, modality Modality) (ModalitySettings, error) {
	settings := ModalitySettings{}
	err := d.db.
		Preload("Windows").
		Find(&settings, "doctor_id = ? AND modality = ?", doctorID, modality).Error

	return settings, err
}

// Replace swaps the doctor's settings wholesale. The dashboard saves the
// whole settings document on every edit, so old windows are deleted and the
// new set recreated in one transaction (last writer wins).
func (d *scheduleSettingsDAO) Replace(doctorID int, settings []ModalitySettings) (err error) {
	tx := d.db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	ids := []int{}
	err = tx.Model(&ModalitySettings{}).Where("doctor_id = ?", doctorID).Pluck("id", &ids).Error
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		err = tx.Delete(&WeeklyWindow{}, "settings_id IN ?", ids).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&ModalitySettings{}, "doctor_id = ?", doctorID).Error
		if err != nil {
			return err
		}
	}

	for i := range settings {
		settings[i].ID = 0
		settings[i].DoctorID = doctorID
		for j := range settings[i].Windows {
			settings[i].Windows[j].ID = 0
			settings[i].Windows[j].SettingsID = 0
		}

		err = tx.Create(&settings[i]).Error
		if err != nil {
			return err
		}
	}

	return nil
}
