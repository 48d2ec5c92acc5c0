package data

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConfig struct {
	DSN  string `default:"host=localhost user=postgres dbname=booking sslmode=disable"`
	Demo bool   `default:"true"`
}

type DAO struct {
	db *gorm.DB

	Doctors      *doctorsDAO
	Settings     *scheduleSettingsDAO
	Appointments *appointmentsDAO
}

func NewDAO(config DBConfig) *DAO {
	db, err := gorm.Open(postgres.Open(config.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	must(err)

	must(db.AutoMigrate(
		&Doctor{},
		&Review{},
		&ModalitySettings{},
		&WeeklyWindow{},
		&Appointment{},
	))

	dao := &DAO{
		db:           db,
		Doctors:      newDoctorsDAO(db),
		Settings:     newScheduleSettingsDAO(db),
		Appointments: newAppointmentsDAO(db),
	}

	if config.Demo {
		dao.RestartData()
	}

	return dao
}

// RestartData drops all records and reloads the demo dataset.
func (d *DAO) RestartData() {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		dataDown(tx)
		dataUp(tx)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("demo data reset failed")
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
}
