package data

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func dataDown(tx *gorm.DB) {
	mustTx(tx.Exec("DELETE FROM doctors").Error)
	mustTx(tx.Exec("DELETE FROM reviews").Error)
	mustTx(tx.Exec("DELETE FROM modality_settings").Error)
	mustTx(tx.Exec("DELETE FROM weekly_windows").Error)
	mustTx(tx.Exec("DELETE FROM appointments").Error)
}

var (
	firstNames = []string{
		"Emma",
		"Olivia",
		"James",
		"Mia",
		"Amelia",
		"Alexander",
		"Harper",
		"William",
		"Abigail",
		"Lily",
	}

	lastNames = []string{
		"Johnson",
		"Smith",
		"Brown",
		"Wilson",
		"Jackson",
		"King",
		"Scott",
		"Green",
		"Adams",
		"Baker",
	}
)

const nameFormat = "%s %s"

func dataUp(tx *gorm.DB) {
	today := DateNow()
	tWeekDay := int(today.Weekday())

	window := func(day time.Weekday, from, to int) WeeklyWindow {
		return WeeklyWindow{Day: int(day), From: from, To: to}
	}

	modality := func(m Modality, duration, buffer int, windows ...WeeklyWindow) ModalitySettings {
		return ModalitySettings{
			Modality:     m,
			Enabled:      true,
			SlotDuration: duration,
			Buffer:       buffer,
			Windows:      windows,
		}
	}

	nextWeekDay := func(day time.Weekday, weeks ...int) int64 {
		var week int
		if len(weeks) > 0 {
			week = weeks[0]
		}

		next := (7 + int(day) - tWeekDay) % 7
		return today.AddDate(0, 0, next+7*week).UnixMilli()
	}

	newAppointment := func(doctorID int, m Modality, date int64, timeMin, fee int) Appointment {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]

		return Appointment{
			ID:          uuid.NewString(),
			DoctorID:    doctorID,
			PatientID:   uuid.NewString(),
			PatientName: fmt.Sprintf(nameFormat, first, last),
			Date:        date,
			TimeMin:     timeMin,
			Type:        m,
			Status:      StatusConfirmed,
			Fee:         fee,
		}
	}

	doctors := []Doctor{
		{
			Name:      "Dr. Conrad Hubbard",
			Category:  "Psychiatrist",
			Specialty: "2 years of experience",
			Details:   "Blackburn Clinic (Agnes Road 141, Little Rock, United States)",
			Fee:       150,
			ImageURL:  "https://snippet.dhtmlx.com/codebase/data/booking/01/img/04.jpg",
			Review:    Review{Count: 1245, Stars: 4},
			ModalitySettings: []ModalitySettings{
				modality(ModalityVirtual, 30, 0,
					window(time.Monday, 9*60, 17*60),
					window(time.Tuesday, 9*60, 17*60),
					window(time.Wednesday, 9*60, 17*60),
					window(time.Thursday, 9*60, 17*60),
					window(time.Friday, 9*60, 17*60),
				),
				modality(ModalityInPerson, 45, 15,
					window(time.Tuesday, 10*60, 14*60),
					window(time.Thursday, 10*60, 14*60),
				),
			},
		},
		{
			Name:      "Dr. Debra Weeks",
			Category:  "Allergist",
			Specialty: "7 years of experience",
			Details:   "Silverstone Medical Center (Vanderbilt Avenue 13, Chestnut, New Zealand)",
			Fee:       120,
			ImageURL:  "https://snippet.dhtmlx.com/codebase/data/booking/01/img/03.jpg",
			Review:    Review{Count: 6545, Stars: 4},
			ModalitySettings: []ModalitySettings{
				modality(ModalityVirtual, 45, 5,
					window(time.Monday, 7*60, 15*60),
					window(time.Wednesday, 7*60, 15*60),
				),
				modality(ModalityInPerson, 45, 5,
					window(time.Tuesday, 12*60, 20*60),
					window(time.Thursday, 12*60, 20*60),
				),
			},
		},
		{
			Name:      "Dr. Barnett Mueller",
			Category:  "Ophthalmologist",
			Specialty: "6 years of experience",
			Details:   "Navy Street 1, Kiskimere, United States",
			Fee:       35,
			ImageURL:  "https://snippet.dhtmlx.com/codebase/data/booking/01/img/02.jpg",
			Review:    Review{Count: 184, Stars: 3},
			ModalitySettings: []ModalitySettings{
				modality(ModalityInPerson, 25, 0,
					window(time.Monday, 9*60, 17*60),
					window(time.Wednesday, 9*60, 17*60),
					window(time.Friday, 9*60, 17*60),
					window(time.Saturday, 15*60, 19*60),
					window(time.Sunday, 15*60, 19*60),
				),
				{Modality: ModalityVirtual, Enabled: false, SlotDuration: 25},
			},
		},
		{
			Name:      "Dr. Myrtle Wise",
			Category:  "Ophthalmologist",
			Specialty: "4 years of experience",
			Details:   "Prescott Place 5, Freeburn, Bulgaria",
			Fee:       40,
			ImageURL:  "https://snippet.dhtmlx.com/codebase/data/booking/01/img/01.jpg",
			Review:    Review{Count: 829, Stars: 5},
			ModalitySettings: []ModalitySettings{
				modality(ModalityVirtual, 25, 5,
					window(time.Tuesday, 7*60, 15*60),
					window(time.Thursday, 7*60, 15*60),
				),
				modality(ModalityInPerson, 25, 5,
					window(time.Saturday, 11*60, 15*60),
					window(time.Sunday, 11*60, 15*60),
				),
			},
		},
		{
			Name:      "Dr. Browning Peck",
			Category:  "Dentist",
			Specialty: "11 years of experience",
			Details:   "Seacoast Terrace 174, Belvoir, Mauritania",
			Fee:       175,
			ImageURL:  "https://snippet.dhtmlx.com/codebase/data/booking/01/img/12.jpg",
			Review:    Review{Count: 391, Stars: 5},
			ModalitySettings: []ModalitySettings{
				modality(ModalityInPerson, 60, 10,
					window(time.Thursday, 9*60, 17*60),
					window(time.Friday, 9*60, 17*60),
					window(time.Saturday, 9*60, 17*60),
					window(time.Sunday, 9*60, 17*60),
				),
				{Modality: ModalityVirtual, Enabled: false, SlotDuration: 60},
			},
		},
	}

	for i := range doctors {
		mustTx(tx.Create(&doctors[i]).Error)
	}

	appointments := []Appointment{
		newAppointment(doctors[0].ID, ModalityVirtual, nextWeekDay(time.Monday), 9*60+30, 150),
		newAppointment(doctors[0].ID, ModalityVirtual, nextWeekDay(time.Tuesday), 11*60, 150),
		newAppointment(doctors[0].ID, ModalityInPerson, nextWeekDay(time.Thursday), 11*60, 150),
		newAppointment(doctors[1].ID, ModalityVirtual, nextWeekDay(time.Monday), 7*60+50, 120),
		newAppointment(doctors[1].ID, ModalityInPerson, nextWeekDay(time.Tuesday), 13*60+40, 120),
		newAppointment(doctors[2].ID, ModalityInPerson, nextWeekDay(time.Monday), 13*60+10, 35),
		newAppointment(doctors[2].ID, ModalityInPerson, nextWeekDay(time.Wednesday), 9*60+25, 35),
		newAppointment(doctors[3].ID, ModalityVirtual, nextWeekDay(time.Tuesday), 7*60, 40),
		newAppointment(doctors[3].ID, ModalityInPerson, nextWeekDay(time.Saturday), 11*60+30, 40),
		newAppointment(doctors[4].ID, ModalityInPerson, nextWeekDay(time.Thursday), 11*60+20, 175),
		newAppointment(doctors[4].ID, ModalityInPerson, nextWeekDay(time.Friday), 14*60+50, 175),
	}

	for i := range appointments {
		mustTx(tx.Create(&appointments[i]).Error)
	}
}

func mustTx(err error) {
	if err != nil {
		panic(strings.Join([]string{"demo data load failed:", err.Error()}, " "))
	}
}
