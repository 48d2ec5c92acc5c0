package service

import (
	"sort"
	"time"

	"github.com/hellman53/book-my-doctor-sub000/common"
	"github.com/hellman53/book-my-doctor-sub000/data"
)

type scheduleService struct {
	settings settingsStore
}

// ScheduleSettings is the doctor-facing shape of the weekly schedule, saved
// wholesale from the dashboard.
type ScheduleSettings struct {
	Virtual  ModalityConfig `json:"virtual"`
	InPerson ModalityConfig `json:"inPerson"`
}

type ModalityConfig struct {
	Enabled      bool     `json:"enabled"`
	SlotDuration int      `json:"slotDuration"`
	Buffer       int      `json:"buffer"`
	Availability []Window `json:"availability"`
}

type Window struct {
	Day       string      `json:"day"`
	StartTime common.HHMM `json:"startTime"`
	EndTime   common.HHMM `json:"endTime"`
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func (s *scheduleService) Get(doctorID int) (ScheduleSettings, error) {
	stored, err := s.settings.GetForDoctor(doctorID)
	if err != nil {
		return ScheduleSettings{}, err
	}

	out := ScheduleSettings{
		Virtual:  ModalityConfig{Availability: []Window{}},
		InPerson: ModalityConfig{Availability: []Window{}},
	}
	for _, m := range stored {
		switch m.Modality {
		case data.ModalityVirtual:
			out.Virtual = toConfig(m)
		case data.ModalityInPerson:
			out.InPerson = toConfig(m)
		}
	}

	return out, nil
}

func (s *scheduleService) Save(doctorID int, settings ScheduleSettings) error {
	if err := validateModality("virtual", settings.Virtual); err != nil {
		return err
	}
	if err := validateModality("inPerson", settings.InPerson); err != nil {
		return err
	}

	return s.settings.Replace(doctorID, []data.ModalitySettings{
		toModel(data.ModalityVirtual, settings.Virtual),
		toModel(data.ModalityInPerson, settings.InPerson),
	})
}

const dayEnd = 24 * 60

func validateModality(name string, cfg ModalityConfig) error {
	if cfg.SlotDuration <= 0 {
		return validationErrorf("%s: slot duration must be positive", name)
	}
	if cfg.Buffer < 0 {
		return validationErrorf("%s: buffer cannot be negative", name)
	}

	perDay := make(map[string][]Window)
	for _, w := range cfg.Availability {
		if _, ok := weekdayNames[w.Day]; !ok {
			return validationErrorf("%s: unknown weekday %q", name, w.Day)
		}
		if w.StartTime.Get() < 0 || w.EndTime.Get() > dayEnd {
			return validationErrorf("%s: %s window outside 00:00-24:00", name, w.Day)
		}
		if w.EndTime <= w.StartTime {
			return validationErrorf("%s: %s window must end after it starts; overnight windows are not supported", name, w.Day)
		}

		perDay[w.Day] = append(perDay[w.Day], w)
	}

	for day, windows := range perDay {
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].StartTime < windows[j].StartTime
		})
		for i := 1; i < len(windows); i++ {
			if windows[i].StartTime < windows[i-1].EndTime {
				return validationErrorf("%s: overlapping windows on %s", name, day)
			}
		}
	}

	return nil
}

func toConfig(m data.ModalitySettings) ModalityConfig {
	// Windows keep their saved order so a save/read round trip returns the
	// exact structure the doctor submitted.
	windows := make([]Window, len(m.Windows))
	for i, w := range m.Windows {
		windows[i] = Window{
			Day:       time.Weekday(w.Day).String(),
			StartTime: common.HHMM(w.From),
			EndTime:   common.HHMM(w.To),
		}
	}

	return ModalityConfig{
		Enabled:      m.Enabled,
		SlotDuration: m.SlotDuration,
		Buffer:       m.Buffer,
		Availability: windows,
	}
}

func toModel(modality data.Modality, cfg ModalityConfig) data.ModalitySettings {
	windows := make([]data.WeeklyWindow, len(cfg.Availability))
	for i, w := range cfg.Availability {
		windows[i] = data.WeeklyWindow{
			Day:  int(weekdayNames[w.Day]),
			From: w.StartTime.Get(),
			To:   w.EndTime.Get(),
		}
	}

	return data.ModalitySettings{
		Modality:     modality,
		Enabled:      cfg.Enabled,
		SlotDuration: cfg.SlotDuration,
		Buffer:       cfg.Buffer,
		Windows:      windows,
	}
}
