package service

import (
	"sort"

	"github.com/hellman53/book-my-doctor-sub000/common"
	"github.com/hellman53/book-my-doctor-sub000/data"
)

type slotsService struct {
	settings settingsStore
	appts    appointmentsStore
}

// Slot is one concrete bookable time on a specific date.
type Slot struct {
	Time      common.HHMM `json:"time"`
	Available bool        `json:"available"`
}

// slotTimes slices one availability window into candidate start times.
// A slot starts every duration+buffer minutes; a trailing increment shorter
// than the slot duration is dropped.
func slotTimes(from, to, duration, buffer int) []int {
	times := make([]int, 0)
	if duration <= 0 {
		return times
	}

	step := duration + buffer
	for t := from; t+duration <= to; t += step {
		times = append(times, t)
	}

	return times
}

// generate resolves the weekly template against a calendar date and returns
// the ordered candidate start times in minutes from midnight. A disabled
// modality or a weekday without windows yields an empty sequence; neither is
// an error, the doctor simply does not take that kind of appointment then.
func generate(settings data.ModalitySettings, date common.Date) []int {
	times := make([]int, 0)
	if !settings.Enabled {
		return times
	}

	weekday := int(date.Weekday())
	for _, w := range settings.Windows {
		if w.Day != weekday {
			continue
		}
		times = append(times, slotTimes(w.From, w.To, settings.SlotDuration, settings.Buffer)...)
	}

	sort.Ints(times)
	return times
}

// ForDate returns the candidate slots for the doctor on a date, each marked
// unavailable if a non-cancelled appointment already holds it. Storage
// errors propagate; a failed occupancy lookup never reports slots as free.
func (s *slotsService) ForDate(doctorID int, date common.Date, modality data.Modality) ([]Slot, error) {
	settings, err := s.settings.GetModality(doctorID, modality)
	if err != nil {
		return nil, err
	}

	times := generate(settings, date)
	if len(times) == 0 {
		return []Slot{}, nil
	}

	bookedTimes, err := s.appts.BookedTimes(doctorID, date.UnixMilli())
	if err != nil {
		return nil, err
	}

	booked := make(map[int]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]Slot, len(times))
	for i, t := range times {
		_, taken := booked[t]
		slots[i] = Slot{Time: common.HHMM(t), Available: !taken}
	}

	return slots, nil
}

// IsBooked checks occupancy of a single candidate slot.
func (s *slotsService) IsBooked(doctorID int, date common.Date, t common.HHMM) (bool, error) {
	return s.appts.IsBooked(doctorID, date.UnixMilli(), t.Get())
}
