package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/hellman53/book-my-doctor-sub000/common"
	"github.com/hellman53/book-my-doctor-sub000/data"
)

func Test_slotTimes(t *testing.T) {
	cases := []struct {
		name     string
		from     int
		to       int
		duration int
		buffer   int
		expected []int
	}{
		{
			name:     "exact multiple",
			from:     9 * 60,
			to:       10 * 60,
			duration: 30,
			// 09:00, 09:30 - the slot starting 10:00 would end past the window
			expected: []int{540, 570},
		},
		{
			name:     "partial trailing increment dropped",
			from:     9 * 60,
			to:       10*60 + 15,
			duration: 30,
			// the 15 minutes after 09:30's slot do not fit another slot
			expected: []int{540, 570},
		},
		{
			name:     "window shorter than duration",
			from:     14 * 60,
			to:       14*60 + 20,
			duration: 30,
			expected: []int{},
		},
		{
			name:     "single slot fits exactly",
			from:     14 * 60,
			to:       14*60 + 30,
			duration: 30,
			expected: []int{840},
		},
		{
			name:     "buffer between slots",
			from:     12 * 60,
			to:       17 * 60,
			duration: 20,
			buffer:   20,
			// 12:00, 12:40, 13:20, 14:00, 14:40, 15:20, 16:00, 16:40
			expected: []int{720, 760, 800, 840, 880, 920, 960, 1000},
		},
		{
			name:     "zero duration yields nothing",
			from:     9 * 60,
			to:       17 * 60,
			duration: 0,
			expected: []int{},
		},
		{
			name:     "inverted window yields nothing",
			from:     22 * 60,
			to:       2 * 60,
			duration: 30,
			expected: []int{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			times := slotTimes(c.from, c.to, c.duration, c.buffer)
			if !reflect.DeepEqual(times, c.expected) {
				t.Fatalf("expected %v, got %v", c.expected, times)
			}
		})
	}
}

func Test_generate(t *testing.T) {
	monday := common.NewDate(2024, time.June, 10) // a Monday
	settings := data.ModalitySettings{
		Modality:     data.ModalityVirtual,
		Enabled:      true,
		SlotDuration: 30,
		Windows: []data.WeeklyWindow{
			{Day: int(time.Monday), From: 9 * 60, To: 10 * 60},
			{Day: int(time.Wednesday), From: 14 * 60, To: 16 * 60},
		},
	}

	cases := []struct {
		name     string
		settings data.ModalitySettings
		date     common.Date
		expected []int
	}{
		{
			name:     "matching weekday",
			settings: settings,
			date:     monday,
			expected: []int{540, 570},
		},
		{
			name:     "no window for weekday",
			settings: settings,
			date:     common.NewDate(2024, time.June, 11), // Tuesday
			expected: []int{},
		},
		{
			name: "disabled modality",
			settings: data.ModalitySettings{
				Enabled:      false,
				SlotDuration: 30,
				Windows:      settings.Windows,
			},
			date:     monday,
			expected: []int{},
		},
		{
			name: "two windows on one day merge sorted",
			settings: data.ModalitySettings{
				Enabled:      true,
				SlotDuration: 60,
				Windows: []data.WeeklyWindow{
					{Day: int(time.Monday), From: 14 * 60, To: 16 * 60},
					{Day: int(time.Monday), From: 9 * 60, To: 11 * 60},
				},
			},
			date:     monday,
			expected: []int{540, 600, 840, 900},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			times := generate(c.settings, c.date)
			if !reflect.DeepEqual(times, c.expected) {
				t.Fatalf("expected %v, got %v", c.expected, times)
			}
		})
	}
}

// generate must not mutate its inputs and must yield the same sequence when
// called twice.
func Test_generate_restartable(t *testing.T) {
	monday := common.NewDate(2024, time.June, 10)
	settings := data.ModalitySettings{
		Enabled:      true,
		SlotDuration: 45,
		Buffer:       5,
		Windows: []data.WeeklyWindow{
			{Day: int(time.Monday), From: 8 * 60, To: 12 * 60},
		},
	}

	first := generate(settings, monday)
	second := generate(settings, monday)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical sequences, got %v and %v", first, second)
	}
}
