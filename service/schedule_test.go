package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellman53/book-my-doctor-sub000/common"
)

func validSettings() ScheduleSettings {
	return ScheduleSettings{
		Virtual: ModalityConfig{
			Enabled:      true,
			SlotDuration: 30,
			Availability: []Window{
				{Day: "Monday", StartTime: common.NewHHMM(9, 0), EndTime: common.NewHHMM(17, 0)},
				{Day: "Wednesday", StartTime: common.NewHHMM(9, 0), EndTime: common.NewHHMM(12, 0)},
			},
		},
		InPerson: ModalityConfig{
			Enabled:      false,
			SlotDuration: 45,
			Buffer:       15,
			Availability: []Window{},
		},
	}
}

func Test_validateModality(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(s *ScheduleSettings)
		wantErr string
	}{
		{
			name:   "valid settings pass",
			mutate: func(s *ScheduleSettings) {},
		},
		{
			name: "zero slot duration",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.SlotDuration = 0
			},
			wantErr: "slot duration",
		},
		{
			name: "negative buffer",
			mutate: func(s *ScheduleSettings) {
				s.InPerson.Buffer = -5
			},
			wantErr: "buffer",
		},
		{
			name: "unknown weekday",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.Availability[0].Day = "Starday"
			},
			wantErr: "unknown weekday",
		},
		{
			name: "overnight window rejected",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.Availability[0].StartTime = common.NewHHMM(22, 0)
				s.Virtual.Availability[0].EndTime = common.NewHHMM(2, 0)
			},
			wantErr: "overnight",
		},
		{
			name: "zero-length window rejected",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.Availability[0].EndTime = s.Virtual.Availability[0].StartTime
			},
			wantErr: "must end after",
		},
		{
			name: "overlapping windows on one day",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.Availability = append(s.Virtual.Availability,
					Window{Day: "Monday", StartTime: common.NewHHMM(16, 0), EndTime: common.NewHHMM(18, 0)})
			},
			wantErr: "overlapping",
		},
		{
			name: "touching windows are fine",
			mutate: func(s *ScheduleSettings) {
				s.Virtual.Availability = append(s.Virtual.Availability,
					Window{Day: "Monday", StartTime: common.NewHHMM(17, 0), EndTime: common.NewHHMM(19, 0)})
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			settings := validSettings()
			c.mutate(&settings)

			svc := &scheduleService{settings: newFakeSettingsStore()}
			err := svc.Save(1, settings)

			if c.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), c.wantErr)
		})
	}
}

// Saving settings and reading them back returns the exact structure that was
// submitted: no field loss, no window reordering.
func TestScheduleSettings_roundTrip(t *testing.T) {
	store := newFakeSettingsStore()
	svc := &scheduleService{settings: store}

	settings := validSettings()
	// windows deliberately out of weekday order
	settings.Virtual.Availability = []Window{
		{Day: "Friday", StartTime: common.NewHHMM(13, 0), EndTime: common.NewHHMM(17, 0)},
		{Day: "Monday", StartTime: common.NewHHMM(9, 0), EndTime: common.NewHHMM(12, 0)},
	}

	require.NoError(t, svc.Save(1, settings))

	back, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, settings, back)
}

func TestScheduleSettings_getForUnknownDoctor(t *testing.T) {
	svc := &scheduleService{settings: newFakeSettingsStore()}

	settings, err := svc.Get(42)
	require.NoError(t, err)
	assert.False(t, settings.Virtual.Enabled)
	assert.Empty(t, settings.Virtual.Availability)
	assert.Empty(t, settings.InPerson.Availability)
}
