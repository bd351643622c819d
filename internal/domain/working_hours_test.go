package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestWorkingHours_IsBusinessWide(t *testing.T) {
	business := WorkingHours{StaffID: nil}
	personal := WorkingHours{StaffID: ptr.Ptr(int64(5))}

	assert.True(t, business.IsBusinessWide())
	assert.False(t, personal.IsBusinessWide())
}

func TestWorkingHours_Window(t *testing.T) {
	wh := WorkingHours{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("18:00"),
	}
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	window, err := wh.Window(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC), window.End)
}

func TestWorkingHours_ConstrainedBy(t *testing.T) {
	staff := WorkingHours{
		StartTime: types.TimeString("08:00"),
		EndTime:   types.TimeString("20:00"),
	}

	tests := []struct {
		name      string
		ceiling   *WorkingHours
		wantStart types.TimeString
		wantEnd   types.TimeString
	}{
		{
			name:      "no ceiling",
			ceiling:   nil,
			wantStart: "08:00",
			wantEnd:   "20:00",
		},
		{
			name: "ceiling narrows both ends",
			ceiling: &WorkingHours{
				StartTime: types.TimeString("09:00"),
				EndTime:   types.TimeString("18:00"),
			},
			wantStart: "09:00",
			wantEnd:   "18:00",
		},
		{
			name: "ceiling wider than staff window",
			ceiling: &WorkingHours{
				StartTime: types.TimeString("07:00"),
				EndTime:   types.TimeString("22:00"),
			},
			wantStart: "08:00",
			wantEnd:   "20:00",
		},
		{
			name: "disjoint windows leave nothing",
			ceiling: &WorkingHours{
				StartTime: types.TimeString("21:00"),
				EndTime:   types.TimeString("23:00"),
			},
			wantStart: "21:00",
			wantEnd:   "20:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := staff.ConstrainedBy(tt.ceiling)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
