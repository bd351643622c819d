package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// WorkingHours represents a recurring weekly open window for a staff member
// or for the whole tenant (business-wide).
// At most one active record exists per (tenant, staff, day-of-week).
type WorkingHours struct {
	ID        int64
	TenantID  int64
	StaffID   *int64 // nil = business-wide hours
	DayOfWeek int    // 0 (Sunday) .. 6 (Saturday)
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBusinessWide returns true if the record applies to the whole tenant
// rather than a specific staff member.
func (w *WorkingHours) IsBusinessWide() bool {
	return w.StaffID == nil
}

// Window anchors the working window to a calendar date.
func (w *WorkingHours) Window(date time.Time) (Interval, error) {
	start, err := w.StartTime.OnDate(date)
	if err != nil {
		return Interval{}, err
	}
	end, err := w.EndTime.OnDate(date)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// ConstrainedBy intersects the staff window with the business-wide ceiling:
// the later start and the earlier end win. The result may be invalid
// (start >= end), which means no bookable window remains.
func (w *WorkingHours) ConstrainedBy(ceiling *WorkingHours) (types.TimeString, types.TimeString) {
	start := w.StartTime
	end := w.EndTime

	if ceiling != nil {
		if ceiling.StartTime.IsAfter(start) {
			start = ceiling.StartTime
		}
		if ceiling.EndTime.IsBefore(end) {
			end = ceiling.EndTime
		}
	}

	return start, end
}
