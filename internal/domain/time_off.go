package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// TimeOff represents an exception blocking part or all of a specific date
// for one staff member or for the whole tenant.
type TimeOff struct {
	ID       int64
	TenantID int64
	StaffID  *int64 // nil = applies to all staff
	Date     time.Time
	// StartTime and EndTime are both nil for an all-day entry.
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAllDay returns true if the entry blocks the entire day.
func (t *TimeOff) IsAllDay() bool {
	return t.StartTime == nil && t.EndTime == nil
}

// AppliesToStaff returns true if the entry blocks time for the given staff
// member, either directly or through a business-wide scope.
func (t *TimeOff) AppliesToStaff(staffID int64) bool {
	return t.StaffID == nil || *t.StaffID == staffID
}

// Window anchors a partial time-off period to its date.
// Calling Window on an all-day entry is a programming error; use IsAllDay first.
func (t *TimeOff) Window(date time.Time) (Interval, error) {
	start, err := t.StartTime.OnDate(date)
	if err != nil {
		return Interval{}, err
	}
	end, err := t.EndTime.OnDate(date)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
