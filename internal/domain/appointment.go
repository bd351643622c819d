package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledByTenant AppointmentStatus = "cancelled_by_tenant"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents an existing booking owned by the write path.
// The availability engine only ever reads appointments as busy intervals.
type Appointment struct {
	ID        int64
	TenantID  int64
	StaffID   int64
	ServiceID int64
	ClientID  int64
	StartsAt  time.Time
	EndsAt    time.Time
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time window.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByTenant &&
		a.Status != StatusNoShow
}

// BusyInterval returns the occupied time window of the appointment.
func (a *Appointment) BusyInterval() Interval {
	return Interval{Start: a.StartsAt, End: a.EndsAt}
}
