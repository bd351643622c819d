package domain

// Default tenant policy values, applied when a tenant has no stored policy
const (
	DefaultSlotIntervalMinutes = 30
	DefaultLeadTimeHours       = 1
	DefaultMaxDaysInAdvance    = 0 // 0 = unlimited booking horizon
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 hours
	MinLeadTimeHours       = 0
	MaxLeadTimeHours       = 168 // 1 week
	MinDaysInAdvance       = 0
	MaxDaysInAdvance       = 365 // 1 year
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day-of-week bounds (time.Weekday: 0 = Sunday ... 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// InactiveStatuses список статусов, не занимающих время в расписании.
// Используется при выборке занятых интервалов.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByTenant,
	StatusNoShow,
}

// ActiveStatuses список статусов, блокирующих время в расписании
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
