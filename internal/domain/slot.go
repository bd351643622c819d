package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Slot is a candidate appointment start time plus its availability.
// StaffID is set only in multi-staff aggregation, where it names the staff
// member the slot is attributed to.
type Slot struct {
	Time      types.TimeString
	Available bool
	StaffID   *int64
}

// IsAttributed returns true if the slot carries a staff attribution.
func (s *Slot) IsAttributed() bool {
	return s.StaffID != nil
}
