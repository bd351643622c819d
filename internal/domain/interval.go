package domain

import "time"

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (one interval ending exactly where the other starts)
// do not count as an overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// IsValid reports whether the interval has positive length.
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// AnyOverlaps reports whether the candidate interval intersects at least one
// of the busy intervals. Busy sets are small per staff per day, so a linear
// scan is sufficient.
func AnyOverlaps(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
