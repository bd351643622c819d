package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, startMin, endHour, endMin int) Interval {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{name: "identical", a: interval(10, 0, 11, 0), b: interval(10, 0, 11, 0), want: true},
		{name: "partial overlap", a: interval(10, 0, 11, 0), b: interval(10, 30, 11, 30), want: true},
		{name: "containment", a: interval(9, 0, 12, 0), b: interval(10, 0, 11, 0), want: true},
		{name: "touching end to start", a: interval(10, 0, 11, 0), b: interval(11, 0, 12, 0), want: false},
		{name: "touching start to end", a: interval(11, 0, 12, 0), b: interval(10, 0, 11, 0), want: false},
		{name: "disjoint", a: interval(9, 0, 10, 0), b: interval(11, 0, 12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(9, 0, 10, 0).IsValid())
	assert.False(t, interval(10, 0, 10, 0).IsValid())
	assert.False(t, interval(11, 0, 10, 0).IsValid())
}

func TestAnyOverlaps(t *testing.T) {
	busy := []Interval{
		interval(10, 0, 11, 0),
		interval(14, 0, 15, 0),
	}

	assert.True(t, AnyOverlaps(interval(10, 30, 11, 30), busy))
	assert.True(t, AnyOverlaps(interval(14, 30, 15, 30), busy))
	assert.False(t, AnyOverlaps(interval(11, 0, 12, 0), busy))
	assert.False(t, AnyOverlaps(interval(12, 0, 13, 0), busy))
	assert.False(t, AnyOverlaps(interval(9, 0, 10, 0), nil))
}
