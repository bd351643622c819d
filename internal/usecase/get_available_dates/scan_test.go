package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var scanDay = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

func hours(staffID int64, start, end string) domain.WorkingHours {
	return domain.WorkingHours{
		TenantID: 1, StaffID: &staffID,
		StartTime: types.TimeString(start), EndTime: types.TimeString(end),
		Active: true,
	}
}

func businessDay(start, end string) domain.WorkingHours {
	return domain.WorkingHours{
		TenantID:  1,
		StartTime: types.TimeString(start), EndTime: types.TimeString(end),
		Active: true,
	}
}

// allWeek раскладывает одни и те же часы на все дни недели
func allWeek(wh domain.WorkingHours) map[int]domain.WorkingHours {
	m := make(map[int]domain.WorkingHours, 7)
	for d := 0; d <= 6; d++ {
		entry := wh
		entry.DayOfWeek = d
		m[d] = entry
	}
	return m
}

func zeroPolicy() *domain.TenantPolicy {
	return &domain.TenantPolicy{TenantID: 1, LeadTimeHours: 0, SlotIntervalMinutes: 30}
}

func TestScanAvailableDates_SingleBookableDay(t *testing.T) {
	in := scanInput{
		staffIDs: []int64{5},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "09:00", "18:00")),
		},
		businessHours:   map[int]domain.WorkingHours{},
		allDayTimeOff:   map[string][]*domain.TimeOff{},
		durationMinutes: 60,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Equal(t, []string{"2026-04-10"}, scanAvailableDates(in))
}

func TestScanAvailableDates_CeilingTooNarrowForService(t *testing.T) {
	// Бизнес-часы 09:00-10:00, услуга 90 минут: ни один слот не помещается
	in := scanInput{
		staffIDs: []int64{5},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "08:00", "20:00")),
		},
		businessHours:   allWeek(businessDay("09:00", "10:00")),
		allDayTimeOff:   map[string][]*domain.TimeOff{},
		durationMinutes: 90,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Empty(t, scanAvailableDates(in))
}

func TestScanAvailableDates_NoBusinessHoursMeansNoCeiling(t *testing.T) {
	// Бизнес-часы не настроены: окна сотрудников не ограничиваются
	in := scanInput{
		staffIDs: []int64{5},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "08:00", "20:00")),
		},
		businessHours:   map[int]domain.WorkingHours{},
		allDayTimeOff:   map[string][]*domain.TimeOff{},
		durationMinutes: 90,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Equal(t, []string{"2026-04-10"}, scanAvailableDates(in))
}

func TestScanAvailableDates_DayWithoutBusinessEntrySkipped(t *testing.T) {
	// Потолок настроен, но на этот день недели бизнес-записи нет:
	// день не рассматривается вовсе
	wd := int(scanDay.Weekday())
	otherDay := (wd + 1) % 7

	in := scanInput{
		staffIDs: []int64{5},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "09:00", "18:00")),
		},
		businessHours: map[int]domain.WorkingHours{
			otherDay: businessDay("09:00", "18:00"),
		},
		allDayTimeOff:   map[string][]*domain.TimeOff{},
		durationMinutes: 30,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Empty(t, scanAvailableDates(in))
}

func TestScanAvailableDates_AllDayTimeOffSkipsStaff(t *testing.T) {
	in := scanInput{
		staffIDs: []int64{5, 6},
		from:     scanDay,
		to:       scanDay.AddDate(0, 0, 1),
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "09:00", "18:00")),
		},
		businessHours: map[int]domain.WorkingHours{},
		allDayTimeOff: map[string][]*domain.TimeOff{
			"2026-04-10": {{TenantID: 1, StaffID: ptr.Ptr(int64(5)), Date: scanDay}},
		},
		durationMinutes: 60,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	// 10-го единственный сотрудник с часами в отгуле; 11-го он работает.
	// У сотрудника 6 часов нет вовсе - он не дает доступности никогда.
	assert.Equal(t, []string{"2026-04-11"}, scanAvailableDates(in))
}

func TestScanAvailableDates_BusinessWideTimeOffBlocksEveryone(t *testing.T) {
	in := scanInput{
		staffIDs: []int64{5, 6},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "09:00", "18:00")),
			6: allWeek(hours(6, "09:00", "18:00")),
		},
		businessHours: map[int]domain.WorkingHours{},
		allDayTimeOff: map[string][]*domain.TimeOff{
			"2026-04-10": {{TenantID: 1, StaffID: nil, Date: scanDay}},
		},
		durationMinutes: 60,
		policy:          zeroPolicy(),
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Empty(t, scanAvailableDates(in))
}

func TestScanAvailableDates_LeadTimePushesPastDay(t *testing.T) {
	// Рабочее окно заканчивается в 10:00; lead time 4 часа при "сейчас" 07:00
	// не оставляет ни одного допустимого старта
	in := scanInput{
		staffIDs: []int64{5},
		from:     scanDay,
		to:       scanDay,
		hoursByStaff: map[int64]map[int]domain.WorkingHours{
			5: allWeek(hours(5, "09:00", "10:00")),
		},
		businessHours:   map[int]domain.WorkingHours{},
		allDayTimeOff:   map[string][]*domain.TimeOff{},
		durationMinutes: 30,
		policy:          &domain.TenantPolicy{TenantID: 1, LeadTimeHours: 4, SlotIntervalMinutes: 30},
		now:             scanDay.Add(7 * time.Hour),
	}

	assert.Empty(t, scanAvailableDates(in))
}

func TestScanWindow(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	t.Run("current month starts from today", func(t *testing.T) {
		from, to, ok := scanWindow(4, 2026, now, &domain.TenantPolicy{})
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("future month unclipped without horizon", func(t *testing.T) {
		from, to, ok := scanWindow(6, 2026, now, &domain.TenantPolicy{})
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("horizon clips month tail", func(t *testing.T) {
		policy := &domain.TenantPolicy{MaxDaysInAdvance: 10}
		from, to, ok := scanWindow(4, 2026, now, policy)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("month fully in the past", func(t *testing.T) {
		_, _, ok := scanWindow(3, 2026, now, &domain.TenantPolicy{})
		assert.False(t, ok)
	})

	t.Run("month fully beyond horizon", func(t *testing.T) {
		policy := &domain.TenantPolicy{MaxDaysInAdvance: 7}
		_, _, ok := scanWindow(6, 2026, now, policy)
		assert.False(t, ok)
	})
}

func TestDayHasBookableSlot_ShortCircuit(t *testing.T) {
	wh := hours(5, "09:00", "12:00")

	// Есть хотя бы один допустимый старт
	assert.True(t, dayHasBookableSlot(scanDay, wh, nil, 60, zeroPolicy(), scanDay.Add(7*time.Hour)))

	// Услуга длиннее окна
	assert.False(t, dayHasBookableSlot(scanDay, wh, nil, 240, zeroPolicy(), scanDay.Add(7*time.Hour)))
}
