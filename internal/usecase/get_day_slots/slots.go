package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// generateSlots генерирует кандидаты слотов внутри окна рабочих часов.
// Кандидаты идут от начала окна с фиксированным шагом stepMinutes; слот,
// конец которого выходит за окно, не генерируется (частичных слотов в хвосте
// не бывает).
//
// Слот недоступен, если:
//   - его начало в прошлом, ИЛИ
//   - его начало раньше минимально допустимого времени (now + leadTime), ИЛИ
//   - он пересекается с любым занятым интервалом (записи и частичные time-off).
//
// Пересечение строгое (полуоткрытые интервалы): записи, граничащие со слотом
// впритык, доступности не отнимают.
func generateSlots(
	window domain.Interval,
	durationMinutes int,
	stepMinutes int,
	busy []domain.Interval,
	now time.Time,
	leadTime time.Duration,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute
	minAllowedStart := now.Add(leadTime)

	for current := window.Start; ; current = current.Add(step) {
		slotEnd := current.Add(duration)
		if slotEnd.After(window.End) {
			break
		}

		candidate := domain.Interval{Start: current, End: slotEnd}

		available := !current.Before(now) &&
			!current.Before(minAllowedStart) &&
			!domain.AnyOverlaps(candidate, busy)

		slots = append(slots, domain.Slot{
			Time:      types.NewTimeString(current),
			Available: available,
		})
	}

	return slots
}

// dateOnly обнуляет время в локации loc, чтобы работать с чистой датой
func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date, now.Location()).Before(dateOnly(now, now.Location()))
}

// isBeyondHorizon проверяет, что дата превышает горизонт бронирования.
// maxDaysInAdvance = 0 означает отсутствие ограничения.
func isBeyondHorizon(date, now time.Time, maxDaysInAdvance int) bool {
	if maxDaysInAdvance == 0 {
		return false
	}
	maxDate := dateOnly(now, now.Location()).AddDate(0, 0, maxDaysInAdvance)
	return dateOnly(date, now.Location()).After(maxDate)
}
