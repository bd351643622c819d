package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// scanInput предзагруженные данные для сканирования месяца.
// Все выборки из БД выполняются один раз на скан, не на каждую дату.
type scanInput struct {
	staffIDs []int64   // порядок обхода: по возрастанию id
	from, to time.Time // включительный диапазон дат, уже обрезанный горизонтом

	hoursByStaff  map[int64]map[int]domain.WorkingHours
	businessHours map[int]domain.WorkingHours // пустая map = потолок не применяется
	allDayTimeOff map[string][]*domain.TimeOff

	durationMinutes int
	policy          *domain.TenantPolicy
	now             time.Time
}

// scanAvailableDates возвращает даты диапазона, на которые хотя бы у одного
// сотрудника есть хотя бы один бронируемый слот.
//
// Сканер намеренно НЕ генерирует полные списки слотов и НЕ смотрит на
// существующие записи: для месячного запроса достаточно ответа "день в
// принципе бронируем", и ранний выход на первом подошедшем слоте дает
// O(дни × сотрудники) вместо O(дни × сотрудники × слоты).
func scanAvailableDates(in scanInput) []string {
	available := make([]string, 0)

	applyCeiling := len(in.businessHours) > 0

	for date := in.from; !date.After(in.to); date = date.AddDate(0, 0, 1) {
		weekday := int(date.Weekday())

		// Бизнес-часы — жесткий потолок: день без активной бизнес-записи
		// вообще не рассматривается. Потолок действует только если у тенанта
		// настроена хотя бы одна бизнес-запись.
		var ceiling *domain.WorkingHours
		if applyCeiling {
			bh, ok := in.businessHours[weekday]
			if !ok {
				continue
			}
			ceiling = &bh
		}

		dayOffs := in.allDayTimeOff[date.Format(domain.DateFormat)]

		for _, staffID := range in.staffIDs {
			if staffHasAllDayOff(dayOffs, staffID) {
				continue
			}

			hours, ok := in.hoursByStaff[staffID][weekday]
			if !ok {
				continue
			}

			// Окно сотрудника, ограниченное бизнес-часами; пустое
			// пересечение означает отсутствие бронируемого окна
			start, end := hours.ConstrainedBy(ceiling)
			if !start.IsBefore(end) {
				continue
			}

			if dayHasBookableSlot(date, hours, ceiling, in.durationMinutes, in.policy, in.now) {
				available = append(available, date.Format(domain.DateFormat))
				break
			}
		}
	}

	return available
}

// staffHasAllDayOff проверяет, заблокирован ли день для сотрудника
// персональной или общей all-day записью time-off
func staffHasAllDayOff(dayOffs []*domain.TimeOff, staffID int64) bool {
	for _, off := range dayOffs {
		if off.AppliesToStaff(staffID) {
			return true
		}
	}
	return false
}

// dayHasBookableSlot проверяет, есть ли в окне хотя бы один старт слота,
// удовлетворяющий lead-time. Останавливается на первом подошедшем.
// Некорректные данные времени трактуются как отсутствие слота.
func dayHasBookableSlot(
	date time.Time,
	hours domain.WorkingHours,
	ceiling *domain.WorkingHours,
	durationMinutes int,
	policy *domain.TenantPolicy,
	now time.Time,
) bool {
	startTime, endTime := hours.ConstrainedBy(ceiling)

	windowStart, err := startTime.OnDate(date)
	if err != nil {
		return false
	}
	windowEnd, err := endTime.OnDate(date)
	if err != nil {
		return false
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(policy.SlotIntervalMinutes) * time.Minute
	minAllowedStart := now.Add(policy.LeadTime())

	for current := windowStart; !current.Add(duration).After(windowEnd); current = current.Add(step) {
		if !current.Before(minAllowedStart) {
			return true
		}
	}

	return false
}
