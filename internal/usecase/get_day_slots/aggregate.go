package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// daySlotsForAnyStaff рассчитывает слоты по всем сотрудникам, оказывающим
// услугу, и объединяет их в один список.
//
// Контракт агрегата — "можно ли записаться на это время хоть к кому-то":
// наружу выходят только доступные времена; каждое время атрибутируется
// первому сотруднику (по возрастанию id), у которого оно свободно. Порядок
// обхода фиксирован сортировкой, чтобы атрибуция была воспроизводимой.
func (uc *UseCase) daySlotsForAnyStaff(
	ctx context.Context,
	req *Request,
	service *catalogClient.Service,
	policy *domain.TenantPolicy,
	date, now time.Time,
) ([]domain.Slot, error) {
	// 1. Сотрудники, оказывающие услугу (каталог отдает только bookable)
	staffIDs, err := uc.catalogClient.GetEligibleStaffIDs(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetDaySlots: service id=%d not found while resolving staff", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to resolve eligible staff for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to resolve eligible staff: %v", ErrInternal, err)
	}

	if len(staffIDs) == 0 {
		uc.logger.Info("GetDaySlots: no eligible staff for tenant=%d, service=%d", req.TenantID, req.ServiceID)
		return []domain.Slot{}, nil
	}

	// Детерминированный порядок обхода: первый по возрастанию id выигрывает
	sort.Slice(staffIDs, func(i, j int) bool { return staffIDs[i] < staffIDs[j] })

	// 2. Объединяем доступные слоты с дедупликацией по времени
	seen := make(map[types.TimeString]struct{})
	aggregated := make([]domain.Slot, 0)

	for _, staffID := range staffIDs {
		slots, err := uc.daySlotsForStaff(ctx, req.TenantID, staffID, service.DurationMinutes, policy, date, now)
		if err != nil {
			return nil, err
		}

		for _, slot := range slots {
			if !slot.Available {
				continue
			}
			if _, taken := seen[slot.Time]; taken {
				continue
			}
			seen[slot.Time] = struct{}{}

			id := staffID
			aggregated = append(aggregated, domain.Slot{
				Time:      slot.Time,
				Available: true,
				StaffID:   &id,
			})
		}
	}

	// 3. Итог сортируется по времени; лексикографическое сравнение "HH:MM"
	// совпадает с хронологическим
	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].Time.IsBefore(aggregated[j].Time)
	})

	return aggregated, nil
}
