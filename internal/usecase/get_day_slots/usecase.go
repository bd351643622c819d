package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	whRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/workinghours"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
)

// UseCase use case расчета слотов на день.
// Работает в двух режимах: по конкретному сотруднику и по любому сотруднику,
// оказывающему услугу (агрегация с дедупликацией по времени).
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	timeOffRepo      TimeOffRepository
	appointmentRepo  AppointmentRepository
	policyRepo       PolicyRepository
	catalogClient    CatalogServiceClient
	slotCache        SlotCache // nil = кэширование выключено
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingHoursRepo WorkingHoursRepository,
	timeOffRepo TimeOffRepository,
	appointmentRepo AppointmentRepository,
	policyRepo PolicyRepository,
	catalogClient CatalogServiceClient,
	slotCache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		timeOffRepo:      timeOffRepo,
		appointmentRepo:  appointmentRepo,
		policyRepo:       policyRepo,
		catalogClient:    catalogClient,
		slotCache:        slotCache,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case расчета слотов на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: tenant=%d, service=%d, staff=%s, date=%s",
		req.TenantID, req.ServiceID, staffLabel(req.StaffID), req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и нормализуем дату к его локации
	now := uc.timeProvider.Now()
	date := dateOnly(req.Date, now.Location())

	// 3. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetDaySlots: service id=%d not found for tenant=%d", req.ServiceID, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.OnlineBookable {
		uc.logger.Warn("GetDaySlots: service id=%d is not bookable online", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 4. Получаем политику бронирования тенанта
	policy, err := uc.tenantPolicy(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	// 5. Дата в прошлом или за горизонтом бронирования — валидный пустой
	// результат, а не ошибка
	if isDateInPast(date, now) || isBeyondHorizon(date, now, policy.MaxDaysInAdvance) {
		uc.logger.Info("GetDaySlots: date %s is outside the bookable window for tenant=%d",
			date.Format(domain.DateFormat), req.TenantID)
		return uc.response(req, date, []domain.Slot{}), nil
	}

	// 6. Проверяем кэш
	if uc.slotCache != nil {
		if slots, ok := uc.slotCache.GetDaySlots(ctx, req.TenantID, req.ServiceID, req.StaffID, date); ok {
			uc.logger.Info("GetDaySlots: cache hit for tenant=%d, service=%d, date=%s",
				req.TenantID, req.ServiceID, date.Format(domain.DateFormat))
			return uc.response(req, date, slots), nil
		}
	}

	// 7. Рассчитываем слоты
	var slots []domain.Slot

	if req.StaffID != nil {
		slots, err = uc.daySlotsForRequestedStaff(ctx, req, service, policy, date, now)
	} else {
		slots, err = uc.daySlotsForAnyStaff(ctx, req, service, policy, date, now)
	}
	if err != nil {
		return nil, err
	}

	// 8. Сохраняем результат в кэш
	if uc.slotCache != nil {
		uc.slotCache.StoreDaySlots(ctx, req.TenantID, req.ServiceID, req.StaffID, date, slots)
	}

	uc.logger.Info("GetDaySlots: computed %d slots for tenant=%d, service=%d, staff=%s, date=%s",
		len(slots), req.TenantID, req.ServiceID, staffLabel(req.StaffID), date.Format(domain.DateFormat))

	return uc.response(req, date, slots), nil
}

// daySlotsForRequestedStaff рассчитывает слоты для явно указанного сотрудника
func (uc *UseCase) daySlotsForRequestedStaff(
	ctx context.Context,
	req *Request,
	service *catalogClient.Service,
	policy *domain.TenantPolicy,
	date, now time.Time,
) ([]domain.Slot, error) {
	staff, err := uc.catalogClient.GetStaff(ctx, req.TenantID, *req.StaffID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStaffNotFound) {
			uc.logger.Warn("GetDaySlots: staff id=%d not found for tenant=%d", *req.StaffID, req.TenantID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !staff.Bookable {
		uc.logger.Warn("GetDaySlots: staff id=%d is not bookable online", *req.StaffID)
		return nil, ErrStaffNotBookable
	}

	return uc.daySlotsForStaff(ctx, req.TenantID, *req.StaffID, service.DurationMinutes, policy, date, now)
}

// daySlotsForStaff рассчитывает слоты одного сотрудника на дату:
// all-day time-off обнуляет день сразу; отсутствие рабочих часов — это
// обычный нерабочий день, а не ошибка.
func (uc *UseCase) daySlotsForStaff(
	ctx context.Context,
	tenantID, staffID int64,
	durationMinutes int,
	policy *domain.TenantPolicy,
	date, now time.Time,
) ([]domain.Slot, error) {
	// 1. Записи time-off на дату: персональные и общие для всех сотрудников
	timeOffs, err := uc.timeOffRepo.GetForDate(ctx, tenantID, staffID, date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get time-off for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get time-off: %v", ErrInternal, err)
	}

	partialTimeOffs := make([]*domain.TimeOff, 0, len(timeOffs))
	for _, t := range timeOffs {
		if t.IsAllDay() {
			uc.logger.Info("GetDaySlots: staff=%d has all-day time-off on %s",
				staffID, date.Format(domain.DateFormat))
			return []domain.Slot{}, nil
		}
		partialTimeOffs = append(partialTimeOffs, t)
	}

	// 2. Рабочие часы сотрудника на день недели
	wh, err := uc.workingHoursRepo.GetActive(ctx, tenantID, &staffID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			// Нерабочий день — нулевая доступность
			return []domain.Slot{}, nil
		}
		uc.logger.Error("GetDaySlots: failed to get working hours for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 3. Занятые интервалы: активные записи плюс частичные time-off
	busy, err := uc.appointmentRepo.GetBusyIntervals(ctx, tenantID, staffID, date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get busy intervals for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
	}

	for _, t := range partialTimeOffs {
		interval, err := t.Window(date)
		if err != nil {
			uc.logger.Error("GetDaySlots: invalid time-off period id=%d: %v", t.ID, err)
			return nil, fmt.Errorf("%w: invalid time-off period: %v", ErrInternal, err)
		}
		busy = append(busy, interval)
	}

	// 4. Генерируем слоты внутри рабочего окна
	window, err := wh.Window(date)
	if err != nil {
		uc.logger.Error("GetDaySlots: invalid working hours id=%d: %v", wh.ID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	return generateSlots(window, durationMinutes, policy.SlotIntervalMinutes, busy, now, policy.LeadTime()), nil
}

// tenantPolicy получает политику тенанта, подставляя дефолты при её отсутствии
func (uc *UseCase) tenantPolicy(ctx context.Context, tenantID int64) (*domain.TenantPolicy, error) {
	p, err := uc.policyRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Info("GetDaySlots: using default policy for tenant=%d", tenantID)
			return domain.DefaultTenantPolicy(tenantID), nil
		}
		uc.logger.Error("GetDaySlots: failed to get policy for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant policy: %v", ErrInternal, err)
	}
	return p, nil
}

func (uc *UseCase) response(req *Request, date time.Time, slots []domain.Slot) *Response {
	return &Response{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Date:      date,
		Slots:     slots,
	}
}

// staffLabel форматирует staff id для логов ("any" для any-staff запросов)
func staffLabel(staffID *int64) string {
	if staffID == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *staffID)
}
