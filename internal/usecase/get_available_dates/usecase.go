package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
)

// UseCase use case сканирования доступных дат месяца.
// Отвечает на вопрос "в какие дни месяца в принципе можно записаться",
// не материализуя полные списки слотов (см. scanAvailableDates).
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	timeOffRepo      TimeOffRepository
	policyRepo       PolicyRepository
	catalogClient    CatalogServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingHoursRepo WorkingHoursRepository,
	timeOffRepo TimeOffRepository,
	policyRepo PolicyRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		timeOffRepo:      timeOffRepo,
		policyRepo:       policyRepo,
		catalogClient:    catalogClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case сканирования доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: tenant=%d, service=%d, staff=%s, month=%d, year=%d",
		req.TenantID, req.ServiceID, staffLabel(req.StaffID), req.Month, req.Year)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время; все даты месяца строятся в его локации
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDates: service id=%d not found for tenant=%d", req.ServiceID, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.OnlineBookable {
		uc.logger.Warn("GetAvailableDates: service id=%d is not bookable online", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 4. Политика бронирования тенанта (дефолты при отсутствии)
	policy, err := uc.tenantPolicy(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	// 5. Набор сотрудников: явно указанный или все, оказывающие услугу
	staffIDs, err := uc.resolveStaffIDs(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(staffIDs) == 0 {
		uc.logger.Info("GetAvailableDates: no eligible staff for tenant=%d, service=%d",
			req.TenantID, req.ServiceID)
		return uc.response(req, []string{}), nil
	}

	// 6. Окно сканирования: пересечение месяца с [сегодня, сегодня+горизонт]
	from, to, ok := scanWindow(req.Month, req.Year, now, policy)
	if !ok {
		uc.logger.Info("GetAvailableDates: month %d-%02d is outside the bookable window for tenant=%d",
			req.Year, req.Month, req.TenantID)
		return uc.response(req, []string{}), nil
	}

	// 7. Предзагружаем данные одним набором запросов на весь скан
	hoursByStaff, err := uc.workingHoursRepo.GetForStaffSet(ctx, req.TenantID, staffIDs)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	businessHours, err := uc.workingHoursRepo.GetBusinessHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	allDayOffs, err := uc.timeOffRepo.GetAllDayForRange(ctx, req.TenantID, staffIDs, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get time-off: %v", err)
		return nil, fmt.Errorf("%w: failed to get time-off: %v", ErrInternal, err)
	}

	allDayByDate := make(map[string][]*domain.TimeOff, len(allDayOffs))
	for _, off := range allDayOffs {
		key := off.Date.Format(domain.DateFormat)
		allDayByDate[key] = append(allDayByDate[key], off)
	}

	// 8. Сканируем даты
	dates := scanAvailableDates(scanInput{
		staffIDs:        staffIDs,
		from:            from,
		to:              to,
		hoursByStaff:    hoursByStaff,
		businessHours:   businessHours,
		allDayTimeOff:   allDayByDate,
		durationMinutes: service.DurationMinutes,
		policy:          policy,
		now:             now,
	})

	uc.logger.Info("GetAvailableDates: found %d available dates for tenant=%d, service=%d, month=%d-%02d",
		len(dates), req.TenantID, req.ServiceID, req.Year, req.Month)

	return uc.response(req, dates), nil
}

// resolveStaffIDs возвращает набор сотрудников для сканирования,
// отсортированный по возрастанию id
func (uc *UseCase) resolveStaffIDs(ctx context.Context, req *Request) ([]int64, error) {
	if req.StaffID != nil {
		staff, err := uc.catalogClient.GetStaff(ctx, req.TenantID, *req.StaffID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableDates: staff id=%d not found for tenant=%d", *req.StaffID, req.TenantID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableDates: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		if !staff.Bookable {
			uc.logger.Warn("GetAvailableDates: staff id=%d is not bookable online", *req.StaffID)
			return nil, ErrStaffNotBookable
		}

		return []int64{*req.StaffID}, nil
	}

	staffIDs, err := uc.catalogClient.GetEligibleStaffIDs(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDates: service id=%d not found while resolving staff", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to resolve eligible staff for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to resolve eligible staff: %v", ErrInternal, err)
	}

	sort.Slice(staffIDs, func(i, j int) bool { return staffIDs[i] < staffIDs[j] })
	return staffIDs, nil
}

// tenantPolicy получает политику тенанта, подставляя дефолты при её отсутствии
func (uc *UseCase) tenantPolicy(ctx context.Context, tenantID int64) (*domain.TenantPolicy, error) {
	p, err := uc.policyRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Info("GetAvailableDates: using default policy for tenant=%d", tenantID)
			return domain.DefaultTenantPolicy(tenantID), nil
		}
		uc.logger.Error("GetAvailableDates: failed to get policy for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant policy: %v", ErrInternal, err)
	}
	return p, nil
}

// scanWindow вычисляет окно сканирования месяца: [max(начало месяца, сегодня),
// min(конец месяца, сегодня + горизонт)]. ok = false, если окно пусто
// (месяц целиком в прошлом или целиком за горизонтом).
func scanWindow(month, year int, now time.Time, policy *domain.TenantPolicy) (from, to time.Time, ok bool) {
	loc := now.Location()

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	from = monthStart
	if today.After(from) {
		from = today
	}

	to = monthEnd
	if policy.HasBookingHorizon() {
		horizon := today.AddDate(0, 0, policy.MaxDaysInAdvance)
		if horizon.Before(to) {
			to = horizon
		}
	}

	return from, to, !from.After(to)
}

func (uc *UseCase) response(req *Request, dates []string) *Response {
	return &Response{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Month:     req.Month,
		Year:      req.Year,
		Dates:     dates,
	}
}

// staffLabel форматирует staff id для логов ("any" для any-staff запросов)
func staffLabel(staffID *int64) string {
	if staffID == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *staffID)
}
