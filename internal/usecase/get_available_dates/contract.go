package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов (bulk-выборки)
type WorkingHoursRepository interface {
	// GetForStaffSet получает активные рабочие часы набора сотрудников
	// одним запросом: map[staffID]map[dayOfWeek]WorkingHours
	GetForStaffSet(ctx context.Context, tenantID int64, staffIDs []int64) (map[int64]map[int]domain.WorkingHours, error)

	// GetBusinessHours получает бизнес-часы тенанта по дням недели.
	// Пустая map = бизнес-часы не настроены, потолок не применяется.
	GetBusinessHours(ctx context.Context, tenantID int64) (map[int]domain.WorkingHours, error)
}

// TimeOffRepository интерфейс репозитория time-off (bulk-выборка)
type TimeOffRepository interface {
	// GetAllDayForRange получает all-day записи time-off за период одним запросом
	GetAllDayForRange(ctx context.Context, tenantID int64, staffIDs []int64, from, to time.Time) ([]*domain.TimeOff, error)
}

// PolicyRepository интерфейс репозитория политики бронирования
type PolicyRepository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantPolicy, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, tenantID, serviceID int64) (*catalogservice.Service, error)
	GetStaff(ctx context.Context, tenantID, staffID int64) (*catalogservice.Staff, error)
	GetEligibleStaffIDs(ctx context.Context, tenantID, serviceID int64) ([]int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
