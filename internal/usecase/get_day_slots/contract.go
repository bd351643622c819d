package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	// GetActive получает активную запись рабочих часов для (тенант, сотрудник, день недели)
	GetActive(ctx context.Context, tenantID int64, staffID *int64, dayOfWeek int) (*domain.WorkingHours, error)
}

// TimeOffRepository интерфейс репозитория time-off
type TimeOffRepository interface {
	// GetForDate получает записи time-off сотрудника на дату (включая общие для всех)
	GetForDate(ctx context.Context, tenantID int64, staffID int64, date time.Time) ([]*domain.TimeOff, error)
}

// AppointmentRepository интерфейс репозитория занятых интервалов
type AppointmentRepository interface {
	// GetBusyIntervals получает занятые интервалы сотрудника на дату (без отмененных и no-show)
	GetBusyIntervals(ctx context.Context, tenantID, staffID int64, date time.Time) ([]domain.Interval, error)
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

// SlotCache интерфейс кэша рассчитанных слотов (опционален, может быть nil)
type SlotCache interface {
	GetDaySlots(ctx context.Context, tenantID, serviceID int64, staffID *int64, date time.Time) ([]domain.Slot, bool)
	StoreDaySlots(ctx context.Context, tenantID, serviceID int64, staffID *int64, date time.Time, slots []domain.Slot)
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
