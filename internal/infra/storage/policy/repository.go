package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения политики бронирования тенанта.
// Политика принадлежит подсистеме конфигурации тенантов; здесь только чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant получает политику бронирования тенанта.
// Если политика не настроена, возвращает ErrPolicyNotFound — вызывающая
// сторона подставляет дефолтные значения.
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"tenant_id",
		"lead_time_hours",
		"max_days_in_advance",
		"slot_interval_minutes",
		"created_at",
		"updated_at",
	).
		From("tenant_policies").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.TenantPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.TenantID,
		&p.LeadTimeHours,
		&p.MaxDaysInAdvance,
		&p.SlotIntervalMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan policy: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
