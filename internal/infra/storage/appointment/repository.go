package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения занятых интервалов по записям.
// Создание и изменение записей принадлежит write-path платформы;
// движок доступности их только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusyIntervals получает занятые интервалы сотрудника на дату.
// Отмененные записи и неявки (no-show) время не занимают и отфильтровываются
// на уровне SQL.
func (r *Repository) GetBusyIntervals(ctx context.Context, tenantID, staffID int64, date time.Time) ([]domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	inactiveStatuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("starts_at", "ends_at").
		From("appointments").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"starts_at": dayStart}).
		Where(squirrel.Lt{"starts_at": dayEnd}).
		Where(squirrel.NotEq{"status": inactiveStatuses}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)

	for rows.Next() {
		var interval domain.Interval
		if err := rows.Scan(&interval.Start, &interval.End); err != nil {
			return nil, fmt.Errorf("%w: GetBusyIntervals - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}
