package timeoff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// columns колонки таблицы time_off в порядке сканирования
var columns = []string{
	"id",
	"tenant_id",
	"staff_id",
	"date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения записей time-off
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория time-off
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForDate получает все записи time-off на дату, действующие для сотрудника:
// персональные (staff_id = staffID) и общие для всех (staff_id IS NULL).
// Разделение на all-day и частичные периоды выполняет вызывающая сторона.
func (r *Repository) GetForDate(ctx context.Context, tenantID int64, staffID int64, date time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("time_off").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"date": dateOnly(date)}).
		Where(squirrel.Or{
			squirrel.Eq{"staff_id": nil},
			squirrel.Eq{"staff_id": staffID},
		}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTimeOffs(rows)
}

// GetAllDayForRange получает все all-day записи time-off за период дат,
// действующие хотя бы для одного сотрудника из набора (или для всех сразу).
// Используется сканером доступных дат: одна выборка на весь месяц.
func (r *Repository) GetAllDayForRange(ctx context.Context, tenantID int64, staffIDs []int64, from, to time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	staffScope := squirrel.Or{squirrel.Eq{"staff_id": nil}}
	if len(staffIDs) > 0 {
		staffScope = append(staffScope, squirrel.Eq{"staff_id": staffIDs})
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("time_off").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": dateOnly(from)}).
		Where(squirrel.LtOrEq{"date": dateOnly(to)}).
		Where(squirrel.Eq{"start_time": nil}).
		Where(squirrel.Eq{"end_time": nil}).
		Where(staffScope).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDayForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllDayForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTimeOffs(rows)
}

// scanTimeOffs сканирует результаты запроса в слайс записей time-off
func (r *Repository) scanTimeOffs(rows *sql.Rows) ([]*domain.TimeOff, error) {
	entries := make([]*domain.TimeOff, 0)

	for rows.Next() {
		var entry domain.TimeOff
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.StaffID,
			&entry.Date,
			&entry.StartTime,
			&entry.EndTime,
			&entry.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimeOffs - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTimeOffs - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// dateOnly обнуляет время, чтобы сравнение шло только по дате
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
