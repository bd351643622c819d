package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// columns колонки таблицы working_hours в порядке сканирования
var columns = []string{
	"id",
	"tenant_id",
	"staff_id",
	"day_of_week",
	"start_time",
	"end_time",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активную запись рабочих часов для (тенант, сотрудник, день недели).
// staffID == nil означает поиск бизнес-часов тенанта (staff_id IS NULL).
// Инвариант данных: не более одной активной записи на комбинацию.
func (r *Repository) GetActive(ctx context.Context, tenantID int64, staffID *int64, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.Eq{"active": true})

	// Явное ветвление по области действия: конкретный сотрудник или бизнес-часы
	if staffID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	wh, err := scanWorkingHours(row)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan working hours: %v", ErrScanRow, err)
	}

	return wh, nil
}

// GetForStaffSet получает активные рабочие часы для набора сотрудников одним запросом.
// Результат сгруппирован по сотруднику и дню недели: map[staffID]map[dayOfWeek]WorkingHours.
// Используется сканером доступных дат, чтобы не ходить в БД на каждую дату.
func (r *Repository) GetForStaffSet(ctx context.Context, tenantID int64, staffIDs []int64) (map[int64]map[int]domain.WorkingHours, error) {
	result := make(map[int64]map[int]domain.WorkingHours, len(staffIDs))
	if len(staffIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("staff_id ASC, day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForStaffSet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForStaffSet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetForStaffSet - scan row: %v", ErrScanRow, err)
		}

		if wh.StaffID == nil {
			// Бизнес-часы в выборку по staff_id IN (...) попасть не могут,
			// но страхуемся от некорректных данных
			continue
		}

		byDay, ok := result[*wh.StaffID]
		if !ok {
			byDay = make(map[int]domain.WorkingHours)
			result[*wh.StaffID] = byDay
		}
		byDay[wh.DayOfWeek] = *wh
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForStaffSet - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetBusinessHours получает активные бизнес-часы тенанта (staff_id IS NULL),
// сгруппированные по дню недели. Пустая map означает, что бизнес-часы
// не настроены вовсе.
func (r *Repository) GetBusinessHours(ctx context.Context, tenantID int64) (map[int]domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"staff_id": nil}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int]domain.WorkingHours)

	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHours - scan row: %v", ErrScanRow, err)
		}
		result[wh.DayOfWeek] = *wh
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWorkingHours сканирует одну строку working_hours
func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var wh domain.WorkingHours
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&wh.ID,
		&wh.TenantID,
		&wh.StaffID,
		&wh.DayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
		&wh.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}
