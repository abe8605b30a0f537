package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Repository репозиторий недельных шаблонов расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional получает недельный шаблон профессионала.
// Отсутствие строк - не ошибка: возвращается пустой шаблон,
// для него ни одна дата не доступна для бронирования.
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) (domain.ProfessionalSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
		"lunch_start",
		"lunch_end",
		"is_day_off",
	).
		From("weekday_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return domain.ProfessionalSchedule{}, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.ProfessionalSchedule{}, fmt.Errorf("%w: GetByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ps := domain.ProfessionalSchedule{
		ProfessionalID: professionalID,
		Days:           make([]domain.WeekdaySchedule, 0, 7),
	}

	for rows.Next() {
		var day domain.WeekdaySchedule
		var weekday int
		var startTime, endTime sql.NullString
		var lunchStart, lunchEnd sql.NullString

		err := rows.Scan(
			&weekday,
			&startTime,
			&endTime,
			&lunchStart,
			&lunchEnd,
			&day.IsDayOff,
		)
		if err != nil {
			return domain.ProfessionalSchedule{}, fmt.Errorf("%w: GetByProfessional - scan row: %v", ErrScanRow, err)
		}

		day.Weekday = time.Weekday(weekday)
		day.StartTime = nullTimeString(startTime)
		day.EndTime = nullTimeString(endTime)
		day.LunchStart = nullTimeStringPtr(lunchStart)
		day.LunchEnd = nullTimeStringPtr(lunchEnd)

		ps.Days = append(ps.Days, day)
	}

	if err := rows.Err(); err != nil {
		return domain.ProfessionalSchedule{}, fmt.Errorf("%w: GetByProfessional - rows error: %v", ErrScanRow, err)
	}

	return ps, nil
}

// UpsertWeek заменяет недельный шаблон профессионала целиком:
// удаляет старые строки и вставляет новые. Вызывать в транзакции,
// чтобы параллельные читатели не увидели полупустой шаблон.
func (r *Repository) UpsertWeek(ctx context.Context, professionalID int64, days []domain.WeekdaySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("weekday_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: UpsertWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(days) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("weekday_schedules").
		Columns(
			"professional_id",
			"weekday",
			"start_time",
			"end_time",
			"lunch_start",
			"lunch_end",
			"is_day_off",
		)

	for _, day := range days {
		insertBuilder = insertBuilder.Values(
			professionalID,
			int(day.Weekday),
			timeStringValue(day.StartTime),
			timeStringValue(day.EndTime),
			timeStringPtrValue(day.LunchStart),
			timeStringPtrValue(day.LunchEnd),
			day.IsDayOff,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: UpsertWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// nullTimeString конвертирует NULL в пустой TimeString.
// Время в выходные дни хранится как NULL.
func nullTimeString(v sql.NullString) types.TimeString {
	if !v.Valid {
		return ""
	}
	ts := types.TimeString("")
	if err := ts.Scan(v.String); err != nil {
		return ""
	}
	return ts
}

func nullTimeStringPtr(v sql.NullString) *types.TimeString {
	if !v.Valid {
		return nil
	}
	ts := nullTimeString(v)
	if ts.IsZero() {
		return nil
	}
	return &ts
}

// timeStringValue конвертирует пустой TimeString в NULL
func timeStringValue(ts types.TimeString) interface{} {
	if ts.IsZero() {
		return nil
	}
	return ts
}

func timeStringPtrValue(ts *types.TimeString) interface{} {
	if ts == nil || ts.IsZero() {
		return nil
	}
	return *ts
}
