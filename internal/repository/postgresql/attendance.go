package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The attendances table carries a partial unique index:
//
//	CREATE UNIQUE INDEX attendances_one_pending_per_day
//	ON attendances (employee_id, date)
//	WHERE check_out_time IS NULL AND deleted_at IS NULL;
//
// CreatePending and CompleteOpen lean on it so that concurrent requests for
// the same employee and day cannot both succeed.
type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.latitude, a.longitude, a.created_at, a.updated_at, a.deleted_at,
	e.name AS employee_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Latitude, &att.Longitude, &att.CreatedAt, &att.UpdatedAt, &att.DeletedAt,
		&att.EmployeeName,
	)
	return att, err
}

// CreatePending implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreatePending(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_time, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.CheckInTime,
		att.Latitude,
		att.Longitude,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// CompleteOpen implements attendance.AttendanceRepository.
func (a *attendanceRepository) CompleteOpen(ctx context.Context, employeeID string, day time.Time, checkOut time.Time, latitude, longitude string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances a
		SET check_out_time = $1, latitude = $2, longitude = $3, updated_at = NOW()
		FROM employees e
		WHERE a.employee_id = $4
		  AND a.date = $5
		  AND a.check_out_time IS NULL
		  AND a.deleted_at IS NULL
		  AND e.id = a.employee_id
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, checkOut, latitude, longitude, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to complete attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.deleted_at IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForEmployee(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.employee_id = $1 AND a.deleted_at IS NULL"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 10
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// MonthlyTotalsForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) MonthlyTotalsForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (attendance.MonthlyTotals, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(
				FLOOR(EXTRACT(EPOCH FROM (check_out_time - check_in_time)) / 60)
			) FILTER (WHERE check_out_time IS NOT NULL), 0)::bigint
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND deleted_at IS NULL
	`

	var totals attendance.MonthlyTotals
	err := q.QueryRow(ctx, query, employeeID, monthStart, monthEnd).Scan(&totals.WorkDays, &totals.TotalMinutes)
	if err != nil {
		return attendance.MonthlyTotals{}, fmt.Errorf("failed to aggregate monthly totals: %w", err)
	}

	return totals, nil
}
