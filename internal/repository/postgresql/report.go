package postgresql

import (
	"context"
	"fmt"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-app/absensi-backend-go/internal/domain/report"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// filterWhere builds the WHERE clause shared by the listing and the summary,
// so both always describe the same record set.
func filterWhere(rf report.ResolvedFilter) (string, []interface{}) {
	where := "a.deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if rf.Start != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *rf.Start)
		argIdx++
	}
	if rf.End != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *rf.End)
		argIdx++
	}
	if rf.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *rf.EmployeeID)
	}

	return where, args
}

// ListAttendance implements report.ReportRepository.
func (r *reportRepository) ListAttendance(ctx context.Context, rf report.ResolvedFilter, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := filterWhere(rf)

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count report records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query report records: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report record: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// Summarize implements report.ReportRepository.
// All three counts come from one statement, so they describe a single
// snapshot and completed + pending always equals total.
func (r *reportRepository) Summarize(ctx context.Context, rf report.ResolvedFilter) (report.Summary, error) {
	q := GetQuerier(ctx, r.db)

	where, args := filterWhere(rf)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE a.check_out_time IS NOT NULL),
			COUNT(*) FILTER (WHERE a.check_out_time IS NULL)
		FROM attendances a
		WHERE ` + where

	var summary report.Summary
	err := q.QueryRow(ctx, query, args...).Scan(
		&summary.TotalRecords,
		&summary.CompletedCount,
		&summary.PendingCount,
	)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to summarize report records: %w", err)
	}

	summary.FilterApplied = rf.Description
	return summary, nil
}
