package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	newAttendance.ID = id.String()

	query := `
		INSERT INTO attendances (id, staff, staff_id, name, date, status, day_type, hours_worked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		newAttendance.ID,
		nullIfEmpty(newAttendance.Staff),
		newAttendance.StaffID,
		newAttendance.Name,
		newAttendance.Date,
		newAttendance.Status,
		newAttendance.DayType,
		newAttendance.HoursWorked,
	).Scan(&newAttendance.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyRecorded
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)

	if filter.Month != nil && *filter.Month != "" {
		month, err := datemath.ParseMonth(*filter.Month)
		if err != nil {
			return nil, err
		}
		start, end := datemath.MonthRange(month)
		args = append(args, start, end)
		conditions = append(conditions, fmt.Sprintf("date >= $%d AND date < $%d", len(args)-1, len(args)))
	}
	if filter.StaffID != nil && *filter.StaffID != "" {
		args = append(args, *filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("staff_id = $%d", len(args)))
	}

	query := `
		SELECT id, COALESCE(staff, ''), staff_id, name, date, status, day_type, hours_worked, created_at
		FROM attendances
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC, created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.Staff, &att.StaffID, &att.Name, &att.Date,
			&att.Status, &att.DayType, &att.HoursWorked, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
