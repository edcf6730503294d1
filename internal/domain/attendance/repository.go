package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a record; ErrAttendanceAlreadyRecorded when staff/date already exists
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// List returns records ordered by date then creation time
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
