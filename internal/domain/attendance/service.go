package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CreateAttendance validates against the attendance rules and persists the record
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance returns records for a month and/or staff member
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Summarize returns per-staff counts for a month
	Summarize(ctx context.Context, filter AttendanceFilter) (SummaryResponse, error)
}
