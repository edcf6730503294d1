package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// CreateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, _ := req.ToRecord()
	created, err := a.AttendanceRepository.Create(ctx, attendance.NewAttendance(req.Staff, record))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("attendance recorded",
		"attendance_id", created.ID,
		"staff_id", created.StaffID,
		"date", created.Date.Format(datemath.InputLayout),
		"status", created.Status,
	)
	return toAttendanceResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		TotalCount:  len(records),
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(r))
	}
	return resp, nil
}

// Summarize implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summarize(ctx context.Context, filter attendance.AttendanceFilter) (attendance.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	resp := attendance.SummaryResponse{Staff: attendance.Summarize(records)}
	if filter.Month != nil {
		resp.Month = *filter.Month
	}
	return resp, nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          a.ID,
		Staff:       a.Staff,
		StaffID:     a.StaffID,
		Name:        a.Name,
		Date:        a.Date.Format(datemath.InputLayout),
		Status:      string(a.Status),
		HoursWorked: a.HoursWorked,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if a.DayType != nil {
		dayType := string(*a.DayType)
		resp.DayType = &dayType
	}
	return resp
}
