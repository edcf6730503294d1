package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/sse"
)

// ChangeFeed publishes dashboard.ChangeEvent values on the SSE hub
type ChangeFeed struct {
	hub *sse.Hub
	now func() time.Time
}

func NewChangeFeed(hub *sse.Hub, now func() time.Time) *ChangeFeed {
	if now == nil {
		now = time.Now
	}
	return &ChangeFeed{hub: hub, now: now}
}

func (f *ChangeFeed) Publish(kind, id string) {
	f.hub.Publish(sse.Event{
		Topic: dashboard.TopicChanges,
		Event: kind,
		Data: dashboard.ChangeEvent{
			Kind: kind,
			ID:   id,
			At:   f.now().UTC().Format(time.RFC3339),
		},
	})
	slog.Debug("Dashboard change published", "kind", kind, "id", id)
}

func (f *ChangeFeed) Subscribe() (<-chan sse.Event, func()) {
	return f.hub.Subscribe(dashboard.TopicChanges)
}

type projectFeed struct {
	project.ProjectService
	feed *ChangeFeed
}

// WithProjectFeed publishes a change after every successful project write
func WithProjectFeed(svc project.ProjectService, feed *ChangeFeed) project.ProjectService {
	return &projectFeed{ProjectService: svc, feed: feed}
}

func (p *projectFeed) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	resp, err := p.ProjectService.CreateProject(ctx, req)
	if err == nil {
		p.feed.Publish(dashboard.ChangeProjectCreated, resp.ID)
	}
	return resp, err
}

func (p *projectFeed) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	resp, err := p.ProjectService.UpdateProject(ctx, req)
	if err == nil {
		p.feed.Publish(dashboard.ChangeProjectUpdated, resp.ID)
	}
	return resp, err
}

func (p *projectFeed) UpdateStatus(ctx context.Context, req project.UpdateStatusRequest) (project.ProjectResponse, error) {
	resp, err := p.ProjectService.UpdateStatus(ctx, req)
	if err == nil {
		p.feed.Publish(dashboard.ChangeProjectStatusChanged, resp.ID)
	}
	return resp, err
}

func (p *projectFeed) DeleteProject(ctx context.Context, id string) error {
	err := p.ProjectService.DeleteProject(ctx, id)
	if err == nil {
		p.feed.Publish(dashboard.ChangeProjectDeleted, id)
	}
	return err
}

type attendanceFeed struct {
	attendance.AttendanceService
	feed *ChangeFeed
}

func WithAttendanceFeed(svc attendance.AttendanceService, feed *ChangeFeed) attendance.AttendanceService {
	return &attendanceFeed{AttendanceService: svc, feed: feed}
}

func (a *attendanceFeed) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	resp, err := a.AttendanceService.CreateAttendance(ctx, req)
	if err == nil {
		a.feed.Publish(dashboard.ChangeAttendanceRecorded, resp.ID)
	}
	return resp, err
}

type payslipFeed struct {
	payslip.PayslipService
	feed *ChangeFeed
}

func WithPayslipFeed(svc payslip.PayslipService, feed *ChangeFeed) payslip.PayslipService {
	return &payslipFeed{PayslipService: svc, feed: feed}
}

func (p *payslipFeed) CreatePayslip(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	resp, err := p.PayslipService.CreatePayslip(ctx, req)
	if err == nil {
		p.feed.Publish(dashboard.ChangePayslipCreated, resp.ID)
	}
	return resp, err
}
