package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	projectRepo    project.ProjectRepository
	attendanceRepo attendance.AttendanceRepository
	deadlineLimit  int
	location       *time.Location
	now            func() time.Time
}

func NewDashboardService(
	projectRepo project.ProjectRepository,
	attendanceRepo attendance.AttendanceRepository,
	deadlineLimit int,
	location *time.Location,
	now func() time.Time,
) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	if deadlineLimit < 1 {
		deadlineLimit = dashboard.DefaultDeadlineLimit
	}
	return &DashboardServiceImpl{
		projectRepo:    projectRepo,
		attendanceRepo: attendanceRepo,
		deadlineLimit:  deadlineLimit,
		location:       location,
		now:            now,
	}
}

// GetDashboard fetches projects and the month's attendance in parallel and
// aggregates them. The attendance month defaults to the current one.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, query dashboard.DashboardQuery) (*dashboard.DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := datemath.CalendarDate(s.now(), s.location)
	month := today.Format(datemath.MonthLayout)
	if query.Month != nil {
		month = *query.Month
	}

	var (
		projects []project.Project
		records  []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.List(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{Month: &month})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := dashboard.Build(projects, records, today, query.LimitOr(s.deadlineLimit))
	resp := dashboard.NewDashboardResponse(counts, today.Format(datemath.InputLayout), month, query.Locale)
	return &resp, nil
}

// GetDeadlines implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDeadlines(ctx context.Context, query dashboard.DashboardQuery) (*dashboard.DeadlinesResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := datemath.CalendarDate(s.now(), s.location)
	ranked := dashboard.RankByDeadline(projects, today, query.LimitOr(s.deadlineLimit))
	return &dashboard.DeadlinesResponse{
		Today:     today.Format(datemath.InputLayout),
		Deadlines: dashboard.NewDeadlineItems(ranked, query.Locale),
	}, nil
}
