package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func deadlineIn(days int) *time.Time {
	d := today.AddDate(0, 0, days)
	return &d
}

func TestUrgencyBand(t *testing.T) {
	cases := map[int]Urgency{
		-1: UrgencyOverdue,
		0:  UrgencyCritical,
		7:  UrgencyCritical,
		8:  UrgencySoon,
		30: UrgencySoon,
		31: UrgencySafe,
	}
	for days, want := range cases {
		assert.Equal(t, want, UrgencyBand(days), "days %d", days)
	}
}

func TestCountByCategory_ZeroFilled(t *testing.T) {
	projects := []project.Project{
		{Category: project.CategoryWebDevelopment},
		{Category: project.CategoryWebDevelopment},
		{Category: project.CategoryConsulting},
		{Category: "legacyCategory"},
	}

	counts := CountByCategory(projects)
	assert.Len(t, counts, len(project.Categories))
	assert.Equal(t, 2, counts[project.CategoryWebDevelopment])
	assert.Equal(t, 1, counts[project.CategoryConsulting])
	assert.Equal(t, 0, counts[project.CategoryMobileApp])
	assert.NotContains(t, counts, project.Category("legacyCategory"))

	assert.Len(t, CountByCategory(nil), len(project.Categories))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]project.Project{
		{Status: project.StatusActive},
		{Status: project.StatusActive},
		{Status: project.StatusOnHold},
		{Status: project.StatusCompleted},
	})
	assert.Equal(t, StatusCounts{Total: 4, Active: 2, OnHold: 1, Completed: 1}, counts)
}

func TestRankByDeadline(t *testing.T) {
	projects := []project.Project{
		{ID: "far", Status: project.StatusActive, Deadline: deadlineIn(40)},
		{ID: "done", Status: project.StatusCompleted, Deadline: deadlineIn(1)},
		{ID: "none", Status: project.StatusActive},
		{ID: "late", Status: project.StatusActive, Deadline: deadlineIn(-9)},
		{ID: "tie-a", Status: project.StatusActive, Deadline: deadlineIn(10)},
		{ID: "tie-b", Status: project.StatusActive, Deadline: deadlineIn(10)},
		{ID: "held", Status: project.StatusOnHold, Deadline: deadlineIn(2)},
	}

	got := RankByDeadline(projects, today, 10)
	require.Len(t, got, 4)

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ProjectID)
	}
	assert.Equal(t, []string{"late", "tie-a", "tie-b", "far"}, ids)
	assert.Equal(t, -9, got[0].DaysRemaining)
	assert.Equal(t, UrgencyOverdue, got[0].Urgency)
	assert.Equal(t, UrgencySoon, got[1].Urgency)
	assert.Equal(t, UrgencySafe, got[3].Urgency)
}

func TestRankByDeadline_Limit(t *testing.T) {
	projects := make([]project.Project, 0, 8)
	for i := 0; i < 8; i++ {
		projects = append(projects, project.Project{Status: project.StatusActive, Deadline: deadlineIn(i)})
	}

	assert.Len(t, RankByDeadline(projects, today, 0), DefaultDeadlineLimit)
	assert.Len(t, RankByDeadline(projects, today, 3), 3)
	assert.Empty(t, RankByDeadline(nil, today, 3))
}

func TestCountAttendanceByStaff(t *testing.T) {
	records := []attendance.Attendance{
		{StaffID: "B", Name: "Bela", Status: attendance.StatusPresent},
		{StaffID: "A", Name: "Arun", Status: attendance.StatusLeave},
		{StaffID: "B", Name: "Bela", Status: attendance.StatusAbsent},
		{StaffID: "B", Name: "Bela", Status: attendance.StatusPresent},
	}

	got := CountAttendanceByStaff(records)
	assert.Equal(t, []StaffAttendance{
		{StaffID: "B", Name: "Bela", Present: 2, Absent: 1},
		{StaffID: "A", Name: "Arun", Leave: 1},
	}, got)

	totals := CountAttendanceTotals(records)
	assert.Equal(t, AttendanceTotals{Present: 2, Absent: 1, Leave: 1, Total: 4}, totals)
}

func TestNewDashboardResponse_KeepsCategoryOrder(t *testing.T) {
	counts := Build([]project.Project{{Category: project.CategoryConsulting, Status: project.StatusActive, Deadline: deadlineIn(3)}}, nil, today, 5)
	resp := NewDashboardResponse(counts, "2025-01-10", "2025-01", "en-GB")

	require.Len(t, resp.Categories, len(project.Categories))
	for i, c := range project.Categories {
		assert.Equal(t, c, resp.Categories[i].Category)
	}
	assert.Equal(t, 1, resp.Categories[4].Count)
	require.Len(t, resp.Deadlines, 1)
	assert.Equal(t, "2025-01-13", resp.Deadlines[0].DeadlineDate)
	assert.Equal(t, "13 January 2025", resp.Deadlines[0].DeadlineDisplay)
	assert.NotNil(t, resp.Staff)
}

func TestDashboardQuery_Validate(t *testing.T) {
	bad := "2025-1"
	q := DashboardQuery{Month: &bad}
	assert.True(t, errors.Is(q.Validate(), validator.ErrInvalidValue))

	for _, limit := range []string{"zero", "0", "-2", "1.5"} {
		q = DashboardQuery{Limit: limit}
		assert.True(t, errors.Is(q.Validate(), validator.ErrOutOfRange), "limit %q", limit)
	}

	q = DashboardQuery{Limit: "3"}
	assert.NoError(t, q.Validate())
	assert.Equal(t, 3, q.LimitOr(5))

	q = DashboardQuery{}
	assert.NoError(t, q.Validate())
	assert.Equal(t, 5, q.LimitOr(5))
}

func TestRankByDeadline_FarDeadlines(t *testing.T) {
	at := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return &d
	}
	projects := []project.Project{
		{ID: "y3000", Status: project.StatusActive, Deadline: at("3000-01-10")},
		{ID: "y2400", Status: project.StatusActive, Deadline: at("2400-01-10")},
		{ID: "y1700", Status: project.StatusActive, Deadline: at("1700-01-01")},
		{ID: "soon", Status: project.StatusActive, Deadline: deadlineIn(3)},
	}

	got := RankByDeadline(projects, today, 10)
	require.Len(t, got, 4)

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ProjectID)
	}
	assert.Equal(t, []string{"y1700", "soon", "y2400", "y3000"}, ids)
	assert.Equal(t, 136965, got[2].DaysRemaining)
	assert.Equal(t, 356111, got[3].DaysRemaining)
}

func TestNewDeadlineItems_Display(t *testing.T) {
	items := []DeadlineItem{{ProjectID: "p1", Deadline: *deadlineIn(5)}}

	assert.Equal(t, "Jan 15, 2025", NewDeadlineItems(items, "")[0].DeadlineDisplay)
	assert.Equal(t, "15 Januari 2025", NewDeadlineItems(items, "id-ID")[0].DeadlineDisplay)
}
