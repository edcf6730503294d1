package dashboard

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
)

const DefaultDeadlineLimit = 5

// Urgency bands a deadline by days remaining.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyCritical Urgency = "critical"
	UrgencySoon     Urgency = "soon"
	UrgencySafe     Urgency = "safe"
)

func UrgencyBand(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 7:
		return UrgencyCritical
	case days <= 30:
		return UrgencySoon
	default:
		return UrgencySafe
	}
}

// CountByCategory counts projects per category. Every known category is
// present, unknown ones are dropped.
func CountByCategory(projects []project.Project) map[project.Category]int {
	counts := make(map[project.Category]int, len(project.Categories))
	for _, c := range project.Categories {
		counts[c] = 0
	}
	for _, p := range projects {
		if _, ok := counts[p.Category]; ok {
			counts[p.Category]++
		}
	}
	return counts
}

type StatusCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	OnHold    int `json:"onHold"`
	Completed int `json:"completed"`
}

func CountByStatus(projects []project.Project) StatusCounts {
	c := StatusCounts{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case project.StatusActive:
			c.Active++
		case project.StatusOnHold:
			c.OnHold++
		case project.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// DeadlineItem is one row of the upcoming deadlines widget.
type DeadlineItem struct {
	ProjectID     string           `json:"projectId"`
	Name          string           `json:"name"`
	Category      project.Category `json:"category"`
	Deadline      time.Time        `json:"-"`
	DaysRemaining int              `json:"daysRemaining"`
	Urgency       Urgency          `json:"urgency"`
}

// RankByDeadline returns the active projects with a deadline, soonest first.
// Projects with the same days remaining keep their input order. A limit
// below 1 uses DefaultDeadlineLimit.
func RankByDeadline(projects []project.Project, today time.Time, limit int) []DeadlineItem {
	if limit < 1 {
		limit = DefaultDeadlineLimit
	}

	items := make([]DeadlineItem, 0, len(projects))
	for _, p := range projects {
		if p.Status != project.StatusActive || p.Deadline == nil {
			continue
		}
		days := datemath.DaysRemaining(*p.Deadline, today)
		items = append(items, DeadlineItem{
			ProjectID:     p.ID,
			Name:          p.Name,
			Category:      p.Category,
			Deadline:      *p.Deadline,
			DaysRemaining: days,
			Urgency:       UrgencyBand(days),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysRemaining < items[j].DaysRemaining
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// StaffAttendance is one bar of the attendance chart.
type StaffAttendance struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Leave   int    `json:"leave"`
}

// CountAttendanceByStaff groups records per staff in first-appearance order.
func CountAttendanceByStaff(records []attendance.Attendance) []StaffAttendance {
	index := make(map[string]int)
	out := make([]StaffAttendance, 0)

	for _, r := range records {
		i, ok := index[r.StaffID]
		if !ok {
			i = len(out)
			index[r.StaffID] = i
			out = append(out, StaffAttendance{StaffID: r.StaffID, Name: r.Name})
		}
		switch r.Status {
		case attendance.StatusPresent:
			out[i].Present++
		case attendance.StatusAbsent:
			out[i].Absent++
		case attendance.StatusLeave:
			out[i].Leave++
		}
	}
	return out
}

type AttendanceTotals struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}

func CountAttendanceTotals(records []attendance.Attendance) AttendanceTotals {
	var t AttendanceTotals
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			t.Present++
		case attendance.StatusAbsent:
			t.Absent++
		case attendance.StatusLeave:
			t.Leave++
		default:
			continue
		}
		t.Total++
	}
	return t
}

// DashboardCounts is the combined read-side aggregate behind the dashboard.
type DashboardCounts struct {
	Categories map[project.Category]int
	Statuses   StatusCounts
	Deadlines  []DeadlineItem
	Staff      []StaffAttendance
	Attendance AttendanceTotals
}

func Build(projects []project.Project, records []attendance.Attendance, today time.Time, limit int) DashboardCounts {
	return DashboardCounts{
		Categories: CountByCategory(projects),
		Statuses:   CountByStatus(projects),
		Deadlines:  RankByDeadline(projects, today, limit),
		Staff:      CountAttendanceByStaff(records),
		Attendance: CountAttendanceTotals(records),
	}
}
