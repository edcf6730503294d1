package dashboard

import (
	"strconv"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Today      string                 `json:"today"` // Format: "YYYY-MM-DD"
	Month      string                 `json:"month"` // attendance month, "YYYY-MM"
	Categories []CategoryCount        `json:"categories"`
	Statuses   StatusCounts           `json:"statuses"`
	Deadlines  []DeadlineItemResponse `json:"deadlines"`
	Staff      []StaffAttendance      `json:"staffAttendance"`
	Attendance AttendanceTotals       `json:"attendanceTotals"`
}

// CategoryCount keeps the fixed category order for charts
type CategoryCount struct {
	Category project.Category `json:"category"`
	Count    int              `json:"count"`
}

type DeadlineItemResponse struct {
	DeadlineItem
	DeadlineDate    string `json:"deadlineDate"`
	DeadlineDisplay string `json:"deadlineDisplay"`
}

type DeadlinesResponse struct {
	Today     string                 `json:"today"`
	Deadlines []DeadlineItemResponse `json:"deadlines"`
}

// DashboardQuery - ?month=YYYY-MM&limit=N&locale=en-GB
type DashboardQuery struct {
	Month  *string
	Limit  string
	Locale string
}

func (q *DashboardQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Month != nil {
		if _, valid := validator.IsValidMonth(*q.Month); !valid {
			errs = append(errs, validator.Invalid("month", "month must be in YYYY-MM format"))
		}
	}
	if q.Limit != "" {
		if n, err := strconv.Atoi(q.Limit); err != nil || n < 1 {
			errs = append(errs, validator.OutOfRange("limit", "limit must be a positive integer"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LimitOr returns the parsed limit, or def when none was given. Malformed
// limits never get here, Validate rejects them.
func (q DashboardQuery) LimitOr(def int) int {
	n, err := strconv.Atoi(q.Limit)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func NewDashboardResponse(counts DashboardCounts, today, month, locale string) DashboardResponse {
	categories := make([]CategoryCount, 0, len(project.Categories))
	for _, c := range project.Categories {
		categories = append(categories, CategoryCount{Category: c, Count: counts.Categories[c]})
	}

	return DashboardResponse{
		Today:      today,
		Month:      month,
		Categories: categories,
		Statuses:   counts.Statuses,
		Deadlines:  NewDeadlineItems(counts.Deadlines, locale),
		Staff:      counts.Staff,
		Attendance: counts.Attendance,
	}
}

// NewDeadlineItems renders each deadline for date inputs and for display in
// locale (en-US when empty or unsupported).
func NewDeadlineItems(items []DeadlineItem, locale string) []DeadlineItemResponse {
	out := make([]DeadlineItemResponse, 0, len(items))
	for _, item := range items {
		date := item.Deadline.Format(datemath.InputLayout)
		out = append(out, DeadlineItemResponse{
			DeadlineItem:    item,
			DeadlineDate:    date,
			DeadlineDisplay: datemath.DisplayOrPlaceholder(date, locale, project.NoDeadlineDisplay),
		})
	}
	return out
}
