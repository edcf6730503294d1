package attendance

import "github.com/shopspring/decimal"

// StaffSummary aggregates one staff member's records for reporting.
type StaffSummary struct {
	StaffID       string          `json:"staffId"`
	Name          string          `json:"name"`
	PresentDays   int             `json:"presentDays"`
	AbsentDays    int             `json:"absentDays"`
	LeaveDays     int             `json:"leaveDays"`
	FullDays      int             `json:"fullDays"`
	HalfDays      int             `json:"halfDays"`
	ExtraHourDays int             `json:"extraHourDays"`
	HalfDayHours  decimal.Decimal `json:"halfDayHours"`
	ExtraHours    decimal.Decimal `json:"extraHours"`
}

// Summarize groups records by staff, in order of first appearance.
func Summarize(records []Attendance) []StaffSummary {
	index := make(map[string]int)
	summaries := make([]StaffSummary, 0)

	for _, rec := range records {
		i, ok := index[rec.StaffID]
		if !ok {
			i = len(summaries)
			index[rec.StaffID] = i
			summaries = append(summaries, StaffSummary{
				StaffID:      rec.StaffID,
				Name:         rec.Name,
				HalfDayHours: decimal.Zero,
				ExtraHours:   decimal.Zero,
			})
		}
		s := &summaries[i]

		switch rec.Status {
		case StatusAbsent:
			s.AbsentDays++
			continue
		case StatusLeave:
			s.LeaveDays++
			continue
		case StatusPresent:
			s.PresentDays++
		default:
			continue
		}

		if rec.DayType == nil {
			continue
		}
		switch *rec.DayType {
		case DayTypeFull:
			s.FullDays++
		case DayTypeHalf:
			s.HalfDays++
			if rec.HoursWorked != nil {
				s.HalfDayHours = s.HalfDayHours.Add(*rec.HoursWorked)
			}
		case DayTypeExtra:
			s.ExtraHourDays++
			if rec.HoursWorked != nil {
				s.ExtraHours = s.ExtraHours.Add(*rec.HoursWorked)
			}
		}
	}

	return summaries
}
