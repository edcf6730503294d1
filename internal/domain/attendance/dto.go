package attendance

import (
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	Staff       string           `json:"staff"`
	StaffID     string           `json:"staffId"`
	Name        string           `json:"name"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Status      string           `json:"status"`
	DayType     *string          `json:"dayType,omitempty"`
	HoursWorked numeric.Optional `json:"hoursWorked"`
}

// ToRecord converts the request into a rules record. Only the date can fail
// to convert; everything else is checked by Validate.
func (r *CreateAttendanceRequest) ToRecord() (Record, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	record := Record{
		StaffID:     strings.TrimSpace(r.StaffID),
		Name:        strings.TrimSpace(r.Name),
		Status:      Status(strings.TrimSpace(r.Status)),
		HoursWorked: r.HoursWorked,
	}
	if r.DayType != nil {
		record.DayType = DayType(strings.TrimSpace(*r.DayType))
	}

	if !validator.IsEmpty(r.Date) {
		date, ok := validator.IsValidDate(strings.TrimSpace(r.Date))
		if !ok {
			errs = append(errs, validator.Invalid("date", "date must be in YYYY-MM-DD format"))
		} else {
			record.Date = date
		}
	}

	return record, errs
}

func (r *CreateAttendanceRequest) Validate() error {
	record, errs := r.ToRecord()
	dateReported := len(errs) > 0

	if err := Validate(record); err != nil {
		ruleErrs := err.(validator.ValidationErrors)
		for _, e := range ruleErrs {
			// a malformed date is already reported
			if e.Field == "date" && dateReported {
				continue
			}
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string           `json:"id"`
	Staff       string           `json:"staff,omitempty"`
	StaffID     string           `json:"staffId"`
	Name        string           `json:"name"`
	Date        string           `json:"date"`
	Status      string           `json:"status"`
	DayType     *string          `json:"dayType,omitempty"`
	HoursWorked *decimal.Decimal `json:"hoursWorked,omitempty"`
	CreatedAt   string           `json:"createdAt"`
}

type AttendanceFilter struct {
	Month   *string `json:"month,omitempty"` // YYYY-MM
	StaffID *string `json:"staffId,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if _, valid := validator.IsValidMonth(*f.Month); !valid {
			errs = append(errs, validator.Invalid("month", "month must be in YYYY-MM format"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int                  `json:"totalCount"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type SummaryResponse struct {
	Month string         `json:"month,omitempty"`
	Staff []StaffSummary `json:"staff"`
}
