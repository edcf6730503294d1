package attendance

import (
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// HalfDayMaxHours caps hoursWorked for a half day.
var HalfDayMaxHours = decimal.NewFromInt(4)

// Record is the input the attendance rules operate on. An empty DayType
// and a blank HoursWorked mean the field was not supplied.
type Record struct {
	StaffID     string
	Name        string
	Date        time.Time
	Status      Status
	DayType     DayType
	HoursWorked numeric.Optional
}

// Requirement describes which follow-up fields a status/day type needs.
type Requirement struct {
	DayTypeRequired bool
	HoursRequired   bool
	// MaxHours is unset when no upper bound applies.
	MaxHours decimal.NullDecimal
}

// RequirementFor walks the status -> day type state machine.
func RequirementFor(status Status, dayType DayType) Requirement {
	if status != StatusPresent {
		return Requirement{}
	}

	req := Requirement{DayTypeRequired: true}
	switch dayType {
	case DayTypeHalf:
		req.HoursRequired = true
		req.MaxHours = decimal.NewNullDecimal(HalfDayMaxHours)
	case DayTypeExtra:
		// extra hours are unbounded
		req.HoursRequired = true
	}
	return req
}

// Validate checks a record against the attendance rules. Fields that do not
// apply to the status (dayType/hours for absent or leave, hours for a full
// day) are ignored rather than rejected.
func Validate(r Record) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.Missing("staffId"))
	}
	if r.Date.IsZero() {
		errs = append(errs, validator.Missing("date"))
	}

	switch {
	case r.Status == "":
		errs = append(errs, validator.Missing("status"))
	case !r.Status.IsValid():
		errs = append(errs, validator.Invalid("status", "status must be one of: present, absent, leave"))
	default:
		errs = append(errs, validateDay(r)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDay(r Record) validator.ValidationErrors {
	var errs validator.ValidationErrors

	req := RequirementFor(r.Status, r.DayType)
	if !req.DayTypeRequired {
		return nil
	}

	if r.DayType == "" {
		return append(errs, validator.Missing("dayType"))
	}
	if !r.DayType.IsValid() {
		return append(errs, validator.Invalid("dayType", "dayType must be one of: fullDay, halfDay, extraHours"))
	}
	if !req.HoursRequired {
		return nil
	}

	if !r.HoursWorked.Valid {
		return append(errs, validator.Missing("hoursWorked"))
	}
	hours := r.HoursWorked.Value
	if !hours.IsPositive() {
		return append(errs, validator.OutOfRange("hoursWorked", "hoursWorked must be greater than 0"))
	}
	if req.MaxHours.Valid && hours.GreaterThan(req.MaxHours.Decimal) {
		return append(errs, validator.OutOfRange("hoursWorked", "hoursWorked must not exceed "+req.MaxHours.Decimal.String()+" for a half day"))
	}
	return nil
}

// Normalize drops the fields a record must not carry for its status.
func Normalize(r Record) Record {
	if r.Status != StatusPresent {
		r.DayType = ""
		r.HoursWorked = numeric.Optional{}
		return r
	}
	if !RequirementFor(r.Status, r.DayType).HoursRequired {
		r.HoursWorked = numeric.Optional{}
	}
	return r
}
