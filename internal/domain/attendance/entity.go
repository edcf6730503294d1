package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// DayType enum, only meaningful when Status is present
type DayType string

const (
	DayTypeFull  DayType = "fullDay"
	DayTypeHalf  DayType = "halfDay"
	DayTypeExtra DayType = "extraHours"
)

func (d DayType) IsValid() bool {
	switch d {
	case DayTypeFull, DayTypeHalf, DayTypeExtra:
		return true
	}
	return false
}

// Attendance - persisted attendance record, immutable once created
type Attendance struct {
	ID          string
	Staff       string // reference to the staff record, not owned here
	StaffID     string
	Name        string
	Date        time.Time
	Status      Status
	DayType     *DayType
	HoursWorked *decimal.Decimal
	CreatedAt   time.Time
}

// NewAttendance builds an entity from a validated record, normalizing away
// fields that must not be stored.
func NewAttendance(staff string, r Record) Attendance {
	r = Normalize(r)

	a := Attendance{
		Staff:   staff,
		StaffID: r.StaffID,
		Name:    r.Name,
		Date:    r.Date,
		Status:  r.Status,
	}
	if r.DayType != "" {
		dayType := r.DayType
		a.DayType = &dayType
	}
	if r.HoursWorked.Valid {
		hours := r.HoursWorked.Value
		a.HoursWorked = &hours
	}
	return a
}
