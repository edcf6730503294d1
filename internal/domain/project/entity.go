package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category enum
type Category string

const (
	CategoryWebDevelopment   Category = "webDevelopment"
	CategoryMobileApp        Category = "mobileApp"
	CategoryUIUXDesign       Category = "uiuxDesign"
	CategoryDigitalMarketing Category = "digitalMarketing"
	CategoryConsulting       Category = "consulting"
)

// Categories lists the fixed category set in display order.
var Categories = []Category{
	CategoryWebDevelopment,
	CategoryMobileApp,
	CategoryUIUXDesign,
	CategoryDigitalMarketing,
	CategoryConsulting,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status enum
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "onHold"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// NoDeadlineDisplay is shown in place of a missing deadline
const NoDeadlineDisplay = "Not specified"

const (
	MinMilestones = 1
	MaxMilestones = 10
)

// Project - client project with a milestone payment plan
type Project struct {
	ID                string
	Name              string
	Client            string
	Category          Category
	Status            Status
	ProjectCost       decimal.Decimal
	Deadline          *time.Time
	Milestone         int
	MilestonePayments []MilestonePayment
	TeamMembers       TeamMembers
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
