package project

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PROJECT DTOs ==========

type CreateProjectRequest struct {
	Name              string             `json:"name"`
	Client            string             `json:"client"`
	Category          string             `json:"category"`
	Status            string             `json:"status"`
	ProjectCost       numeric.Optional   `json:"projectCost"`
	Deadline          *string            `json:"deadlineDate,omitempty"` // YYYY-MM-DD
	Milestone         int                `json:"milestone"`
	MilestonePayments []MilestonePayment `json:"milestonePayments"`
	TeamMembers       TeamMembers        `json:"teamMembers"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.Missing("name"))
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.Missing("category"))
	} else {
		errs = append(errs, validateCategory(r.Category)...)
	}
	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	errs = append(errs, validateStatus(r.Status)...)
	errs = append(errs, validateCost(r.ProjectCost)...)
	errs = append(errs, validateMilestone(r.Milestone)...)
	if r.Deadline != nil {
		errs = append(errs, validateDeadline(*r.Deadline)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProjectRequest - every field is optional; nil leaves the stored value.
type UpdateProjectRequest struct {
	ID                string              `json:"-"`
	Name              *string             `json:"name,omitempty"`
	Client            *string             `json:"client,omitempty"`
	Category          *string             `json:"category,omitempty"`
	Status            *string             `json:"status,omitempty"`
	ProjectCost       *numeric.Optional   `json:"projectCost,omitempty"`
	Deadline          *string             `json:"deadlineDate,omitempty"` // YYYY-MM-DD, "" clears
	Milestone         *int                `json:"milestone,omitempty"`
	MilestonePayments *[]MilestonePayment `json:"milestonePayments,omitempty"`
	TeamMembers       *TeamMembers        `json:"teamMembers,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.Invalid("id", "id must be a valid UUID"))
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.Missing("name"))
	}
	if r.Category != nil {
		errs = append(errs, validateCategory(*r.Category)...)
	}
	if r.Status != nil {
		errs = append(errs, validateStatus(*r.Status)...)
	}
	if r.ProjectCost != nil {
		errs = append(errs, validateCost(*r.ProjectCost)...)
	}
	if r.Milestone != nil {
		errs = append(errs, validateMilestone(*r.Milestone)...)
	}
	if r.Deadline != nil && *r.Deadline != "" {
		errs = append(errs, validateDeadline(*r.Deadline)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.Invalid("id", "id must be a valid UUID"))
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.Missing("status"))
	} else {
		errs = append(errs, validateStatus(r.Status)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCategory(category string) validator.ValidationErrors {
	if !Category(strings.TrimSpace(category)).IsValid() {
		return validator.ValidationErrors{validator.Invalid("category", "category is not a known project category")}
	}
	return nil
}

func validateStatus(status string) validator.ValidationErrors {
	if !Status(strings.TrimSpace(status)).IsValid() {
		return validator.ValidationErrors{validator.Invalid("status", "status must be one of: active, onHold, completed")}
	}
	return nil
}

func validateCost(cost numeric.Optional) validator.ValidationErrors {
	if cost.OrZero().IsNegative() {
		return validator.ValidationErrors{validator.OutOfRange("projectCost", "projectCost must be non-negative")}
	}
	return nil
}

func validateMilestone(count int) validator.ValidationErrors {
	if count < MinMilestones || count > MaxMilestones {
		return validator.ValidationErrors{validator.OutOfRange("milestone",
			fmt.Sprintf("milestone must be between %d and %d", MinMilestones, MaxMilestones))}
	}
	return nil
}

func validateDeadline(deadline string) validator.ValidationErrors {
	if _, valid := validator.IsValidDate(strings.TrimSpace(deadline)); !valid {
		return validator.ValidationErrors{validator.Invalid("deadlineDate", "deadlineDate must be in YYYY-MM-DD format")}
	}
	return nil
}

type ProjectResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Client            string             `json:"client,omitempty"`
	Category          string             `json:"category"`
	Status            string             `json:"status"`
	ProjectCost       decimal.Decimal    `json:"projectCost"`
	Deadline          *string            `json:"deadlineDate,omitempty"`
	DaysRemaining     *int               `json:"daysRemaining,omitempty"`
	DeadlineDisplay   string             `json:"deadlineDisplay"`
	Milestone         int                `json:"milestone"`
	MilestonePayments []MilestonePayment `json:"milestonePayments"`
	TeamMembers       TeamMembers        `json:"teamMembers"`
	Progress          Progress           `json:"progress"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt"`
}

// Localize fills DeadlineDisplay for locale, NoDeadlineDisplay when the
// project has no deadline.
func (r *ProjectResponse) Localize(locale string) {
	deadline := ""
	if r.Deadline != nil {
		deadline = *r.Deadline
	}
	r.DeadlineDisplay = datemath.DisplayOrPlaceholder(deadline, locale, NoDeadlineDisplay)
}

type ListProjectResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	TotalCount int               `json:"totalCount"`
}

func (r *ListProjectResponse) Localize(locale string) {
	for i := range r.Projects {
		r.Projects[i].Localize(locale)
	}
}
