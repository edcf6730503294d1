package payslip

import (
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateRequest carries the three raw inputs of the payslip form. Blank
// or non-numeric amounts count as 0.
type CalculateRequest struct {
	Basic      numeric.Optional `json:"basic"`
	Allowances numeric.Optional `json:"allowances"`
	Deductions numeric.Optional `json:"deductions"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Basic.OrZero().IsNegative() {
		errs = append(errs, validator.OutOfRange("basic", "must be non-negative"))
	}
	if r.Allowances.OrZero().IsNegative() {
		errs = append(errs, validator.OutOfRange("allowances", "must be non-negative"))
	}
	if r.Deductions.OrZero().IsNegative() {
		errs = append(errs, validator.OutOfRange("deductions", "must be non-negative"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateResponse struct {
	Basic      decimal.Decimal `json:"basic"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"netSalary"`
}

type CreatePayslipRequest struct {
	EmployeeName string `json:"employeeName"`
	Month        string `json:"month"` // YYYY-MM
	CalculateRequest
}

func (r *CreatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.Missing("employeeName"))
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.Missing("month"))
	} else if _, valid := validator.IsValidMonth(strings.TrimSpace(r.Month)); !valid {
		errs = append(errs, validator.Invalid("month", "month must be in YYYY-MM format"))
	}

	if err := r.CalculateRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID           string          `json:"id"`
	EmployeeName string          `json:"employeeName"`
	Month        string          `json:"month"`
	Basic        decimal.Decimal `json:"basic"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"netSalary"`
	CreatedAt    string          `json:"createdAt"`
}

type PayslipFilter struct {
	Month *string `json:"month,omitempty"`
}

func (f *PayslipFilter) Validate() error {
	if f.Month != nil && *f.Month != "" {
		if _, valid := validator.IsValidMonth(*f.Month); !valid {
			return validator.ValidationErrors{validator.Invalid("month", "month must be in YYYY-MM format")}
		}
	}
	return nil
}

type ListPayslipResponse struct {
	Payslips     []PayslipResponse `json:"payslips"`
	TotalCount   int               `json:"totalCount"`
	TotalPayroll decimal.Decimal   `json:"totalPayroll"`
}
