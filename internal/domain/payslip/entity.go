package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipEntry - one employee's payslip for one month
type PayslipEntry struct {
	ID           string
	EmployeeName string
	Month        string // YYYY-MM
	Basic        decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal // derived, see ComputeNet
	CreatedAt    time.Time
}

// NewPayslipEntry builds an entry with NetSalary derived from the inputs.
func NewPayslipEntry(employeeName, month string, basic, allowances, deductions decimal.Decimal) PayslipEntry {
	return PayslipEntry{
		EmployeeName: employeeName,
		Month:        month,
		Basic:        basic,
		Allowances:   allowances,
		Deductions:   deductions,
		NetSalary:    ComputeNet(basic, allowances, deductions),
	}
}
