package payslip

import (
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

// ComputeNet returns max(0, basic + allowances - deductions).
func ComputeNet(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	net := basic.Add(allowances).Sub(deductions)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ComputeNetFromInput applies ComputeNet to raw form values, treating blank
// or non-numeric input as 0.
func ComputeNetFromInput(basic, allowances, deductions string) decimal.Decimal {
	return ComputeNet(
		numeric.ParseOptionalNumber(basic, decimal.Zero),
		numeric.ParseOptionalNumber(allowances, decimal.Zero),
		numeric.ParseOptionalNumber(deductions, decimal.Zero),
	)
}

// TotalPayroll sums NetSalary across entries.
func TotalPayroll(entries []PayslipEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.NetSalary)
	}
	return total
}
