package payslip

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayslipRepository struct {
	entries []payslip.PayslipEntry
}

func (f *fakePayslipRepository) Create(ctx context.Context, e payslip.PayslipEntry) (payslip.PayslipEntry, error) {
	for _, existing := range f.entries {
		if existing.EmployeeName == e.EmployeeName && existing.Month == e.Month {
			return payslip.PayslipEntry{}, payslip.ErrPayslipAlreadyExists
		}
	}
	e.ID = "ps-1"
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakePayslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.PayslipEntry, error) {
	return f.entries, nil
}

func TestPayslipService_Calculate_BlankInputsCountAsZero(t *testing.T) {
	svc := NewPayslipService(&fakePayslipRepository{})

	resp, err := svc.Calculate(context.Background(), payslip.CalculateRequest{
		Basic:      numeric.FromInt(1000),
		Deductions: numeric.FromInt(1500),
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowances.IsZero())
	assert.True(t, resp.NetSalary.IsZero(), "net salary is clamped at zero")
}

func TestPayslipService_CreatePayslip(t *testing.T) {
	repo := &fakePayslipRepository{}
	svc := NewPayslipService(repo)
	req := payslip.CreatePayslipRequest{
		EmployeeName: " Asha Verma ",
		Month:        "2025-01",
		CalculateRequest: payslip.CalculateRequest{
			Basic:      numeric.FromInt(5000),
			Allowances: numeric.FromInt(750),
			Deductions: numeric.FromInt(250),
		},
	}

	resp, err := svc.CreatePayslip(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", resp.EmployeeName)
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5500)))

	_, err = svc.CreatePayslip(context.Background(), req)
	assert.ErrorIs(t, err, payslip.ErrPayslipAlreadyExists)

	list, err := svc.ListPayslips(context.Background(), payslip.PayslipFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
	assert.True(t, list.TotalPayroll.Equal(decimal.NewFromInt(5500)))
}

func TestPayslipService_CreatePayslip_Validation(t *testing.T) {
	repo := &fakePayslipRepository{}
	svc := NewPayslipService(repo)

	_, err := svc.CreatePayslip(context.Background(), payslip.CreatePayslipRequest{
		Month:            "01-2025",
		CalculateRequest: payslip.CalculateRequest{Basic: numeric.FromInt(-1)},
	})
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	assert.Contains(t, m, "employeeName")
	assert.Contains(t, m, "month")
	assert.Contains(t, m, "basic")
	assert.Empty(t, repo.entries)
}
