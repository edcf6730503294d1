package payslip

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
)

type PayslipServiceImpl struct {
	payslip.PayslipRepository
}

func NewPayslipService(payslipRepository payslip.PayslipRepository) payslip.PayslipService {
	return &PayslipServiceImpl{
		PayslipRepository: payslipRepository,
	}
}

// Calculate implements payslip.PayslipService.
func (s *PayslipServiceImpl) Calculate(ctx context.Context, req payslip.CalculateRequest) (payslip.CalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.CalculateResponse{}, err
	}

	basic, allowances, deductions := req.Basic.OrZero(), req.Allowances.OrZero(), req.Deductions.OrZero()
	return payslip.CalculateResponse{
		Basic:      basic,
		Allowances: allowances,
		Deductions: deductions,
		NetSalary:  payslip.ComputeNet(basic, allowances, deductions),
	}, nil
}

// CreatePayslip implements payslip.PayslipService.
func (s *PayslipServiceImpl) CreatePayslip(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	entry := payslip.NewPayslipEntry(
		strings.TrimSpace(req.EmployeeName),
		strings.TrimSpace(req.Month),
		req.Basic.OrZero(),
		req.Allowances.OrZero(),
		req.Deductions.OrZero(),
	)

	created, err := s.PayslipRepository.Create(ctx, entry)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	slog.Info("payslip created", "payslip_id", created.ID, "month", created.Month, "net_salary", created.NetSalary.String())
	return toPayslipResponse(created), nil
}

// ListPayslips implements payslip.PayslipService.
func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	if err := filter.Validate(); err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	entries, err := s.PayslipRepository.List(ctx, filter)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	resp := payslip.ListPayslipResponse{
		Payslips:     make([]payslip.PayslipResponse, 0, len(entries)),
		TotalCount:   len(entries),
		TotalPayroll: payslip.TotalPayroll(entries),
	}
	for _, e := range entries {
		resp.Payslips = append(resp.Payslips, toPayslipResponse(e))
	}
	return resp, nil
}

func toPayslipResponse(e payslip.PayslipEntry) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		ID:           e.ID,
		EmployeeName: e.EmployeeName,
		Month:        e.Month,
		Basic:        e.Basic,
		Allowances:   e.Allowances,
		Deductions:   e.Deductions,
		NetSalary:    e.NetSalary,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}
