package payslip

import "context"

type PayslipService interface {
	// Calculate recomputes the net salary without persisting anything
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error)
	CreatePayslip(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)
}
