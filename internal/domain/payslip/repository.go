package payslip

import "context"

type PayslipRepository interface {
	// Create inserts an entry; ErrPayslipAlreadyExists on a duplicate employee/month
	Create(ctx context.Context, entry PayslipEntry) (PayslipEntry, error)
	List(ctx context.Context, filter PayslipFilter) ([]PayslipEntry, error)
}
