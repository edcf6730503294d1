package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

func (r *payslipRepository) Create(ctx context.Context, entry payslip.PayslipEntry) (payslip.PayslipEntry, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payslip.PayslipEntry{}, fmt.Errorf("failed to generate payslip id: %w", err)
	}
	entry.ID = id.String()

	query := `
		INSERT INTO payslips (id, employee_name, month, basic, allowances, deductions, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeName, entry.Month,
		entry.Basic, entry.Allowances, entry.Deductions, entry.NetSalary,
	).Scan(&entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payslip.PayslipEntry{}, payslip.ErrPayslipAlreadyExists
		}
		return payslip.PayslipEntry{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return entry, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.PayslipEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, month, basic, allowances, deductions, net_salary, created_at
		FROM payslips
	`
	var args []interface{}
	if filter.Month != nil && *filter.Month != "" {
		query += " WHERE month = $1"
		args = append(args, *filter.Month)
	}
	query += " ORDER BY month DESC, employee_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	entries := make([]payslip.PayslipEntry, 0)
	for rows.Next() {
		var e payslip.PayslipEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeName, &e.Month,
			&e.Basic, &e.Allowances, &e.Deductions, &e.NetSalary, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}

	return entries, nil
}
