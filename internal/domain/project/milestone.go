package project

import (
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

// MilestonePayment is one installment row of a project's payment plan.
type MilestonePayment struct {
	Amount      numeric.Optional `json:"amount"`
	Description string           `json:"description"`
	PaymentMode string           `json:"paymentMode"`
	Paid        bool             `json:"paid"`
}

// IsFilled reports whether any of amount, description or payment mode was
// entered. A row with only a description counts as filled.
func (m MilestonePayment) IsFilled() bool {
	return m.Amount.Valid ||
		strings.TrimSpace(m.Description) != "" ||
		strings.TrimSpace(m.PaymentMode) != ""
}

// FilterFilled keeps the filled rows in their original order.
func FilterFilled(entries []MilestonePayment) []MilestonePayment {
	filled := make([]MilestonePayment, 0, len(entries))
	for _, e := range entries {
		if e.IsFilled() {
			filled = append(filled, e)
		}
	}
	return filled
}

// TruncateToCount drops every row at index >= count. It never pads.
func TruncateToCount(entries []MilestonePayment, count int) []MilestonePayment {
	if count <= 0 {
		return []MilestonePayment{}
	}
	if len(entries) > count {
		entries = entries[:count]
	}
	out := make([]MilestonePayment, len(entries))
	copy(out, entries)
	return out
}

// PrepareForSave is the filter-then-truncate applied before persisting.
// Truncation is destructive: dropped rows are not recoverable.
func PrepareForSave(entries []MilestonePayment, count int) []MilestonePayment {
	return TruncateToCount(FilterFilled(entries), count)
}

// Progress summarizes how much of a project's cost has been paid.
type Progress struct {
	Percent    int             `json:"percent"`
	PaidCount  int             `json:"paidCount"`
	TotalCount int             `json:"totalCount"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// CalculateProgress derives paid/unpaid progress from the payment rows.
// Percent is round-half-up(100 * paid / total) and 0 for no rows; Remaining
// goes negative when the project is overpaid.
func CalculateProgress(entries []MilestonePayment, projectCost decimal.Decimal) Progress {
	p := Progress{
		TotalCount: len(entries),
		AmountPaid: decimal.Zero,
	}

	for _, e := range entries {
		if !e.Paid {
			continue
		}
		p.PaidCount++
		p.AmountPaid = p.AmountPaid.Add(e.Amount.OrZero())
	}

	if p.TotalCount > 0 {
		p.Percent = (200*p.PaidCount + p.TotalCount) / (2 * p.TotalCount)
	}
	p.Remaining = projectCost.Sub(p.AmountPaid)
	return p
}
