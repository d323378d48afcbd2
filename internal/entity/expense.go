package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseKind string

const (
	ExpenseKindOneTime   ExpenseKind = "one_time"
	ExpenseKindRecurring ExpenseKind = "recurring"
)

func IsValidExpenseKind(kind string) bool {
	switch ExpenseKind(kind) {
	case ExpenseKindOneTime, ExpenseKindRecurring:
		return true
	default:
		return false
	}
}

type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        ExpenseKind     `json:"kind"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	ReceiptURL  string          `json:"receipt_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ActiveInPeriod reports whether a recurring expense contributes its cost to
// the closed interval [periodStart, periodEnd]. The full amount counts once
// per overlapping period; a nil EndDate means the expense is open-ended.
// One-time expenses are never resolved through here, they are range-filtered
// on their single date instead.
func (e Expense) ActiveInPeriod(periodStart, periodEnd time.Time) bool {
	if e.Kind != ExpenseKindRecurring {
		return false
	}

	if e.StartDate.After(periodEnd) {
		return false
	}

	if e.EndDate != nil && e.EndDate.Before(periodStart) {
		return false
	}

	return true
}
