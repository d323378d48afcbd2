package entity

import (
	"github.com/shopspring/decimal"
)

// Summary is a pure projection over one user's records for one period. It is
// recomputed on every query and never persisted.
type Summary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	OneTimeExpenses   decimal.Decimal `json:"oneTimeExpenses"`
	RecurringExpenses decimal.Decimal `json:"recurringExpenses"`
	Balance           decimal.Decimal `json:"balance"`
	IsPositive        bool            `json:"isPositive"`
	IsOverBudget      bool            `json:"isOverBudget"`
	OverBudgetAmount  decimal.Decimal `json:"overBudgetAmount"`
}

// NewSummary derives every dependent field from the three raw totals, so the
// balance identity holds exactly: Balance == TotalIncome - TotalExpenses and
// TotalExpenses == OneTimeExpenses + RecurringExpenses.
func NewSummary(totalIncome, oneTimeExpenses, recurringExpenses decimal.Decimal) Summary {
	totalExpenses := oneTimeExpenses.Add(recurringExpenses)
	balance := totalIncome.Sub(totalExpenses)

	overBudgetAmount := decimal.Zero
	isOverBudget := totalExpenses.GreaterThan(totalIncome)
	if isOverBudget {
		overBudgetAmount = totalExpenses.Sub(totalIncome)
	}

	return Summary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		OneTimeExpenses:   oneTimeExpenses,
		RecurringExpenses: recurringExpenses,
		Balance:           balance,
		IsPositive:        balance.GreaterThanOrEqual(decimal.Zero),
		IsOverBudget:      isOverBudget,
		OverBudgetAmount:  overBudgetAmount,
	}
}

// SpendingRatio is totalExpenses / totalIncome, zero when no income was
// recorded. Ratios guard their denominator, never NaN.
func (s Summary) SpendingRatio() decimal.Decimal {
	if s.TotalIncome.IsZero() {
		return decimal.Zero
	}
	return s.TotalExpenses.Div(s.TotalIncome)
}

// RecurringRatio is recurringExpenses / totalExpenses, zero when there are no
// expenses at all.
func (s Summary) RecurringRatio() decimal.Decimal {
	if s.TotalExpenses.IsZero() {
		return decimal.Zero
	}
	return s.RecurringExpenses.Div(s.TotalExpenses)
}
