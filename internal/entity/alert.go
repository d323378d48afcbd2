package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AlertType string

const (
	AlertBudgetExceeded AlertType = "budget_exceeded"
	AlertHighSpending   AlertType = "high_spending"
	AlertNoIncome       AlertType = "no_income"
	AlertHighRecurring  AlertType = "high_recurring"
)

type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "high"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityLow    AlertSeverity = "low"
)

type Alert struct {
	Type       AlertType        `json:"type"`
	Severity   AlertSeverity    `json:"severity"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percentage string           `json:"percentage,omitempty"`
}

// EvaluateAlerts derives the qualitative alerts for one period summary. The
// rules fire independently except the first two: high_spending is only
// checked when the budget was not exceeded, so the two never co-occur. Empty
// summaries produce an empty list, never an error.
func EvaluateAlerts(s Summary) []Alert {
	alerts := []Alert{}

	if s.IsOverBudget {
		amount := s.OverBudgetAmount
		alerts = append(alerts, Alert{
			Type:     AlertBudgetExceeded,
			Severity: AlertSeverityHigh,
			Title:    "Budget Exceeded",
			Message:  fmt.Sprintf("You've exceeded your monthly budget by $%s", amount.StringFixed(2)),
			Amount:   &amount,
		})
	} else if spendingRatio := s.SpendingRatio(); s.TotalIncome.GreaterThan(decimal.Zero) &&
		spendingRatio.GreaterThan(decimal.NewFromFloat(0.8)) {
		pct := spendingRatio.Mul(decimal.NewFromInt(100)).StringFixed(1)
		alerts = append(alerts, Alert{
			Type:       AlertHighSpending,
			Severity:   AlertSeverityMedium,
			Title:      "High Spending Alert",
			Message:    fmt.Sprintf("You've spent %s%% of your monthly income", pct),
			Percentage: pct,
		})
	}

	if s.TotalIncome.IsZero() && s.TotalExpenses.GreaterThan(decimal.Zero) {
		alerts = append(alerts, Alert{
			Type:     AlertNoIncome,
			Severity: AlertSeverityHigh,
			Title:    "No Income Recorded",
			Message:  "You have expenses but no income recorded for this month",
		})
	}

	if recurringRatio := s.RecurringRatio(); s.TotalExpenses.GreaterThan(decimal.Zero) &&
		recurringRatio.GreaterThan(decimal.NewFromFloat(0.7)) {
		pct := recurringRatio.Mul(decimal.NewFromInt(100)).StringFixed(1)
		alerts = append(alerts, Alert{
			Type:       AlertHighRecurring,
			Severity:   AlertSeverityLow,
			Title:      "High Recurring Expenses",
			Message:    fmt.Sprintf("%s%% of your expenses are recurring", pct),
			Percentage: pct,
		})
	}

	return alerts
}
