package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertTypes(alerts []Alert) []AlertType {
	types := make([]AlertType, 0, len(alerts))
	for _, a := range alerts {
		types = append(types, a.Type)
	}
	return types
}

func TestEvaluateAlertsBudgetExceeded(t *testing.T) {
	s := NewSummary(decimal.NewFromInt(100), decimal.NewFromInt(300), decimal.Zero)

	alerts := EvaluateAlerts(s)

	require.Len(t, alerts, 1)
	assert.Equal(t, AlertBudgetExceeded, alerts[0].Type)
	assert.Equal(t, AlertSeverityHigh, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "$200.00")
	require.NotNil(t, alerts[0].Amount)
	assert.True(t, alerts[0].Amount.Equal(decimal.NewFromInt(200)))
}

func TestEvaluateAlertsHighSpendingNotWithBudgetExceeded(t *testing.T) {
	// 90% spent, under budget: high_spending fires, budget_exceeded does not.
	s := NewSummary(decimal.NewFromInt(1000), decimal.NewFromInt(900), decimal.Zero)

	alerts := EvaluateAlerts(s)

	require.Len(t, alerts, 1)
	assert.Equal(t, AlertHighSpending, alerts[0].Type)
	assert.Equal(t, AlertSeverityMedium, alerts[0].Severity)
	assert.Equal(t, "90.0", alerts[0].Percentage)
}

func TestEvaluateAlertsZeroIncomeWithExpenses(t *testing.T) {
	s := NewSummary(decimal.Zero, decimal.NewFromInt(500), decimal.Zero)

	alerts := EvaluateAlerts(s)
	types := alertTypes(alerts)

	assert.Contains(t, types, AlertBudgetExceeded)
	assert.Contains(t, types, AlertNoIncome)
	assert.NotContains(t, types, AlertHighSpending)
	require.Len(t, alerts, 2)

	for _, a := range alerts {
		if a.Type == AlertBudgetExceeded {
			require.NotNil(t, a.Amount)
			assert.True(t, a.Amount.Equal(decimal.NewFromInt(500)))
		}
	}
}

func TestEvaluateAlertsHighRecurring(t *testing.T) {
	s := NewSummary(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromInt(400))

	alerts := EvaluateAlerts(s)

	require.Len(t, alerts, 1)
	assert.Equal(t, AlertHighRecurring, alerts[0].Type)
	assert.Equal(t, AlertSeverityLow, alerts[0].Severity)
	assert.Equal(t, "80.0", alerts[0].Percentage)
}

func TestEvaluateAlertsRecurringAtThresholdDoesNotFire(t *testing.T) {
	// Exactly 70% recurring is not above the threshold.
	s := NewSummary(decimal.NewFromInt(1000), decimal.NewFromInt(30), decimal.NewFromInt(70))

	assert.Empty(t, EvaluateAlerts(s))
}

func TestEvaluateAlertsSpendingAtThresholdDoesNotFire(t *testing.T) {
	s := NewSummary(decimal.NewFromInt(1000), decimal.NewFromInt(800), decimal.Zero)

	assert.Empty(t, EvaluateAlerts(s))
}

func TestEvaluateAlertsCoOccurrence(t *testing.T) {
	// Over budget with dominant recurring costs: both alerts fire together.
	s := NewSummary(decimal.NewFromInt(100), decimal.NewFromInt(10), decimal.NewFromInt(190))

	types := alertTypes(EvaluateAlerts(s))

	assert.Contains(t, types, AlertBudgetExceeded)
	assert.Contains(t, types, AlertHighRecurring)
	assert.NotContains(t, types, AlertHighSpending)
}
