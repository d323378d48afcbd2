package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSummaryIdentities(t *testing.T) {
	s := NewSummary(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(300),
		decimal.NewFromInt(200),
	)

	assert.True(t, s.TotalExpenses.Equal(s.OneTimeExpenses.Add(s.RecurringExpenses)))
	assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpenses)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.IsPositive)
	assert.False(t, s.IsOverBudget)
	assert.True(t, s.OverBudgetAmount.IsZero())
}

func TestNewSummaryOverBudget(t *testing.T) {
	s := NewSummary(
		decimal.NewFromInt(100),
		decimal.NewFromInt(250),
		decimal.NewFromInt(50),
	)

	assert.True(t, s.IsOverBudget)
	assert.False(t, s.IsPositive)
	assert.True(t, s.OverBudgetAmount.Equal(decimal.NewFromInt(200)))
}

func TestNewSummaryEmptyPeriod(t *testing.T) {
	s := NewSummary(decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.IsPositive)
	assert.False(t, s.IsOverBudget)
	assert.True(t, s.OverBudgetAmount.IsZero())
	assert.Empty(t, EvaluateAlerts(s))
}

func TestSpendingRatioGuardsZeroIncome(t *testing.T) {
	s := NewSummary(decimal.Zero, decimal.NewFromInt(500), decimal.Zero)

	assert.True(t, s.SpendingRatio().IsZero())
}

func TestRecurringRatioGuardsZeroExpenses(t *testing.T) {
	s := NewSummary(decimal.NewFromInt(100), decimal.Zero, decimal.Zero)

	assert.True(t, s.RecurringRatio().IsZero())
}

func TestRecurringRatio(t *testing.T) {
	s := NewSummary(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(20),
		decimal.NewFromInt(80),
	)

	assert.True(t, s.RecurringRatio().Equal(decimal.NewFromFloat(0.8)))
}
