package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestActiveInPeriodOpenEnded(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	exp := Expense{
		Kind:      ExpenseKindRecurring,
		Amount:    decimal.NewFromInt(50),
		StartDate: date(2023, time.January, 1),
	}

	assert.True(t, exp.ActiveInPeriod(periodStart, periodEnd))
}

func TestActiveInPeriodStartsAfterPeriod(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	exp := Expense{
		Kind:      ExpenseKindRecurring,
		StartDate: date(2024, time.April, 1),
	}

	assert.False(t, exp.ActiveInPeriod(periodStart, periodEnd))
}

func TestActiveInPeriodEndedBeforePeriod(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	endDate := date(2024, time.February, 15)
	exp := Expense{
		Kind:      ExpenseKindRecurring,
		StartDate: date(2023, time.January, 1),
		EndDate:   &endDate,
	}

	assert.False(t, exp.ActiveInPeriod(periodStart, periodEnd))
}

func TestActiveInPeriodBoundaryDates(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	// startDate == periodEnd is still active, the interval is closed.
	startsOnLastDay := Expense{
		Kind:      ExpenseKindRecurring,
		StartDate: periodEnd,
	}
	assert.True(t, startsOnLastDay.ActiveInPeriod(periodStart, periodEnd))

	// endDate == periodStart is still active.
	endsOnFirstDay := Expense{
		Kind:      ExpenseKindRecurring,
		StartDate: date(2023, time.June, 1),
		EndDate:   &periodStart,
	}
	assert.True(t, endsOnFirstDay.ActiveInPeriod(periodStart, periodEnd))
}

func TestActiveInPeriodStartsMidPeriodOpenEnded(t *testing.T) {
	periodStart := date(2024, time.March, 1)
	periodEnd := date(2024, time.March, 31)

	exp := Expense{
		Kind:      ExpenseKindRecurring,
		StartDate: date(2024, time.March, 15),
	}

	assert.True(t, exp.ActiveInPeriod(periodStart, periodEnd))
}

func TestActiveInPeriodIgnoresOneTime(t *testing.T) {
	exp := Expense{
		Kind: ExpenseKindOneTime,
		Date: date(2024, time.March, 10),
	}

	assert.False(t, exp.ActiveInPeriod(date(2024, time.March, 1), date(2024, time.March, 31)))
}

func TestIsValidExpenseKind(t *testing.T) {
	assert.True(t, IsValidExpenseKind("one_time"))
	assert.True(t, IsValidExpenseKind("recurring"))
	assert.False(t, IsValidExpenseKind("weekly"))
	assert.False(t, IsValidExpenseKind(""))
}
