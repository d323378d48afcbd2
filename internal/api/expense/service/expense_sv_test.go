package expenseService

import (
	"testing"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/expense"
	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/N0mena/Expenses-Track/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *expenseService {
	return &expenseService{log: log.NewLogger()}
}

func TestParseDatesOneTime(t *testing.T) {
	s := newTestService()

	dates, err := s.parseDates("test", entity.ExpenseKindOneTime, "2024-03-15", "", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), dates.Date)
	assert.Nil(t, dates.EndDate)
}

func TestParseDatesOneTimeMissingDate(t *testing.T) {
	s := newTestService()

	_, err := s.parseDates("test", entity.ExpenseKindOneTime, "", "", "")
	assert.ErrorIs(t, err, expense.ErrMissingDate)
}

func TestParseDatesRecurringOpenEnded(t *testing.T) {
	s := newTestService()

	dates, err := s.parseDates("test", entity.ExpenseKindRecurring, "", "2024-01-01", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), dates.StartDate)
	assert.Nil(t, dates.EndDate)
}

func TestParseDatesRecurringWithEndDate(t *testing.T) {
	s := newTestService()

	dates, err := s.parseDates("test", entity.ExpenseKindRecurring, "", "2024-01-01", "2024-06-30")
	require.NoError(t, err)

	require.NotNil(t, dates.EndDate)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), *dates.EndDate)
}

func TestParseDatesRecurringMissingStart(t *testing.T) {
	s := newTestService()

	_, err := s.parseDates("test", entity.ExpenseKindRecurring, "", "", "")
	assert.ErrorIs(t, err, expense.ErrMissingStartDate)
}

func TestParseDatesRecurringEndBeforeStart(t *testing.T) {
	s := newTestService()

	_, err := s.parseDates("test", entity.ExpenseKindRecurring, "", "2024-06-01", "2024-01-01")
	assert.ErrorIs(t, err, expense.ErrInvalidDateRange)
}

func TestParseDatesRecurringSameDayRange(t *testing.T) {
	s := newTestService()

	dates, err := s.parseDates("test", entity.ExpenseKindRecurring, "", "2024-06-01", "2024-06-01")
	require.NoError(t, err)
	assert.NotNil(t, dates.EndDate)
}

func TestParseDatesBadFormat(t *testing.T) {
	s := newTestService()

	_, err := s.parseDates("test", entity.ExpenseKindOneTime, "15-03-2024", "", "")
	assert.ErrorIs(t, err, expense.ErrInvalidDateFormat)
}

func TestParseDatesUnknownKind(t *testing.T) {
	s := newTestService()

	_, err := s.parseDates("test", entity.ExpenseKind("weekly"), "2024-03-15", "", "")
	assert.ErrorIs(t, err, expense.ErrInvalidExpenseKind)
}
