package dashboardService

import (
	"context"
	"testing"
	"time"

	dashboardRepository "github.com/N0mena/Expenses-Track/internal/api/dashboard/repository"
	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/N0mena/Expenses-Track/pkg/log"
	"github.com/N0mena/Expenses-Track/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAggregates answers the aggregation queries from in-memory records,
// applying the same range semantics the SQL would.
type fakeAggregates struct {
	incomes    []entity.Income
	expenses   []entity.Expense
	categories map[string]string
}

func (f *fakeAggregates) SumIncomeInPeriod(_ context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inc := range f.incomes {
		if inc.UserID == userID && !inc.Date.Before(start) && !inc.Date.After(end) {
			total = total.Add(inc.Amount)
		}
	}
	return total, nil
}

func (f *fakeAggregates) SumOneTimeExpensesInPeriod(_ context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, exp := range f.expenses {
		if exp.UserID == userID && exp.Kind == entity.ExpenseKindOneTime &&
			!exp.Date.Before(start) && !exp.Date.After(end) {
			total = total.Add(exp.Amount)
		}
	}
	return total, nil
}

func (f *fakeAggregates) GetRecurringExpenses(_ context.Context, userID string) ([]entity.Expense, error) {
	var recurring []entity.Expense
	for _, exp := range f.expenses {
		if exp.UserID == userID && exp.Kind == entity.ExpenseKindRecurring {
			recurring = append(recurring, exp)
		}
	}
	return recurring, nil
}

func (f *fakeAggregates) SumOneTimeByCategory(_ context.Context, userID string, start, end time.Time) ([]dashboardRepository.CategorySum, error) {
	totals := map[string]decimal.Decimal{}
	for _, exp := range f.expenses {
		if exp.UserID == userID && exp.Kind == entity.ExpenseKindOneTime &&
			!exp.Date.Before(start) && !exp.Date.After(end) {
			totals[exp.CategoryID] = totals[exp.CategoryID].Add(exp.Amount)
		}
	}

	sums := make([]dashboardRepository.CategorySum, 0, len(totals))
	for id, amount := range totals {
		sums = append(sums, dashboardRepository.CategorySum{CategoryID: id, Amount: amount})
	}
	return sums, nil
}

func (f *fakeAggregates) GetCategoryNames(_ context.Context, _ string, ids []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range ids {
		if name, ok := f.categories[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func (f *fakeAggregates) CountOneTimeExpensesInPeriod(_ context.Context, userID string, start, end time.Time) (int, error) {
	count := 0
	for _, exp := range f.expenses {
		if exp.UserID == userID && exp.Kind == entity.ExpenseKindOneTime &&
			!exp.Date.Before(start) && !exp.Date.After(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAggregates) CountIncomesInPeriod(_ context.Context, userID string, start, end time.Time) (int, error) {
	count := 0
	for _, inc := range f.incomes {
		if inc.UserID == userID && !inc.Date.Before(start) && !inc.Date.After(end) {
			count++
		}
	}
	return count, nil
}

type fakeRepository struct {
	agg *fakeAggregates
}

func (f *fakeRepository) NewClient(_ bool) (dashboardRepository.Client, error) {
	return dashboardRepository.Client{
		Aggregates: f.agg,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func newTestService(agg *fakeAggregates) IDashboardService {
	return NewDashboardService(log.NewLogger(), &fakeRepository{agg: agg})
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

const testUser = "user-1"

func seededAggregates() *fakeAggregates {
	endOfFeb := day(2024, time.February, 29)

	return &fakeAggregates{
		incomes: []entity.Income{
			{ID: "i1", UserID: testUser, Amount: decimal.NewFromInt(2000), Date: day(2024, time.March, 5)},
			{ID: "i2", UserID: testUser, Amount: decimal.NewFromInt(1000), Date: day(2024, time.March, 20)},
			{ID: "i3", UserID: testUser, Amount: decimal.NewFromInt(500), Date: day(2024, time.January, 10)},
		},
		expenses: []entity.Expense{
			{ID: "e1", UserID: testUser, Kind: entity.ExpenseKindOneTime, CategoryID: "cat-food",
				Amount: decimal.NewFromInt(400), Date: day(2024, time.March, 8)},
			{ID: "e2", UserID: testUser, Kind: entity.ExpenseKindOneTime, CategoryID: "cat-travel",
				Amount: decimal.NewFromInt(100), Date: day(2024, time.March, 12)},
			{ID: "e3", UserID: testUser, Kind: entity.ExpenseKindRecurring, CategoryID: "cat-rent",
				Amount: decimal.NewFromInt(500), StartDate: day(2023, time.June, 1)},
			{ID: "e4", UserID: testUser, Kind: entity.ExpenseKindRecurring, CategoryID: "cat-gym",
				Amount: decimal.NewFromInt(50), StartDate: day(2023, time.June, 1), EndDate: &endOfFeb},
		},
		categories: map[string]string{
			"cat-food":   "Food & Dining",
			"cat-travel": "Travel",
			"cat-rent":   "Bills & Utilities",
		},
	}
}

func TestMonthlySummaryTotals(t *testing.T) {
	svc := newTestService(seededAggregates())

	res, err := svc.MonthlySummary(context.Background(), testUser, period.Month(2024, 3))
	require.NoError(t, err)

	assert.Equal(t, "2024-03", res.Period)
	assert.Equal(t, "March 2024", res.Month)
	assert.True(t, res.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, res.OneTimeExpenses.Equal(decimal.NewFromInt(500)))
	// The gym membership ended in February, only rent is active.
	assert.True(t, res.RecurringExpenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, res.TotalExpenses.Equal(decimal.NewFromInt(1000)))
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(2000)))
	assert.True(t, res.IsPositive)
	assert.False(t, res.IsOverBudget)
}

func TestMonthlySummaryStatistics(t *testing.T) {
	svc := newTestService(seededAggregates())

	res, err := svc.MonthlySummary(context.Background(), testUser, period.Month(2024, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Statistics.TransactionCount)
	assert.Equal(t, 2, res.Statistics.IncomeCount)
	assert.True(t, res.Statistics.AverageTransaction.Equal(decimal.NewFromInt(500)))

	require.Len(t, res.Statistics.TopCategories, 3)
	assert.Equal(t, "cat-rent", res.Statistics.TopCategories[0].CategoryID)
	assert.Equal(t, "Bills & Utilities", res.Statistics.TopCategories[0].CategoryName)
	assert.Equal(t, "cat-food", res.Statistics.TopCategories[1].CategoryID)
	assert.Equal(t, "cat-travel", res.Statistics.TopCategories[2].CategoryID)
}

func TestMonthlySummaryEmptyPeriod(t *testing.T) {
	svc := newTestService(seededAggregates())

	res, err := svc.MonthlySummary(context.Background(), testUser, period.Month(2022, 7))
	require.NoError(t, err)

	assert.True(t, res.TotalIncome.IsZero())
	assert.True(t, res.TotalExpenses.IsZero())
	assert.True(t, res.Balance.IsZero())
	assert.True(t, res.IsPositive)
	assert.Equal(t, 0, res.Statistics.TransactionCount)
	assert.True(t, res.Statistics.AverageTransaction.IsZero())
	assert.Empty(t, res.Statistics.TopCategories)
}

func TestCustomSummaryBreakdownPercentages(t *testing.T) {
	svc := newTestService(seededAggregates())

	p, err := period.New(day(2024, time.March, 1), period.EndOfDay(day(2024, time.March, 31)))
	require.NoError(t, err)

	res, err := svc.CustomSummary(context.Background(), testUser, p)
	require.NoError(t, err)

	require.Len(t, res.ExpensesByCategory, 3)

	sum := decimal.Zero
	for _, row := range res.ExpensesByCategory {
		sum = sum.Add(row.Percentage)
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.02)), "percentages sum to %s", sum)

	// Sorted by amount descending.
	assert.Equal(t, "cat-rent", res.ExpensesByCategory[0].CategoryID)
	assert.True(t, res.ExpensesByCategory[0].Percentage.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "cat-food", res.ExpensesByCategory[1].CategoryID)
	assert.True(t, res.ExpensesByCategory[1].Percentage.Equal(decimal.NewFromInt(40)))
}

func TestCustomSummaryUnknownCategoryName(t *testing.T) {
	agg := seededAggregates()
	delete(agg.categories, "cat-food")
	svc := newTestService(agg)

	p, err := period.New(day(2024, time.March, 1), period.EndOfDay(day(2024, time.March, 31)))
	require.NoError(t, err)

	res, err := svc.CustomSummary(context.Background(), testUser, p)
	require.NoError(t, err)

	var foodName string
	for _, row := range res.ExpensesByCategory {
		if row.CategoryID == "cat-food" {
			foodName = row.CategoryName
		}
	}
	assert.Equal(t, "Unknown", foodName)
}

func TestCustomSummaryDailyAverages(t *testing.T) {
	svc := newTestService(seededAggregates())

	p, err := period.New(day(2024, time.March, 1), period.EndOfDay(day(2024, time.March, 10)))
	require.NoError(t, err)

	res, err := svc.CustomSummary(context.Background(), testUser, p)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Period.Days)
	// 2000 income and 900 expenses (400 one-time + 500 recurring) over 10 days.
	assert.True(t, res.DailyAverages.Income.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.DailyAverages.Expenses.Equal(decimal.NewFromInt(90)))
	assert.True(t, res.DailyAverages.Balance.Equal(decimal.NewFromInt(110)))
}

func TestBudgetAlertsOverBudget(t *testing.T) {
	agg := &fakeAggregates{
		expenses: []entity.Expense{
			{ID: "e1", UserID: testUser, Kind: entity.ExpenseKindOneTime, CategoryID: "c1",
				Amount: decimal.NewFromInt(500), Date: day(2024, time.March, 3)},
		},
	}
	svc := newTestService(agg)

	res, err := svc.BudgetAlerts(context.Background(), testUser, period.Month(2024, 3))
	require.NoError(t, err)

	assert.True(t, res.Alert)
	require.NotNil(t, res.Message)
	assert.Contains(t, *res.Message, "$500.00")
	assert.Equal(t, "2024-03", res.Period)
	assert.Equal(t, 2, res.AlertCount)
	assert.Equal(t, "0.0", res.Summary.SpendingRatio)

	types := make([]entity.AlertType, 0, len(res.Alerts))
	for _, a := range res.Alerts {
		types = append(types, a.Type)
	}
	assert.Contains(t, types, entity.AlertBudgetExceeded)
	assert.Contains(t, types, entity.AlertNoIncome)
}

func TestBudgetAlertsQuietMonth(t *testing.T) {
	svc := newTestService(seededAggregates())

	res, err := svc.BudgetAlerts(context.Background(), testUser, period.Month(2024, 3))
	require.NoError(t, err)

	assert.False(t, res.Alert)
	assert.Nil(t, res.Message)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.AlertCount)
	// 1000 spent out of 3000 income.
	assert.Equal(t, "33.3", res.Summary.SpendingRatio)
}

func TestMonthlyTrendOrderingAndAverages(t *testing.T) {
	agg := &fakeAggregates{
		incomes: []entity.Income{
			{ID: "i1", UserID: testUser, Amount: decimal.NewFromInt(100), Date: day(2024, time.January, 15)},
			{ID: "i2", UserID: testUser, Amount: decimal.NewFromInt(200), Date: day(2024, time.February, 15)},
			{ID: "i3", UserID: testUser, Amount: decimal.NewFromInt(300), Date: day(2024, time.March, 15)},
		},
	}
	svc := newTestService(agg)

	anchor := day(2024, time.March, 20)
	res, err := svc.MonthlyTrend(context.Background(), testUser, anchor, 3)
	require.NoError(t, err)

	require.Len(t, res.Trend, 3)
	assert.Equal(t, 1, res.Trend[0].Month)
	assert.Equal(t, 2, res.Trend[1].Month)
	assert.Equal(t, 3, res.Trend[2].Month)
	assert.Equal(t, 2024, res.Trend[0].Year)

	assert.True(t, res.Trend[0].TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, res.Trend[2].TotalIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, res.Averages.AvgIncome.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.Averages.AvgExpenses.IsZero())
	assert.True(t, res.Averages.AvgBalance.Equal(decimal.NewFromInt(200)))
}

func TestMonthlyTrendCrossesYearBoundary(t *testing.T) {
	agg := &fakeAggregates{
		incomes: []entity.Income{
			{ID: "i1", UserID: testUser, Amount: decimal.NewFromInt(50), Date: day(2023, time.December, 10)},
		},
	}
	svc := newTestService(agg)

	res, err := svc.MonthlyTrend(context.Background(), testUser, day(2024, time.January, 5), 2)
	require.NoError(t, err)

	require.Len(t, res.Trend, 2)
	assert.Equal(t, 2023, res.Trend[0].Year)
	assert.Equal(t, 12, res.Trend[0].Month)
	assert.Equal(t, 2024, res.Trend[1].Year)
	assert.Equal(t, 1, res.Trend[1].Month)
	assert.True(t, res.Trend[0].TotalIncome.Equal(decimal.NewFromInt(50)))
}

func TestMonthlyTrendRejectsZeroMonths(t *testing.T) {
	svc := newTestService(&fakeAggregates{})

	_, err := svc.MonthlyTrend(context.Background(), testUser, day(2024, time.March, 1), 0)
	assert.Error(t, err)
}

func TestBuildBreakdownTieBreakByCategoryID(t *testing.T) {
	sums := []dashboardRepository.CategorySum{
		{CategoryID: "cat-b", Amount: decimal.NewFromInt(100)},
		{CategoryID: "cat-a", Amount: decimal.NewFromInt(100)},
		{CategoryID: "cat-c", Amount: decimal.NewFromInt(100)},
	}

	breakdown := buildBreakdown(sums, nil, map[string]string{})

	require.Len(t, breakdown, 3)
	assert.Equal(t, "cat-a", breakdown[0].CategoryID)
	assert.Equal(t, "cat-b", breakdown[1].CategoryID)
	assert.Equal(t, "cat-c", breakdown[2].CategoryID)
}

func TestRecurringExpenseCountedOncePerPeriod(t *testing.T) {
	// The full amount counts in every month the expense is active, without
	// prorating by days.
	agg := &fakeAggregates{
		expenses: []entity.Expense{
			{ID: "e1", UserID: testUser, Kind: entity.ExpenseKindRecurring, CategoryID: "c1",
				Amount: decimal.NewFromInt(300), StartDate: day(2024, time.January, 20)},
		},
	}
	svc := newTestService(agg)

	for _, month := range []int{1, 2, 3} {
		res, err := svc.MonthlySummary(context.Background(), testUser, period.Month(2024, month))
		require.NoError(t, err)
		assert.True(t, res.RecurringExpenses.Equal(decimal.NewFromInt(300)), "month %d", month)
	}

	// Before the start date it contributes nothing.
	res, err := svc.MonthlySummary(context.Background(), testUser, period.Month(2023, 12))
	require.NoError(t, err)
	assert.True(t, res.RecurringExpenses.IsZero())
}
