package dashboardService

import (
	"context"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/dashboard"
	dashboardRepository "github.com/N0mena/Expenses-Track/internal/api/dashboard/repository"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/N0mena/Expenses-Track/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func (s *dashboardService) MonthlySummary(ctx context.Context, userID string, p period.Period) (dashboard.MonthlySummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	client, err := s.dashboardRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return dashboard.MonthlySummaryResponse{}, err
	}

	agg, err := s.aggregate(ctx, client, userID, p)
	if err != nil {
		return dashboard.MonthlySummaryResponse{}, err
	}

	var (
		oneTimeSums      []dashboardRepository.CategorySum
		transactionCount int
		incomeCount      int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sums, err := client.Aggregates.SumOneTimeByCategory(gctx, userID, p.Start, p.End)
		if err != nil {
			return err
		}
		oneTimeSums = sums
		return nil
	})

	g.Go(func() error {
		var err error
		transactionCount, err = client.Aggregates.CountOneTimeExpensesInPeriod(gctx, userID, p.Start, p.End)
		return err
	})

	g.Go(func() error {
		var err error
		incomeCount, err = client.Aggregates.CountIncomesInPeriod(gctx, userID, p.Start, p.End)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Monthly statistics query failed")
		return dashboard.MonthlySummaryResponse{}, err
	}

	names, err := client.Aggregates.GetCategoryNames(ctx, userID, collectCategoryIDs(oneTimeSums, agg.ActiveRecurring))
	if err != nil {
		return dashboard.MonthlySummaryResponse{}, err
	}

	breakdown := buildBreakdown(oneTimeSums, agg.ActiveRecurring, names)

	topCategories := breakdown
	if len(topCategories) > 3 {
		topCategories = topCategories[:3]
	}

	averageTransaction := decimal.Zero
	if transactionCount > 0 {
		averageTransaction = agg.Summary.TotalExpenses.Div(decimal.NewFromInt(int64(transactionCount)))
	}

	return dashboard.MonthlySummaryResponse{
		Period:  p.Label(),
		Month:   p.Start.Format("January 2006"),
		Summary: agg.Summary,
		Statistics: dashboard.Statistics{
			TransactionCount:   transactionCount,
			IncomeCount:        incomeCount,
			AverageTransaction: averageTransaction,
			TopCategories:      topCategories,
		},
	}, nil
}

func (s *dashboardService) CustomSummary(ctx context.Context, userID string, p period.Period) (dashboard.CustomSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	client, err := s.dashboardRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return dashboard.CustomSummaryResponse{}, err
	}

	agg, err := s.aggregate(ctx, client, userID, p)
	if err != nil {
		return dashboard.CustomSummaryResponse{}, err
	}

	oneTimeSums, err := client.Aggregates.SumOneTimeByCategory(ctx, userID, p.Start, p.End)
	if err != nil {
		return dashboard.CustomSummaryResponse{}, err
	}

	names, err := client.Aggregates.GetCategoryNames(ctx, userID, collectCategoryIDs(oneTimeSums, agg.ActiveRecurring))
	if err != nil {
		return dashboard.CustomSummaryResponse{}, err
	}

	days := decimal.NewFromInt(int64(p.Days()))

	return dashboard.CustomSummaryResponse{
		Period: dashboard.PeriodInfo{
			Start: p.Start.Format("2006-01-02"),
			End:   p.End.Format("2006-01-02"),
			Days:  p.Days(),
		},
		Summary: agg.Summary,
		DailyAverages: dashboard.DailyAverages{
			Income:   agg.Summary.TotalIncome.Div(days).Round(2),
			Expenses: agg.Summary.TotalExpenses.Div(days).Round(2),
			Balance:  agg.Summary.Balance.Div(days).Round(2),
		},
		ExpensesByCategory: buildBreakdown(oneTimeSums, agg.ActiveRecurring, names),
	}, nil
}

func (s *dashboardService) BudgetAlerts(ctx context.Context, userID string, p period.Period) (dashboard.BudgetAlertsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	client, err := s.dashboardRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return dashboard.BudgetAlertsResponse{}, err
	}

	agg, err := s.aggregate(ctx, client, userID, p)
	if err != nil {
		return dashboard.BudgetAlertsResponse{}, err
	}

	summary := agg.Summary
	alerts := entity.EvaluateAlerts(summary)

	var mainMessage *string
	if summary.IsOverBudget {
		msg := "You've exceeded your monthly budget by $" + summary.OverBudgetAmount.StringFixed(2)
		mainMessage = &msg
	}

	spendingRatio := summary.SpendingRatio().Mul(decimal.NewFromInt(100)).StringFixed(1)

	return dashboard.BudgetAlertsResponse{
		Alert:   summary.IsOverBudget,
		Message: mainMessage,
		Period:  p.Label(),
		Summary: dashboard.AlertSummary{
			TotalIncome:      summary.TotalIncome,
			TotalExpenses:    summary.TotalExpenses,
			Balance:          summary.Balance,
			OverBudgetAmount: summary.OverBudgetAmount,
			SpendingRatio:    spendingRatio,
		},
		Alerts:     alerts,
		AlertCount: len(alerts),
	}, nil
}

func (s *dashboardService) MonthlyTrend(ctx context.Context, userID string, anchor time.Time, months int) (dashboard.MonthlyTrendResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if months < 1 {
		return dashboard.MonthlyTrendResponse{}, dashboard.ErrInvalidMonthsCount
	}

	client, err := s.dashboardRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return dashboard.MonthlyTrendResponse{}, err
	}

	entries := make([]dashboard.TrendEntry, months)

	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < months; i++ {
		offset := months - 1 - i
		index := i

		g.Go(func() error {
			p := period.Month(anchor.Year(), int(anchor.Month())-offset)

			agg, err := s.aggregate(gctx, client, userID, p)
			if err != nil {
				return err
			}

			entries[index] = dashboard.TrendEntry{
				Year:          p.Year(),
				Month:         int(p.MonthOf()),
				TotalIncome:   agg.Summary.TotalIncome,
				TotalExpenses: agg.Summary.TotalExpenses,
				Balance:       agg.Summary.Balance,
				IsPositive:    agg.Summary.IsPositive,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Trend aggregation failed")
		return dashboard.MonthlyTrendResponse{}, err
	}

	count := decimal.NewFromInt(int64(months))
	sumIncome, sumExpenses, sumBalance := decimal.Zero, decimal.Zero, decimal.Zero
	for _, entry := range entries {
		sumIncome = sumIncome.Add(entry.TotalIncome)
		sumExpenses = sumExpenses.Add(entry.TotalExpenses)
		sumBalance = sumBalance.Add(entry.Balance)
	}

	return dashboard.MonthlyTrendResponse{
		Trend: entries,
		Averages: dashboard.TrendAverages{
			AvgIncome:   sumIncome.Div(count).Round(2),
			AvgExpenses: sumExpenses.Div(count).Round(2),
			AvgBalance:  sumBalance.Div(count).Round(2),
		},
	}, nil
}
