package dashboardService

import (
	"context"
	"sort"

	"github.com/N0mena/Expenses-Track/internal/api/dashboard"
	dashboardRepository "github.com/N0mena/Expenses-Track/internal/api/dashboard/repository"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/N0mena/Expenses-Track/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// aggregation is one period's raw totals together with the recurring
// expenses that were resolved as active, so callers building a category
// breakdown do not fetch them twice.
type aggregation struct {
	Summary         entity.Summary
	ActiveRecurring []entity.Expense
}

// aggregate runs the three independent reads behind every summary
// concurrently and joins them into derived totals. Any sub-query failure
// aborts the whole aggregation, nothing partial is ever returned.
func (s *dashboardService) aggregate(ctx context.Context, client dashboardRepository.Client, userID string, p period.Period) (aggregation, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var (
		totalIncome     decimal.Decimal
		oneTimeExpenses decimal.Decimal
		recurring       []entity.Expense
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalIncome, err = client.Aggregates.SumIncomeInPeriod(gctx, userID, p.Start, p.End)
		return err
	})

	g.Go(func() error {
		var err error
		oneTimeExpenses, err = client.Aggregates.SumOneTimeExpensesInPeriod(gctx, userID, p.Start, p.End)
		return err
	})

	g.Go(func() error {
		var err error
		recurring, err = client.Aggregates.GetRecurringExpenses(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Period aggregation query failed")
		return aggregation{}, err
	}

	active := make([]entity.Expense, 0, len(recurring))
	recurringTotal := decimal.Zero
	for _, exp := range recurring {
		if exp.ActiveInPeriod(p.Start, p.End) {
			active = append(active, exp)
			recurringTotal = recurringTotal.Add(exp.Amount)
		}
	}

	return aggregation{
		Summary:         entity.NewSummary(totalIncome, oneTimeExpenses, recurringTotal),
		ActiveRecurring: active,
	}, nil
}

// buildBreakdown merges per-category one-time sums with active recurring
// amounts, attaches category names ("Unknown" when the category is gone),
// and ranks by amount with the category id as a deterministic tiebreak.
func buildBreakdown(oneTimeSums []dashboardRepository.CategorySum, activeRecurring []entity.Expense, names map[string]string) []dashboard.CategoryAmount {
	totals := make(map[string]decimal.Decimal, len(oneTimeSums))
	for _, sum := range oneTimeSums {
		totals[sum.CategoryID] = totals[sum.CategoryID].Add(sum.Amount)
	}
	for _, exp := range activeRecurring {
		totals[exp.CategoryID] = totals[exp.CategoryID].Add(exp.Amount)
	}

	grandTotal := decimal.Zero
	for _, amount := range totals {
		grandTotal = grandTotal.Add(amount)
	}

	breakdown := make([]dashboard.CategoryAmount, 0, len(totals))
	for categoryID, amount := range totals {
		name, ok := names[categoryID]
		if !ok {
			name = "Unknown"
		}

		percentage := decimal.Zero
		if grandTotal.GreaterThan(decimal.Zero) {
			percentage = amount.Div(grandTotal).Mul(decimal.NewFromInt(100)).Round(2)
		}

		breakdown = append(breakdown, dashboard.CategoryAmount{
			CategoryID:   categoryID,
			CategoryName: name,
			Amount:       amount,
			Percentage:   percentage,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Amount.Cmp(breakdown[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].CategoryID < breakdown[j].CategoryID
	})

	return breakdown
}

// collectCategoryIDs gathers the distinct category ids touched by a period,
// for the single name-lookup query.
func collectCategoryIDs(oneTimeSums []dashboardRepository.CategorySum, activeRecurring []entity.Expense) []string {
	seen := make(map[string]struct{}, len(oneTimeSums))
	ids := make([]string, 0, len(oneTimeSums))

	for _, sum := range oneTimeSums {
		if _, ok := seen[sum.CategoryID]; !ok {
			seen[sum.CategoryID] = struct{}{}
			ids = append(ids, sum.CategoryID)
		}
	}
	for _, exp := range activeRecurring {
		if _, ok := seen[exp.CategoryID]; !ok {
			seen[exp.CategoryID] = struct{}{}
			ids = append(ids, exp.CategoryID)
		}
	}

	return ids
}
