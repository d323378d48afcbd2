package dashboard

import (
	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/shopspring/decimal"
)

// CategoryAmount is one row of the category breakdown. Percentage is the
// share of the period's total expenses, rounded to 2 decimal places.
type CategoryAmount struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   decimal.Decimal `json:"percentage"`
}

type Statistics struct {
	TransactionCount   int              `json:"transactionCount"`
	IncomeCount        int              `json:"incomeCount"`
	AverageTransaction decimal.Decimal  `json:"averageTransaction"`
	TopCategories      []CategoryAmount `json:"topCategories"`
}

type MonthlySummaryResponse struct {
	Period string `json:"period"`
	Month  string `json:"month"`
	entity.Summary
	Statistics Statistics `json:"statistics"`
}

type PeriodInfo struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type DailyAverages struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

type CustomSummaryResponse struct {
	Period PeriodInfo `json:"period"`
	entity.Summary
	DailyAverages      DailyAverages    `json:"dailyAverages"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
}

type AlertSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Balance          decimal.Decimal `json:"balance"`
	OverBudgetAmount decimal.Decimal `json:"overBudgetAmount"`
	SpendingRatio    string          `json:"spendingRatio"`
}

type BudgetAlertsResponse struct {
	Alert      bool           `json:"alert"`
	Message    *string        `json:"message"`
	Period     string         `json:"period"`
	Summary    AlertSummary   `json:"summary"`
	Alerts     []entity.Alert `json:"alerts"`
	AlertCount int            `json:"alertCount"`
}

type TrendEntry struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
	IsPositive    bool            `json:"isPositive"`
}

type TrendAverages struct {
	AvgIncome   decimal.Decimal `json:"avgIncome"`
	AvgExpenses decimal.Decimal `json:"avgExpenses"`
	AvgBalance  decimal.Decimal `json:"avgBalance"`
}

type MonthlyTrendResponse struct {
	Trend    []TrendEntry  `json:"trend"`
	Averages TrendAverages `json:"averages"`
}
