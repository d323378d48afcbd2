package dashboardRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type recurringExpenseDB struct {
	ID         sql.NullString  `db:"id"`
	UserID     sql.NullString  `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	Kind       sql.NullString  `db:"kind"`
	CategoryID sql.NullString  `db:"category_id"`
	StartDate  sql.NullTime    `db:"start_date"`
	EndDate    sql.NullTime    `db:"end_date"`
}

type categorySumDB struct {
	CategoryID sql.NullString  `db:"category_id"`
	Total      decimal.Decimal `db:"total"`
}

type categoryNameDB struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func (r *aggregateRepository) SumIncomeInPeriod(c context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumInPeriod(c, querySumIncomeInPeriod, "SumIncomeInPeriod", userID, start, end)
}

func (r *aggregateRepository) SumOneTimeExpensesInPeriod(c context.Context, userID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumInPeriod(c, querySumOneTimeExpensesInPeriod, "SumOneTimeExpensesInPeriod", userID, start, end)
}

func (r *aggregateRepository) sumInPeriod(c context.Context, namedQuery string, operation string, userID string, start, end time.Time) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)
	var total decimal.Decimal

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": start,
		"end_date":   end,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Sum query execution err")
		return decimal.Zero, err
	}

	return total, nil
}

func (r *aggregateRepository) GetRecurringExpenses(c context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []recurringExpenseDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetRecurringExpenses, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecurringExpenses named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecurringExpenses execution err")
		return nil, err
	}

	expenses := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		exp := entity.Expense{
			ID:         row.ID.String,
			UserID:     row.UserID.String,
			Amount:     row.Amount,
			Kind:       entity.ExpenseKind(row.Kind.String),
			CategoryID: row.CategoryID.String,
		}
		if row.StartDate.Valid {
			exp.StartDate = row.StartDate.Time
		}
		if row.EndDate.Valid {
			endDate := row.EndDate.Time
			exp.EndDate = &endDate
		}
		expenses = append(expenses, exp)
	}

	return expenses, nil
}

func (r *aggregateRepository) SumOneTimeByCategory(c context.Context, userID string, start, end time.Time) ([]CategorySum, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categorySumDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": start,
		"end_date":   end,
	}

	query, args, err := sqlx.Named(querySumOneTimeByCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumOneTimeByCategory named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumOneTimeByCategory execution err")
		return nil, err
	}

	sums := make([]CategorySum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, CategorySum{
			CategoryID: row.CategoryID.String,
			Amount:     row.Total,
		})
	}

	return sums, nil
}

func (r *aggregateRepository) GetCategoryNames(c context.Context, userID string, ids []string) (map[string]string, error) {
	requestID := contextPkg.GetRequestID(c)

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := sqlx.In(queryGetCategoryNames, userID, ids)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryNames IN expansion err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []categoryNameDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryNames execution err")
		return nil, err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}

	return names, nil
}

func (r *aggregateRepository) CountOneTimeExpensesInPeriod(c context.Context, userID string, start, end time.Time) (int, error) {
	return r.countInPeriod(c, queryCountOneTimeExpensesInPeriod, "CountOneTimeExpensesInPeriod", userID, start, end)
}

func (r *aggregateRepository) CountIncomesInPeriod(c context.Context, userID string, start, end time.Time) (int, error) {
	return r.countInPeriod(c, queryCountIncomesInPeriod, "CountIncomesInPeriod", userID, start, end)
}

func (r *aggregateRepository) countInPeriod(c context.Context, namedQuery string, operation string, userID string, start, end time.Time) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": start,
		"end_date":   end,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Count query execution err")
		return 0, err
	}

	return total, nil
}
