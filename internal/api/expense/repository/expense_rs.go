package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/expense"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ExpenseDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Kind        sql.NullString  `db:"kind"`
	CategoryID  sql.NullString  `db:"category_id"`
	Description sql.NullString  `db:"description"`
	Date        sql.NullTime    `db:"date"`
	StartDate   sql.NullTime    `db:"start_date"`
	EndDate     sql.NullTime    `db:"end_date"`
	ReceiptURL  sql.NullString  `db:"receipt_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCreateExpense, r.makeArgsKV(exp, true))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateExpense named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetExpenseByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var exp ExpenseDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetExpenseByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID named query preparation err")
		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&exp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetExpenseByID no rows found")
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(exp), nil
}

func (r *expenseRepository) GetExpensesByUserID(c context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var expenses []ExpenseDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetExpensesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &expenses, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(expenses))
	for _, exp := range expenses {
		result = append(result, r.makeExpense(exp))
	}

	return result, nil
}

func (r *expenseRepository) UpdateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpdateExpense, r.makeArgsKV(exp, false))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) makeArgsKV(exp entity.Expense, create bool) map[string]interface{} {
	var date, startDate, endDate interface{}

	if exp.Kind == entity.ExpenseKindOneTime {
		date = exp.Date
	}
	if exp.Kind == entity.ExpenseKindRecurring {
		startDate = exp.StartDate
		if exp.EndDate != nil {
			endDate = *exp.EndDate
		}
	}

	var receiptURL interface{}
	if exp.ReceiptURL != "" {
		receiptURL = exp.ReceiptURL
	}

	argsKV := map[string]interface{}{
		"id":          exp.ID,
		"user_id":     exp.UserID,
		"amount":      exp.Amount,
		"kind":        string(exp.Kind),
		"category_id": exp.CategoryID,
		"description": exp.Description,
		"date":        date,
		"start_date":  startDate,
		"end_date":    endDate,
		"receipt_url": receiptURL,
		"updated_at":  time.Now(),
	}

	if create {
		argsKV["created_at"] = time.Now()
	}

	return argsKV
}

func (r *expenseRepository) makeExpense(exp ExpenseDB) entity.Expense {
	e := entity.Expense{
		ID:          exp.ID.String,
		UserID:      exp.UserID.String,
		Amount:      exp.Amount,
		Kind:        entity.ExpenseKind(exp.Kind.String),
		CategoryID:  exp.CategoryID.String,
		Description: exp.Description.String,
		ReceiptURL:  exp.ReceiptURL.String,
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}

	if exp.Date.Valid {
		e.Date = exp.Date.Time
	}
	if exp.StartDate.Valid {
		e.StartDate = exp.StartDate.Time
	}
	if exp.EndDate.Valid {
		endDate := exp.EndDate.Time
		e.EndDate = &endDate
	}

	return e
}

func (r *categoryLookupRepository) GetCategoryByID(c context.Context, id string, userID string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var cat CategoryDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCategoryByID no rows found")
			return entity.Category{}, expense.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return entity.Category{
		ID:        cat.ID.String,
		UserID:    cat.UserID.String,
		Name:      cat.Name.String,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}, nil
}

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
