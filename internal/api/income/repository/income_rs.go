package incomeRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/income"
	"github.com/N0mena/Expenses-Track/internal/entity"
	contextPkg "github.com/N0mena/Expenses-Track/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type IncomeDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Source      sql.NullString  `db:"source"`
	Description sql.NullString  `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *incomeRepository) CreateIncome(c context.Context, inc entity.Income) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          inc.ID,
		"user_id":     inc.UserID,
		"amount":      inc.Amount,
		"date":        inc.Date,
		"source":      inc.Source,
		"description": inc.Description,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateIncome")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating income")
		return err
	}

	return nil
}

func (r *incomeRepository) GetIncomeByID(c context.Context, id string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var inc IncomeDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetIncomeByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID named query preparation err")
		return entity.Income{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&inc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetIncomeByID no rows found")
			return entity.Income{}, income.ErrIncomeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID execution err")
		return entity.Income{}, err
	}

	return r.makeIncome(inc), nil
}

func (r *incomeRepository) GetIncomesByUserID(c context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var incomes []IncomeDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetIncomesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &incomes, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Income, 0, len(incomes))
	for _, inc := range incomes {
		result = append(result, r.makeIncome(inc))
	}

	return result, nil
}

func (r *incomeRepository) UpdateIncome(c context.Context, inc entity.Income) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          inc.ID,
		"amount":      inc.Amount,
		"date":        inc.Date,
		"source":      inc.Source,
		"description": inc.Description,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) DeleteIncome(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) makeIncome(inc IncomeDB) entity.Income {
	return entity.Income{
		ID:          inc.ID.String,
		UserID:      inc.UserID.String,
		Amount:      inc.Amount,
		Date:        inc.Date,
		Source:      inc.Source.String,
		Description: inc.Description.String,
		CreatedAt:   inc.CreatedAt,
		UpdatedAt:   inc.UpdatedAt,
	}
}
