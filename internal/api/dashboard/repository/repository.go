package dashboardRepository

import (
	"time"

	"github.com/N0mena/Expenses-Track/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// The dashboard layer never writes, but NewClient keeps the same shape as the
// other repositories so callers are uniform.
func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Aggregates: &aggregateRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

// CategorySum is a per-category expense total straight from the database,
// before recurring amounts are merged in.
type CategorySum struct {
	CategoryID string
	Amount     decimal.Decimal
}

type Client struct {
	Aggregates interface {
		SumIncomeInPeriod(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)
		SumOneTimeExpensesInPeriod(ctx context.Context, userID string, start, end time.Time) (decimal.Decimal, error)
		GetRecurringExpenses(ctx context.Context, userID string) ([]entity.Expense, error)
		SumOneTimeByCategory(ctx context.Context, userID string, start, end time.Time) ([]CategorySum, error)
		GetCategoryNames(ctx context.Context, userID string, ids []string) (map[string]string, error)
		CountOneTimeExpensesInPeriod(ctx context.Context, userID string, start, end time.Time) (int, error)
		CountIncomesInPeriod(ctx context.Context, userID string, start, end time.Time) (int, error)
	}

	Commit   func() error
	Rollback func() error
}

type aggregateRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
