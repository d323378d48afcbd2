package dashboardRepository

const (
	querySumIncomeInPeriod = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM incomes
		WHERE user_id = :user_id
			AND date >= :start_date
			AND date <= :end_date
	`

	querySumOneTimeExpensesInPeriod = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE user_id = :user_id
			AND kind = 'one_time'
			AND date >= :start_date
			AND date <= :end_date
	`

	queryGetRecurringExpenses = `
		SELECT
			id,
			user_id,
			amount,
			kind,
			category_id,
			start_date,
			end_date
		FROM expenses
		WHERE user_id = :user_id
			AND kind = 'recurring'
	`

	querySumOneTimeByCategory = `
		SELECT
			category_id,
			COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE user_id = :user_id
			AND kind = 'one_time'
			AND date >= :start_date
			AND date <= :end_date
		GROUP BY category_id
	`

	queryGetCategoryNames = `
		SELECT id, name
		FROM categories
		WHERE user_id = ? AND id IN (?)
	`

	queryCountOneTimeExpensesInPeriod = `
		SELECT COUNT(*) AS total
		FROM expenses
		WHERE user_id = :user_id
			AND kind = 'one_time'
			AND date >= :start_date
			AND date <= :end_date
	`

	queryCountIncomesInPeriod = `
		SELECT COUNT(*) AS total
		FROM incomes
		WHERE user_id = :user_id
			AND date >= :start_date
			AND date <= :end_date
	`
)
