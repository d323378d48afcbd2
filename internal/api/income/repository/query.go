package incomeRepository

const (
	queryCreateIncome = `
		INSERT INTO incomes (
			id,
			user_id,
			amount,
			date,
			source,
			description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:date,
			:source,
			:description,
			:created_at,
			:updated_at
		)
	`

	queryGetIncomeByID = `
		SELECT
			id,
			user_id,
			amount,
			date,
			source,
			description,
			created_at,
			updated_at
		FROM incomes
		WHERE id = :id
	`

	queryGetIncomesByUserID = `
		SELECT
			id,
			user_id,
			amount,
			date,
			source,
			description,
			created_at,
			updated_at
		FROM incomes
		WHERE user_id = :user_id
		ORDER BY date DESC
	`

	queryUpdateIncome = `
		UPDATE incomes
		SET
			amount = :amount,
			date = :date,
			source = :source,
			description = :description,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteIncome = `
		DELETE FROM incomes
		WHERE id = :id
	`
)
