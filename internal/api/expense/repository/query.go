package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			amount,
			kind,
			category_id,
			description,
			date,
			start_date,
			end_date,
			receipt_url,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:amount,
			:kind,
			:category_id,
			:description,
			:date,
			:start_date,
			:end_date,
			:receipt_url,
			:created_at,
			:updated_at
		)
	`

	queryGetExpenseByID = `
		SELECT
			id,
			user_id,
			amount,
			kind,
			category_id,
			description,
			date,
			start_date,
			end_date,
			receipt_url,
			created_at,
			updated_at
		FROM expenses
		WHERE id = :id
	`

	queryGetExpensesByUserID = `
		SELECT
			id,
			user_id,
			amount,
			kind,
			category_id,
			description,
			date,
			start_date,
			end_date,
			receipt_url,
			created_at,
			updated_at
		FROM expenses
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			amount = :amount,
			kind = :kind,
			category_id = :category_id,
			description = :description,
			date = :date,
			start_date = :start_date,
			end_date = :end_date,
			receipt_url = :receipt_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id AND user_id = :user_id
	`
)
