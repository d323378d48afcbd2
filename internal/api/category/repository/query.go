package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			name,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:created_at,
			:updated_at
		)
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

	queryGetCategoriesByUserID = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id
		ORDER BY name ASC
	`

	queryGetCategoryByName = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = :user_id AND LOWER(name) = LOWER(:name)
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`

	queryCountExpensesByCategory = `
		SELECT COUNT(*) AS total
		FROM expenses
		WHERE category_id = :category_id
	`
)
