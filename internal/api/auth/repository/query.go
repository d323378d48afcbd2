package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, username, first_name, last_name, birth_date, password, created_at, updated_at)
VALUES (:id, :email, :username, :first_name, :last_name, :birth_date, :password, :created_at, :updated_at)`

	queryGetById = `
SELECT id, email, username, first_name, last_name, birth_date, password, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, username, first_name, last_name, birth_date, password, created_at, updated_at
FROM users
    WHERE email = :email`

	querySeedDefaultCategory = `
INSERT INTO categories (id, user_id, name, created_at, updated_at)
VALUES (:id, :user_id, :name, :created_at, :updated_at)`
)
