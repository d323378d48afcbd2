package income

import "github.com/shopspring/decimal"

type CreateIncomeRequest struct {
	UserID      string          `json:"user_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Source      string          `json:"source" validate:"required,max=255"`
	Description string          `json:"description"`
}

type UpdateIncomeRequest struct {
	ID          string          `json:"id" validate:"required"`
	UserID      string          `json:"user_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Source      string          `json:"source" validate:"required,max=255"`
	Description string          `json:"description"`
}

type IncomeResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Source      string          `json:"source"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   int              `json:"total"`
}
