package expense

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	UserID      string          `json:"user_id" form:"user_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" form:"amount" validate:"required"`
	Kind        string          `json:"kind" form:"kind" validate:"required,oneof=one_time recurring"`
	CategoryID  string          `json:"category_id" form:"category_id" validate:"required"`
	Description string          `json:"description" form:"description"`
	Date        string          `json:"date" form:"date"`
	StartDate   string          `json:"start_date" form:"start_date"`
	EndDate     string          `json:"end_date" form:"end_date"`
}

type UpdateExpenseRequest struct {
	ID          string          `json:"id" form:"id" validate:"required"`
	UserID      string          `json:"user_id" form:"user_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" form:"amount" validate:"required"`
	Kind        string          `json:"kind" form:"kind" validate:"required,oneof=one_time recurring"`
	CategoryID  string          `json:"category_id" form:"category_id" validate:"required"`
	Description string          `json:"description" form:"description"`
	Date        string          `json:"date" form:"date"`
	StartDate   string          `json:"start_date" form:"start_date"`
	EndDate     string          `json:"end_date" form:"end_date"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date,omitempty"`
	StartDate   string          `json:"start_date,omitempty"`
	EndDate     string          `json:"end_date,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}
