package income

import (
	"net/http"

	"github.com/N0mena/Expenses-Track/pkg/response"
)

var (
	ErrIncomeNotFound   = response.NewError(http.StatusNotFound, "INCOME_NOT_FOUND", "income not found")
	ErrInvalidAmount    = response.NewError(http.StatusBadRequest, "INVALID_AMOUNT", "amount must be a positive number")
	ErrMissingFields    = response.NewError(http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", "amount, date, and source are required")
	ErrIncomeNotOwned   = response.NewError(http.StatusForbidden, "INCOME_NOT_OWNED", "income does not belong to user")
	ErrCreateIncome     = response.NewError(http.StatusInternalServerError, "CREATE_INCOME_FAILED", "failed to create income")
	ErrUpdateIncome     = response.NewError(http.StatusInternalServerError, "UPDATE_INCOME_FAILED", "failed to update income")
	ErrDeleteIncome     = response.NewError(http.StatusInternalServerError, "DELETE_INCOME_FAILED", "failed to delete income")
	ErrInvalidIncomeDay = response.NewError(http.StatusBadRequest, "INVALID_DATE_FORMAT", "invalid date format, use YYYY-MM-DD")
)
