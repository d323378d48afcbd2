package expense

import (
	"net/http"

	"github.com/N0mena/Expenses-Track/pkg/response"
)

var (
	ErrExpenseNotFound    = response.NewError(http.StatusNotFound, "EXPENSE_NOT_FOUND", "expense not found")
	ErrCategoryNotFound   = response.NewError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found")
	ErrInvalidAmount      = response.NewError(http.StatusBadRequest, "INVALID_AMOUNT", "amount must be a positive number")
	ErrInvalidExpenseKind = response.NewError(http.StatusBadRequest, "INVALID_EXPENSE_KIND", "kind must be one_time or recurring")
	ErrMissingDate        = response.NewError(http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", "date is required for one-time expenses")
	ErrMissingStartDate   = response.NewError(http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", "start date is required for recurring expenses")
	ErrInvalidDateFormat  = response.NewError(http.StatusBadRequest, "INVALID_DATE_FORMAT", "invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange   = response.NewError(http.StatusBadRequest, "INVALID_DATE_RANGE", "end date must not be before start date")
	ErrInvalidReceiptFile = response.NewError(http.StatusBadRequest, "INVALID_RECEIPT_FILE", "receipt must be a jpg, jpeg, png, webp, or pdf under 5MB")
	ErrCreateExpense      = response.NewError(http.StatusInternalServerError, "CREATE_EXPENSE_FAILED", "failed to create expense")
	ErrUpdateExpense      = response.NewError(http.StatusInternalServerError, "UPDATE_EXPENSE_FAILED", "failed to update expense")
	ErrDeleteExpense      = response.NewError(http.StatusInternalServerError, "DELETE_EXPENSE_FAILED", "failed to delete expense")
	ErrUploadReceipt      = response.NewError(http.StatusInternalServerError, "UPLOAD_RECEIPT_FAILED", "failed to upload receipt")
)
