package dashboard

import (
	"net/http"

	"github.com/N0mena/Expenses-Track/pkg/response"
)

var (
	ErrMissingDateRange   = response.NewError(http.StatusBadRequest, "MISSING_DATE_RANGE", "both start and end dates are required")
	ErrInvalidDateFormat  = response.NewError(http.StatusBadRequest, "INVALID_DATE_FORMAT", "invalid date format, use YYYY-MM-DD")
	ErrInvalidMonthFormat = response.NewError(http.StatusBadRequest, "INVALID_MONTH_FORMAT", "invalid month format, use YYYY-MM")
	ErrInvalidYearFormat  = response.NewError(http.StatusBadRequest, "INVALID_YEAR_FORMAT", "invalid year, use YYYY")
	ErrInvalidMonthsCount = response.NewError(http.StatusBadRequest, "INVALID_MONTHS_COUNT", "months must be a positive number")
)
