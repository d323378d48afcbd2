package category

import (
	"net/http"

	"github.com/N0mena/Expenses-Track/pkg/response"
)

var (
	ErrCategoryNotFound      = response.NewError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found")
	ErrCategoryAlreadyExists = response.NewError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "a category with this name already exists")
	ErrCategoryInUse         = response.NewError(http.StatusConflict, "CATEGORY_IN_USE", "category is referenced by existing expenses")
	ErrCreateCategory        = response.NewError(http.StatusInternalServerError, "CREATE_CATEGORY_FAILED", "failed to create category")
	ErrUpdateCategory        = response.NewError(http.StatusInternalServerError, "UPDATE_CATEGORY_FAILED", "failed to update category")
	ErrDeleteCategory        = response.NewError(http.StatusInternalServerError, "DELETE_CATEGORY_FAILED", "failed to delete category")
)
