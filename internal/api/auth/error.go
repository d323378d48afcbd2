package auth

import (
	"net/http"

	"github.com/N0mena/Expenses-Track/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "EMAIL_ALREADY_EXISTS", "email is already in use")
	ErrUsernameAlreadyExists  = response.NewError(http.StatusConflict, "USERNAME_ALREADY_EXISTS", "username is already in use")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "INVALID_CREDENTIALS", "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrInvalidToken           = response.NewError(http.StatusUnauthorized, "INVALID_TOKEN", "invalid token")
	ErrTokenRevoked           = response.NewError(http.StatusUnauthorized, "TOKEN_REVOKED", "token has been revoked")
)
