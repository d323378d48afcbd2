package response

import (
	"errors"
)

type Error struct {
	Code    int
	ErrCode string
	Err     error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.ErrCode == t.ErrCode
}

func NewError(code int, errCode string, err string) error {
	return &Error{code, errCode, errors.New(err)}
}
