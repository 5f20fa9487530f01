package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a client-visible outcome. Every component returns one of the
// values below; handlers translate the code to an HTTP status and never
// expose anything else.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	// ErrNotAuthenticated covers bad credentials and invalid, expired or
	// missing tokens alike. The message is deliberately uniform so callers
	// cannot tell which case they hit.
	ErrNotAuthenticated = &Error{Code: http.StatusUnauthorized, Message: "Could not validate user."}
	ErrUsernameTaken    = &Error{Code: http.StatusConflict, Message: "username already exists"}
	ErrUserNotFound     = &Error{Code: http.StatusNotFound, Message: "user not found"}
	ErrTodoNotFound     = &Error{Code: http.StatusNotFound, Message: "Todo not found."}
)

func GetStatus(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return http.StatusInternalServerError
}

func GetMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}
