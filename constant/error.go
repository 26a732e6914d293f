package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrDuplicateEmail
	ErrInvalidCredentials
	ErrInvalidResetToken
	ErrCanceled
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrDuplicateEmail:     "Email already registered",
	ErrInvalidCredentials: "Invalid email or password",
	ErrInvalidResetToken:  "invalid or expired reset token",
	ErrCanceled:           "request canceled",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrDuplicateEmail:     http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidResetToken:  http.StatusBadRequest,
	ErrCanceled:           http.StatusRequestTimeout,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrDuplicateEmail:     "0005",
	ErrInvalidCredentials: "0006",
	ErrInvalidResetToken:  "0007",
	ErrCanceled:           "0008",
}
