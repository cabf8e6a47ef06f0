package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrMissingPhone
	ErrMissingUserID
	ErrInvalidResponse
	ErrMatchNotFound
	ErrUserNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "not found",
	ErrInvalidRequest:  "invalid request",
	ErrMissingPhone:    "missing required field: phone",
	ErrMissingUserID:   "missing required field: user_id",
	ErrInvalidResponse: "invalid response",
	ErrMatchNotFound:   "match not found",
	ErrUserNotFound:    "user not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrMissingPhone:    http.StatusBadRequest,
	ErrMissingUserID:   http.StatusBadRequest,
	ErrInvalidResponse: http.StatusBadRequest,
	ErrMatchNotFound:   http.StatusNotFound,
	ErrUserNotFound:    http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrMissingPhone:    "0004",
	ErrMissingUserID:   "0005",
	ErrInvalidResponse: "0006",
	ErrMatchNotFound:   "0007",
	ErrUserNotFound:    "0008",
}
