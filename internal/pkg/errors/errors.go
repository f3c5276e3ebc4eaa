package errors

import "net/http"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &ErrorResponse{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &ErrorResponse{Code: http.StatusUnauthorized, Message: msg}
}

func ForbiddenError(msg string) error {
	return &ErrorResponse{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &ErrorResponse{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &ErrorResponse{Code: http.StatusConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return &ErrorResponse{Code: http.StatusInternalServerError, Message: msg}
}

// StatusCode returns the HTTP status carried by err, 500 for anything that is
// not an *ErrorResponse.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorResponse); ok {
		return e.Code
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
