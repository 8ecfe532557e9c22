package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned in the "type" field of error responses
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindConnection   = "connection"
	KindDatabase     = "database"
	KindUnauthorized = "unauthorized"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Validation reports a missing or malformed input field
func Validation(format string, args ...any) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Type: KindValidation}
}

// NotFound reports a referenced row that does not exist
func NotFound(format string, args ...any) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...), Type: KindNotFound}
}

// Unavailable reports that no database connection could be acquired
func Unavailable(err error) *CustomError {
	return &CustomError{Code: http.StatusServiceUnavailable, Message: fmt.Sprintf("database connection unavailable: %v", err), Type: KindConnection}
}

// Unauthorized is returned by the login stub
func Unauthorized(message string) *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: message, Type: KindUnauthorized}
}

// AsCustomError finds a CustomError in err's chain
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
