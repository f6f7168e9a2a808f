package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies an AppError so handlers can map it to a status code
// without string matching.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindForbidden    ErrorKind = "forbidden"
	KindUnauthorized ErrorKind = "unauthorized"
	KindCapacity     ErrorKind = "capacity"
	KindInternal     ErrorKind = "internal"
)

// AppError is the error type surfaced by services. The Kind is stable; the
// Message is human readable.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func ValidationErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ConflictErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func ForbiddenErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func UnauthorizedErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func CapacityErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindCapacity, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from any error in the chain. Unclassified errors
// are internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

var kindStatus = map[ErrorKind]int{
	KindValidation:   http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindForbidden:    http.StatusForbidden,
	KindUnauthorized: http.StatusUnauthorized,
	KindCapacity:     http.StatusConflict,
	KindInternal:     http.StatusInternalServerError,
}

// HTTPStatus maps an error kind to the response status.
func HTTPStatus(err error) int {
	if status, ok := kindStatus[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response for a service error.
func JSONError(c *gin.Context, err error) {
	Logger := GetLogger()
	Logger.Warn("request failed", zap.String("kind", string(KindOf(err))), zap.Error(err))
	c.JSON(HTTPStatus(err), ErrorResponse{Message: err.Error()})
}
