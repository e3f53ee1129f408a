package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Details interface{}  `json:"details,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable      = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrTokenExpired       = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// Coupon rejection reasons. The coupon validator checks in a fixed order and
// surfaces exactly one of these.
var (
	ErrCouponNotFound      = &AppError{Code: http.StatusNotFound, Message: "Coupon not found"}
	ErrCouponExpired       = &AppError{Code: http.StatusUnprocessableEntity, Message: "Coupon is outside its validity window"}
	ErrCouponExhausted     = &AppError{Code: http.StatusUnprocessableEntity, Message: "Coupon usage limit reached"}
	ErrCouponMinimumNotMet = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cart subtotal below coupon minimum"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidCartLineError rejects a cart line with a non-positive quantity or
// negative unit price before any pricing is attempted.
func NewInvalidCartLineError(reason string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Invalid cart line: " + reason,
	}
}

// NewInsufficientStockError is returned when a stock-out or reserve requests
// more than the available quantity. No state is mutated when this is returned.
func NewInsufficientStockError(available, requested int) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("Insufficient stock: %d available, %d requested", available, requested),
		Details: map[string]int{
			"available": available,
			"requested": requested,
		},
	}
}

// NewInvalidPaymentAmountError rejects a payment amount outside [min, max].
// Amounts are integer minor currency units.
func NewInvalidPaymentAmountError(min, max int64) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Payment amount must be between %d and %d", min, max),
		Details: map[string]int64{
			"min": min,
			"max": max,
		},
	}
}

// CommitError wraps a failure inside the checkout commit, naming the stage
// that failed. The surrounding transaction is rolled back whole when one is
// returned, so the caller never observes a partial bill.
type CommitError struct {
	Stage string
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("checkout commit failed at stage %q: %v", e.Stage, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// NewCommitError creates a CommitError for the given stage.
func NewCommitError(stage string, err error) *CommitError {
	return &CommitError{Stage: stage, Err: err}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var commitErr *CommitError
	if errors.As(err, &commitErr) {
		inner := &AppError{Code: http.StatusInternalServerError, Message: commitErr.Err.Error()}
		var wrapped *AppError
		if errors.As(commitErr.Err, &wrapped) {
			inner = wrapped
		}
		return &AppError{
			Code:    inner.Code,
			Message: "Checkout failed at stage '" + commitErr.Stage + "': " + inner.Message,
			Details: inner.Details,
		}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
