package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates a concurrent-update conflict; callers may retry the operation.
var ErrConflict = errors.New("concurrent update conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInsufficientBalance indicates a debit larger than the wallet balance.
// Use errors.Is against this sentinel; the concrete value is usually an
// *InsufficientBalanceError carrying the amounts involved.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// InsufficientBalanceError reports how much was required versus available
// when a debit was refused. It matches ErrInsufficientBalance via errors.Is.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient wallet balance: required %s, available %s", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// NewInsufficientBalance builds an InsufficientBalanceError.
func NewInsufficientBalance(required, available decimal.Decimal) error {
	return &InsufficientBalanceError{Required: required, Available: available}
}

// AppError wraps infrastructure failures (persistence, external calls) with a
// status code hint and a message safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
