// Package errors provides custom error types for the Apex Global Earnings API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound        = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail      = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrInvalidReferralCode = &AppError{Code: "INVALID_REFERRAL_CODE", Message: "Referral code not recognized", StatusCode: http.StatusBadRequest}
)

// Plan errors.
var (
	ErrPlanNotFound  = &AppError{Code: "PLAN_NOT_FOUND", Message: "Plan not found", StatusCode: http.StatusNotFound}
	ErrPlanInactive  = &AppError{Code: "PLAN_INACTIVE", Message: "This plan is not accepting new investments", StatusCode: http.StatusBadRequest}
	ErrDuplicateSlug = &AppError{Code: "DUPLICATE_SLUG", Message: "A plan with this slug already exists", StatusCode: http.StatusConflict}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrAmountOutOfRange   = &AppError{Code: "AMOUNT_OUT_OF_RANGE", Message: "Amount is outside the plan's limits", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrInsufficientBalance = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient balance", StatusCode: http.StatusBadRequest}
)

// Deposit & withdrawal errors.
var (
	ErrDepositNotFound      = &AppError{Code: "DEPOSIT_NOT_FOUND", Message: "Deposit not found", StatusCode: http.StatusNotFound}
	ErrDepositNotPending    = &AppError{Code: "DEPOSIT_NOT_PENDING", Message: "Deposit has already been processed", StatusCode: http.StatusConflict}
	ErrWithdrawalNotFound   = &AppError{Code: "WITHDRAWAL_NOT_FOUND", Message: "Withdrawal not found", StatusCode: http.StatusNotFound}
	ErrWithdrawalNotPending = &AppError{Code: "WITHDRAWAL_NOT_PENDING", Message: "Withdrawal has already been processed", StatusCode: http.StatusConflict}
)

// Settlement errors. ErrAlreadySettled is an internal guard: the settlement
// precondition found the investment no longer ACTIVE. Callers treat it as a
// successful no-op rather than surfacing it to operators.
var (
	ErrInvalidPlanSnapshot = &AppError{Code: "INVALID_PLAN_SNAPSHOT", Message: "Investment carries invalid plan terms", StatusCode: http.StatusUnprocessableEntity}
	ErrAlreadySettled      = &AppError{Code: "ALREADY_SETTLED", Message: "Investment is already settled", StatusCode: http.StatusConflict}
)
