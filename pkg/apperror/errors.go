package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrSelfTransfer() *AppError {
	return New("VAL_002", "Source and destination accounts must differ", http.StatusBadRequest)
}

// Validation returns a VAL_003 error with a field-specific message.
func Validation(message string) *AppError {
	return New("VAL_003", message, http.StatusBadRequest)
}

// ---- Accounts (ACC) ----

func ErrNotFound(entity string) *AppError {
	return New("ACC_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAccountExists() *AppError {
	return New("ACC_002", "Owner already has an account", http.StatusConflict)
}

func ErrCannotReactivateBlacklisted() *AppError {
	return New("ACC_003", "Blacklisted account cannot be reactivated", http.StatusConflict)
}

func ErrWalletBlacklisted() *AppError {
	return New("ACC_004", "Account is blacklisted", http.StatusForbidden)
}

func ErrWalletInactive() *AppError {
	return New("ACC_005", "Account is not active", http.StatusForbidden)
}

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New("LED_001", "Insufficient balance in account", http.StatusPaymentRequired)
}

func ErrTransactionNotConfirmed() *AppError {
	return New("LED_002", "Transaction is not in a confirmed state", http.StatusConflict)
}

// ---- Fraud (FRD) ----

// ErrFraudBlocked surfaces the alert category only, never rule internals.
func ErrFraudBlocked(alertType string) *AppError {
	return New("FRD_001", fmt.Sprintf("Transaction blocked by fraud controls: %s", alertType), http.StatusForbidden)
}

func ErrAlertAlreadyReviewed() *AppError {
	return New("FRD_002", "Alert has already been reviewed", http.StatusConflict)
}

// ---- Rates (RATE) ----

func ErrNoActiveRate() *AppError {
	return New("RATE_001", "No active exchange rate is configured", http.StatusServiceUnavailable)
}

func ErrInvalidRate() *AppError {
	return New("RATE_002", "Exchange rate must be positive", http.StatusBadRequest)
}

// ---- Key custody (KEY) ----

func ErrUnauthorized() *AppError {
	return New("KEY_001", "Caller is not authorized for this operation", http.StatusUnauthorized)
}

func ErrCorruptCiphertext(err error) *AppError {
	return Wrap("KEY_002", "Stored key material failed integrity verification", http.StatusInternalServerError, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// ErrStorageConflict marks a transient commit failure; the whole operation
// is safe to retry from the beginning.
func ErrStorageConflict(err error) *AppError {
	return Wrap("SYS_004", "Storage conflict, retry the operation", http.StatusServiceUnavailable, err)
}

// ---- Rate Limiting (RL) ----

func ErrRateLimitExceeded() *AppError {
	return New("RL_001", "Rate limit exceeded", http.StatusTooManyRequests)
}
