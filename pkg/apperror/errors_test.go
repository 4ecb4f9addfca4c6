package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_001", "Insufficient funds", http.StatusPaymentRequired),
			expected: "[LED_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LED_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", 400},
		{"SelfTransfer", ErrSelfTransfer(), "VAL_002", 400},
		{"Validation", Validation("reason too long"), "VAL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAccountErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("Account"), "ACC_001", 404},
		{"AccountExists", ErrAccountExists(), "ACC_002", 409},
		{"CannotReactivateBlacklisted", ErrCannotReactivateBlacklisted(), "ACC_003", 409},
		{"WalletBlacklisted", ErrWalletBlacklisted(), "ACC_004", 403},
		{"WalletInactive", ErrWalletInactive(), "ACC_005", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestLedgerAndFraudErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "LED_001", 402},
		{"TransactionNotConfirmed", ErrTransactionNotConfirmed(), "LED_002", 409},
		{"FraudBlocked", ErrFraudBlocked("blacklisted_address"), "FRD_001", 403},
		{"AlertAlreadyReviewed", ErrAlertAlreadyReviewed(), "FRD_002", 409},
		{"NoActiveRate", ErrNoActiveRate(), "RATE_001", 503},
		{"InvalidRate", ErrInvalidRate(), "RATE_002", 400},
		{"Unauthorized", ErrUnauthorized(), "KEY_001", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestFraudBlockedCarriesAlertType(t *testing.T) {
	err := ErrFraudBlocked("daily_limit_exceeded")
	assert.Contains(t, err.Message, "daily_limit_exceeded")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)

	conflictErr := ErrStorageConflict(inner)
	assert.Equal(t, "SYS_004", conflictErr.Code)
	assert.Equal(t, 503, conflictErr.HTTPStatus)
	assert.True(t, errors.Is(conflictErr, inner))

	corruptErr := ErrCorruptCiphertext(inner)
	assert.Equal(t, "KEY_002", corruptErr.Code)
	assert.True(t, errors.Is(corruptErr, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RL_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Transaction")
	assert.Contains(t, err.Message, "Transaction")
	assert.Equal(t, "ACC_001", err.Code)
}
