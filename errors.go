package chert

import (
	"errors"
	"fmt"

	"github.com/chertnetwork/go-chert/privacy"
)

// ErrorCode is the closed set of SDK error categories.
type ErrorCode string

const (
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeKeyGeneration ErrorCode = "KEY_GENERATION_ERROR"
	CodeNetwork       ErrorCode = "NETWORK_ERROR"
	CodeAPI           ErrorCode = "API_ERROR"
	CodeTransaction   ErrorCode = "TRANSACTION_ERROR"
	CodePrivacy       ErrorCode = "PRIVACY_ERROR"
	CodeStaking       ErrorCode = "STAKING_ERROR"
	CodeGovernance    ErrorCode = "GOVERNANCE_ERROR"
	CodeConfig        ErrorCode = "CONFIG_ERROR"
	CodeTimeout       ErrorCode = "TIMEOUT_ERROR"
)

// Error is the SDK's structured error. Validation errors carry the
// offending field; API errors carry the remote status and code so callers
// can distinguish transient from permanent failures.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string // set for validation errors
	Status  int    // HTTP status for API errors, 0 otherwise
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsCode reports whether err is an SDK error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var sdkErr *Error
	return errors.As(err, &sdkErr) && sdkErr.Code == code
}

func validationError(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

func networkError(message string, cause error) *Error {
	return &Error{Code: CodeNetwork, Message: message, cause: cause}
}

func apiError(message string, status int) *Error {
	return &Error{Code: CodeAPI, Message: message, Status: status}
}

func timeoutError(operation string) *Error {
	return &Error{Code: CodeTimeout, Message: fmt.Sprintf("operation %q timed out", operation)}
}

// wrapPrivacyError translates privacy-core sentinels into SDK error codes
// so callers see one taxonomy at the client surface.
func wrapPrivacyError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, privacy.ErrKeyGeneration):
		return &Error{Code: CodeKeyGeneration, Message: err.Error(), cause: err}
	case errors.Is(err, privacy.ErrInvalidKey):
		return &Error{Code: CodeValidation, Message: err.Error(), Field: "public_key", cause: err}
	case errors.Is(err, privacy.ErrInvalidAmount):
		return &Error{Code: CodeValidation, Message: err.Error(), Field: "amount", cause: err}
	case errors.Is(err, privacy.ErrInvalidNonce):
		return &Error{Code: CodeValidation, Message: err.Error(), Field: "nonce", cause: err}
	case errors.Is(err, privacy.ErrInvalidLevel):
		return &Error{Code: CodeValidation, Message: err.Error(), Field: "privacy_level", cause: err}
	case errors.Is(err, privacy.ErrMemoTooLong):
		return &Error{Code: CodeValidation, Message: err.Error(), Field: "memo", cause: err}
	default:
		return &Error{Code: CodePrivacy, Message: err.Error(), cause: err}
	}
}
