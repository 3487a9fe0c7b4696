package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeAuthentication indicates a rejected login or registration.
	ErrCodeAuthentication ErrorCode = "authentication"
	// ErrCodeVerification indicates the session verification round trip failed.
	ErrCodeVerification ErrorCode = "verification"
	// ErrCodeAuthorization indicates the server rejected an elevated-role operation.
	ErrCodeAuthorization ErrorCode = "authorization"
	// ErrCodeNetwork indicates a transport-level failure, distinct from a
	// well-formed server rejection.
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeDecode indicates the server response body was not decodable.
	ErrCodeDecode ErrorCode = "decode"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeProfileFetch indicates a profile read was rejected.
	ErrCodeProfileFetch ErrorCode = "profile_fetch"
	// ErrCodeProfileUpdate indicates a profile write was rejected.
	ErrCodeProfileUpdate ErrorCode = "profile_update"
	// ErrCodePasswordChange indicates a password change was rejected.
	ErrCodePasswordChange ErrorCode = "password_change"
	// ErrCodeAccountDeletion indicates an account deletion was rejected.
	ErrCodeAccountDeletion ErrorCode = "account_deletion"
	// ErrCodeContentFetch indicates a content listing failed.
	ErrCodeContentFetch ErrorCode = "content_fetch"
	// ErrCodeContentDelete indicates a content deletion failed.
	ErrCodeContentDelete ErrorCode = "content_delete"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For server rejections this
	// is the server-supplied message when one was decodable.
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Op names the operation that produced the error (optional)
	Op string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Authentication creates a new Authentication error.
func Authentication(message string) *AppError {
	return New(ErrCodeAuthentication, message)
}

// Verification creates a new Verification error.
func Verification(message string) *AppError {
	return New(ErrCodeVerification, message)
}

// Authorization creates a new Authorization error.
func Authorization(message string) *AppError {
	return New(ErrCodeAuthorization, message)
}

// Network creates a new Network error.
func Network(message string) *AppError {
	return New(ErrCodeNetwork, message)
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuthentication checks if an error is an Authentication error.
func IsAuthentication(err error) bool {
	return isCode(err, ErrCodeAuthentication)
}

// IsVerification checks if an error is a Verification error.
func IsVerification(err error) bool {
	return isCode(err, ErrCodeVerification)
}

// IsAuthorization checks if an error is an Authorization error.
func IsAuthorization(err error) bool {
	return isCode(err, ErrCodeAuthorization)
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage returns the human-readable message from an error. For
// AppErrors this is the recorded message (server-supplied when available);
// anything else falls back to Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
