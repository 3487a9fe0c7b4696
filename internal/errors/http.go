package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// MapTransportError maps a transport-level failure (the request never
// produced a decodable HTTP response) to an AppError. Context errors keep
// their own codes so callers can distinguish caller-initiated cancellation
// from a dead network.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "request timed out",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "request was canceled",
			Cause:   err,
		}
	}
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: "network error",
		Cause:   err,
	}
}

// MapStatusError maps a non-2xx response to an AppError with the given
// operation code. serverMessage is the decoded {error} field when the body
// was parseable; when empty, a generic message naming the status is used so
// the caller always gets something displayable.
func MapStatusError(code ErrorCode, status int, serverMessage string) error {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("server returned %d %s", status, http.StatusText(status))
	}

	mapped := code
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		// Elevated-role rejections surface as authorization failures; plain
		// auth endpoints keep their own codes.
		if code == ErrCodeAccountDeletion {
			mapped = ErrCodeAuthorization
		}
	case http.StatusNotFound:
		if code == ErrCodeProfileFetch {
			mapped = ErrCodeNotFound
		}
	}

	return &AppError{Code: mapped, Message: msg}
}

// MapDecodeError maps an undecodable success body to an AppError with the
// given operation code.
func MapDecodeError(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: "response body was not decodable",
		Cause:   err,
	}
}
