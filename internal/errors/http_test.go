package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTransportError(t *testing.T) {
	assert.Nil(t, MapTransportError(nil))

	err := MapTransportError(context.DeadlineExceeded)
	assert.Equal(t, ErrCodeTimeout, GetCode(err))

	err = MapTransportError(context.Canceled)
	assert.Equal(t, ErrCodeCanceled, GetCode(err))

	cause := stderrors.New("dial tcp: connection refused")
	err = MapTransportError(cause)
	assert.Equal(t, ErrCodeNetwork, GetCode(err))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "network error", UserMessage(err))
}

func TestMapStatusError_ServerMessageWins(t *testing.T) {
	err := MapStatusError(ErrCodeAuthentication, http.StatusUnauthorized, "bad credentials")
	assert.Equal(t, ErrCodeAuthentication, GetCode(err))
	assert.Equal(t, "bad credentials", UserMessage(err))
}

func TestMapStatusError_GenericFallback(t *testing.T) {
	err := MapStatusError(ErrCodeProfileUpdate, http.StatusBadGateway, "")
	assert.Equal(t, ErrCodeProfileUpdate, GetCode(err))
	assert.Equal(t, "server returned 502 Bad Gateway", UserMessage(err))
}

func TestMapStatusError_ElevatedDeletionBecomesAuthorization(t *testing.T) {
	err := MapStatusError(ErrCodeAccountDeletion, http.StatusForbidden, "not allowed")
	assert.Equal(t, ErrCodeAuthorization, GetCode(err))

	// Non-deletion codes keep their own code on 401.
	err = MapStatusError(ErrCodeAuthentication, http.StatusUnauthorized, "bad credentials")
	assert.Equal(t, ErrCodeAuthentication, GetCode(err))
}

func TestMapStatusError_ProfileFetch404BecomesNotFound(t *testing.T) {
	err := MapStatusError(ErrCodeProfileFetch, http.StatusNotFound, "")
	assert.Equal(t, ErrCodeNotFound, GetCode(err))
}

func TestMapDecodeError(t *testing.T) {
	assert.Nil(t, MapDecodeError(ErrCodePasswordChange, nil))

	cause := stderrors.New("invalid character '<'")
	err := MapDecodeError(ErrCodePasswordChange, cause)
	require.Error(t, err)
	assert.Equal(t, ErrCodePasswordChange, GetCode(err))
	assert.True(t, stderrors.Is(err, cause))
}
