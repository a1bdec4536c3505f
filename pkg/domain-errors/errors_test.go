package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "registration not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeBadRequest))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "failed to persist registration")

	require.True(t, errors.Is(err, cause))
	assert.True(t, HasCode(err, CodeInternal))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWrapSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("submit proof: %w", New(CodeUnsupportedMedia, "unsupported file type"))
	assert.True(t, HasCode(err, CodeUnsupportedMedia))
	assert.Equal(t, CodeUnsupportedMedia, CodeOf(err))
}

func TestMessageOfHidesUncodedErrors(t *testing.T) {
	assert.Equal(t, "internal error", MessageOf(errors.New("pq: relation does not exist")))
	assert.Equal(t, "email is required", MessageOf(New(CodeBadRequest, "email is required")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:       http.StatusBadRequest,
		CodeUnauthorized:     http.StatusUnauthorized,
		CodeNotFound:         http.StatusNotFound,
		CodeConflict:         http.StatusConflict,
		CodePayloadTooLarge:  http.StatusRequestEntityTooLarge,
		CodeUnsupportedMedia: http.StatusUnsupportedMediaType,
		CodeInternal:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}
