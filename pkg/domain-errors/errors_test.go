package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	base := New(CodeNotFound, "no insurances found")
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, HasCode(base, CodeNotFound))
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeBadRequest))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeGatewayTimeout, CodeOf(Wrap(errors.New("deadline"), CodeGatewayTimeout, "timed out")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeServiceUnavailable, "insurance service unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeBadRequest:         http.StatusBadRequest,
		CodeNotFound:           http.StatusNotFound,
		CodeServiceUnavailable: http.StatusServiceUnavailable,
		CodeGatewayTimeout:     http.StatusGatewayTimeout,
		CodeRateLimited:        http.StatusTooManyRequests,
		CodeInternal:           http.StatusInternalServerError,
		Code("unknown"):        http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
