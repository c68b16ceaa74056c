package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	registered := NewDomainError("TEST_REGISTERED")
	unregistered := NewDomainError("TEST_UNREGISTERED")
	RegisterDomainErrorResponse("TEST_REGISTERED", ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEST-001",
		Message: "conflict",
	})

	t.Run("wrapped sentinel resolves", func(t *testing.T) {
		resp, ok := ResolveDomainError(fmt.Errorf("saving member: %w", registered))

		assert.True(t, ok)
		assert.Equal(t, "TEST-001", resp.Code)
		assert.Equal(t, http.StatusConflict, resp.Status)
	})

	t.Run("unregistered sentinel falls back to 500", func(t *testing.T) {
		_, ok := ResolveDomainError(unregistered)
		assert.False(t, ok)
		assert.Equal(t, InternalServerError, Resolve(unregistered))
	})

	t.Run("plain error falls back to 500", func(t *testing.T) {
		assert.Equal(t, InternalServerError, Resolve(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := ResolveDomainError(nil)
		assert.False(t, ok)
	})
}

func TestRegisterDomainErrorResponse_Conflict(t *testing.T) {
	RegisterDomainErrorResponse("TEST_CONFLICT", ErrorResponse{Status: http.StatusBadRequest, Code: "TEST-100"})

	assert.NotPanics(t, func() {
		RegisterDomainErrorResponse("TEST_CONFLICT", ErrorResponse{Status: http.StatusBadRequest, Code: "TEST-100"})
	})
	assert.Panics(t, func() {
		RegisterDomainErrorResponse("TEST_CONFLICT", ErrorResponse{Status: http.StatusBadRequest, Code: "TEST-101"})
	})
}
