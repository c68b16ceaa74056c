package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/members/me", nil)
	return c, w
}

func TestGetMemberID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantID uint32
		wantOK bool
	}{
		{name: "numeric id", raw: "42", wantID: 42, wantOK: true},
		{name: "zero", raw: "0"},
		{name: "not a number", raw: "abc"},
		{name: "overflow", raw: "4294967296"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext()
			SetMemberID(c, tt.raw)

			id, ok := GetMemberID(c)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRequireMemberID_Missing(t *testing.T) {
	c, w := newContext()

	_, ok := RequireMemberID(c)

	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH-000")
}
