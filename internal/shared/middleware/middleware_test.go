package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	"github.com/dormlife/community-api/internal/shared/middleware"
	"github.com/dormlife/community-api/internal/shared/testutil"
	"github.com/dormlife/community-api/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"propagated", "req-123", true},
		{"generated when missing", "", false},
		{"replaced when too long", strings.Repeat("a", 65), false},
		{"replaced when it has spaces", "bad id", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tc.incoming)
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			got := recorder.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, recorder.Body.String())
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
			} else {
				assert.NotEqual(t, tc.incoming, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestJWT(t *testing.T) {
	manager := token.NewJWTManager(testutil.NewTestConfig())
	access, err := manager.GenerateAccessToken("7", "a@b.com")
	require.NoError(t, err)
	refresh, err := manager.GenerateRefreshToken("7", "a@b.com", "jti")
	require.NoError(t, err)

	router := testutil.SetupTestRouter()
	router.Use(middleware.JWT(manager))
	router.GET("/me", func(c *gin.Context) {
		memberID, ok := sharedContext.RequireMemberID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"memberId": memberID})
	})

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"access token", "Bearer " + access, http.StatusOK},
		{"lowercase scheme", "bearer " + access, http.StatusOK},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + access, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(middleware.AuthorizationHeader, tc.header)
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}

func TestTimeout(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.Timeout(20 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	router.GET("/slow-written", func(c *gin.Context) {
		<-c.Request.Context().Done()
		c.String(http.StatusAccepted, "late")
	})
	router.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("deadline without response", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), middleware.RequestTimeout.Code)
	})

	t.Run("handler response is kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow-written", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("fast request", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
