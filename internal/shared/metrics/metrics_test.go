package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTPMetricsWithRegistry(prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/posts/:postId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/api/v1/posts/1", "/api/v1/posts/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/v1/posts/:postId", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestAuthMetrics(t *testing.T) {
	m := NewAuthMetricsWithRegistry(prometheus.NewRegistry())

	m.IncSignin(OutcomeSuccess)
	m.IncSignin(OutcomeWithdrawn)
	m.IncSignin(OutcomeWithdrawn)
	m.IncSignup(OutcomeSuccess)
	m.IncWithdrawal()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Signins.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Signins.WithLabelValues(OutcomeWithdrawn)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Signups.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Withdrawals))
}

func TestAuthMetrics_NilSafe(t *testing.T) {
	var m *AuthMetrics

	assert.NotPanics(t, func() {
		m.IncSignin(OutcomeSuccess)
		m.IncSignup(OutcomeError)
		m.IncWithdrawal()
	})
}

func TestRegistryManager(t *testing.T) {
	reg := prometheus.NewRegistry()
	manager := &RegistryManager{}

	assert.Equal(t, prometheus.DefaultRegisterer, manager.Get())

	manager.Set(reg)
	assert.Equal(t, prometheus.Registerer(reg), manager.Get())

	manager.Set(nil)
	assert.Equal(t, prometheus.DefaultRegisterer, manager.Get())
}
