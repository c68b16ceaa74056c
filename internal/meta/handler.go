package meta

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/dormlife/community-api/internal/config"
	"github.com/gin-gonic/gin"
)

// Check reports whether a backing service is reachable
type Check func(ctx context.Context) error

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg    *config.Config
	checks map[string]Check
}

// NewHandler creates a new meta handler. checks are keyed by component name (database, redis)
func NewHandler(cfg *config.Config, checks map[string]Check) *Handler {
	return &Handler{
		cfg:    cfg,
		checks: checks,
	}
}

// Health runs every check and reports 503 if any of them fails
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	results := gin.H{}
	for _, name := range names {
		start := time.Now()
		if err := h.checks[name](ctx); err != nil {
			healthy = false
			slog.Error("Health check 실패", "component", name, "error", err)
			results[name] = gin.H{
				"status": "down",
				"error":  err.Error(),
			}
			continue
		}
		results[name] = gin.H{
			"status":     "up",
			"latency_ms": time.Since(start).Milliseconds(),
		}
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
		},
		"checks": results,
	})
}
