package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dormlife/community-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServer_ShutdownClosesResourcesInReverseOrder(t *testing.T) {
	srv := New(testutil.NewTestConfig(), http.NotFoundHandler())

	var closed []string
	srv.OnShutdown("database", func() error {
		closed = append(closed, "database")
		return nil
	})
	srv.OnShutdown("storage", func() error {
		closed = append(closed, "storage")
		return errors.New("bucket gone")
	})
	srv.OnShutdown("redis", func() error {
		closed = append(closed, "redis")
		return nil
	})

	err := srv.Shutdown(context.Background())

	assert.Equal(t, []string{"redis", "storage", "database"}, closed)
	assert.ErrorContains(t, err, "storage: bucket gone")

	closed = nil
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Empty(t, closed)
}
