package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dormlife/community-api/internal/bootstrap"
	"github.com/dormlife/community-api/internal/config"
	"github.com/dormlife/community-api/internal/router"
	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/dormlife/community-api/internal/shared/storage"
	"github.com/dormlife/community-api/internal/shared/token"
	"github.com/dormlife/community-api/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("서버 초기화 시작", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

type resource struct {
	name  string
	close func() error
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공")

	// Backing resources close in reverse order, either here on a startup
	// failure or by the server after it drains.
	var resources []resource
	release := func() {
		for i := len(resources) - 1; i >= 0; i-- {
			if err := resources[i].close(); err != nil {
				slog.Error("리소스 종료 실패", "resource", resources[i].name, "error", err)
			}
		}
	}

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	resources = append(resources, resource{"database", db.Close})

	// Open dormitory card bucket
	documents, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		release()
		return fmt.Errorf("스토리지 연결 실패: %w", err)
	}
	resources = append(resources, resource{"storage", documents.Close})

	// Refresh token store (Redis optional)
	var refreshStore token.RefreshStore = token.StatelessRefreshStore{}
	if cfg.IsRedisEnabled() {
		rdb, err := token.NewRedisClient(cfg.Redis)
		if err != nil {
			release()
			return fmt.Errorf("refresh token 저장소 초기화 실패: %w", err)
		}
		resources = append(resources, resource{"redis", rdb.Close})
		refreshStore = token.NewRedisRefreshStore(rdb)
	} else {
		slog.Warn("REDIS_HOST 미설정 - refresh token 폐기가 비활성화됩니다")
	}

	// Setup server
	srv := setupServer(cfg, router.Dependencies{
		DB:           db,
		Documents:    documents,
		RefreshStore: refreshStore,
	})
	for _, r := range resources {
		srv.OnShutdown(r.name, r.close)
	}

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, deps router.Dependencies) *bootstrap.Server {
	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		slog.Error("공통 Validator 등록 실패", "error", err)
		panic(err)
	}

	// Setup application-specific routes
	router.Setup(ginEngine, cfg, deps)

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
	)

	return bootstrap.New(cfg, ginEngine)
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly; still release resources
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Error("리소스 정리 실패", "error", shutdownErr)
		}
		if err != nil {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case sig := <-quit:
		// Received shutdown signal
		slog.Info("종료 신호 수신됨", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		// Attempt graceful shutdown
		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
