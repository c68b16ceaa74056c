package router

import (
	"context"

	"github.com/dormlife/community-api/internal/auth"
	"github.com/dormlife/community-api/internal/board"
	"github.com/dormlife/community-api/internal/config"
	"github.com/dormlife/community-api/internal/member"
	"github.com/dormlife/community-api/internal/meta"
	"github.com/dormlife/community-api/internal/push"
	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/metrics"
	"github.com/dormlife/community-api/internal/shared/middleware"
	"github.com/dormlife/community-api/internal/shared/password"
	"github.com/dormlife/community-api/internal/shared/storage"
	"github.com/dormlife/community-api/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Dependencies are the external resources opened by main
type Dependencies struct {
	DB           *database.DB
	Documents    storage.DocumentStore
	RefreshStore token.RefreshStore
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, deps Dependencies) {
	db := deps.DB

	// Meta handler (health check, metrics)
	checks := map[string]meta.Check{"database": db.HealthCheck}
	if pinger, ok := deps.RefreshStore.(interface{ Ping(context.Context) error }); ok {
		checks["redis"] = pinger.Ping
	}
	metaHandler := meta.NewHandler(cfg, checks)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", metrics.Handler())

	// repository
	memberRepository := member.NewMemberRepository()
	boardRepository := board.NewBoardRepository()
	pushRepository := push.NewPushRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	hasher := password.NewBcryptHasher(cfg.Member.BcryptCost)

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, hasher, tokenManager, deps.RefreshStore, deps.Documents, cfg)
	memberService := member.NewMemberService(db.DB, memberRepository, hasher, deps.RefreshStore, deps.Documents, pushRepository)
	boardService := board.NewBoardService(db.DB, boardRepository, memberRepository)
	pushService := push.NewPushService(db.DB, pushRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	boardHandler := board.NewBoardHandler(boardService)
	pushHandler := push.NewPushHandler(pushService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/signin", authHandler.Signin)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	authRequired := router.Group("/api/v1")
	authRequired.Use(middleware.JWT(tokenManager))

	memberV1 := authRequired.Group("/members")
	{
		memberV1.GET("/me", memberHandler.GetProfile)
		memberV1.PUT("/me/password", memberHandler.ChangePassword)
		memberV1.DELETE("/me", memberHandler.Withdraw)
	}

	boardV1 := authRequired.Group("")
	{
		boardV1.GET("/boards/:boardId/posts", boardHandler.ListPosts)
		boardV1.POST("/boards/:boardId/posts", boardHandler.CreatePost)
		boardV1.GET("/boards/:boardId/posts/latest", boardHandler.LatestPosts)

		boardV1.GET("/posts/:postId", boardHandler.GetPost)
		boardV1.PUT("/posts/:postId", boardHandler.UpdatePost)
		boardV1.DELETE("/posts/:postId", boardHandler.DeletePost)
		boardV1.POST("/posts/:postId/comments", boardHandler.CreateComment)

		boardV1.DELETE("/comments/:commentId", boardHandler.DeleteComment)
		boardV1.POST("/comments/:commentId/replies", boardHandler.CreateReply)
		boardV1.DELETE("/replies/:replyId", boardHandler.DeleteReply)
	}

	pushV1 := authRequired.Group("/push")
	{
		pushV1.GET("", pushHandler.List)
		pushV1.PUT("/check", pushHandler.Check)
	}
}
