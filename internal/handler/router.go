package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ultimatebank/account-service/internal/middleware"
	"go.uber.org/zap"
)

// RouterDeps carries the collaborators the router wires together.
type RouterDeps struct {
	Accounts AccountService
	Resolver *middleware.UserResolver
	Health   HealthChecker
	Metrics  *middleware.Metrics
	Logger   *zap.Logger
}

// NewRouter registers every route. Account routes opt into the
// authorization gate individually; ping, health and metrics stay open.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware(logger.With(zap.String("component", "http"))))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Instrument())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/ping", Ping)
	if deps.Health != nil {
		router.GET("/health", Health(deps.Health, logger))
	}

	accounts := NewAccountHandler(deps.Accounts, logger.With(zap.String("component", "accounts")))
	group := router.Group("/accounts")
	{
		group.GET("", middleware.Authorized(deps.Resolver, accounts.ListAccounts))
		group.POST("", middleware.Authorized(deps.Resolver, accounts.CreateAccount))
		group.GET("/:id", middleware.Authorized(deps.Resolver, accounts.GetAccount))
	}

	return router
}
