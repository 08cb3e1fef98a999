package handler

import (
	"paypal-subscription-webhook/internal/adapter/http/middleware"
	redisStore "paypal-subscription-webhook/internal/adapter/storage/redis"
	"paypal-subscription-webhook/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WebhookSvc     ports.WebhookService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// All origins are permitted; PayPal notifications come
	// server-to-server and carry no credentials.
	r.Use(cors.Default())

	// Health check (deep, verifies storage and Redis when wired)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limiter middleware, noop when no store is wired.
	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		rl = middleware.RateLimiter(deps.RateLimitStore, "webhook", middleware.DefaultWebhookRule(), deps.Logger)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	r.POST("/webhook/paypal", rl, webhookHandler.HandlePayPal)

	return r
}
