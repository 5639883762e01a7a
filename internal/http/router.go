package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-qa/internal/service"
)

// NewRouter configures the Gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	askH *AskHandler,
	askLogH *AskLogHandler,
	sessionH *SessionHandler,
	adminH *AdminHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.POST("/ask", askH.Ask)

	r.POST("/admin/login", adminH.Login)

	asks := r.Group("/asks", JWTAuthMiddleware(jwtSvc))
	asks.GET("", askLogH.ListAsks)
	asks.GET("/:id", askLogH.GetAsk)
	asks.DELETE("/:id", askLogH.DeleteAsk)

	r.GET("/sessions", JWTAuthMiddleware(jwtSvc), sessionH.ListSessions)

	return r
}

// zapLoggerMiddleware logs one line per request with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
