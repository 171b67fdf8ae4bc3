package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(catchH *handlers.CatchHandler, privacyH *handlers.PrivacyHandler, adminH *handlers.AdminHandler, weatherH *handlers.WeatherHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	users := r.Group("/users/:userId")
	{
		users.POST("/catches", catchH.Create)
		users.GET("/catches", catchH.List)
		users.DELETE("/catches/:catchId", catchH.Delete)
		users.GET("/statistics", catchH.Statistics)
		users.POST("/statistics/recompute", catchH.RecomputeCounters)

		users.GET("/export", privacyH.Export)
		users.DELETE("/data", privacyH.Delete)
		users.GET("/retention", privacyH.Retention)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/cleanup/:userId", adminH.Cleanup)
		admin.POST("/backup", adminH.RunBackup)
		admin.GET("/backup/stats", adminH.BackupStats)
	}

	r.GET("/weather/forecast", weatherH.Forecast)
	r.GET("/weather/geocode", weatherH.Geocode)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
