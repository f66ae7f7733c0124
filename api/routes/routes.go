package routes

import (
	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/handlers"
	"github.com/K227-arch/home-solutions/internal/middleware"
	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// HandlerDependencies carries the handlers wired up in main
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	UserHandler   *handlers.UserHandler
	TenureHandler *handlers.TenureHandler
	ReportHandler *handlers.ReportHandler
	AuditHandler  *handlers.AuditHandler
	NewsHandler   *handlers.NewsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, rdb *redis.Client, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		public.GET("/news", deps.NewsHandler.GetFeed)

		auth := public.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(rdb, cfg))
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/forgot", deps.AuthHandler.ForgotPassword)
			auth.POST("/reset", deps.AuthHandler.ResetPassword)
		}
	}

	// Authenticated routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/auth/logout", deps.AuthHandler.Logout)
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", deps.ReportHandler.GetDashboard)

		users := admin.Group("/users")
		{
			users.GET("", deps.UserHandler.ListUsers)
			users.PUT("/:id/role", deps.UserHandler.UpdateRole)
			users.DELETE("/:id", deps.UserHandler.DeleteUser)
		}

		tenure := admin.Group("/tenure-payout")
		{
			tenure.GET("/eligible", deps.TenureHandler.GetEligibleMembers)
			tenure.POST("/calculate", deps.TenureHandler.CalculateWinners)
			tenure.POST("/confirm", deps.TenureHandler.ConfirmPayouts)
		}

		reports := admin.Group("/reports")
		{
			reports.GET("", deps.ReportHandler.GetReport)
			reports.GET("/export", deps.ReportHandler.ExportReport)
		}

		news := admin.Group("/news")
		{
			news.GET("", deps.NewsHandler.ListNews)
			news.POST("", deps.NewsHandler.CreateNews)
		}

		admin.GET("/audit-logs", deps.AuditHandler.ListLogs)
	}

	return router
}
