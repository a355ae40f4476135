package api

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-api/internal/api/handler"
	"github.com/fintrack/finance-api/internal/api/metrics"
	"github.com/fintrack/finance-api/internal/api/middleware"
	"github.com/fintrack/finance-api/internal/core/service"
	"github.com/fintrack/finance-api/internal/infrastructure/config"
	redisstore "github.com/fintrack/finance-api/internal/infrastructure/db/redis"
	"github.com/fintrack/finance-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(metrics.Middleware())

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	recordRepo := sqlite.NewRecordRepository(db)
	reportRepo := sqlite.NewReportRepository(db)
	tokenStore := redisstore.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	recordService := service.NewRecordService(recordRepo, categoryRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	recordHandler := handler.NewRecordHandler(recordService)
	reportHandler := handler.NewReportHandler(reportService)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh", authHandler.Refresh)

	// --- Account routes ---
	e.GET("/profile", authHandler.Profile, authRequired)
	e.DELETE("/profile", authHandler.DeleteProfile, authRequired)
	e.POST("/logout", authHandler.Logout, authRequired)

	// --- Category routes ---
	category := e.Group("/category", authRequired)
	category.GET("", categoryHandler.List)
	category.POST("", categoryHandler.Create)
	category.GET("/type/:type", categoryHandler.ListByKind)
	category.GET("/:id", categoryHandler.Get)
	category.PUT("/:id", categoryHandler.Update)
	category.DELETE("/:id", categoryHandler.Delete)

	// --- Record and reporting routes ---
	record := e.Group("/record", authRequired)
	record.GET("", recordHandler.List)
	record.POST("", recordHandler.Create)
	record.GET("/years", reportHandler.Years)
	record.GET("/yearly-totals", reportHandler.YearlyTotals)
	record.GET("/months/:year", reportHandler.Months)
	record.GET("/monthly-totals/:year", reportHandler.MonthlyTotals)
	record.GET("/category-breakdown/:year/:month", reportHandler.CategoryBreakdown)
	record.GET("/:id", recordHandler.Get)
	record.PUT("/:id", recordHandler.Update)
	record.DELETE("/:id", recordHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
