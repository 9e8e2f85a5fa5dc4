package main

import (
	"fmt"
	"net/http"
	"os"

	"quickspend/internal/config"
	"quickspend/internal/database"
	"quickspend/internal/handlers"
	"quickspend/internal/logger"
	"quickspend/internal/middleware"
	"quickspend/internal/services"
	"quickspend/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "quickspend/internal/docs" // Import swagger docs
)

// @title           QuickSpend API
// @version         1.0
// @description     QuickSpend is a personal finance tracker built around one-line shorthand entry, autocomplete from past spending, streaks, and spending analytics.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	paymentModeService := services.NewPaymentModeService(db)
	transactionService := services.NewTransactionService(db, paymentModeService)
	insightsService := services.NewInsightsService(transactionService, appConfig.DashboardCacheSize, appConfig.DashboardCacheTTL)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, paymentModeService, auditService)
	paymentModeHandler := handlers.NewPaymentModeHandler(paymentModeService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Payment mode routes
	paymentModes := protected.Group("/payment-modes")
	paymentModes.POST("", paymentModeHandler.CreatePaymentMode)
	paymentModes.GET("", paymentModeHandler.GetPaymentModes)
	paymentModes.PUT("/:id", paymentModeHandler.UpdatePaymentMode)
	paymentModes.DELETE("/:id", paymentModeHandler.DeletePaymentMode)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("/shorthand", transactionHandler.LogShorthand)
	transactions.POST("/parse", transactionHandler.PreviewShorthand)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Insights routes
	insights := protected.Group("/insights")
	insights.GET("/dashboard", insightsHandler.GetDashboard)
	insights.GET("/cards", insightsHandler.GetCards)
	insights.GET("/streaks", insightsHandler.GetStreaks)
	insights.GET("/suggestions", insightsHandler.GetSuggestions)

	log.Infof("Starting QuickSpend backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
