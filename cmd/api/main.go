package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/config"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/database"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/handlers"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/logger"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/middleware"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/settlement"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/validator"

	_ "github.com/mike4422/ApexGlobalEarnings-sub001/internal/docs" // Import swagger docs
)

// @title           Apex Global Earnings API
// @version         1.0
// @description     Investment platform API with plan subscriptions, daily ROI accrual, referral commissions, and a settlement sweep.

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

	// Register custom request validators
	validator.Register()

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	planService := services.NewPlanService(db)
	referralService := services.NewReferralService(db, appConfig.ReferralLevel1Bps, appConfig.ReferralLevel2Bps)
	investmentService := services.NewInvestmentService(db, planService, referralService)
	walletService := services.NewWalletService(db)
	withdrawalService := services.NewWithdrawalService(db)
	sweeper := settlement.NewSweeper(settlement.NewStore(db), log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	planHandler := handlers.NewPlanHandler(planService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	walletHandler := handlers.NewWalletHandler(walletService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	referralHandler := handlers.NewReferralHandler(referralService)
	settlementHandler := handlers.NewSettlementHandler(sweeper)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

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

	plans := v1.Group("/plans")
	plans.GET("", planHandler.GetActivePlans)
	plans.GET("/:slug", planHandler.GetPlanBySlug)

	// Maintenance routes, guarded by the sweep API key
	maintenance := v1.Group("/internal")
	maintenance.Use(middleware.SweepAuthMiddleware(appConfig.SweepAPIKey))
	maintenance.POST("/settlement/sweep", settlementHandler.TriggerSweep)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Investment routes
	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetUserInvestments)
	investments.GET("/:id", investmentHandler.GetInvestment)

	// Wallet routes
	wallet := protected.Group("/wallet")
	wallet.POST("/deposits", walletHandler.RequestDeposit)
	wallet.GET("/transactions", walletHandler.GetTransactions)
	wallet.POST("/withdrawals", withdrawalHandler.RequestWithdrawal)
	wallet.GET("/withdrawals", withdrawalHandler.GetUserWithdrawals)

	// Referral routes
	referrals := protected.Group("/referrals")
	referrals.GET("/stats", referralHandler.GetStats)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/plans", planHandler.CreatePlan)
	admin.PATCH("/plans/:id", planHandler.UpdatePlan)
	admin.GET("/deposits", walletHandler.GetPendingDeposits)
	admin.POST("/deposits/:id/confirm", walletHandler.ConfirmDeposit)
	admin.POST("/deposits/:id/reject", walletHandler.RejectDeposit)
	admin.GET("/withdrawals", withdrawalHandler.GetPendingWithdrawals)
	admin.POST("/withdrawals/:id/approve", withdrawalHandler.ApproveWithdrawal)
	admin.POST("/withdrawals/:id/reject", withdrawalHandler.RejectWithdrawal)

	log.Infof("Starting Apex backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
