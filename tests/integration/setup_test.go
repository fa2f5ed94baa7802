package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/handlers"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/logger"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/middleware"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/settlement"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/validator"
)

const (
	testReferralL1Bps = 500
	testReferralL2Bps = 200
	testSweepAPIKey   = "test-sweep-key"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Plan{},
		&models.Investment{},
		&models.Transaction{},
		&models.Deposit{},
		&models.Withdrawal{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	planService := services.NewPlanService(db)
	referralService := services.NewReferralService(db, testReferralL1Bps, testReferralL2Bps)
	investmentService := services.NewInvestmentService(db, planService, referralService)
	walletService := services.NewWalletService(db)
	withdrawalService := services.NewWithdrawalService(db)
	sweeper := settlement.NewSweeper(settlement.NewStore(db), logger.Get())

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	planHandler := handlers.NewPlanHandler(planService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	walletHandler := handlers.NewWalletHandler(walletService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	referralHandler := handlers.NewReferralHandler(referralService)
	settlementHandler := handlers.NewSettlementHandler(sweeper)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	plans := v1.Group("/plans")
	plans.GET("", planHandler.GetActivePlans)
	plans.GET("/:slug", planHandler.GetPlanBySlug)

	maintenance := v1.Group("/internal")
	maintenance.Use(middleware.SweepAuthMiddleware(testSweepAPIKey))
	maintenance.POST("/settlement/sweep", settlementHandler.TriggerSweep)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetUserInvestments)
	investments.GET("/:id", investmentHandler.GetInvestment)

	wallet := protected.Group("/wallet")
	wallet.POST("/deposits", walletHandler.RequestDeposit)
	wallet.GET("/transactions", walletHandler.GetTransactions)
	wallet.POST("/withdrawals", withdrawalHandler.RequestWithdrawal)
	wallet.GET("/withdrawals", withdrawalHandler.GetUserWithdrawals)

	referrals := protected.Group("/referrals")
	referrals.GET("/stats", referralHandler.GetStats)

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password, referralCode string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User","referral_code":%q}`, email, password, referralCode)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// makeAdmin promotes a registered user to the admin role.
func (app *testApp) makeAdmin(t *testing.T, userID string) {
	t.Helper()
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}
}

// fundUser credits a user's balance directly, standing in for a confirmed deposit.
func (app *testApp) fundUser(t *testing.T, userID string, amountCents int64) {
	t.Helper()
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("balance_cents", amountCents).Error; err != nil {
		t.Fatalf("failed to fund user: %v", err)
	}
}

// balanceOf reads a user's current balance.
func (app *testApp) balanceOf(t *testing.T, userID string) int64 {
	t.Helper()
	var user models.User
	if err := app.DB.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	return user.BalanceCents
}
