package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/uuid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := &models.User{
		Email:        email,
		Password:     string(hashed),
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleUser,
		ReferralCode: uuid.New(),
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create fixture user: %v", err)
	}
	return user
}

// CreateTestUserWithBalance creates a user holding the given balance.
func CreateTestUserWithBalance(t *testing.T, db *gorm.DB, balanceCents int64) *models.User {
	t.Helper()
	user := CreateTestUser(t, db)
	if err := db.Model(user).UpdateColumn("balance_cents", balanceCents).Error; err != nil {
		t.Fatalf("failed to set fixture balance: %v", err)
	}
	user.BalanceCents = balanceCents
	return user
}

// CreateTestAdmin creates a user holding the admin role.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	admin := CreateTestUser(t, db)
	if err := db.Model(admin).UpdateColumn("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote fixture admin: %v", err)
	}
	admin.Role = models.RoleAdmin
	return admin
}

// CreateTestPlan creates an active plan with sensible defaults.
func CreateTestPlan(t *testing.T, db *gorm.DB) *models.Plan {
	t.Helper()
	return CreateTestPlanWithTerms(t, db, 500, 5)
}

// CreateTestPlanWithTerms creates an active plan with the given daily ROI in
// basis points and duration in days.
func CreateTestPlanWithTerms(t *testing.T, db *gorm.DB, dailyRoiBps int64, durationDays int) *models.Plan {
	t.Helper()

	plan := &models.Plan{
		Slug:           fmt.Sprintf("plan-%d", nextID()),
		Name:           "Test Plan",
		MinAmountCents: 1000,
		MaxAmountCents: 10_000_000,
		DailyRoiBps:    dailyRoiBps,
		DurationDays:   durationDays,
		IsActive:       true,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create fixture plan: %v", err)
	}
	return plan
}

// CreateTestInvestment creates an ACTIVE investment for the user with terms
// snapshotted from the plan and the given start date. EndDate is left nil so
// tests can exercise backfill.
func CreateTestInvestment(t *testing.T, db *gorm.DB, user *models.User, plan *models.Plan, amountCents int64, startDate time.Time) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:       user.ID,
		PlanID:       plan.ID,
		OrderRef:     uuid.New(),
		AmountCents:  amountCents,
		DailyRoiBps:  plan.DailyRoiBps,
		DurationDays: plan.DurationDays,
		StartDate:    startDate,
		Status:       models.InvestmentStatusActive,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create fixture investment: %v", err)
	}
	return inv
}
