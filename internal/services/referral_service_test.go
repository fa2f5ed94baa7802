package services

import (
	"testing"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/testutil"
)

// chainFixture creates grandparent <- parent <- child referral links.
func chainFixture(t *testing.T, f *testFixture) (grandparent, parent, child *models.User) {
	t.Helper()
	grandparent = testutil.CreateTestUser(t, f.db)
	parent = testutil.CreateTestUser(t, f.db)
	child = testutil.CreateTestUser(t, f.db)

	if err := f.db.Model(parent).UpdateColumn("referred_by_id", grandparent.ID).Error; err != nil {
		t.Fatalf("failed to link parent: %v", err)
	}
	if err := f.db.Model(child).UpdateColumn("referred_by_id", parent.ID).Error; err != nil {
		t.Fatalf("failed to link child: %v", err)
	}
	parent.ReferredByID = &grandparent.ID
	child.ReferredByID = &parent.ID
	return grandparent, parent, child
}

func TestPayCommissions(t *testing.T) {
	t.Run("two_levels", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		grandparent, parent, child := chainFixture(t, f)

		planSvc := NewPlanService(f.db)
		refSvc := NewReferralService(f.db, 500, 200)
		invSvc := NewInvestmentService(f.db, planSvc, refSvc)

		f.db.Model(child).UpdateColumn("balance_cents", 200000)
		plan := testutil.CreateTestPlan(t, f.db)

		_, err := invSvc.CreateInvestment(child.ID, plan.ID, 100000)
		testutil.AssertNoError(t, err)

		// Level 1: 100000 * 500 / 10000 = 5000 to the direct inviter.
		var p models.User
		f.db.First(&p, "id = ?", parent.ID)
		if p.BalanceCents != 5000 {
			t.Errorf("expected parent commission 5000, got %d", p.BalanceCents)
		}

		// Level 2: 100000 * 200 / 10000 = 2000 to the inviter's inviter.
		var g models.User
		f.db.First(&g, "id = ?", grandparent.ID)
		if g.BalanceCents != 2000 {
			t.Errorf("expected grandparent commission 2000, got %d", g.BalanceCents)
		}

		var entries []models.Transaction
		f.db.Where("type = ?", models.TransactionTypeReferral).Order("referral_level ASC").Find(&entries)
		if len(entries) != 2 {
			t.Fatalf("expected 2 referral ledger entries, got %d", len(entries))
		}
		if entries[0].ReferralLevel != 1 || entries[0].UserID != parent.ID {
			t.Errorf("unexpected level 1 entry: %+v", entries[0])
		}
		if entries[1].ReferralLevel != 2 || entries[1].UserID != grandparent.ID {
			t.Errorf("unexpected level 2 entry: %+v", entries[1])
		}
	})

	t.Run("no_inviter_pays_nothing", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)

		planSvc := NewPlanService(f.db)
		refSvc := NewReferralService(f.db, 500, 200)
		invSvc := NewInvestmentService(f.db, planSvc, refSvc)

		user := testutil.CreateTestUserWithBalance(t, f.db, 200000)
		plan := testutil.CreateTestPlan(t, f.db)

		_, err := invSvc.CreateInvestment(user.ID, plan.ID, 100000)
		testutil.AssertNoError(t, err)

		var count int64
		f.db.Model(&models.Transaction{}).Where("type = ?", models.TransactionTypeReferral).Count(&count)
		if count != 0 {
			t.Errorf("expected no referral entries, got %d", count)
		}
	})

	t.Run("commission_floored_to_zero_is_dropped", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		_, _, child := chainFixture(t, f)

		planSvc := NewPlanService(f.db)
		// 1 bps of 1000 cents floors to zero.
		refSvc := NewReferralService(f.db, 1, 1)
		invSvc := NewInvestmentService(f.db, planSvc, refSvc)

		f.db.Model(child).UpdateColumn("balance_cents", 2000)
		plan := testutil.CreateTestPlan(t, f.db)

		_, err := invSvc.CreateInvestment(child.ID, plan.ID, 1000)
		testutil.AssertNoError(t, err)

		var count int64
		f.db.Model(&models.Transaction{}).Where("type = ?", models.TransactionTypeReferral).Count(&count)
		if count != 0 {
			t.Errorf("expected zero-cent commissions to be dropped, got %d entries", count)
		}
	})
}

func TestReferralStats(t *testing.T) {
	f := newTestFixture(t)
	defer f.teardown(t)
	_, parent, child := chainFixture(t, f)

	planSvc := NewPlanService(f.db)
	refSvc := NewReferralService(f.db, 500, 200)
	invSvc := NewInvestmentService(f.db, planSvc, refSvc)

	f.db.Model(child).UpdateColumn("balance_cents", 400000)
	plan := testutil.CreateTestPlan(t, f.db)

	for i := 0; i < 2; i++ {
		_, err := invSvc.CreateInvestment(child.ID, plan.ID, 100000)
		testutil.AssertNoError(t, err)
	}

	stats, err := refSvc.GetStats(parent.ID)
	testutil.AssertNoError(t, err)

	if stats.DirectReferrals != 1 {
		t.Errorf("expected 1 direct referral, got %d", stats.DirectReferrals)
	}
	if stats.Level1EarnedCents != 10000 {
		t.Errorf("expected level 1 earnings 10000, got %d", stats.Level1EarnedCents)
	}
	if stats.Level2EarnedCents != 0 {
		t.Errorf("expected level 2 earnings 0, got %d", stats.Level2EarnedCents)
	}
	if stats.ReferralCode != parent.ReferralCode {
		t.Errorf("expected referral code %s, got %s", parent.ReferralCode, stats.ReferralCode)
	}
}
