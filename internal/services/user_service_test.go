package services

import (
	"testing"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		user, err := svc.CreateUser("Alice@Example.com", "Password123!", "Alice", "Smith", "")
		testutil.AssertNoError(t, err)
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.ReferralCode == "" {
			t.Error("expected a referral code to be generated")
		}
		if user.ReferredByID != nil {
			t.Error("expected no inviter")
		}
		if user.BalanceCents != 0 {
			t.Errorf("expected zero starting balance, got %d", user.BalanceCents)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		_, err := svc.CreateUser("alice@example.com", "Password123!", "", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateUser("alice@example.com", "Password123!", "", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("with_referral_code", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		inviter, err := svc.CreateUser("inviter@example.com", "Password123!", "", "", "")
		testutil.AssertNoError(t, err)

		invited, err := svc.CreateUser("invited@example.com", "Password123!", "", "", inviter.ReferralCode)
		testutil.AssertNoError(t, err)
		if invited.ReferredByID == nil || *invited.ReferredByID != inviter.ID {
			t.Errorf("expected inviter link to %s, got %v", inviter.ID, invited.ReferredByID)
		}
	})

	t.Run("unknown_referral_code", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		_, err := svc.CreateUser("bob@example.com", "Password123!", "", "", "no-such-code")
		testutil.AssertAppError(t, err, "INVALID_REFERRAL_CODE")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		_, err := svc.CreateUser("alice@example.com", "Password123!", "", "", "")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("alice@example.com", "Password123!")
		testutil.AssertNoError(t, err)
		if user.LastLoginAt == nil {
			t.Error("expected last login timestamp")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		_, err := svc.CreateUser("alice@example.com", "Password123!", "", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("alice@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("lockout_after_repeated_failures", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewUserService(f.db)

		_, err := svc.CreateUser("alice@example.com", "Password123!", "", "", "")
		testutil.AssertNoError(t, err)

		for i := 0; i < maxFailedLogins; i++ {
			_, err = svc.AttemptLogin("alice@example.com", "wrong")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		_, err = svc.AttemptLogin("alice@example.com", "Password123!")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	f := newTestFixture(t)
	defer f.teardown(t)
	svc := NewUserService(f.db)

	user, err := svc.CreateUser("alice@example.com", "Password123!", "", "", "")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "deadbeef"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "deadbeef" {
		t.Errorf("expected stored hash, got %q", hash)
	}
}
