package services

import (
	"testing"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/testutil"
)

func TestRequestWithdrawal(t *testing.T) {
	t.Run("reserves_funds", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewWithdrawalService(f.db)
		user := testutil.CreateTestUserWithBalance(t, f.db, 100000)

		w, err := svc.RequestWithdrawal(user.ID, 60000, "TWalletAddressXYZ")
		testutil.AssertNoError(t, err)
		if w.Status != models.WithdrawalStatusPending {
			t.Errorf("expected PENDING, got %s", w.Status)
		}

		var u models.User
		f.db.First(&u, "id = ?", user.ID)
		if u.BalanceCents != 40000 {
			t.Errorf("expected balance 40000 after reservation, got %d", u.BalanceCents)
		}
	})

	t.Run("insufficient_balance", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewWithdrawalService(f.db)
		user := testutil.CreateTestUserWithBalance(t, f.db, 1000)

		_, err := svc.RequestWithdrawal(user.ID, 60000, "TWalletAddressXYZ")
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		var count int64
		f.db.Model(&models.Withdrawal{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected no withdrawal rows, got %d", count)
		}
	})

	t.Run("missing_wallet_address", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewWithdrawalService(f.db)
		user := testutil.CreateTestUserWithBalance(t, f.db, 100000)

		_, err := svc.RequestWithdrawal(user.ID, 1000, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestProcessWithdrawal(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewWithdrawalService(f.db)
		user := testutil.CreateTestUserWithBalance(t, f.db, 100000)

		w, err := svc.RequestWithdrawal(user.ID, 60000, "TWalletAddressXYZ")
		testutil.AssertNoError(t, err)

		approved, err := svc.ApproveWithdrawal(w.ID, "paid batch 42")
		testutil.AssertNoError(t, err)
		if approved.Status != models.WithdrawalStatusApproved {
			t.Errorf("expected APPROVED, got %s", approved.Status)
		}
		if approved.ProcessedAt == nil {
			t.Error("expected processed timestamp")
		}

		// Funds stay debited; approving again is refused.
		var u models.User
		f.db.First(&u, "id = ?", user.ID)
		if u.BalanceCents != 40000 {
			t.Errorf("expected balance 40000, got %d", u.BalanceCents)
		}
		_, err = svc.ApproveWithdrawal(w.ID, "again")
		testutil.AssertAppError(t, err, "WITHDRAWAL_NOT_PENDING")
	})

	t.Run("reject_refunds", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewWithdrawalService(f.db)
		user := testutil.CreateTestUserWithBalance(t, f.db, 100000)

		w, err := svc.RequestWithdrawal(user.ID, 60000, "TWalletAddressXYZ")
		testutil.AssertNoError(t, err)

		rejected, err := svc.RejectWithdrawal(w.ID, "address mismatch")
		testutil.AssertNoError(t, err)
		if rejected.Status != models.WithdrawalStatusRejected {
			t.Errorf("expected REJECTED, got %s", rejected.Status)
		}

		var u models.User
		f.db.First(&u, "id = ?", user.ID)
		if u.BalanceCents != 100000 {
			t.Errorf("expected full refund to 100000, got %d", u.BalanceCents)
		}

		// One debit entry and one refund entry.
		var count int64
		f.db.Model(&models.Transaction{}).
			Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeWithdrawal).
			Count(&count)
		if count != 2 {
			t.Errorf("expected 2 withdrawal ledger entries, got %d", count)
		}

		// Rejecting again must not refund twice.
		_, err = svc.RejectWithdrawal(w.ID, "again")
		testutil.AssertAppError(t, err, "WITHDRAWAL_NOT_PENDING")
		f.db.First(&u, "id = ?", user.ID)
		if u.BalanceCents != 100000 {
			t.Errorf("double refund detected: %d", u.BalanceCents)
		}
	})
}
