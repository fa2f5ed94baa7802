package services

import (
	"testing"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/testutil"
)

func TestCreatePlan(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewPlanService(f.db)

		plan, err := svc.CreatePlan("starter", "Starter", 1000, 100000, 500, 5)
		testutil.AssertNoError(t, err)
		if plan.Slug != "starter" || !plan.IsActive {
			t.Errorf("unexpected plan: %+v", plan)
		}
	})

	t.Run("duplicate_slug", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewPlanService(f.db)

		_, err := svc.CreatePlan("starter", "Starter", 1000, 100000, 500, 5)
		testutil.AssertNoError(t, err)
		_, err = svc.CreatePlan("starter", "Starter Again", 1000, 100000, 500, 5)
		testutil.AssertAppError(t, err, "DUPLICATE_SLUG")
	})

	t.Run("invalid_terms", func(t *testing.T) {
		f := newTestFixture(t)
		defer f.teardown(t)
		svc := NewPlanService(f.db)

		// min > max
		_, err := svc.CreatePlan("a", "A", 100000, 1000, 500, 5)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		// negative ROI
		_, err = svc.CreatePlan("b", "B", 1000, 100000, -1, 5)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		// zero duration
		_, err = svc.CreatePlan("c", "C", 1000, 100000, 500, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdatePlan(t *testing.T) {
	f := newTestFixture(t)
	defer f.teardown(t)
	svc := NewPlanService(f.db)

	plan, err := svc.CreatePlan("starter", "Starter", 1000, 100000, 500, 5)
	testutil.AssertNoError(t, err)

	inactive := false
	updated, err := svc.UpdatePlan(plan.ID, PlanUpdate{IsActive: &inactive})
	testutil.AssertNoError(t, err)
	if updated.IsActive {
		t.Error("expected plan deactivated")
	}
	// Untouched fields survive.
	if updated.DailyRoiBps != 500 || updated.DurationDays != 5 {
		t.Errorf("unexpected terms after partial update: %+v", updated)
	}

	badDuration := 0
	_, err = svc.UpdatePlan(plan.ID, PlanUpdate{DurationDays: &badDuration})
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestGetActivePlans(t *testing.T) {
	f := newTestFixture(t)
	defer f.teardown(t)
	svc := NewPlanService(f.db)

	_, err := svc.CreatePlan("starter", "Starter", 1000, 100000, 500, 5)
	testutil.AssertNoError(t, err)
	gold, err := svc.CreatePlan("gold", "Gold", 100000, 10000000, 700, 30)
	testutil.AssertNoError(t, err)

	inactive := false
	_, err = svc.UpdatePlan(gold.ID, PlanUpdate{IsActive: &inactive})
	testutil.AssertNoError(t, err)

	plans, err := svc.GetActivePlans()
	testutil.AssertNoError(t, err)
	if len(plans) != 1 || plans[0].Slug != "starter" {
		t.Errorf("expected only the starter plan, got %+v", plans)
	}
}

func TestGetPlanBySlug(t *testing.T) {
	f := newTestFixture(t)
	defer f.teardown(t)
	svc := NewPlanService(f.db)

	created, err := svc.CreatePlan("starter", "Starter", 1000, 100000, 500, 5)
	testutil.AssertNoError(t, err)

	got, err := svc.GetPlanBySlug("starter")
	testutil.AssertNoError(t, err)
	if got.ID != created.ID {
		t.Errorf("expected plan %s, got %s", created.ID, got.ID)
	}

	_, err = svc.GetPlanBySlug("missing")
	testutil.AssertAppError(t, err, "PLAN_NOT_FOUND")
}
