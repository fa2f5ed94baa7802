package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/testutil"
)

// testFixture bundles the shared database setup used across service tests.
type testFixture struct {
	db *gorm.DB
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	return &testFixture{db: testutil.SetupTestDB(t)}
}

func (f *testFixture) teardown(t *testing.T) {
	testutil.TeardownTestDB(t, f.db)
}
