// Package tests contains test cases that exercise flows and repositories
// against a real database, kept separate to avoid circular imports.
package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/services"
	"github.com/prabodha-fernando/autoslot/config"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
)

// withDB provisions a fresh database for the test and skips when no
// PostgreSQL server is reachable.
func withDB(t *testing.T, fn func(t *testing.T, testDB *testingutil.TestDB)) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("skipping, test database unavailable: %v", err)
	}
	defer func() {
		require.NoError(t, testDB.TeardownTestDB())
	}()

	fn(t, testDB)
}

// testSequenceConfig mirrors the default counter offsets
func testSequenceConfig() config.SequenceConfig {
	return config.SequenceConfig{
		EmployeeStart: 10001,
		OfficerStart:  10001,
		VehicleStart:  1,
		ScanStart:     1,
		IncidentStart: 1,
	}
}

func newTestTokenService(t *testing.T) services.TokenService {
	t.Helper()

	service, err := services.NewTokenService(
		5*time.Hour,
		"autoslot-test",
		"autoslot-test-api",
		false,
		"",
		"",
		"test-secret-key-that-is-long-enough-for-hs256",
	)
	require.NoError(t, err)
	return service
}
