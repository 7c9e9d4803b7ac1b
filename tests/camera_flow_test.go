package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
	"github.com/prabodha-fernando/autoslot/config"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
)

// newCameraFlow builds the flow without Redis; the flow treats a nil client
// as cache-disabled.
func newCameraFlow(testDB *testingutil.TestDB) businessflow.CameraFlow {
	return businessflow.NewCameraFlow(
		repository.NewCameraScanRepository(testDB.DB),
		repository.NewSequenceRepository(testDB.DB),
		testSequenceConfig(),
		&config.CacheConfig{Enabled: false},
		nil,
		testDB.DB,
	)
}

func TestCameraFlow_Create(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newCameraFlow(testDB)
		ctx := testingutil.CreateTestContext()

		resp, err := flow.Create(ctx, &dto.CreateScanRequest{
			DetectedVehicles: []dto.DetectedVehicleDTO{
				{VehicleNumber: "CAB-1234", VehicleType: models.VehicleTypeCar, ConfidenceScore: 0.98},
				{VehicleNumber: "KV-7788", VehicleType: models.VehicleTypeVan, ConfidenceScore: 0.76},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ScanNumber)
		assert.NotEmpty(t, resp.ScannedAt)
		require.Len(t, resp.DetectedVehicles, 2)
		assert.Equal(t, "CAB-1234", resp.DetectedVehicles[0].VehicleNumber)
		assert.InDelta(t, 0.98, resp.DetectedVehicles[0].ConfidenceScore, 0.0001)
	})
}

func TestCameraFlow_List(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newCameraFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := fixtures.CreateTestCameraScan(1)
		require.NoError(t, err)
		second, err := fixtures.CreateTestCameraScan(2)
		require.NoError(t, err)

		resp, err := flow.List(ctx, dto.Pagination{})
		require.NoError(t, err)
		require.Len(t, resp.Scans, 2)

		// Newest first
		assert.Equal(t, second.ScanNumber, resp.Scans[0].ScanNumber)
	})
}
