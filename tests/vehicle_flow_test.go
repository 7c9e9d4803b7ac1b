package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
	"github.com/prabodha-fernando/autoslot/utils"
)

func newVehicleFlow(testDB *testingutil.TestDB) businessflow.VehicleFlow {
	return businessflow.NewVehicleFlow(
		repository.NewVehicleLogRepository(testDB.DB),
		repository.NewSequenceRepository(testDB.DB),
		testSequenceConfig(),
		testDB.DB,
	)
}

func TestVehicleFlow_Entry(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newVehicleFlow(testDB)
		ctx := testingutil.CreateTestContext()

		resp, err := flow.Entry(ctx, &dto.VehicleEntryRequest{
			VehicleNumber: "cab-1234",
			DriverName:    "Nimal Silva",
			VehicleType:   models.VehicleTypeCar,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.VehicleLogNumber)
		assert.Equal(t, "CAB-1234", resp.VehicleNumber, "vehicle number should be upper-cased")
		assert.Equal(t, models.VehicleStatusInside, resp.Status)
		assert.NotEmpty(t, resp.EntryTime)
		assert.Empty(t, resp.ExitTime)

		resp2, err := flow.Entry(ctx, &dto.VehicleEntryRequest{
			VehicleNumber: "KV-7788",
			DriverName:    "Sunil Perera",
			VehicleType:   models.VehicleTypeVan,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp2.VehicleLogNumber)
	})
}

func TestVehicleFlow_Exit(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newVehicleFlow(testDB)
		ctx := testingutil.CreateTestContext()

		entry, err := flow.Entry(ctx, &dto.VehicleEntryRequest{
			VehicleNumber: "CAB-1234",
			DriverName:    "Nimal Silva",
			VehicleType:   models.VehicleTypeCar,
		})
		require.NoError(t, err)

		t.Run("MarksExited", func(t *testing.T) {
			resp, err := flow.Exit(ctx, entry.UUID)
			require.NoError(t, err)
			assert.Equal(t, models.VehicleStatusExited, resp.Status)
			assert.NotEmpty(t, resp.ExitTime)
		})

		t.Run("SecondExitRejected", func(t *testing.T) {
			_, err := flow.Exit(ctx, entry.UUID)
			assert.True(t, businessflow.IsVehicleAlreadyExited(err))
		})

		t.Run("UnknownLog", func(t *testing.T) {
			_, err := flow.Exit(ctx, "2b0b7f3e-0000-0000-0000-000000000000")
			assert.True(t, businessflow.IsVehicleLogNotFound(err))
		})
	})
}

func TestVehicleFlow_Listing(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newVehicleFlow(testDB)
		ctx := testingutil.CreateTestContext()

		inside, err := fixtures.CreateTestVehicleLog(1)
		require.NoError(t, err)

		exited, err := fixtures.CreateTestVehicleLog(2)
		require.NoError(t, err)
		require.NoError(t, testDB.DB.Model(&models.VehicleLog{}).
			Where("id = ?", exited.ID).
			Updates(map[string]any{
				"status":    models.VehicleStatusExited,
				"exit_time": utils.UTCNow(),
			}).Error)

		t.Run("All", func(t *testing.T) {
			resp, err := flow.List(ctx, nil, dto.Pagination{})
			require.NoError(t, err)
			assert.Len(t, resp.Logs, 2)
		})

		t.Run("FilterByStatus", func(t *testing.T) {
			status := models.VehicleStatusExited
			resp, err := flow.List(ctx, &status, dto.Pagination{})
			require.NoError(t, err)
			require.Len(t, resp.Logs, 1)
			assert.Equal(t, exited.VehicleNumber, resp.Logs[0].VehicleNumber)
		})

		t.Run("Inside", func(t *testing.T) {
			resp, err := flow.ListInside(ctx)
			require.NoError(t, err)
			require.Len(t, resp.Logs, 1)
			assert.Equal(t, inside.VehicleNumber, resp.Logs[0].VehicleNumber)
		})
	})
}
