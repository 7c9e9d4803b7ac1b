package tests

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
)

func TestSequenceRepository_Next(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		repo := repository.NewSequenceRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("FirstAllocationReturnsStart", func(t *testing.T) {
			value, err := repo.Next(ctx, models.EmployeeCounter, models.StaffCounterStart)
			require.NoError(t, err)
			assert.Equal(t, int64(10001), value)
		})

		t.Run("SubsequentAllocationsIncrementByOne", func(t *testing.T) {
			value, err := repo.Next(ctx, models.EmployeeCounter, models.StaffCounterStart)
			require.NoError(t, err)
			assert.Equal(t, int64(10002), value)

			value, err = repo.Next(ctx, models.EmployeeCounter, models.StaffCounterStart)
			require.NoError(t, err)
			assert.Equal(t, int64(10003), value)
		})

		t.Run("CountersAreIndependent", func(t *testing.T) {
			value, err := repo.Next(ctx, models.VehicleCounter, models.GeneralCounterStart)
			require.NoError(t, err)
			assert.Equal(t, int64(1), value)

			value, err = repo.Next(ctx, models.ScanCounter, models.GeneralCounterStart)
			require.NoError(t, err)
			assert.Equal(t, int64(1), value)
		})

		t.Run("StartOffsetIgnoredOnceInitialized", func(t *testing.T) {
			// The employee counter already exists, so a different start
			// offset must not reset it.
			value, err := repo.Next(ctx, models.EmployeeCounter, 99999)
			require.NoError(t, err)
			assert.Equal(t, int64(10004), value)
		})
	})
}

func TestSequenceRepository_Current(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		repo := repository.NewSequenceRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("UnknownCounter", func(t *testing.T) {
			counter, err := repo.Current(ctx, "nonexistent_counter")
			require.NoError(t, err)
			assert.Nil(t, counter)
		})

		t.Run("ReflectsLastValue", func(t *testing.T) {
			_, err := repo.Next(ctx, models.IncidentCounter, models.GeneralCounterStart)
			require.NoError(t, err)
			_, err = repo.Next(ctx, models.IncidentCounter, models.GeneralCounterStart)
			require.NoError(t, err)

			counter, err := repo.Current(ctx, models.IncidentCounter)
			require.NoError(t, err)
			require.NotNil(t, counter)
			assert.Equal(t, int64(2), counter.LastValue)
		})
	})
}

// Fifty concurrent allocators must receive exactly the values
// start..start+49 with no duplicates and no holes.
func TestSequenceRepository_ConcurrentAllocation(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		repo := repository.NewSequenceRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		const allocations = 50
		values := make([]int64, allocations)
		errs := make([]error, allocations)

		var wg sync.WaitGroup
		wg.Add(allocations)
		for i := 0; i < allocations; i++ {
			go func(idx int) {
				defer wg.Done()
				values[idx], errs[idx] = repo.Next(ctx, models.OfficerCounter, models.StaffCounterStart)
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, allocations)
		for i := 0; i < allocations; i++ {
			require.NoError(t, errs[i])
			assert.False(t, seen[values[i]], "value %d allocated twice", values[i])
			seen[values[i]] = true
		}

		for v := int64(10001); v < 10001+allocations; v++ {
			assert.True(t, seen[v], "value %d never allocated", v)
		}
	})
}
