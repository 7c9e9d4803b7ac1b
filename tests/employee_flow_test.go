package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
)

func newEmployeeFlow(testDB *testingutil.TestDB) businessflow.EmployeeFlow {
	return businessflow.NewEmployeeFlow(
		repository.NewEmployeeRepository(testDB.DB),
		repository.NewAuditLogRepository(testDB.DB),
		bcrypt.MinCost,
		testDB.DB,
	)
}

func updateRequest(email string) *dto.UpdateEmployeeRequest {
	return &dto.UpdateEmployeeRequest{
		Name:          "Updated Name",
		Age:           35,
		ContactNumber: "+94770000000",
		Email:         email,
		Role:          "Supervisor",
	}
}

func TestEmployeeFlow_List(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newEmployeeFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := fixtures.CreateTestEmployee(10002)
		require.NoError(t, err)
		_, err = fixtures.CreateTestEmployee(10001)
		require.NoError(t, err)

		resp, err := flow.List(ctx, dto.Pagination{})
		require.NoError(t, err)
		require.Len(t, resp.Employees, 2)

		// Ordered by employee number regardless of insertion order
		assert.Equal(t, "E10001", resp.Employees[0].EmployeeID)
		assert.Equal(t, "E10002", resp.Employees[1].EmployeeID)
	})
}

func TestEmployeeFlow_Update(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newEmployeeFlow(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		employee, err := fixtures.CreateTestEmployee(10001)
		require.NoError(t, err)
		originalHash := employee.PasswordHash

		t.Run("ProfileUpdateNeverTouchesHash", func(t *testing.T) {
			resp, err := flow.Update(ctx, employee.UUID.String(), updateRequest("updated@example.com"), metadata)
			require.NoError(t, err)
			assert.Equal(t, "Updated Name", resp.Name)
			assert.Equal(t, "updated@example.com", resp.Email)

			var stored models.Employee
			require.NoError(t, testDB.DB.First(&stored, employee.ID).Error)
			assert.Equal(t, originalHash, stored.PasswordHash)
		})

		t.Run("EmailTakenByOtherEmployee", func(t *testing.T) {
			other, err := fixtures.CreateTestEmployee(10002)
			require.NoError(t, err)

			_, err = flow.Update(ctx, employee.UUID.String(), updateRequest(other.Email), metadata)
			assert.True(t, businessflow.IsEmailAlreadyExists(err))
		})

		t.Run("UnknownEmployee", func(t *testing.T) {
			_, err := flow.Update(ctx, "2b0b7f3e-0000-0000-0000-000000000000", updateRequest("x@example.com"), metadata)
			assert.True(t, businessflow.IsEmployeeNotFound(err))
		})
	})
}

func TestEmployeeFlow_UpdatePassword(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newEmployeeFlow(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		employee, err := fixtures.CreateTestEmployee(10001)
		require.NoError(t, err)
		originalHash := employee.PasswordHash

		t.Run("Rehashes", func(t *testing.T) {
			req := &dto.UpdatePasswordRequest{Password: "BrandNewPass1"}
			require.NoError(t, flow.UpdatePassword(ctx, employee.UUID.String(), req, metadata))

			var stored models.Employee
			require.NoError(t, testDB.DB.First(&stored, employee.ID).Error)
			assert.NotEqual(t, originalHash, stored.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("BrandNewPass1")))
		})

		t.Run("LeavesProfileIntact", func(t *testing.T) {
			var stored models.Employee
			require.NoError(t, testDB.DB.First(&stored, employee.ID).Error)
			assert.Equal(t, employee.Name, stored.Name)
			assert.Equal(t, employee.Email, stored.Email)
		})

		t.Run("UnknownEmployee", func(t *testing.T) {
			req := &dto.UpdatePasswordRequest{Password: "BrandNewPass1"}
			err := flow.UpdatePassword(ctx, "2b0b7f3e-0000-0000-0000-000000000000", req, metadata)
			assert.True(t, businessflow.IsEmployeeNotFound(err))
		})

		t.Run("AuditTrailRecorded", func(t *testing.T) {
			var count int64
			require.NoError(t, testDB.DB.Model(&models.AuditLog{}).
				Where("action = ?", models.AuditActionPasswordChanged).Count(&count).Error)
			assert.EqualValues(t, 1, count)
		})
	})
}

func TestEmployeeFlow_Delete(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newEmployeeFlow(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		employee, err := fixtures.CreateTestEmployee(10001)
		require.NoError(t, err)

		require.NoError(t, flow.Delete(ctx, employee.UUID.String(), metadata))

		var count int64
		require.NoError(t, testDB.DB.Model(&models.Employee{}).Count(&count).Error)
		assert.Zero(t, count)

		err = flow.Delete(ctx, employee.UUID.String(), metadata)
		assert.True(t, businessflow.IsEmployeeNotFound(err))
	})
}
