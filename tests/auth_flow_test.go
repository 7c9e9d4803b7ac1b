package tests

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFlow(t *testing.T, testDB *testingutil.TestDB) businessflow.AuthFlow {
	t.Helper()

	return businessflow.NewAuthFlow(
		repository.NewEmployeeRepository(testDB.DB),
		repository.NewSequenceRepository(testDB.DB),
		repository.NewAuditLogRepository(testDB.DB),
		newTestTokenService(t),
		testSequenceConfig(),
		bcrypt.MinCost,
		testDB.DB,
	)
}

func registerRequest(email, nic string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:          "Kasun Jayawardena",
		Age:           28,
		ContactNumber: "+94771234567",
		NIC:           nic,
		Email:         email,
		Password:      "StrongPass1",
		Role:          "Attendant",
	}
}

func TestAuthFlow_Register(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newAuthFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		t.Run("FirstEmployeeGetsE10001", func(t *testing.T) {
			resp, err := flow.Register(ctx, registerRequest("kasun@example.com", "900123456V"), metadata)
			require.NoError(t, err)
			assert.Equal(t, "Employee registered", resp.Msg)
			assert.Equal(t, int64(10001), resp.Employee.EmployeeNumber)
			assert.Equal(t, "E10001", resp.Employee.EmployeeID)
			assert.NotEmpty(t, resp.Employee.UUID)
		})

		t.Run("SecondEmployeeGetsE10002", func(t *testing.T) {
			resp, err := flow.Register(ctx, registerRequest("amaya@example.com", "910123456V"), metadata)
			require.NoError(t, err)
			assert.Equal(t, "E10002", resp.Employee.EmployeeID)
		})

		t.Run("DuplicateEmail", func(t *testing.T) {
			_, err := flow.Register(ctx, registerRequest("kasun@example.com", "920123456V"), metadata)
			assert.True(t, businessflow.IsEmailAlreadyExists(err))
		})

		t.Run("DuplicateEmailDifferentCase", func(t *testing.T) {
			_, err := flow.Register(ctx, registerRequest("KASUN@Example.COM", "930123456V"), metadata)
			assert.True(t, businessflow.IsEmailAlreadyExists(err))
		})

		t.Run("DuplicateNIC", func(t *testing.T) {
			_, err := flow.Register(ctx, registerRequest("other@example.com", "900123456V"), metadata)
			assert.True(t, businessflow.IsNICAlreadyExists(err))
		})

		t.Run("PasswordIsHashed", func(t *testing.T) {
			var employee models.Employee
			require.NoError(t, testDB.DB.Where("email = ?", "kasun@example.com").First(&employee).Error)
			assert.NotEqual(t, "StrongPass1", employee.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("StrongPass1")))
		})
	})
}

func TestAuthFlow_Register_ConcurrentDuplicates(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newAuthFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		// Racing registrations with the same identity can all pass the
		// pre-insert duplicate checks; the losers then hit the unique
		// indexes and must still come back as duplicates.
		const racers = 8
		errs := make([]error, racers)
		var wg sync.WaitGroup
		wg.Add(racers)

		for i := 0; i < racers; i++ {
			go func(idx int) {
				defer wg.Done()
				_, errs[idx] = flow.Register(ctx, registerRequest("racer@example.com", "940123456V"), metadata)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.True(t, businessflow.IsEmailAlreadyExists(err) || businessflow.IsNICAlreadyExists(err),
				"loser should surface as a duplicate, got: %v", err)
		}
		assert.Equal(t, 1, succeeded)

		var count int64
		require.NoError(t, testDB.DB.Model(&models.Employee{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestAuthFlow_Login(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newAuthFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		_, err := flow.Register(ctx, registerRequest("login@example.com", "940123456V"), metadata)
		require.NoError(t, err)

		t.Run("Success", func(t *testing.T) {
			resp, err := flow.Login(ctx, &dto.LoginRequest{
				Email:    "login@example.com",
				Password: "StrongPass1",
			}, metadata)
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})

		t.Run("CaseInsensitiveEmail", func(t *testing.T) {
			resp, err := flow.Login(ctx, &dto.LoginRequest{
				Email:    "LOGIN@example.com",
				Password: "StrongPass1",
			}, metadata)
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})

		t.Run("WrongPassword", func(t *testing.T) {
			_, err := flow.Login(ctx, &dto.LoginRequest{
				Email:    "login@example.com",
				Password: "WrongPass1",
			}, metadata)
			assert.True(t, businessflow.IsInvalidCredentials(err))
		})

		t.Run("UnknownEmailSameError", func(t *testing.T) {
			// An unknown email must be indistinguishable from a wrong
			// password.
			_, err := flow.Login(ctx, &dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "StrongPass1",
			}, metadata)
			assert.True(t, businessflow.IsInvalidCredentials(err))
		})

		t.Run("UpdatesLastLogin", func(t *testing.T) {
			var employee models.Employee
			require.NoError(t, testDB.DB.Where("email = ?", "login@example.com").First(&employee).Error)
			assert.NotNil(t, employee.LastLoginAt)
		})

		t.Run("InactiveAccount", func(t *testing.T) {
			require.NoError(t, testDB.DB.Model(&models.Employee{}).
				Where("email = ?", "login@example.com").
				Update("is_active", false).Error)

			_, err := flow.Login(ctx, &dto.LoginRequest{
				Email:    "login@example.com",
				Password: "StrongPass1",
			}, metadata)
			assert.True(t, businessflow.IsAccountInactive(err))
		})

		t.Run("AuditTrailRecorded", func(t *testing.T) {
			var count int64
			require.NoError(t, testDB.DB.Model(&models.AuditLog{}).
				Where("action = ?", models.AuditActionLoginSuccessful).
				Count(&count).Error)
			assert.GreaterOrEqual(t, count, int64(2))

			require.NoError(t, testDB.DB.Model(&models.AuditLog{}).
				Where("action = ?", models.AuditActionLoginFailed).
				Count(&count).Error)
			assert.GreaterOrEqual(t, count, int64(2))
		})
	})
}

func TestAuthFlow_Me(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		flow := newAuthFlow(t, testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		resp, err := flow.Register(ctx, registerRequest("me@example.com", "950123456V"), metadata)
		require.NoError(t, err)

		t.Run("Found", func(t *testing.T) {
			employee, err := flow.Me(ctx, resp.Employee.ID)
			require.NoError(t, err)
			assert.Equal(t, "me@example.com", employee.Email)
			assert.Equal(t, resp.Employee.EmployeeID, employee.EmployeeID)
		})

		t.Run("NotFound", func(t *testing.T) {
			_, err := flow.Me(ctx, 999999)
			assert.True(t, businessflow.IsEmployeeNotFound(err))
		})
	})
}
