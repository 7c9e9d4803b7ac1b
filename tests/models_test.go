package tests

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/models"
	testingutil "github.com/prabodha-fernando/autoslot/testing"
	"github.com/prabodha-fernando/autoslot/utils"
)

func TestEmployeePublicID(t *testing.T) {
	employee := &models.Employee{EmployeeNumber: 10001}
	assert.Equal(t, "E10001", employee.PublicID())

	employee.EmployeeNumber = 10105
	assert.Equal(t, "E10105", employee.PublicID())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "employees", models.Employee{}.TableName())
	assert.Equal(t, "security_officers", models.SecurityOfficer{}.TableName())
	assert.Equal(t, "vehicle_logs", models.VehicleLog{}.TableName())
	assert.Equal(t, "incidents", models.Incident{}.TableName())
	assert.Equal(t, "camera_scans", models.CameraScan{}.TableName())
	assert.Equal(t, "sequence_counters", models.SequenceCounter{}.TableName())
	assert.Equal(t, "audit_log", models.AuditLog{}.TableName())
}

func TestVehicleLogIsInside(t *testing.T) {
	vehicleLog := &models.VehicleLog{Status: models.VehicleStatusInside}
	assert.True(t, vehicleLog.IsInside())

	vehicleLog.Status = models.VehicleStatusExited
	assert.False(t, vehicleLog.IsInside())
}

func TestIncidentIsResolved(t *testing.T) {
	incident := &models.Incident{Status: models.IncidentStatusOpen}
	assert.False(t, incident.IsResolved())

	incident.Status = models.IncidentStatusUnderInvestigation
	assert.False(t, incident.IsResolved())

	incident.Status = models.IncidentStatusResolved
	assert.True(t, incident.IsResolved())

	incident.Status = models.IncidentStatusClosed
	assert.True(t, incident.IsResolved())
}

func TestOfficerIsNightShift(t *testing.T) {
	officer := &models.SecurityOfficer{Shift: models.ShiftDay}
	assert.False(t, officer.IsNightShift())

	officer.Shift = models.ShiftNight
	assert.True(t, officer.IsNightShift())
}

func TestCameraScanDetections(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		scan := &models.CameraScan{}
		detections, err := scan.Detections()
		require.NoError(t, err)
		assert.Nil(t, detections)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		raw, err := json.Marshal([]models.DetectedVehicle{
			{VehicleNumber: "CAB-1234", VehicleType: models.VehicleTypeCar, ConfidenceScore: 0.91},
		})
		require.NoError(t, err)

		scan := &models.CameraScan{DetectedVehicles: raw}
		detections, err := scan.Detections()
		require.NoError(t, err)
		require.Len(t, detections, 1)
		assert.Equal(t, "CAB-1234", detections[0].VehicleNumber)
	})
}

func TestAuditLogIsFailed(t *testing.T) {
	entry := &models.AuditLog{}
	assert.False(t, entry.IsFailed())

	entry.Success = utils.ToPtr(true)
	assert.False(t, entry.IsFailed())

	entry.Success = utils.ToPtr(false)
	assert.True(t, entry.IsFailed())
}

// The employees table enforces case-insensitive email uniqueness at the
// schema level, independent of the flow's duplicate check.
func TestEmployeeEmailUniqueIndexIsCaseInsensitive(t *testing.T) {
	withDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		fixtures := testingutil.NewTestFixtures(testDB)

		first, err := fixtures.CreateTestEmployee(10001)
		require.NoError(t, err)

		second := *first
		second.ID = 0
		second.UUID = uuid.New()
		second.EmployeeNumber = 10002
		second.NIC = first.NIC + "X"
		second.Email = strings.ToUpper(first.Email)

		err = testDB.DB.Create(&second).Error
		assert.Error(t, err)
	})
}
