package testing

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// TestPassword is the plaintext behind every fixture employee's hash
const TestPassword = "TestPass123!"

// CreateTestEmployee creates an active employee with a bcrypt-hashed password.
// The employee number is taken directly, not allocated from the counter.
func (tf *TestFixtures) CreateTestEmployee(employeeNumber int64) (*models.Employee, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	employee := &models.Employee{
		UUID:           uuid.New(),
		EmployeeNumber: employeeNumber,
		Name:           "John Doe",
		Age:            30,
		ContactNumber:  fmt.Sprintf("+9477%s", randomDigits[:7]),
		NIC:            fmt.Sprintf("%s0V", randomDigits),
		Email:          fmt.Sprintf("john.doe.%d.%s@example.com", employeeNumber, randomDigits),
		PasswordHash:   string(hashedPassword),
		Role:           "Attendant",
		IsActive:       utils.ToPtr(true),
		CreatedAt:      utils.UTCNow(),
		UpdatedAt:      utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(employee).Error; err != nil {
		return nil, fmt.Errorf("failed to create test employee: %w", err)
	}
	return employee, nil
}

// CreateTestOfficer creates a security officer on the given shift
func (tf *TestFixtures) CreateTestOfficer(officerNumber int64, shift string) (*models.SecurityOfficer, error) {
	officer := &models.SecurityOfficer{
		UUID:          uuid.New(),
		OfficerNumber: officerNumber,
		Name:          "Jane Perera",
		ContactNumber: fmt.Sprintf("+9471%07d", rand.Intn(10000000)),
		Shift:         shift,
		CreatedAt:     utils.UTCNow(),
		UpdatedAt:     utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(officer).Error; err != nil {
		return nil, fmt.Errorf("failed to create test officer: %w", err)
	}
	return officer, nil
}

// CreateTestVehicleLog creates a vehicle log with Inside status
func (tf *TestFixtures) CreateTestVehicleLog(logNumber int64) (*models.VehicleLog, error) {
	vehicleLog := &models.VehicleLog{
		UUID:             uuid.New(),
		VehicleLogNumber: logNumber,
		VehicleNumber:    fmt.Sprintf("CAB-%04d", rand.Intn(10000)),
		DriverName:       "Nimal Silva",
		VehicleType:      models.VehicleTypeCar,
		Status:           models.VehicleStatusInside,
		EntryTime:        utils.UTCNow(),
		CreatedAt:        utils.UTCNow(),
		UpdatedAt:        utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(vehicleLog).Error; err != nil {
		return nil, fmt.Errorf("failed to create test vehicle log: %w", err)
	}
	return vehicleLog, nil
}

// CreateTestCameraScan creates a camera scan with a single detection
func (tf *TestFixtures) CreateTestCameraScan(scanNumber int64) (*models.CameraScan, error) {
	detections, err := json.Marshal([]models.DetectedVehicle{
		{
			VehicleNumber:   fmt.Sprintf("CAB-%04d", rand.Intn(10000)),
			VehicleType:     models.VehicleTypeCar,
			ConfidenceScore: 0.97,
		},
	})
	if err != nil {
		return nil, err
	}

	scan := &models.CameraScan{
		UUID:             uuid.New(),
		ScanNumber:       scanNumber,
		ScannedAt:        utils.UTCNow(),
		DetectedVehicles: detections,
		CreatedAt:        utils.UTCNow(),
		UpdatedAt:        utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(scan).Error; err != nil {
		return nil, fmt.Errorf("failed to create test camera scan: %w", err)
	}
	return scan, nil
}

// CreateTestIncident creates an open incident with the given severity
func (tf *TestFixtures) CreateTestIncident(incidentNumber int64, severity string) (*models.Incident, error) {
	incident := &models.Incident{
		UUID:           uuid.New(),
		IncidentNumber: incidentNumber,
		Type:           models.IncidentTypeSuspiciousActivity,
		Description:    "Person loitering near gate B",
		Severity:       severity,
		Status:         models.IncidentStatusOpen,
		OccurredAt:     utils.UTCNow(),
		CreatedAt:      utils.UTCNow(),
		UpdatedAt:      utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(incident).Error; err != nil {
		return nil, fmt.Errorf("failed to create test incident: %w", err)
	}
	return incident, nil
}
