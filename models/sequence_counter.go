package models

import "time"

// Counter names and start offsets. The offset only matters on the first
// allocation; once a counter row exists its value advances by one per
// allocation regardless of configuration.
const (
	EmployeeCounter = "employee_counter"
	OfficerCounter  = "officer_counter"
	VehicleCounter  = "vehicle_counter"
	ScanCounter     = "scan_counter"
	IncidentCounter = "incident_counter"

	StaffCounterStart   int64 = 10001
	GeneralCounterStart int64 = 1
)

// SequenceCounter stores the last value handed out for a named monotonic
// counter. Rows are only ever mutated through an atomic upsert, never through
// read-modify-write.
type SequenceCounter struct {
	Name      string    `gorm:"primaryKey;size:64" json:"name"`
	LastValue int64     `gorm:"not null" json:"last_value"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (SequenceCounter) TableName() string { return "sequence_counters" }
