package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle type constants
const (
	VehicleTypeCar        = "Car"
	VehicleTypeMotorcycle = "Motorcycle"
	VehicleTypeVan        = "Van"
	VehicleTypeTruck      = "Truck"
)

// Vehicle log status constants
const (
	VehicleStatusInside = "Inside"
	VehicleStatusExited = "Exited"
)

type VehicleLog struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_vehicle_logs_uuid" json:"uuid"`

	// VehicleLogNumber is allocated from the vehicle counter.
	VehicleLogNumber int64 `gorm:"not null;uniqueIndex:uk_vehicle_logs_number" json:"vehicle_log_number"`

	VehicleNumber string `gorm:"size:20;not null;index:idx_vehicle_logs_vehicle_number" json:"vehicle_number"`
	DriverName    string `gorm:"size:255;not null" json:"driver_name"`
	VehicleType   string `gorm:"size:20;not null" json:"vehicle_type"`
	Status        string `gorm:"size:10;not null;default:'Inside';index:idx_vehicle_logs_status" json:"status"`

	EntryTime time.Time  `gorm:"not null;index:idx_vehicle_logs_entry_time" json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (VehicleLog) TableName() string {
	return "vehicle_logs"
}

// VehicleLogFilter represents filter criteria for vehicle log queries
type VehicleLogFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	VehicleNumber *string
	VehicleType   *string
	Status        *string
	EnteredAfter  *time.Time
	EnteredBefore *time.Time
}

func (v *VehicleLog) IsInside() bool {
	return v.Status == VehicleStatusInside
}
