package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DetectedVehicle is a single detection reported by a camera scan. Detections
// are stored denormalized on the scan row as jsonb.
type DetectedVehicle struct {
	VehicleNumber   string  `json:"vehicle_number"`
	VehicleType     string  `json:"vehicle_type"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type CameraScan struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_camera_scans_uuid" json:"uuid"`

	// ScanNumber is allocated from the scan counter.
	ScanNumber int64 `gorm:"not null;uniqueIndex:uk_camera_scans_number" json:"scan_number"`

	ScannedAt        time.Time       `gorm:"not null;index:idx_camera_scans_scanned_at" json:"scanned_at"`
	DetectedVehicles json.RawMessage `gorm:"type:jsonb" json:"detected_vehicles,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (CameraScan) TableName() string {
	return "camera_scans"
}

// CameraScanFilter represents filter criteria for camera scan queries
type CameraScanFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	ScanNumber    *int64
	ScannedAfter  *time.Time
	ScannedBefore *time.Time
}

// Detections decodes the stored jsonb payload.
func (c *CameraScan) Detections() ([]DetectedVehicle, error) {
	if len(c.DetectedVehicles) == 0 {
		return nil, nil
	}
	var out []DetectedVehicle
	if err := json.Unmarshal(c.DetectedVehicles, &out); err != nil {
		return nil, err
	}
	return out, nil
}
