// Package dto contains Data Transfer Objects for API request and response structures
package dto

// DetectedVehicleDTO is a single detection reported with a camera scan
type DetectedVehicleDTO struct {
	VehicleNumber   string  `json:"vehicle_number" validate:"required,max=20"`
	VehicleType     string  `json:"vehicle_type" validate:"required,oneof=Car Motorcycle Van Truck"`
	ConfidenceScore float64 `json:"confidence_score" validate:"required,min=0,max=1"`
}

// CreateScanRequest represents a camera scan submission. The detections are
// supplied by the caller; this service does not simulate cameras.
type CreateScanRequest struct {
	DetectedVehicles []DetectedVehicleDTO `json:"detected_vehicles" validate:"required,dive"`
}

// CameraScanDTO represents camera scan data for API responses
type CameraScanDTO struct {
	ID               uint                 `json:"id"`
	UUID             string               `json:"uuid"`
	ScanNumber       int64                `json:"scan_number"`
	ScannedAt        string               `json:"scanned_at"`
	DetectedVehicles []DetectedVehicleDTO `json:"detected_vehicles"`
}

// ListScansResponse represents the camera scan listing, newest first
type ListScansResponse struct {
	Scans []CameraScanDTO `json:"scans"`
}
