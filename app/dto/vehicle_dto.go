// Package dto contains Data Transfer Objects for API request and response structures
package dto

// VehicleEntryRequest represents a vehicle entering the lot
type VehicleEntryRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required,max=20"`
	DriverName    string `json:"driver_name" validate:"required,max=255"`
	VehicleType   string `json:"vehicle_type" validate:"required,oneof=Car Motorcycle Van Truck"`
}

// VehicleLogDTO represents vehicle log data for API responses
type VehicleLogDTO struct {
	ID               uint   `json:"id"`
	UUID             string `json:"uuid"`
	VehicleLogNumber int64  `json:"vehicle_log_number"`
	VehicleNumber    string `json:"vehicle_number"`
	DriverName       string `json:"driver_name"`
	VehicleType      string `json:"vehicle_type"`
	Status           string `json:"status"`
	EntryTime        string `json:"entry_time"`
	ExitTime         string `json:"exit_time,omitempty"`
}

// ListVehicleLogsResponse represents the vehicle log listing
type ListVehicleLogsResponse struct {
	Logs []VehicleLogDTO `json:"logs"`
}
