// Package businessflow contains the business logic for the application.
package businessflow

import (
	"encoding/json"
	"time"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/models"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToEmployeeDTO converts an employee model to its API representation. The
// password hash is deliberately absent from the DTO type.
func ToEmployeeDTO(employee models.Employee) dto.EmployeeDTO {
	out := dto.EmployeeDTO{
		ID:             employee.ID,
		UUID:           employee.UUID.String(),
		EmployeeID:     employee.PublicID(),
		EmployeeNumber: employee.EmployeeNumber,
		Name:           employee.Name,
		Age:            employee.Age,
		ContactNumber:  employee.ContactNumber,
		NIC:            employee.NIC,
		Email:          employee.Email,
		Role:           employee.Role,
		IsActive:       employee.IsActive,
		CreatedAt:      employee.CreatedAt.Format(time.RFC3339),
	}
	if employee.LastLoginAt != nil {
		out.LastLoginAt = employee.LastLoginAt.Format(time.RFC3339)
	}
	return out
}

// ToOfficerDTO converts a security officer model to its API representation
func ToOfficerDTO(officer models.SecurityOfficer) dto.OfficerDTO {
	return dto.OfficerDTO{
		ID:            officer.ID,
		UUID:          officer.UUID.String(),
		OfficerNumber: officer.OfficerNumber,
		Name:          officer.Name,
		ContactNumber: officer.ContactNumber,
		Shift:         officer.Shift,
		CreatedAt:     officer.CreatedAt.Format(time.RFC3339),
	}
}

// ToVehicleLogDTO converts a vehicle log model to its API representation
func ToVehicleLogDTO(log models.VehicleLog) dto.VehicleLogDTO {
	out := dto.VehicleLogDTO{
		ID:               log.ID,
		UUID:             log.UUID.String(),
		VehicleLogNumber: log.VehicleLogNumber,
		VehicleNumber:    log.VehicleNumber,
		DriverName:       log.DriverName,
		VehicleType:      log.VehicleType,
		Status:           log.Status,
		EntryTime:        log.EntryTime.Format(time.RFC3339),
	}
	if log.ExitTime != nil {
		out.ExitTime = log.ExitTime.Format(time.RFC3339)
	}
	return out
}

// ToIncidentDTO converts an incident model to its API representation
func ToIncidentDTO(incident models.Incident) dto.IncidentDTO {
	out := dto.IncidentDTO{
		ID:              incident.ID,
		UUID:            incident.UUID.String(),
		IncidentNumber:  incident.IncidentNumber,
		ScanNumber:      incident.ScanNumber,
		Type:            incident.Type,
		Description:     incident.Description,
		Severity:        incident.Severity,
		Status:          incident.Status,
		ResolutionNotes: incident.ResolutionNotes,
		OccurredAt:      incident.OccurredAt.Format(time.RFC3339),
	}
	if incident.AssignedOfficer != nil {
		officer := ToOfficerDTO(*incident.AssignedOfficer)
		out.AssignedOfficer = &officer
	}
	return out
}

// ToCameraScanDTO converts a camera scan model to its API representation
func ToCameraScanDTO(scan models.CameraScan) dto.CameraScanDTO {
	out := dto.CameraScanDTO{
		ID:         scan.ID,
		UUID:       scan.UUID.String(),
		ScanNumber: scan.ScanNumber,
		ScannedAt:  scan.ScannedAt.Format(time.RFC3339),
	}
	if len(scan.DetectedVehicles) > 0 {
		_ = json.Unmarshal(scan.DetectedVehicles, &out.DetectedVehicles)
	}
	return out
}
