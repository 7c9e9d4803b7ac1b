// Package dto contains Data Transfer Objects for API request and response structures
package dto

// CreateIncidentRequest represents the payload to report an incident
type CreateIncidentRequest struct {
	Type        string `json:"type" validate:"required,oneof='Suspicious Activity' 'Unauthorized Entry' 'Parking Violation' 'Accident' 'Other'"`
	Description string `json:"description" validate:"required"`
	Severity    string `json:"severity" validate:"required,oneof=Low Medium High Critical"`
	ScanNumber  *int64 `json:"scan_number,omitempty" validate:"omitempty,min=1"`
}

// UpdateIncidentRequest represents the payload to update an incident
type UpdateIncidentRequest struct {
	Status            string `json:"status" validate:"required,oneof=Open 'Under Investigation' Resolved Closed"`
	AssignedOfficerID *uint  `json:"assigned_officer_id,omitempty"`
	ResolutionNotes   string `json:"resolution_notes,omitempty"`
}

// IncidentDTO represents incident data for API responses
type IncidentDTO struct {
	ID              uint        `json:"id"`
	UUID            string      `json:"uuid"`
	IncidentNumber  int64       `json:"incident_number"`
	ScanNumber      *int64      `json:"scan_number,omitempty"`
	Type            string      `json:"type"`
	Description     string      `json:"description"`
	Severity        string      `json:"severity"`
	Status          string      `json:"status"`
	AssignedOfficer *OfficerDTO `json:"assigned_officer,omitempty"`
	ResolutionNotes string      `json:"resolution_notes,omitempty"`
	OccurredAt      string      `json:"occurred_at"`
}

// ListIncidentsResponse represents the incident listing
type ListIncidentsResponse struct {
	Incidents []IncidentDTO `json:"incidents"`
}
