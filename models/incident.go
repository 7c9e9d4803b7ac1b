package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident type constants
const (
	IncidentTypeSuspiciousActivity = "Suspicious Activity"
	IncidentTypeUnauthorizedEntry  = "Unauthorized Entry"
	IncidentTypeParkingViolation   = "Parking Violation"
	IncidentTypeAccident           = "Accident"
	IncidentTypeOther              = "Other"
)

// Incident severity constants
const (
	IncidentSeverityLow      = "Low"
	IncidentSeverityMedium   = "Medium"
	IncidentSeverityHigh     = "High"
	IncidentSeverityCritical = "Critical"
)

// Incident status constants
const (
	IncidentStatusOpen               = "Open"
	IncidentStatusUnderInvestigation = "Under Investigation"
	IncidentStatusResolved           = "Resolved"
	IncidentStatusClosed             = "Closed"
)

type Incident struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_incidents_uuid" json:"uuid"`

	// IncidentNumber is allocated from the incident counter.
	IncidentNumber int64 `gorm:"not null;uniqueIndex:uk_incidents_number" json:"incident_number"`

	// ScanNumber optionally references the camera scan that triggered the
	// incident.
	ScanNumber *int64 `gorm:"index:idx_incidents_scan_number" json:"scan_number,omitempty"`

	Type        string `gorm:"size:30;not null" json:"type"`
	Description string `gorm:"type:text;not null" json:"description"`
	Severity    string `gorm:"size:10;not null;index:idx_incidents_severity" json:"severity"`
	Status      string `gorm:"size:20;not null;default:'Open';index:idx_incidents_status" json:"status"`

	AssignedOfficerID *uint            `gorm:"index:idx_incidents_assigned_officer_id" json:"assigned_officer_id,omitempty"`
	AssignedOfficer   *SecurityOfficer `gorm:"foreignKey:AssignedOfficerID;references:ID" json:"assigned_officer,omitempty"`
	ResolutionNotes   string           `gorm:"type:text;default:''" json:"resolution_notes"`

	OccurredAt time.Time `gorm:"not null;index:idx_incidents_occurred_at" json:"occurred_at"`
	CreatedAt  time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Incident) TableName() string {
	return "incidents"
}

// IncidentFilter represents filter criteria for incident queries
type IncidentFilter struct {
	ID                *uint
	UUID              *uuid.UUID
	IncidentNumber    *int64
	ScanNumber        *int64
	Type              *string
	Severity          *string
	Status            *string
	AssignedOfficerID *uint
	OccurredAfter     *time.Time
	OccurredBefore    *time.Time
}

func (i *Incident) IsResolved() bool {
	return i.Status == IncidentStatusResolved || i.Status == IncidentStatusClosed
}
