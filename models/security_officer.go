package models

import (
	"time"

	"github.com/google/uuid"
)

// Officer shift constants
const (
	ShiftDay   = "Day"
	ShiftNight = "Night"
)

type SecurityOfficer struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_security_officers_uuid" json:"uuid"`

	// OfficerNumber is allocated from the officer counter.
	OfficerNumber int64 `gorm:"not null;uniqueIndex:uk_security_officers_officer_number" json:"officer_number"`

	Name          string `gorm:"size:255;not null" json:"name"`
	ContactNumber string `gorm:"size:20;not null" json:"contact_number"`
	Shift         string `gorm:"size:10;not null;default:'Day'" json:"shift"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_security_officers_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (SecurityOfficer) TableName() string {
	return "security_officers"
}

// SecurityOfficerFilter represents filter criteria for officer queries
type SecurityOfficerFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	OfficerNumber *int64
	Shift         *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (o *SecurityOfficer) IsNightShift() bool {
	return o.Shift == ShiftNight
}
