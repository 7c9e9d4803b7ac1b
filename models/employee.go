// Package models contains domain entities and business models for the parking-lot system
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_employees_uuid" json:"uuid"`

	// EmployeeNumber is allocated from the employee counter; the public
	// identifier is rendered with an E prefix, see PublicID.
	EmployeeNumber int64 `gorm:"not null;uniqueIndex:uk_employees_employee_number" json:"employee_number"`

	Name          string `gorm:"size:255;not null" json:"name"`
	Age           int    `gorm:"not null" json:"age"`
	ContactNumber string `gorm:"size:20;not null" json:"contact_number"`
	NIC           string `gorm:"size:20;not null;uniqueIndex:uk_employees_nic" json:"nic"`
	Email         string `gorm:"size:255;not null" json:"email"`
	PasswordHash  string `gorm:"size:255;not null" json:"-"` // Never serialize password hash
	Role          string `gorm:"size:60;not null" json:"role"`

	IsActive *bool `gorm:"default:true;index:idx_employees_is_active" json:"is_active"`

	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_employees_created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
	LastLoginAt *time.Time `gorm:"index:idx_employees_last_login_at" json:"last_login_at,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// PublicID returns the formatted employee identifier, e.g. "E10001".
func (e *Employee) PublicID() string {
	return fmt.Sprintf("E%d", e.EmployeeNumber)
}

// EmployeeFilter represents filter criteria for employee queries
type EmployeeFilter struct {
	ID             *uint
	UUID           *uuid.UUID
	EmployeeNumber *int64
	Email          *string
	NIC            *string
	Role           *string
	IsActive       *bool
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
}
