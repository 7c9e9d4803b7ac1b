// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/prabodha-fernando/autoslot/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
}

// EmployeeRepository defines operations for employees
type EmployeeRepository interface {
	Repository[models.Employee, models.EmployeeFilter]
	ByEmail(ctx context.Context, email string) (*models.Employee, error)
	ByNIC(ctx context.Context, nic string) (*models.Employee, error)
	ByUUID(ctx context.Context, uuid string) (*models.Employee, error)
	ByEmployeeNumber(ctx context.Context, number int64) (*models.Employee, error)
	ListActive(ctx context.Context, limit, offset int) ([]*models.Employee, error)
	UpdatePassword(ctx context.Context, employeeID uint, passwordHash string) error
	UpdateLastLogin(ctx context.Context, employeeID uint, at time.Time) error
	Delete(ctx context.Context, employeeID uint) error
}

// SecurityOfficerRepository defines operations for security officers
type SecurityOfficerRepository interface {
	Repository[models.SecurityOfficer, models.SecurityOfficerFilter]
	ByUUID(ctx context.Context, uuid string) (*models.SecurityOfficer, error)
	ByOfficerNumber(ctx context.Context, number int64) (*models.SecurityOfficer, error)
	List(ctx context.Context, filter models.SecurityOfficerFilter, limit, offset int) ([]*models.SecurityOfficer, error)
	Delete(ctx context.Context, officerID uint) error
}

// VehicleLogRepository defines operations for vehicle entry/exit logs
type VehicleLogRepository interface {
	Repository[models.VehicleLog, models.VehicleLogFilter]
	ByUUID(ctx context.Context, uuid string) (*models.VehicleLog, error)
	List(ctx context.Context, filter models.VehicleLogFilter, limit, offset int) ([]*models.VehicleLog, error)
	ListInside(ctx context.Context) ([]*models.VehicleLog, error)
	MarkExited(ctx context.Context, logID uint, exitTime time.Time) error
}

// IncidentRepository defines operations for incidents
type IncidentRepository interface {
	Repository[models.Incident, models.IncidentFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter, limit, offset int) ([]*models.Incident, error)
	Delete(ctx context.Context, incidentID uint) error
}

// CameraScanRepository defines operations for camera scans
type CameraScanRepository interface {
	Repository[models.CameraScan, models.CameraScanFilter]
	ByUUID(ctx context.Context, uuid string) (*models.CameraScan, error)
	ByScanNumber(ctx context.Context, number int64) (*models.CameraScan, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*models.CameraScan, error)
}

// SequenceRepository allocates monotonically increasing numbers from named
// counters. Each returned value is handed out exactly once.
type SequenceRepository interface {
	Next(ctx context.Context, name string, start int64) (int64, error)
	Current(ctx context.Context, name string) (*models.SequenceCounter, error)
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByEmployee(ctx context.Context, employeeID uint, limit, offset int) ([]*models.AuditLog, error)
	ListByAction(ctx context.Context, action string, limit, offset int) ([]*models.AuditLog, error)
	ListFailedActions(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}
