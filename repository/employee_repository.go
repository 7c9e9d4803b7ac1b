// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prabodha-fernando/autoslot/models"
	"gorm.io/gorm"
)

// EmployeeRepositoryImpl implements EmployeeRepository interface
type EmployeeRepositoryImpl struct {
	*BaseRepository[models.Employee, models.EmployeeFilter]
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &EmployeeRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Employee, models.EmployeeFilter](db),
	}
}

// ByEmail retrieves an employee by email address. The lookup is
// case-insensitive; employees that registered with mixed-case addresses are
// still found.
func (r *EmployeeRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.Employee, error) {
	db := r.getDB(ctx)

	var employee models.Employee
	err := db.Where("LOWER(email) = LOWER(?)", email).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}

	return &employee, nil
}

// ByNIC retrieves an employee by national identity card number
func (r *EmployeeRepositoryImpl) ByNIC(ctx context.Context, nic string) (*models.Employee, error) {
	db := r.getDB(ctx)

	var employee models.Employee
	err := db.Where("nic = ?", nic).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by NIC: %w", err)
	}

	return &employee, nil
}

// ByUUID retrieves an employee by UUID
func (r *EmployeeRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Employee, error) {
	db := r.getDB(ctx)

	var employee models.Employee
	err := db.Where("uuid = ?", uuid).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by UUID: %w", err)
	}

	return &employee, nil
}

// ByEmployeeNumber retrieves an employee by their allocated number
func (r *EmployeeRepositoryImpl) ByEmployeeNumber(ctx context.Context, number int64) (*models.Employee, error) {
	db := r.getDB(ctx)

	var employee models.Employee
	err := db.Where("employee_number = ?", number).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by number: %w", err)
	}

	return &employee, nil
}

// ListActive retrieves active employees with pagination
func (r *EmployeeRepositoryImpl) ListActive(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	db := r.getDB(ctx)

	var employees []*models.Employee
	err := db.Where("is_active = ?", true).
		Order("employee_number ASC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	return employees, nil
}

// UpdatePassword replaces the stored password hash
func (r *EmployeeRepositoryImpl) UpdatePassword(ctx context.Context, employeeID uint, passwordHash string) error {
	db := r.getDB(ctx)

	err := db.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update employee password: %w", err)
	}

	return nil
}

// UpdateLastLogin records a successful authentication
func (r *EmployeeRepositoryImpl) UpdateLastLogin(ctx context.Context, employeeID uint, at time.Time) error {
	db := r.getDB(ctx)

	err := db.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("last_login_at", at).Error

	if err != nil {
		return fmt.Errorf("failed to update employee last login: %w", err)
	}

	return nil
}

// Delete removes an employee row
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, employeeID uint) error {
	db := r.getDB(ctx)

	err := db.Delete(&models.Employee{}, employeeID).Error
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
