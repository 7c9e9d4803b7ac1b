// Package businessflow contains the core business logic and use cases for the parking-lot workflows
package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeFlow handles employee directory operations. Account creation lives
// in AuthFlow.Register; this flow covers the rest of the lifecycle.
type EmployeeFlow interface {
	List(ctx context.Context, page dto.Pagination) (*dto.ListEmployeesResponse, error)
	Update(ctx context.Context, employeeUUID string, request *dto.UpdateEmployeeRequest, metadata *ClientMetadata) (*dto.EmployeeDTO, error)
	UpdatePassword(ctx context.Context, employeeUUID string, request *dto.UpdatePasswordRequest, metadata *ClientMetadata) error
	Delete(ctx context.Context, employeeUUID string, metadata *ClientMetadata) error
}

// EmployeeFlowImpl implements the employee business flow
type EmployeeFlowImpl struct {
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditLogRepository
	bcryptCost   int
	db           *gorm.DB
}

// NewEmployeeFlow creates a new employee flow instance
func NewEmployeeFlow(
	employeeRepo repository.EmployeeRepository,
	auditRepo repository.AuditLogRepository,
	bcryptCost int,
	db *gorm.DB,
) EmployeeFlow {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &EmployeeFlowImpl{
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
		bcryptCost:   bcryptCost,
		db:           db,
	}
}

// List returns active employees ordered by employee number
func (ef *EmployeeFlowImpl) List(ctx context.Context, page dto.Pagination) (*dto.ListEmployeesResponse, error) {
	employees, err := ef.employeeRepo.ListActive(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, NewBusinessError("LIST_EMPLOYEES_FAILED", "Failed to list employees", err)
	}

	out := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToEmployeeDTO(*e))
	}

	return &dto.ListEmployeesResponse{Employees: out}, nil
}

// Update modifies an employee profile. The stored password hash is never
// touched here; password changes go through UpdatePassword.
func (ef *EmployeeFlowImpl) Update(ctx context.Context, employeeUUID string, request *dto.UpdateEmployeeRequest, metadata *ClientMetadata) (*dto.EmployeeDTO, error) {
	var updated *models.Employee

	err := repository.WithTransaction(ctx, ef.db, func(ctx context.Context) error {
		employee, err := ef.employeeRepo.ByUUID(ctx, employeeUUID)
		if err != nil {
			return err
		}
		if employee == nil {
			return ErrEmployeeNotFound
		}

		newEmail := strings.TrimSpace(request.Email)
		if !strings.EqualFold(newEmail, employee.Email) {
			existing, err := ef.employeeRepo.ByEmail(ctx, newEmail)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != employee.ID {
				return ErrEmailAlreadyExists
			}
		}

		employee.Name = strings.TrimSpace(request.Name)
		employee.Age = request.Age
		employee.ContactNumber = strings.TrimSpace(request.ContactNumber)
		employee.Email = newEmail
		employee.Role = strings.TrimSpace(request.Role)

		if err := ef.employeeRepo.Update(ctx, employee); err != nil {
			return err
		}

		updated = employee
		return nil
	})

	if err != nil {
		if dup := duplicateEmployeeIdentity(err); dup != nil {
			return nil, NewBusinessError("UPDATE_EMPLOYEE_FAILED", "Failed to update employee", dup)
		}
		return nil, NewBusinessError("UPDATE_EMPLOYEE_FAILED", "Failed to update employee", err)
	}

	ef.logEmployeeAction(ctx, updated, models.AuditActionProfileUpdated, fmt.Sprintf("Employee updated: %s", updated.PublicID()), metadata)

	out := ToEmployeeDTO(*updated)
	return &out, nil
}

// UpdatePassword re-hashes and replaces an employee's credential. This is a
// separate operation from Update so a profile edit can never change a
// password as a side effect.
func (ef *EmployeeFlowImpl) UpdatePassword(ctx context.Context, employeeUUID string, request *dto.UpdatePasswordRequest, metadata *ClientMetadata) error {
	employee, err := ef.employeeRepo.ByUUID(ctx, employeeUUID)
	if err != nil {
		return NewBusinessError("UPDATE_PASSWORD_FAILED", "Failed to load employee", err)
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), ef.bcryptCost)
	if err != nil {
		return NewBusinessError("UPDATE_PASSWORD_FAILED", "Failed to hash password", err)
	}

	if err := ef.employeeRepo.UpdatePassword(ctx, employee.ID, string(hash)); err != nil {
		return NewBusinessError("UPDATE_PASSWORD_FAILED", "Failed to update password", err)
	}

	ef.logEmployeeAction(ctx, employee, models.AuditActionPasswordChanged, fmt.Sprintf("Password changed: %s", employee.PublicID()), metadata)
	return nil
}

// Delete removes an employee account
func (ef *EmployeeFlowImpl) Delete(ctx context.Context, employeeUUID string, metadata *ClientMetadata) error {
	employee, err := ef.employeeRepo.ByUUID(ctx, employeeUUID)
	if err != nil {
		return NewBusinessError("DELETE_EMPLOYEE_FAILED", "Failed to load employee", err)
	}
	if employee == nil {
		return NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	if err := ef.employeeRepo.Delete(ctx, employee.ID); err != nil {
		return NewBusinessError("DELETE_EMPLOYEE_FAILED", "Failed to delete employee", err)
	}

	ef.logEmployeeAction(ctx, employee, models.AuditActionEmployeeDeleted, fmt.Sprintf("Employee deleted: %s", employee.PublicID()), metadata)
	return nil
}

func (ef *EmployeeFlowImpl) logEmployeeAction(ctx context.Context, employee *models.Employee, action, description string, metadata *ClientMetadata) {
	if employee == nil {
		return
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	success := true
	audit := &models.AuditLog{
		EmployeeID:  &employee.ID,
		Action:      action,
		Description: &description,
		Success:     &success,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
	}

	_ = ef.auditRepo.Save(ctx, audit)
}
