// Package businessflow contains the core business logic and use cases for the parking-lot workflows
package businessflow

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business flow error constants
var (
	// Credential errors. ErrInvalidCredentials covers both an unknown email
	// and a wrong password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")

	// Employee-related errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNICAlreadyExists   = errors.New("NIC already exists")

	// Officer-related errors
	ErrOfficerNotFound = errors.New("officer not found")

	// Vehicle-related errors
	ErrVehicleLogNotFound   = errors.New("vehicle log not found")
	ErrVehicleAlreadyExited = errors.New("vehicle has already exited")

	// Incident-related errors
	ErrIncidentNotFound = errors.New("incident not found")
	ErrScanNotFound     = errors.New("camera scan not found")

	// Filter errors
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

const pgUniqueViolation = "23505"

// duplicateEmployeeIdentity maps a unique-index violation on the employees
// table to the matching duplicate-identity error. The pre-insert checks are
// check-then-insert, so two concurrent registrations can both pass them and
// race to the index; the loser's violation must still surface as a duplicate,
// not as a generic failure.
func duplicateEmployeeIdentity(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "uk_employees_email_lower":
		return ErrEmailAlreadyExists
	case "uk_employees_nic":
		return ErrNICAlreadyExists
	}
	return nil
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsEmployeeNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsNICAlreadyExists(err error) bool {
	return errors.Is(err, ErrNICAlreadyExists)
}

func IsOfficerNotFound(err error) bool {
	return errors.Is(err, ErrOfficerNotFound)
}

func IsVehicleLogNotFound(err error) bool {
	return errors.Is(err, ErrVehicleLogNotFound)
}

func IsVehicleAlreadyExited(err error) bool {
	return errors.Is(err, ErrVehicleAlreadyExited)
}

func IsIncidentNotFound(err error) bool {
	return errors.Is(err, ErrIncidentNotFound)
}

func IsScanNotFound(err error) bool {
	return errors.Is(err, ErrScanNotFound)
}
