// Package dto contains Data Transfer Objects for API request and response structures
package dto

// UpdateEmployeeRequest represents a profile update. Profile updates never
// touch the stored credential; password changes go through
// UpdatePasswordRequest.
type UpdateEmployeeRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Age           int    `json:"age" validate:"required,min=16,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Role          string `json:"role" validate:"required,max=60"`
}

// UpdatePasswordRequest represents an explicit password change
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// ListEmployeesResponse represents the employee listing
type ListEmployeesResponse struct {
	Employees []EmployeeDTO `json:"employees"`
}
