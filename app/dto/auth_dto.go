// Package dto contains Data Transfer Objects for API request and response structures
package dto

// RegisterRequest represents the employee registration form data
type RegisterRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Age           int    `json:"age" validate:"required,min=16,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	NIC           string `json:"nic" validate:"required,min=10,max=20"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,min=8,max=100"`
	Role          string `json:"role" validate:"required,max=60"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	Msg      string      `json:"msg"`
	Employee EmployeeDTO `json:"employee"`
}

// LoginRequest represents the request payload for employee login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// EmployeeDTO represents employee data for API responses. The password hash
// never appears here.
type EmployeeDTO struct {
	ID             uint   `json:"id"`
	UUID           string `json:"uuid"`
	EmployeeID     string `json:"employee_id"` // formatted, e.g. "E10001"
	EmployeeNumber int64  `json:"employee_number"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	ContactNumber  string `json:"contact_number"`
	NIC            string `json:"nic"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	IsActive       *bool  `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	LastLoginAt    string `json:"last_login_at,omitempty"`
}
