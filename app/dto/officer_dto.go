// Package dto contains Data Transfer Objects for API request and response structures
package dto

// CreateOfficerRequest represents the payload to add a security officer
type CreateOfficerRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	Shift         string `json:"shift" validate:"required,oneof=Day Night"`
}

// UpdateOfficerRequest represents the payload to update a security officer
type UpdateOfficerRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	Shift         string `json:"shift" validate:"required,oneof=Day Night"`
}

// OfficerDTO represents security officer data for API responses
type OfficerDTO struct {
	ID            uint   `json:"id"`
	UUID          string `json:"uuid"`
	OfficerNumber int64  `json:"officer_number"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Shift         string `json:"shift"`
	CreatedAt     string `json:"created_at"`
}

// ListOfficersResponse represents the officer listing
type ListOfficersResponse struct {
	Officers []OfficerDTO `json:"officers"`
}
