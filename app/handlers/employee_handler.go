package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// EmployeeHandlerInterface defines the contract for employee management handlers
type EmployeeHandlerInterface interface {
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	UpdatePassword(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// EmployeeHandler handles employee management HTTP requests.
// Employee creation goes through the registration endpoint.
type EmployeeHandler struct {
	employeeFlow businessflow.EmployeeFlow
	validator    *validator.Validate
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeFlow businessflow.EmployeeFlow) *EmployeeHandler {
	return &EmployeeHandler{
		employeeFlow: employeeFlow,
		validator:    validator.New(),
	}
}

// List returns active employees ordered by employee number
func (h *EmployeeHandler) List(c fiber.Ctx) error {
	result, err := h.employeeFlow.List(createRequestContext(c, "/api/v1/employees"), parsePagination(c))
	if err != nil {
		log.Println("Employee listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list employees")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Update modifies an employee's profile. Password changes are a separate endpoint.
func (h *EmployeeHandler) Update(c fiber.Ctx) error {
	employeeUUID := c.Params("uuid")
	if employeeUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Employee ID is required")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.employeeFlow.Update(createRequestContext(c, "/api/v1/employees/:uuid"), employeeUUID, &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsEmployeeNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Employee not found")
		}
		if businessflow.IsEmailAlreadyExists(err) {
			return messageError(c, fiber.StatusConflict, "Email already exists")
		}

		log.Println("Employee update failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// UpdatePassword replaces an employee's password
func (h *EmployeeHandler) UpdatePassword(c fiber.Ctx) error {
	employeeUUID := c.Params("uuid")
	if employeeUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Employee ID is required")
	}

	var req dto.UpdatePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	err := h.employeeFlow.UpdatePassword(createRequestContext(c, "/api/v1/employees/:uuid/password"), employeeUUID, &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsEmployeeNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Employee not found")
		}

		log.Println("Password update failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Msg: "Password updated"})
}

// Delete removes an employee record
func (h *EmployeeHandler) Delete(c fiber.Ctx) error {
	employeeUUID := c.Params("uuid")
	if employeeUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Employee ID is required")
	}

	err := h.employeeFlow.Delete(createRequestContext(c, "/api/v1/employees/:uuid"), employeeUUID, clientMetadata(c))
	if err != nil {
		if businessflow.IsEmployeeNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Employee not found")
		}

		log.Println("Employee deletion failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Msg: "Employee deleted"})
}
