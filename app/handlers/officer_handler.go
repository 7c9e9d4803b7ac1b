package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// OfficerHandlerInterface defines the contract for security officer handlers
type OfficerHandlerInterface interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// OfficerHandler handles security officer HTTP requests
type OfficerHandler struct {
	officerFlow businessflow.OfficerFlow
	validator   *validator.Validate
}

// NewOfficerHandler creates a new officer handler
func NewOfficerHandler(officerFlow businessflow.OfficerFlow) *OfficerHandler {
	return &OfficerHandler{
		officerFlow: officerFlow,
		validator:   validator.New(),
	}
}

// Create registers a new security officer
func (h *OfficerHandler) Create(c fiber.Ctx) error {
	var req dto.CreateOfficerRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.officerFlow.Create(createRequestContext(c, "/api/v1/officers"), &req)
	if err != nil {
		log.Println("Officer creation failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to create officer")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// List returns security officers, optionally filtered by shift
func (h *OfficerHandler) List(c fiber.Ctx) error {
	var shift *string
	if value := c.Query("shift"); value != "" {
		shift = &value
	}

	result, err := h.officerFlow.List(createRequestContext(c, "/api/v1/officers"), shift, parsePagination(c))
	if err != nil {
		log.Println("Officer listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list officers")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Update modifies a security officer's details
func (h *OfficerHandler) Update(c fiber.Ctx) error {
	officerUUID := c.Params("uuid")
	if officerUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Officer ID is required")
	}

	var req dto.UpdateOfficerRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.officerFlow.Update(createRequestContext(c, "/api/v1/officers/:uuid"), officerUUID, &req)
	if err != nil {
		if businessflow.IsOfficerNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Officer not found")
		}

		log.Println("Officer update failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to update officer")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Delete removes a security officer
func (h *OfficerHandler) Delete(c fiber.Ctx) error {
	officerUUID := c.Params("uuid")
	if officerUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Officer ID is required")
	}

	err := h.officerFlow.Delete(createRequestContext(c, "/api/v1/officers/:uuid"), officerUUID)
	if err != nil {
		if businessflow.IsOfficerNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Officer not found")
		}

		log.Println("Officer deletion failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to delete officer")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Msg: "Officer deleted"})
}
