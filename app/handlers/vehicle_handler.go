package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// VehicleHandlerInterface defines the contract for vehicle log handlers
type VehicleHandlerInterface interface {
	Entry(c fiber.Ctx) error
	List(c fiber.Ctx) error
	ListInside(c fiber.Ctx) error
	Exit(c fiber.Ctx) error
}

// VehicleHandler handles vehicle entry and exit HTTP requests
type VehicleHandler struct {
	vehicleFlow businessflow.VehicleFlow
	validator   *validator.Validate
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleFlow businessflow.VehicleFlow) *VehicleHandler {
	return &VehicleHandler{
		vehicleFlow: vehicleFlow,
		validator:   validator.New(),
	}
}

// Entry records a vehicle entering the lot
func (h *VehicleHandler) Entry(c fiber.Ctx) error {
	var req dto.VehicleEntryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.vehicleFlow.Entry(createRequestContext(c, "/api/v1/vehicles/entry"), &req)
	if err != nil {
		log.Println("Vehicle entry failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to record vehicle entry")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// List returns vehicle logs, optionally filtered by status
func (h *VehicleHandler) List(c fiber.Ctx) error {
	var status *string
	if value := c.Query("status"); value != "" {
		status = &value
	}

	result, err := h.vehicleFlow.List(createRequestContext(c, "/api/v1/vehicles"), status, parsePagination(c))
	if err != nil {
		log.Println("Vehicle listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list vehicle logs")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ListInside returns vehicles currently in the lot
func (h *VehicleHandler) ListInside(c fiber.Ctx) error {
	result, err := h.vehicleFlow.ListInside(createRequestContext(c, "/api/v1/vehicles/inside"))
	if err != nil {
		log.Println("Inside-vehicle listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list vehicles inside")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Exit marks a vehicle log as exited
func (h *VehicleHandler) Exit(c fiber.Ctx) error {
	logUUID := c.Params("uuid")
	if logUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Vehicle log ID is required")
	}

	result, err := h.vehicleFlow.Exit(createRequestContext(c, "/api/v1/vehicles/:uuid/exit"), logUUID)
	if err != nil {
		if businessflow.IsVehicleLogNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Vehicle log not found")
		}
		if businessflow.IsVehicleAlreadyExited(err) {
			return messageError(c, fiber.StatusConflict, "Vehicle has already exited")
		}

		log.Println("Vehicle exit failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to record vehicle exit")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
