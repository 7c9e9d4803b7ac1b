package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// CameraHandlerInterface defines the contract for camera scan handlers
type CameraHandlerInterface interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
}

// CameraHandler handles camera scan HTTP requests. Detections arrive in the
// request body; this service never talks to cameras directly.
type CameraHandler struct {
	cameraFlow businessflow.CameraFlow
	validator  *validator.Validate
}

// NewCameraHandler creates a new camera scan handler
func NewCameraHandler(cameraFlow businessflow.CameraFlow) *CameraHandler {
	return &CameraHandler{
		cameraFlow: cameraFlow,
		validator:  validator.New(),
	}
}

// Create records a camera scan with its detected vehicles
func (h *CameraHandler) Create(c fiber.Ctx) error {
	var req dto.CreateScanRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.cameraFlow.Create(createRequestContext(c, "/api/v1/camera-scans"), &req)
	if err != nil {
		log.Println("Camera scan creation failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to record camera scan")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// List returns camera scans, newest first
func (h *CameraHandler) List(c fiber.Ctx) error {
	result, err := h.cameraFlow.List(createRequestContext(c, "/api/v1/camera-scans"), parsePagination(c))
	if err != nil {
		log.Println("Camera scan listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list camera scans")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
