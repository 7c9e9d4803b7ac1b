package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// IncidentHandlerInterface defines the contract for incident handlers
type IncidentHandlerInterface interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// IncidentHandler handles incident report HTTP requests
type IncidentHandler struct {
	incidentFlow businessflow.IncidentFlow
	validator    *validator.Validate
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(incidentFlow businessflow.IncidentFlow) *IncidentHandler {
	return &IncidentHandler{
		incidentFlow: incidentFlow,
		validator:    validator.New(),
	}
}

// Create reports a new incident, optionally linked to a camera scan
func (h *IncidentHandler) Create(c fiber.Ctx) error {
	var req dto.CreateIncidentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.incidentFlow.Create(createRequestContext(c, "/api/v1/incidents"), &req)
	if err != nil {
		if businessflow.IsScanNotFound(err) {
			return messageError(c, fiber.StatusBadRequest, "Camera scan not found")
		}

		log.Println("Incident creation failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to create incident")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// List returns incidents, optionally filtered by status and severity
func (h *IncidentHandler) List(c fiber.Ctx) error {
	var status, severity *string
	if value := c.Query("status"); value != "" {
		status = &value
	}
	if value := c.Query("severity"); value != "" {
		severity = &value
	}

	result, err := h.incidentFlow.List(createRequestContext(c, "/api/v1/incidents"), status, severity, parsePagination(c))
	if err != nil {
		log.Println("Incident listing failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to list incidents")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Update changes an incident's status, assignment or resolution notes
func (h *IncidentHandler) Update(c fiber.Ctx) error {
	incidentUUID := c.Params("uuid")
	if incidentUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Incident ID is required")
	}

	var req dto.UpdateIncidentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.incidentFlow.Update(createRequestContext(c, "/api/v1/incidents/:uuid"), incidentUUID, &req)
	if err != nil {
		if businessflow.IsIncidentNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Incident not found")
		}
		if businessflow.IsOfficerNotFound(err) {
			return messageError(c, fiber.StatusBadRequest, "Assigned officer not found")
		}

		log.Println("Incident update failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to update incident")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Delete removes an incident report
func (h *IncidentHandler) Delete(c fiber.Ctx) error {
	incidentUUID := c.Params("uuid")
	if incidentUUID == "" {
		return messageError(c, fiber.StatusBadRequest, "Incident ID is required")
	}

	err := h.incidentFlow.Delete(createRequestContext(c, "/api/v1/incidents/:uuid"), incidentUUID)
	if err != nil {
		if businessflow.IsIncidentNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Incident not found")
		}

		log.Println("Incident deletion failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Failed to delete incident")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Msg: "Incident deleted"})
}
