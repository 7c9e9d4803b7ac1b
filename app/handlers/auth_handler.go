package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/app/middleware"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

// AuthHandlerInterface defines the contract for authentication handlers
type AuthHandlerInterface interface {
	Register(c fiber.Ctx) error
	Login(c fiber.Ctx) error
	Me(c fiber.Ctx) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authFlow  businessflow.AuthFlow
	validator *validator.Validate
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authFlow businessflow.AuthFlow) *AuthHandler {
	return &AuthHandler{
		authFlow:  authFlow,
		validator: validator.New(),
	}
}

// Register handles employee registration
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.authFlow.Register(createRequestContext(c, "/api/v1/auth/register"), &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return messageError(c, fiber.StatusConflict, "Email already exists")
		}
		if businessflow.IsNICAlreadyExists(err) {
			return messageError(c, fiber.StatusConflict, "NIC already exists")
		}

		log.Println("Registration failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Login handles employee authentication. A wrong password and an unknown
// email produce the same response body.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return messageError(c, fiber.StatusBadRequest, "Invalid Credentials")
	}

	result, err := h.authFlow.Login(createRequestContext(c, "/api/v1/auth/login"), &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsInvalidCredentials(err) || businessflow.IsAccountInactive(err) {
			return messageError(c, fiber.StatusBadRequest, "Invalid Credentials")
		}

		log.Println("Login failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Me returns the profile of the authenticated employee
func (h *AuthHandler) Me(c fiber.Ctx) error {
	employeeID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		return messageError(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	result, err := h.authFlow.Me(createRequestContext(c, "/api/v1/auth/me"), employeeID)
	if err != nil {
		if businessflow.IsEmployeeNotFound(err) {
			return messageError(c, fiber.StatusNotFound, "Employee not found")
		}

		log.Println("Profile lookup failed", err)
		return messageError(c, fiber.StatusInternalServerError, "Profile lookup failed")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
