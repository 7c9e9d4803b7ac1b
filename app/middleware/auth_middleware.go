// Package middleware provides HTTP middleware for authentication and observability
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/app/services"
)

// AuthMiddleware guards protected routes by validating bearer tokens
type AuthMiddleware struct {
	tokenService services.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the Authorization header and stores the caller's
// identity in the request locals. The response bodies here are part of the
// API contract and must not change.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "No token, authorization denied",
			})
		}

		token, ok := extractBearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "Token format is invalid",
			})
		}

		// Expired and malformed tokens get the same response so the body
		// reveals nothing about why validation failed.
		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "Token is not valid",
			})
		}

		c.Locals("employee_id", claims.EmployeeID)
		c.Locals("token_id", claims.TokenID)

		return c.Next()
	}
}

// extractBearerToken splits an Authorization header into its credential part.
// Only the "Bearer <token>" scheme is accepted.
func extractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// GetEmployeeIDFromContext retrieves the authenticated employee ID set by Authenticate
func GetEmployeeIDFromContext(c fiber.Ctx) (uint, bool) {
	employeeID, ok := c.Locals("employee_id").(uint)
	return employeeID, ok
}

// GetTokenIDFromContext retrieves the token ID of the current request, if any
func GetTokenIDFromContext(c fiber.Ctx) (string, bool) {
	tokenID, ok := c.Locals("token_id").(string)
	return tokenID, ok
}
