// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/prabodha-fernando/autoslot/app/dto"
	businessflow "github.com/prabodha-fernando/autoslot/business_flow"
)

const requestTimeout = 30 * time.Second

// createRequestContext creates a context with request-scoped values for observability and timeout.
// The cancel function is stored in the context so the flow layer can release it.
func createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)

	ctx = context.WithValue(ctx, businessflow.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel)

	return ctx
}

// clientMetadata captures the caller's network identity for audit logging
func clientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get("X-Request-ID"))
	return metadata
}

// messageError writes a {"msg": ...} error body with the given status
func messageError(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.MessageResponse{Msg: message})
}

// validationError writes the first validation failure as a {"msg": ...} body
func validationError(c fiber.Ctx, err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return messageError(c, fiber.StatusBadRequest, getValidationErrorMessage(errs[0]))
	}
	return messageError(c, fiber.StatusBadRequest, "Validation failed")
}

// parsePagination reads optional page/page_size query parameters
func parsePagination(c fiber.Ctx) dto.Pagination {
	var page dto.Pagination
	if err := c.Bind().Query(&page); err != nil {
		return dto.Pagination{}
	}
	if page.Page < 0 {
		page.Page = 0
	}
	if page.PageSize < 0 || page.PageSize > 100 {
		page.PageSize = 0
	}
	return page
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return err.Field() + " must be at least " + err.Param()
	case "max":
		return err.Field() + " must be at most " + err.Param()
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}
