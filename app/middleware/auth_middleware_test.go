package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/app/services"
)

func newGuardedApp(t *testing.T, tokenService services.TokenService) *fiber.App {
	t.Helper()

	app := fiber.New()
	protected := app.Group("/protected", NewAuthMiddleware(tokenService).Authenticate())
	protected.Get("/", func(c fiber.Ctx) error {
		employeeID, ok := GetEmployeeIDFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"employee_id": employeeID})
	})
	return app
}

func newMiddlewareTokenService(t *testing.T, ttl time.Duration) services.TokenService {
	t.Helper()

	tokenService, err := services.NewTokenService(
		ttl,
		"autoslot-test",
		"autoslot-test-api",
		false,
		"",
		"",
		"test-secret-key-that-is-long-enough-for-hs256",
	)
	require.NoError(t, err)
	return tokenService
}

func requestProtected(t *testing.T, app *fiber.App, authorization string) (int, dto.MessageResponse) {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestAuthenticate(t *testing.T) {
	tokenService := newMiddlewareTokenService(t, 5*time.Hour)
	app := newGuardedApp(t, tokenService)

	t.Run("MissingHeader", func(t *testing.T) {
		status, body := requestProtected(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "No token, authorization denied", body.Msg)
	})

	t.Run("NotBearerScheme", func(t *testing.T) {
		status, body := requestProtected(t, app, "Token abc.def.ghi")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Token format is invalid", body.Msg)
	})

	t.Run("EmptyCredential", func(t *testing.T) {
		status, body := requestProtected(t, app, "Bearer   ")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Token format is invalid", body.Msg)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		status, body := requestProtected(t, app, "Bearer not-a-jwt")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Token is not valid", body.Msg)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expired := newMiddlewareTokenService(t, -time.Minute)
		token, err := expired.GenerateToken(10001)
		require.NoError(t, err)

		// An expired token gets the same body as a malformed one.
		status, body := requestProtected(t, app, "Bearer "+token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Token is not valid", body.Msg)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokenService.GenerateToken(10001)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.EqualValues(t, 10001, body["employee_id"])
	})
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"Bearer", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"TrailingSpace", "Bearer abc.def.ghi  ", "abc.def.ghi", true},
		{"LowercaseScheme", "bearer abc.def.ghi", "", false},
		{"NoScheme", "abc.def.ghi", "", false},
		{"EmptyCredential", "Bearer ", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := extractBearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
