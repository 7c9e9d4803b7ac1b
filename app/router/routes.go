// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/app/handlers"
	"github.com/prabodha-fernando/autoslot/app/middleware"
	"github.com/prabodha-fernando/autoslot/config"
	"github.com/prabodha-fernando/autoslot/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app             *fiber.App
	config          *config.ProductionConfig
	authHandler     handlers.AuthHandlerInterface
	employeeHandler handlers.EmployeeHandlerInterface
	officerHandler  handlers.OfficerHandlerInterface
	vehicleHandler  handlers.VehicleHandlerInterface
	incidentHandler handlers.IncidentHandlerInterface
	cameraHandler   handlers.CameraHandlerInterface
	authMiddleware  *middleware.AuthMiddleware
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	cfg *config.ProductionConfig,
	authHandler handlers.AuthHandlerInterface,
	employeeHandler handlers.EmployeeHandlerInterface,
	officerHandler handlers.OfficerHandlerInterface,
	vehicleHandler handlers.VehicleHandlerInterface,
	incidentHandler handlers.IncidentHandlerInterface,
	cameraHandler handlers.CameraHandlerInterface,
	authMiddleware *middleware.AuthMiddleware,
) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Autoslot API",
		ServerHeader: "Autoslot",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:             app,
		config:          cfg,
		authHandler:     authHandler,
		employeeHandler: employeeHandler,
		officerHandler:  officerHandler,
		vehicleHandler:  vehicleHandler,
		incidentHandler: incidentHandler,
		cameraHandler:   cameraHandler,
		authMiddleware:  authMiddleware,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	r.setupMiddleware()

	if r.config.Metrics.Enabled && r.config.Metrics.EnablePrometheus {
		path := r.config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	api.Use(limiter.New(limiter.Config{
		Max:        r.config.Security.GlobalRateLimit,
		Expiration: r.config.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:        r.config.Security.AuthRateLimit,
		Expiration: r.config.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
	}))

	auth.Post("/register", r.authHandler.Register)
	auth.Post("/login", r.authHandler.Login)
	auth.Get("/me", r.authMiddleware.Authenticate(), r.authHandler.Me)

	authenticate := r.authMiddleware.Authenticate()

	employees := api.Group("/employees", authenticate)
	employees.Get("/", r.employeeHandler.List)
	employees.Put("/:uuid", r.employeeHandler.Update)
	employees.Put("/:uuid/password", r.employeeHandler.UpdatePassword)
	employees.Delete("/:uuid", r.employeeHandler.Delete)

	officers := api.Group("/officers", authenticate)
	officers.Post("/", r.officerHandler.Create)
	officers.Get("/", r.officerHandler.List)
	officers.Put("/:uuid", r.officerHandler.Update)
	officers.Delete("/:uuid", r.officerHandler.Delete)

	vehicles := api.Group("/vehicles", authenticate)
	vehicles.Post("/entry", r.vehicleHandler.Entry)
	vehicles.Get("/", r.vehicleHandler.List)
	vehicles.Get("/inside", r.vehicleHandler.ListInside)
	vehicles.Post("/:uuid/exit", r.vehicleHandler.Exit)

	incidents := api.Group("/incidents", authenticate)
	incidents.Post("/", r.incidentHandler.Create)
	incidents.Get("/", r.incidentHandler.List)
	incidents.Put("/:uuid", r.incidentHandler.Update)
	incidents.Delete("/:uuid", r.incidentHandler.Delete)

	scans := api.Group("/camera-scans", authenticate)
	scans.Post("/", r.cameraHandler.Create)
	scans.Get("/", r.cameraHandler.List)

	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none';",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	r.app.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.Security.AllowedOrigins,
		AllowMethods:     r.config.Security.AllowedMethods,
		AllowHeaders:     r.config.Security.AllowedHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: r.config.Security.AllowCredentials,
		MaxAge:           utils.CORSMaxAge,
	}))

	if r.config.Server.EnableCompression {
		r.app.Use(compress.New(compress.Config{
			Level: compress.Level(r.config.Server.CompressionLevel),
		}))
	}

	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent}}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	if r.config.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": utils.UTCNow().Unix(),
		"service":   "autoslot-api",
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
		Msg: "The requested resource was not found",
	})
}

func rateLimitReached(c fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.MessageResponse{
		Msg: "Too many requests. Please try again later.",
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v (request_id=%v)", code, err, c.Locals("requestid"))

	return c.Status(code).JSON(dto.MessageResponse{
		Msg: "An internal server error occurred",
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
