package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/transpoease/booking-system/docs"
	"github.com/transpoease/booking-system/internal/api/handler"
	"github.com/transpoease/booking-system/internal/api/middleware"
	"github.com/transpoease/booking-system/internal/core/domain"
	"github.com/transpoease/booking-system/internal/core/ports"
	"github.com/transpoease/booking-system/internal/core/service"
	mongodb "github.com/transpoease/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/transpoease/booking-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the runtime dependencies and settings the HTTP
// surface needs.
type RouterConfig struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	Mail         ports.MailEnqueuer
	JWTSecret    string
	ContactInbox string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Dependencies ---
	bookingRepo := mongodb.NewBookingRepository(cfg.Mongo)
	customerRepo := mongodb.NewCustomerRepository(cfg.Mongo)
	vehicleRepo := mongodb.NewVehicleRepository(cfg.Mongo)
	routeRepo := mongodb.NewRouteRepository(cfg.Mongo)
	scheduleRepo := mongodb.NewScheduleRepository(cfg.Mongo)
	trackingCache := redisdb.NewTrackingCache(cfg.Redis)

	bookingService := service.NewBookingService(bookingRepo, trackingCache, cfg.Logger)
	authService := service.NewAuthService(customerRepo, cfg.JWTSecret, 24*time.Hour)
	contactService := service.NewContactService(cfg.Mail, cfg.ContactInbox, cfg.Logger)
	courierCatalog := service.NewStaticCourierCatalog()

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	trackingHandler := handler.NewTrackingHandler(bookingService)
	quoteHandler := handler.NewQuoteHandler(courierCatalog)
	contactHandler := handler.NewContactHandler(contactService)
	fleetHandler := handler.NewFleetHandler(vehicleRepo, routeRepo, scheduleRepo)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public routes ---
	e.GET("/v1/track/:tracking_number", trackingHandler.Track)
	e.GET("/v1/quote", quoteHandler.Quote)
	e.GET("/v1/couriers/options", quoteHandler.CourierOptions)
	e.POST("/v1/contact", contactHandler.Submit)

	// --- Customer routes ---
	bookings := e.Group("/v1/bookings", authMiddleware, middleware.RBAC(domain.RoleCustomer, domain.RoleAdmin))
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.ListMine)
	bookings.GET("/:tracking_number", bookingHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	admin.GET("/vehicles", fleetHandler.ListVehicles)
	admin.POST("/vehicles", fleetHandler.CreateVehicle)
	admin.GET("/routes", fleetHandler.ListRoutes)
	admin.POST("/routes", fleetHandler.CreateRoute)
	admin.GET("/schedules", fleetHandler.ListSchedules)
	admin.POST("/schedules", fleetHandler.CreateSchedule)

	return e
}
