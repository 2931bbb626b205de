package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindfit/wellness-api/internal/api/handler"
	"github.com/mindfit/wellness-api/internal/api/middleware"
	"github.com/mindfit/wellness-api/internal/core/ports"
)

// Deps collects everything the router needs; services are wired in main.
type Deps struct {
	Auth          ports.AuthService
	Consultations ports.ConsultationService
	Profiles      ports.ProfileService
	Plans         ports.PlanService
	Measurements  ports.MeasurementService
	Assessments   ports.AssessmentService
	Admin         ports.AdminService

	Verifier middleware.TokenVerifier

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("wellness"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	consultationHandler := handler.NewConsultationHandler(d.Consultations)
	profileHandler := handler.NewProfileHandler(d.Profiles)
	planHandler := handler.NewPlanHandler(d.Plans)
	measurementHandler := handler.NewMeasurementHandler(d.Measurements)
	assessmentHandler := handler.NewAssessmentHandler(d.Assessments)
	adminHandler := handler.NewAdminHandler(d.Auth, d.Admin)

	optional := middleware.Optional(d.Verifier)
	required := middleware.Authenticate(d.Verifier)
	registered := middleware.RequireRegistered()
	admin := middleware.RequireAdmin()

	apiGroup := e.Group("/api")

	// --- Auth (public) ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/guest", authHandler.Guest)

	// --- Consultations: guests allowed, token optional ---
	consultations := apiGroup.Group("/consultations", optional)
	consultations.POST("", consultationHandler.Consult)
	consultations.GET("", consultationHandler.List)
	consultations.POST("/:id/plan", planHandler.CreateFromSession, required, registered)

	// --- Registered-only resources ---
	profile := apiGroup.Group("/users/profile", required, registered)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	plans := apiGroup.Group("/plans", required, registered)
	plans.GET("", planHandler.List)
	plans.POST("", planHandler.Create)
	plans.GET("/:id", planHandler.Get)
	plans.PUT("/:id", planHandler.Update)
	plans.DELETE("/:id", planHandler.Delete)

	measurements := apiGroup.Group("/measurements", required, registered)
	measurements.GET("", measurementHandler.List)
	measurements.POST("", measurementHandler.Create)
	measurements.PUT("/:id", measurementHandler.Update)
	measurements.DELETE("/:id", measurementHandler.Delete)

	assessments := apiGroup.Group("/assessments", required, registered)
	assessments.GET("/psych", assessmentHandler.ListPsych)
	assessments.POST("/psych", assessmentHandler.SubmitPsych)
	assessments.GET("/physical", assessmentHandler.ListPhysical)
	assessments.POST("/physical", assessmentHandler.SubmitPhysical)

	// --- Admin ---
	adminGroup := apiGroup.Group("/admin")
	adminGroup.POST("/login", adminHandler.Login)
	adminGroup.GET("/users", adminHandler.ListUsers, required, admin)
	adminGroup.GET("/logins", adminHandler.ListLogins, required, admin)
	adminGroup.DELETE("/users/:id", adminHandler.DeleteUser, required, admin)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
