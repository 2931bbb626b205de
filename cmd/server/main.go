package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	stdlog "log"

	_ "github.com/mindfit/wellness-api/docs"
	"github.com/mindfit/wellness-api/internal/api"
	"github.com/mindfit/wellness-api/internal/core/service"
	"github.com/mindfit/wellness-api/internal/infrastructure/audit"
	"github.com/mindfit/wellness-api/internal/infrastructure/config"
	mongodb "github.com/mindfit/wellness-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mindfit/wellness-api/internal/infrastructure/db/redis"
	"github.com/mindfit/wellness-api/internal/infrastructure/llm"
	"github.com/mindfit/wellness-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title MindFit Wellness API
// @version 1.0
// @description Consultation and fitness tracking backend with tiered guest, registered and admin access.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	log := logger.Init(logger.Options{
		Service: "wellness-api",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	users := mongodb.NewUserRepository(db)
	admins := mongodb.NewAdminRepository(db)
	sessions := mongodb.NewSessionRepository(db)
	messages := mongodb.NewMessageRepository(db)
	plans := mongodb.NewPlanRepository(db)
	measurements := mongodb.NewMeasurementRepository(db)
	assessments := mongodb.NewAssessmentRepository(db)
	loginLogs := mongodb.NewLoginLogRepository(db)

	for _, r := range []interface{ EnsureIndexes(context.Context) error }{
		users, admins, sessions, messages, plans, measurements, assessments, loginLogs,
	} {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	dispatcher := audit.NewDispatcher(cfg.AuditWorkers, loginLogs, log)
	dispatcher.Start(ctx)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.UserTokenTTL, cfg.GuestTokenTTL)
	advisor := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, log)
	replay := redisdb.NewReplayGuard(redisClient, cfg.Redis.ReplayTTL)

	e := api.NewRouter(api.Deps{
		Auth:          service.NewAuthService(users, admins, tokens, dispatcher, log),
		Consultations: service.NewConsultationService(sessions, messages, advisor, replay, log),
		Profiles:      service.NewProfileService(users),
		Plans:         service.NewPlanService(plans, sessions, log),
		Measurements:  service.NewMeasurementService(measurements),
		Assessments:   service.NewAssessmentService(assessments),
		Admin:         service.NewAdminService(users, sessions, plans, measurements, assessments, loginLogs, log),
		Verifier:      tokens,
		Mongo:         db,
		Redis:         redisClient,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
