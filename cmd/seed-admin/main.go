// Command seed-admin creates a back-office admin account. Admin accounts
// cannot be registered through the API, so an operator runs this once per
// environment. Re-running with the same username is a no-op.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	stdlog "log"

	"golang.org/x/crypto/bcrypt"

	"github.com/mindfit/wellness-api/internal/core/domain"
	"github.com/mindfit/wellness-api/internal/infrastructure/config"
	mongodb "github.com/mindfit/wellness-api/internal/infrastructure/db/mongo"
	"github.com/mindfit/wellness-api/pkg/logger"
)

func main() {
	var (
		username = flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
		email    = flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
		fullName = flag.String("name", "", "admin full name")
		role     = flag.String("role", string(domain.RoleSuperAdmin), "admin role")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	log := logger.Init(logger.Options{Service: "seed-admin", Level: cfg.LogLevel, Pretty: true})

	if *username == "" || *password == "" {
		log.Fatal().Msg("username and password are required")
	}
	adminRole := domain.AdminRole(*role)
	if !adminRole.Valid() {
		log.Fatal().Str("role", *role).Msg("unknown admin role")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(context.Background())

	admins := mongodb.NewAdminRepository(db)
	if err := admins.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if existing, err := admins.FindByUsername(ctx, *username); err == nil {
		log.Info().Int64("admin_id", existing.ID).Str("username", existing.Username).
			Msg("admin already exists, nothing to do")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	created, err := admins.Create(ctx, &domain.Admin{
		Username:     *username,
		PasswordHash: string(hash),
		Email:        *email,
		FullName:     *fullName,
		Role:         adminRole,
		IsActive:     true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}
	log.Info().Int64("admin_id", created.ID).Str("username", created.Username).
		Str("role", string(created.Role)).Msg("admin created")
}
