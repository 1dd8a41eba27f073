package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/transpoease/booking-system/internal/api"
	"github.com/transpoease/booking-system/internal/infrastructure/config"
	mongodb "github.com/transpoease/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/transpoease/booking-system/internal/infrastructure/db/redis"
	"github.com/transpoease/booking-system/internal/infrastructure/mail"
	"github.com/transpoease/booking-system/pkg/logger"
)

// main is the application composition root. It wires MongoDB, Redis and the
// SMTP dispatcher behind ports and starts the HTTP server.
//
// @title        TranspoEase Booking API
// @version      1.0
// @description  Parcel booking, pricing and tracking service.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
		File:   cfg.LogFile,
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Outbound mail workers ---
	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := mail.NewDispatcher(cfg.SMTP.Workers, sender, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterConfig{
		Mongo:        db,
		Redis:        rdb,
		Mail:         dispatcher,
		JWTSecret:    cfg.JWTSecret,
		ContactInbox: cfg.SMTP.ContactInbox,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureIndexes creates the unique and query indexes all repositories rely on.
// Index creation is idempotent; running it on every boot is safe.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewCustomerRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewVehicleRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewRouteRepository(db).EnsureIndexes(ctx)
}
