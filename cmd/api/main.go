package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/auth"
	"github.com/aeroclub-norte/turnero-api/internal/config"
	"github.com/aeroclub-norte/turnero-api/internal/database"
	"github.com/aeroclub-norte/turnero-api/internal/handler"
	"github.com/aeroclub-norte/turnero-api/internal/middleware"
	"github.com/aeroclub-norte/turnero-api/internal/router"
	"github.com/aeroclub-norte/turnero-api/internal/service"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	kv, cleanup, err := openSubstrate(cfg)
	if err != nil {
		log.Fatalf("failed to open store substrate: %v", err)
	}
	defer cleanup()

	cohortStore := store.NewCohortStore(kv, logger)
	studentStore := store.NewStudentStore(kv, logger)
	slotStore := store.NewSlotStore(kv, logger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLoad()
	if err := cohortStore.Load(loadCtx); err != nil {
		log.Fatalf("failed to load cohorts: %v", err)
	}
	if err := studentStore.Load(loadCtx); err != nil {
		log.Fatalf("failed to load students: %v", err)
	}
	if err := slotStore.Load(loadCtx); err != nil {
		log.Fatalf("failed to load slots: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	revocations := auth.NewRevocations()

	authService := service.NewAuthService(studentStore, issuer, revocations, cfg.AdminUsername, cfg.AdminSecret, logger)
	cohortService := service.NewCohortService(cohortStore, validate, logger)
	studentService := service.NewStudentService(studentStore, cohortStore, validate, logger)
	slotService := service.NewSlotService(slotStore, validate, logger)

	authHandler := handler.NewAuthHandler(authService, validate, logger)
	cohortHandler := handler.NewCohortHandler(cohortService, logger)
	studentHandler := handler.NewStudentHandler(studentService, logger)
	slotHandler := handler.NewSlotHandler(slotService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       authHandler,
		CohortHandler:     cohortHandler,
		StudentHandler:    studentHandler,
		SlotHandler:       slotHandler,
		SessionMiddleware: middleware.SessionProtected(issuer, revocations),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func openSubstrate(cfg config.Config) (store.KeyValue, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		kv, err := store.NewGormKV(db)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	default:
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisKV(client), func() { _ = client.Close() }, nil
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
