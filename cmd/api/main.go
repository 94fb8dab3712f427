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

	"github.com/karabo-m/luct-reporting-api/internal/config"
	"github.com/karabo-m/luct-reporting-api/internal/database"
	"github.com/karabo-m/luct-reporting-api/internal/handler"
	"github.com/karabo-m/luct-reporting-api/internal/middleware"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
	"github.com/karabo-m/luct-reporting-api/internal/router"
	"github.com/karabo-m/luct-reporting-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.CourseAssignment{}, &models.Report{}, &models.Rating{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	denylist := service.NewRedisDenylist(redisClient)

	authService := service.NewAuthService(userRepo, denylist, service.TokenConfig{
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	}, validate, logger)
	userService := service.NewUserService(userRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, validate, logger)
	reportService := service.NewReportService(reportRepo, validate, logger)
	ratingService := service.NewRatingService(ratingRepo, reportRepo, logger)
	statsService := service.NewStatsService(reportRepo, userRepo, cfg.RecentActivityN, logger)
	exportService := service.NewExportService(reportRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		UserHandler:       handler.NewUserHandler(userService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		ReportHandler:     handler.NewReportHandler(reportService, logger),
		RatingHandler:     handler.NewRatingHandler(ratingService, logger),
		StatsHandler:      handler.NewStatsHandler(statsService, logger),
		ExportHandler:     handler.NewExportHandler(exportService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret, denylist, logger),
		ActorMiddleware:   middleware.LoadActor(userService),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
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
