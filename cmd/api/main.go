package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"smart-todo/config"
	"smart-todo/config/postgre"
	_ "smart-todo/docs" // Swagger docs
	"smart-todo/internal/httpserver"
	"smart-todo/internal/middleware"
	"smart-todo/internal/reminder"
	reminderUC "smart-todo/internal/reminder/usecase"
	todoRepo "smart-todo/internal/todo/repository/postgre"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
	"smart-todo/pkg/scope"
	"smart-todo/pkg/storage"
)

// @title       Smart Todo API
// @description Personal to-do service with keyword categorization, reminders, Google Calendar mirroring and attachments.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	if cfg.Postgres.AutoMigrate {
		if err := postgre.Migrate(postgresDB); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 5. Sessions + middleware
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session manager: ", err)
		return
	}
	mw := middleware.New(logger, jwtManager, cfg.Cookie, cfg.RateLimit, m)

	// 6. DateMath parser shared by todos and reminders
	dateMathParser, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 7. Object storage (optional)
	var objectStorage storage.Storage
	s3Client, err := storage.NewS3(ctx, storage.Config{
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		ForcePathStyle:  cfg.Storage.ForcePathStyle,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		logger.Warnf(ctx, "Object storage not available (optional): %v", err)
	} else {
		objectStorage = s3Client
	}

	// 8. Reminder scheduler
	broker := reminder.NewBroker(0)
	notifiers := reminder.PlatformNotifiers(cfg.Reminder, cfg.Telegram)
	if len(notifiers) > 0 {
		logger.Info(ctx, "Platform alerts enabled: Telegram")
	}
	scheduler := reminderUC.New(
		logger,
		todoRepo.New(postgresDB, logger),
		dateMathParser,
		broker,
		notifiers,
		m,
		cfg.Reminder,
		reminder.SystemClock,
	)

	if cfg.Reminder.Enabled {
		if err := scheduler.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start reminder scheduler: ", err)
			return
		}
		defer scheduler.Stop()
		logger.Infof(ctx, "Reminder scheduler started (daily at %02d:00 %s)", cfg.Reminder.DailyHour, cfg.Reminder.Timezone)
	} else {
		logger.Warn(ctx, "Reminder scheduler disabled")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     postgresDB,
		Registry:       registry,
		Metrics:        m,
		Middleware:     mw,
		Storage:        objectStorage,
		DateMath:       dateMathParser,
		GoogleCalendar: cfg.GoogleCalendar,
		StorageConfig:  cfg.Storage,
		ReminderUC:     scheduler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
